package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskscope/pkg/models"
)

// EnableAutoSnapshot sets up a hook that automatically exports a snapshot
// to the given path after every successful write operation.
func (db *DB) EnableAutoSnapshot(path string) {
	db.SetOnChange(func(ctx context.Context) {
		// Hooks are best-effort; a failed export must not fail the write.
		_ = db.ExportSnapshot(ctx, path)
	})
}

type snapshotMeta struct {
	RecordType string    `json:"record_type"`
	ExportedAt time.Time `json:"exported_at"`
	TaskCount  int       `json:"task_count"`
}

type snapshotTask struct {
	RecordType string `json:"record_type"`
	*models.Task
}

// ExportSnapshot writes every task (subtasks embedded) as JSONL to the given
// path, atomically via a temporary file.
func (db *DB) ExportSnapshot(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tasks, err := db.ListTasks(ctx, "", models.FilterAll)
	if err != nil {
		return fmt.Errorf("failed to load tasks for snapshot: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "snapshot-*.jsonl")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempFile.Name())
		}
	}()

	enc := json.NewEncoder(tempFile)
	if err := enc.Encode(snapshotMeta{
		RecordType: "meta",
		ExportedAt: time.Now().UTC(),
		TaskCount:  len(tasks),
	}); err != nil {
		return fmt.Errorf("failed to write snapshot meta: %w", err)
	}

	for _, t := range tasks {
		if err := enc.Encode(snapshotTask{RecordType: "task", Task: t}); err != nil {
			return fmt.Errorf("failed to write snapshot task: %w", err)
		}
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	filename := tempFile.Name()
	tempFile = nil // Prevent defer from removing it

	if err := os.Rename(filename, path); err != nil {
		os.Remove(filename)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

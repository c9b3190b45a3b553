package db

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"taskscope/pkg/models"
)

func TestExportSnapshot(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	task, err := db.CreateTask(ctx, CreateTaskInput{
		Title:    "Snapshot me",
		Tags:     "backup",
		Subtasks: []string{"first", "second"},
	})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	snapshotPath := filepath.Join(t.TempDir(), "snapshot.jsonl")
	if err := db.ExportSnapshot(ctx, snapshotPath); err != nil {
		t.Fatalf("Failed to export snapshot: %v", err)
	}

	file, err := os.Open(snapshotPath)
	if err != nil {
		t.Fatalf("Failed to open snapshot: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	if !scanner.Scan() {
		t.Fatalf("Expected meta line")
	}
	var meta snapshotMeta
	if err := json.Unmarshal(scanner.Bytes(), &meta); err != nil {
		t.Fatalf("Failed to unmarshal meta: %v", err)
	}
	if meta.RecordType != "meta" || meta.TaskCount != 1 {
		t.Errorf("Unexpected meta line: %+v", meta)
	}

	if !scanner.Scan() {
		t.Fatalf("Expected task line")
	}
	var got struct {
		RecordType string `json:"record_type"`
		models.Task
	}
	if err := json.Unmarshal(scanner.Bytes(), &got); err != nil {
		t.Fatalf("Failed to unmarshal task: %v", err)
	}
	if got.RecordType != "task" || got.ID != task.ID || got.Title != "Snapshot me" {
		t.Errorf("Unexpected task line: %+v", got)
	}
	if len(got.Subtasks) != 2 {
		t.Errorf("Expected subtasks embedded in snapshot, got %d", len(got.Subtasks))
	}

	if scanner.Scan() {
		t.Errorf("Expected no further lines, got %q", scanner.Text())
	}
}

func TestAutoSnapshotOnWrite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	snapshotPath := filepath.Join(t.TempDir(), "snapshot.jsonl")
	db.EnableAutoSnapshot(snapshotPath)

	if _, err := db.CreateTask(ctx, CreateTaskInput{Title: "Trigger export"}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	if _, err := os.Stat(snapshotPath); err != nil {
		t.Fatalf("Expected snapshot to exist after write: %v", err)
	}
}

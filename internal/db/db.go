package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	embedsql "taskscope/embed/sql"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
	onChange   func(ctx context.Context)
	onChangeMu sync.RWMutex
}

// Open opens a SQLite database at the given path.
//
// The _time_format option makes the driver bind time.Time values as ISO-8601
// strings; without it they serialize in Go's String() format, which SQLite's
// datetime() cannot parse and every date comparison silently yields NULL.
func Open(path string) (*DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_time_format=sqlite"
	} else {
		dsn += "?_time_format=sqlite"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Foreign keys must be on or the subtask cascade never fires
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	return &DB{DB: db}, nil
}

// SetOnChange registers a hook invoked after every successful write operation.
func (db *DB) SetOnChange(fn func(ctx context.Context)) {
	db.onChangeMu.Lock()
	defer db.onChangeMu.Unlock()
	db.onChange = fn
}

func (db *DB) triggerChange(ctx context.Context) {
	db.onChangeMu.RLock()
	fn := db.onChange
	db.onChangeMu.RUnlock()

	if fn != nil {
		fn(ctx)
	}
}

func (db *DB) Migrate(ctx context.Context, schema string) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (db *DB) Init(ctx context.Context) error {
	return db.Migrate(ctx, embedsql.Schema)
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"taskscope/pkg/models"
)

// CreateSubtask appends a checklist item to an existing task.
func (db *DB) CreateSubtask(ctx context.Context, taskID int64, title string) (*models.Subtask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	query := `
		INSERT INTO subtasks (task_id, title, is_done)
		VALUES (?, ?, 0)
		RETURNING id
	`
	st := &models.Subtask{TaskID: taskID, Title: title}
	if err := db.QueryRowContext(ctx, query, taskID, title).Scan(&st.ID); err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}

	db.triggerChange(ctx)
	return st, nil
}

// SetSubtaskDone flips a single subtask's done flag. The parent task is left
// alone: completing every subtask does not complete the task.
func (db *DB) SetSubtaskDone(ctx context.Context, subtaskID int64, done bool) error {
	isDone := 0
	if done {
		isDone = 1
	}

	if _, err := db.ExecContext(ctx,
		`UPDATE subtasks SET is_done = ? WHERE id = ?`, isDone, subtaskID,
	); err != nil {
		return fmt.Errorf("failed to update subtask: %w", err)
	}

	db.triggerChange(ctx)
	return nil
}

// GetSubtask retrieves a subtask by its ID.
// Returns (nil, nil) when no such subtask exists.
func (db *DB) GetSubtask(ctx context.Context, id int64) (*models.Subtask, error) {
	query := `SELECT id, task_id, title, is_done FROM subtasks WHERE id = ?`

	st := &models.Subtask{}
	var isDone int
	err := db.QueryRowContext(ctx, query, id).Scan(&st.ID, &st.TaskID, &st.Title, &isDone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subtask: %w", err)
	}

	st.IsDone = isDone == 1
	return st, nil
}

func (db *DB) loadSubtasks(ctx context.Context, t *models.Task) error {
	query := `
		SELECT id, task_id, title, is_done
		FROM subtasks
		WHERE task_id = ?
		ORDER BY id ASC
	`
	rows, err := db.QueryContext(ctx, query, t.ID)
	if err != nil {
		return fmt.Errorf("failed to query subtasks: %w", err)
	}
	defer rows.Close()

	t.Subtasks = nil
	for rows.Next() {
		st := &models.Subtask{}
		var isDone int
		if err := rows.Scan(&st.ID, &st.TaskID, &st.Title, &isDone); err != nil {
			return fmt.Errorf("failed to scan subtask: %w", err)
		}
		st.IsDone = isDone == 1
		t.Subtasks = append(t.Subtasks, st)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows error: %w", err)
	}
	return nil
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskscope/pkg/models"
)

// ErrEmptyTitle is returned when a task is created or edited with a title
// that is empty after trimming.
var ErrEmptyTitle = errors.New("task title must not be empty")

type CreateTaskInput struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    models.Priority
	Tags        string
	// Subtasks holds initial subtask titles; blank lines are skipped.
	Subtasks []string
}

type UpdateTaskInput struct {
	Title       string
	Description string
	DueAt       *time.Time
	Priority    models.Priority
	Tags        string
}

// CreateTask inserts a new task along with its initial subtasks.
func (db *DB) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO tasks (title, description, status, priority, tags, due_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	var id int64
	err := db.QueryRowContext(ctx, query,
		title, strings.TrimSpace(in.Description), models.TaskStatusTodo, priority,
		strings.TrimSpace(in.Tags), nullableTime(in.DueAt), now, now,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	for _, st := range in.Subtasks {
		st = strings.TrimSpace(st)
		if st == "" {
			continue
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO subtasks (task_id, title, is_done) VALUES (?, ?, 0)`, id, st,
		); err != nil {
			return nil, fmt.Errorf("failed to create subtask: %w", err)
		}
	}

	db.triggerChange(ctx)
	return db.GetTask(ctx, id)
}

// GetTask retrieves a task by its ID, subtasks included.
// Returns (nil, nil) when no such task exists.
func (db *DB) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	query := `
		SELECT id, title, description, status, priority, tags, due_at, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`
	t := &models.Task{}
	var dueAt sql.NullTime
	err := db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.Tags,
		&dueAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if dueAt.Valid {
		due := dueAt.Time
		t.DueAt = &due
	}

	if err := db.loadSubtasks(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTask rewrites the editable fields of a task. Updating a missing ID is
// a silent no-op; callers that care should GetTask first. Status and subtasks
// are never touched here.
func (db *DB) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	query := `
		UPDATE tasks
		SET title = ?, description = ?, priority = ?, tags = ?, due_at = ?, updated_at = ?
		WHERE id = ?
	`
	_, err := db.ExecContext(ctx, query,
		title, strings.TrimSpace(in.Description), priority, strings.TrimSpace(in.Tags),
		nullableTime(in.DueAt), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	db.triggerChange(ctx)
	return nil
}

// UpdateTaskStatus is the single mutation path for completion state.
func (db *DB) UpdateTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid task status: %q", status)
	}

	query := `
		UPDATE tasks
		SET status = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := db.ExecContext(ctx, query, status, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	db.triggerChange(ctx)
	return nil
}

// SetTaskDone is the legacy done-flag entry point. It delegates to
// UpdateTaskStatus so status stays the only source of truth.
func (db *DB) SetTaskDone(ctx context.Context, id int64, done bool) error {
	status := models.TaskStatusTodo
	if done {
		status = models.TaskStatusDone
	}
	return db.UpdateTaskStatus(ctx, id, status)
}

// DeleteTask deletes a task by its ID. Subtasks go with it via the
// foreign-key cascade. Deleting a missing ID is a silent no-op, like
// UpdateTask.
func (db *DB) DeleteTask(ctx context.Context, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil
	}

	db.triggerChange(ctx)
	return nil
}

// ListTasks returns tasks matching the search text and filter mode.
//
// Search is a case-sensitive substring match over title, description and
// tags (instr rather than LIKE, which folds ASCII case). Sort order: undone
// before done, dated before undated, soonest due date first, newest created
// first among ties.
func (db *DB) ListTasks(ctx context.Context, search string, mode models.FilterMode) ([]*models.Task, error) {
	query := `
		SELECT id, title, description, status, priority, tags, due_at, created_at, updated_at
		FROM tasks
		WHERE 1=1
	`
	args := []any{}

	if s := strings.TrimSpace(search); s != "" {
		query += " AND (instr(title, ?) > 0 OR instr(description, ?) > 0 OR instr(tags, ?) > 0)"
		args = append(args, s, s, s)
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch mode {
	case models.FilterToday:
		query += " AND due_at IS NOT NULL AND datetime(due_at) >= datetime(?) AND datetime(due_at) < datetime(?)"
		args = append(args, startOfToday.UTC(), startOfToday.AddDate(0, 0, 1).UTC())
	case models.FilterWeek:
		// A rolling seven days from today, not a calendar week.
		query += " AND due_at IS NOT NULL AND datetime(due_at) >= datetime(?) AND datetime(due_at) < datetime(?)"
		args = append(args, startOfToday.UTC(), startOfToday.AddDate(0, 0, 7).UTC())
	case models.FilterDone:
		query += " AND status = ?"
		args = append(args, models.TaskStatusDone)
	case models.FilterUndone:
		query += " AND status != ?"
		args = append(args, models.TaskStatusDone)
	}

	query += `
		ORDER BY (status = 'done') ASC, (due_at IS NULL) ASC, datetime(due_at) ASC, created_at DESC
	`

	return db.queryTasks(ctx, query, args...)
}

// ListDueTasks returns undone tasks that have a due date set. The deadline
// watcher polls this.
func (db *DB) ListDueTasks(ctx context.Context) ([]*models.Task, error) {
	query := `
		SELECT id, title, description, status, priority, tags, due_at, created_at, updated_at
		FROM tasks
		WHERE status != 'done' AND due_at IS NOT NULL
	`
	return db.queryTasks(ctx, query)
}

// queryTasks is a helper to execute a query that returns a list of tasks,
// with subtasks loaded for each.
func (db *DB) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t := &models.Task{}
		var dueAt sql.NullTime
		err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.Tags,
			&dueAt, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		if dueAt.Valid {
			due := dueAt.Time
			t.DueAt = &due
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	for _, t := range tasks {
		if err := db.loadSubtasks(ctx, t); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

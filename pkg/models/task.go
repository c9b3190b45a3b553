package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	Tags        string     `json:"tags"`
	DueAt       *time.Time `json:"due_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Subtasks is populated by queries that load the full task.
	Subtasks []*Subtask `json:"subtasks,omitempty"`
}

// IsDone is the derived done flag. Status is the single source of truth;
// there is no stored boolean to fall out of sync with it.
func (t *Task) IsDone() bool {
	return t.Status == TaskStatusDone
}

type Subtask struct {
	ID     int64  `json:"id"`
	TaskID int64  `json:"task_id"`
	Title  string `json:"title"`
	IsDone bool   `json:"is_done"`
}

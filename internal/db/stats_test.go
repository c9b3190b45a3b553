package db

import (
	"context"
	"testing"

	"taskscope/pkg/models"
)

func TestStatusAndPriorityCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	mustCreate := func(title string, p models.Priority) *models.Task {
		t.Helper()
		task, err := db.CreateTask(ctx, CreateTaskInput{Title: title, Priority: p})
		if err != nil {
			t.Fatalf("Failed to create task: %v", err)
		}
		return task
	}

	mustCreate("one", models.PriorityHigh)
	two := mustCreate("two", models.PriorityHigh)
	three := mustCreate("three", models.PriorityLow)
	if err := db.UpdateTaskStatus(ctx, two.ID, models.TaskStatusInProgress); err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}
	if err := db.UpdateTaskStatus(ctx, three.ID, models.TaskStatusDone); err != nil {
		t.Fatalf("Failed to update status: %v", err)
	}

	statuses, err := db.StatusCounts(ctx)
	if err != nil {
		t.Fatalf("Failed to count statuses: %v", err)
	}
	if statuses[models.TaskStatusTodo] != 1 || statuses[models.TaskStatusInProgress] != 1 || statuses[models.TaskStatusDone] != 1 {
		t.Errorf("Unexpected status counts: %v", statuses)
	}

	priorities, err := db.PriorityCounts(ctx)
	if err != nil {
		t.Fatalf("Failed to count priorities: %v", err)
	}
	// Done tasks drop out of the priority breakdown.
	if priorities[models.PriorityHigh] != 2 {
		t.Errorf("Expected 2 open High tasks, got %d", priorities[models.PriorityHigh])
	}
	if priorities[models.PriorityLow] != 0 {
		t.Errorf("Expected done Low task to be excluded, got %d", priorities[models.PriorityLow])
	}
}

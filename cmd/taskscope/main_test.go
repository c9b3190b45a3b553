package main

import (
	"strings"
	"testing"
	"time"

	"taskscope/pkg/models"
)

func TestFormatTaskLine(t *testing.T) {
	due := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	task := &models.Task{
		ID:       12,
		Title:    "File taxes",
		Status:   models.TaskStatusTodo,
		Priority: models.PriorityHigh,
		DueAt:    &due,
		Tags:     "finance,home",
	}

	line := formatTaskLine(task)
	for _, want := range []string{"12", "[ ]", "File taxes", "High", "2026-03-14 09:30", "#finance #home"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in line %q", want, line)
		}
	}

	task.Status = models.TaskStatusDone
	if line := formatTaskLine(task); !strings.Contains(line, "[x]") {
		t.Errorf("expected done checkbox, got %q", line)
	}
}

func TestParseDue(t *testing.T) {
	due, err := parseDue("2026-03-14 09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if due.Hour() != 9 || due.Minute() != 30 {
		t.Errorf("expected 09:30, got %s", due)
	}

	dayOnly, err := parseDue("2026-03-14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dayOnly.Hour() != 23 || dayOnly.Minute() != 59 {
		t.Errorf("expected end of day for bare date, got %s", dayOnly)
	}

	if _, err := parseDue("next tuesday"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestParsePriority(t *testing.T) {
	for raw, want := range map[string]models.Priority{
		"high":   models.PriorityHigh,
		"Medium": models.PriorityMedium,
		"LOW":    models.PriorityLow,
	} {
		got, err := parsePriority(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if got != want {
			t.Errorf("expected %q for %q, got %q", want, raw, got)
		}
	}

	if _, err := parsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskscope/internal/config"
	"taskscope/internal/db"
	"taskscope/pkg/models"
)

type fakeStore struct {
	tasks         []*models.Task
	statusChanges map[int64]models.TaskStatus
	deleted       []int64
	created       []db.CreateTaskInput
	updated       map[int64]db.UpdateTaskInput
}

func newFakeStore(tasks ...*models.Task) *fakeStore {
	return &fakeStore{
		tasks:         tasks,
		statusChanges: make(map[int64]models.TaskStatus),
		updated:       make(map[int64]db.UpdateTaskInput),
	}
}

func (f *fakeStore) CreateTask(_ context.Context, in db.CreateTaskInput) (*models.Task, error) {
	f.created = append(f.created, in)
	t := &models.Task{ID: int64(len(f.tasks) + 1), Title: in.Title, Status: models.TaskStatusTodo, Priority: in.Priority}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeStore) UpdateTask(_ context.Context, id int64, in db.UpdateTaskInput) error {
	f.updated[id] = in
	return nil
}

func (f *fakeStore) UpdateTaskStatus(_ context.Context, id int64, status models.TaskStatus) error {
	f.statusChanges[id] = status
	for _, t := range f.tasks {
		if t.ID == id {
			t.Status = status
		}
	}
	return nil
}

func (f *fakeStore) SetTaskDone(ctx context.Context, id int64, done bool) error {
	status := models.TaskStatusDone
	if !done {
		status = models.TaskStatusTodo
	}
	return f.UpdateTaskStatus(ctx, id, status)
}

func (f *fakeStore) SetSubtaskDone(_ context.Context, subtaskID int64, done bool) error {
	for _, t := range f.tasks {
		for _, st := range t.Subtasks {
			if st.ID == subtaskID {
				st.IsDone = done
			}
		}
	}
	return nil
}

func (f *fakeStore) DeleteTask(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) ListTasks(_ context.Context, _ string, _ models.FilterMode) ([]*models.Task, error) {
	return f.tasks, nil
}

func (f *fakeStore) StatusCounts(_ context.Context) (map[models.TaskStatus]int, error) {
	counts := make(map[models.TaskStatus]int)
	for _, t := range f.tasks {
		counts[t.Status]++
	}
	return counts, nil
}

func (f *fakeStore) PriorityCounts(_ context.Context) (map[models.Priority]int, error) {
	counts := make(map[models.Priority]int)
	for _, t := range f.tasks {
		if !t.IsDone() {
			counts[t.Priority]++
		}
	}
	return counts, nil
}

type fakeNotifier struct{ messages []string }

func (f *fakeNotifier) Notify(title, message string) error {
	f.messages = append(f.messages, title+": "+message)
	return nil
}

func newTestModel(store Store) Model {
	return NewModel(store, &fakeNotifier{}, zap.NewNop(), config.Config{
		PomodoroMinutes: 25,
		Styles: config.Styles{
			AccentColor:   "205",
			BorderColor:   "240",
			DoneColor:     "241",
			OverdueColor:  "9",
			SelectedColor: "57",
		},
	})
}

func keyRunes(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func loadTasks(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.loadTasks()()
	if err, ok := msg.(errMsg); ok {
		t.Fatalf("loading tasks failed: %v", err.err)
	}
	model, _ := m.Update(msg)
	return model.(Model)
}

func TestListViewRendersTasks(t *testing.T) {
	due := time.Now().Add(2 * time.Hour)
	store := newFakeStore(
		&models.Task{ID: 1, Title: "Buy groceries", Status: models.TaskStatusTodo, Priority: models.PriorityHigh, DueAt: &due, Tags: "errands"},
		&models.Task{ID: 2, Title: "Ship release", Status: models.TaskStatusDone, Priority: models.PriorityMedium},
	)
	m := loadTasks(t, newTestModel(store))

	out := m.View()
	if !strings.Contains(out, "Buy groceries") {
		t.Errorf("expected task title in view, got:\n%s", out)
	}
	if !strings.Contains(out, "[x]") {
		t.Errorf("expected done checkbox in view, got:\n%s", out)
	}
	if !strings.Contains(out, "#errands") {
		t.Errorf("expected tag in view, got:\n%s", out)
	}
	if !strings.Contains(out, "filter: all") {
		t.Errorf("expected filter in footer, got:\n%s", out)
	}
}

func TestToggleDoneCallsStore(t *testing.T) {
	store := newFakeStore(&models.Task{ID: 7, Title: "Water plants", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	m := loadTasks(t, newTestModel(store))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = model.(Model)

	if got := store.statusChanges[7]; got != models.TaskStatusDone {
		t.Errorf("expected task 7 marked done, got %q", got)
	}
}

func TestBoardMoveAdvancesStatus(t *testing.T) {
	store := newFakeStore(&models.Task{ID: 3, Title: "Write report", Status: models.TaskStatusTodo, Priority: models.PriorityMedium})
	m := loadTasks(t, newTestModel(store))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(Model)
	if m.tab != BoardTab {
		t.Fatalf("expected board tab after tab key, got %d", m.tab)
	}

	model, _ = m.Update(keyRunes("L"))
	m = model.(Model)
	if got := store.statusChanges[3]; got != models.TaskStatusInProgress {
		t.Errorf("expected move to in_progress, got %q", got)
	}

	out := m.View()
	if !strings.Contains(out, "In Progress") {
		t.Errorf("expected board columns in view, got:\n%s", out)
	}
}

func TestFilterCycling(t *testing.T) {
	m := loadTasks(t, newTestModel(newFakeStore()))

	want := []models.FilterMode{
		models.FilterToday,
		models.FilterWeek,
		models.FilterDone,
		models.FilterUndone,
		models.FilterAll,
	}
	for _, expected := range want {
		model, _ := m.Update(keyRunes("f"))
		m = model.(Model)
		if m.filter != expected {
			t.Fatalf("expected filter %q, got %q", expected, m.filter)
		}
	}
}

func TestSearchModeAppliesTerm(t *testing.T) {
	m := loadTasks(t, newTestModel(newFakeStore()))

	model, _ := m.Update(keyRunes("/"))
	m = model.(Model)
	if m.mode != SearchMode {
		t.Fatalf("expected search mode, got %d", m.mode)
	}

	model, _ = m.Update(keyRunes("bug"))
	m = model.(Model)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)

	if m.searchTerm != "bug" {
		t.Errorf("expected search term %q, got %q", "bug", m.searchTerm)
	}
	if m.mode != NormalMode {
		t.Errorf("expected normal mode after enter, got %d", m.mode)
	}

	model, _ = m.Update(keyRunes("/"))
	m = model.(Model)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(Model)
	if m.searchTerm != "" {
		t.Errorf("expected cleared search after esc, got %q", m.searchTerm)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	store := newFakeStore(&models.Task{ID: 9, Title: "Old chore", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	m := loadTasks(t, newTestModel(store))

	model, _ := m.Update(keyRunes("d"))
	m = model.(Model)
	if m.mode != DeleteConfirmMode {
		t.Fatalf("expected delete confirm mode, got %d", m.mode)
	}
	if out := m.View(); !strings.Contains(out, `Delete "Old chore"?`) {
		t.Errorf("expected confirmation prompt, got:\n%s", out)
	}

	model, _ = m.Update(keyRunes("n"))
	m = model.(Model)
	if len(store.deleted) != 0 {
		t.Fatalf("expected no deletion after 'n', got %v", store.deleted)
	}

	model, _ = m.Update(keyRunes("d"))
	m = model.(Model)
	model, _ = m.Update(keyRunes("y"))
	m = model.(Model)
	if len(store.deleted) != 1 || store.deleted[0] != 9 {
		t.Errorf("expected task 9 deleted, got %v", store.deleted)
	}
}

func TestAddFormCreatesTask(t *testing.T) {
	store := newFakeStore()
	m := loadTasks(t, newTestModel(store))

	model, _ := m.Update(keyRunes("a"))
	m = model.(Model)
	if m.mode != AddMode {
		t.Fatalf("expected add mode, got %d", m.mode)
	}

	model, _ = m.Update(keyRunes("Plan sprint"))
	m = model.(Model)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(Model)

	if len(store.created) != 1 {
		t.Fatalf("expected one created task, got %d", len(store.created))
	}
	if store.created[0].Title != "Plan sprint" {
		t.Errorf("expected title %q, got %q", "Plan sprint", store.created[0].Title)
	}
	if store.created[0].Priority != models.PriorityMedium {
		t.Errorf("expected default Medium priority, got %q", store.created[0].Priority)
	}
	if m.mode != NormalMode {
		t.Errorf("expected normal mode after save, got %d", m.mode)
	}
}

func TestSubtaskToggleByDigit(t *testing.T) {
	task := &models.Task{
		ID: 4, Title: "Pack for trip", Status: models.TaskStatusTodo, Priority: models.PriorityMedium,
		Subtasks: []*models.Subtask{
			{ID: 40, TaskID: 4, Title: "Passport"},
			{ID: 41, TaskID: 4, Title: "Charger"},
		},
	}
	store := newFakeStore(task)
	m := loadTasks(t, newTestModel(store))

	model, _ := m.Update(keyRunes("2"))
	m = model.(Model)

	if !task.Subtasks[1].IsDone {
		t.Error("expected second subtask toggled done")
	}
	if task.Subtasks[0].IsDone {
		t.Error("expected first subtask untouched")
	}
}

func TestPomodoroTickAndNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	m := NewModel(newFakeStore(), notifier, zap.NewNop(), config.Config{PomodoroMinutes: 25})

	out := m.View()
	if !strings.Contains(out, "25:00") {
		t.Errorf("expected pomodoro clock in footer, got:\n%s", out)
	}

	model, _ := m.Update(keyRunes("p"))
	m = model.(Model)
	model, _ = m.Update(tickMsg(time.Now()))
	m = model.(Model)
	if !strings.Contains(m.View(), "24:59") {
		t.Errorf("expected clock to tick while running, got:\n%s", m.View())
	}

	model, _ = m.Update(keyRunes("P"))
	m = model.(Model)
	if !strings.Contains(m.View(), "25:00") {
		t.Errorf("expected reset clock, got:\n%s", m.View())
	}
}

func TestStatsViewShowsCounts(t *testing.T) {
	store := newFakeStore(
		&models.Task{ID: 1, Title: "a", Status: models.TaskStatusTodo, Priority: models.PriorityHigh},
		&models.Task{ID: 2, Title: "b", Status: models.TaskStatusDone, Priority: models.PriorityLow},
	)
	m := loadTasks(t, newTestModel(store))

	msg := m.loadStats()()
	model, _ := m.Update(msg)
	m = model.(Model)

	m.tab = StatsTab
	out := m.View()
	if !strings.Contains(out, "By status") {
		t.Errorf("expected status section, got:\n%s", out)
	}
	if !strings.Contains(out, "Open by priority") {
		t.Errorf("expected priority section, got:\n%s", out)
	}
}

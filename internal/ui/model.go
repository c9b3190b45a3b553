package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskscope/internal/config"
	"taskscope/internal/db"
	"taskscope/internal/notify"
	"taskscope/internal/pomodoro"
	"taskscope/pkg/models"
)

// Store is the slice of the task store the TUI needs.
type Store interface {
	CreateTask(ctx context.Context, in db.CreateTaskInput) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, in db.UpdateTaskInput) error
	UpdateTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error
	SetTaskDone(ctx context.Context, id int64, done bool) error
	SetSubtaskDone(ctx context.Context, subtaskID int64, done bool) error
	DeleteTask(ctx context.Context, id int64) error
	ListTasks(ctx context.Context, search string, mode models.FilterMode) ([]*models.Task, error)
	StatusCounts(ctx context.Context) (map[models.TaskStatus]int, error)
	PriorityCounts(ctx context.Context) (map[models.Priority]int, error)
}

// InputMode represents the current input mode.
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	SearchMode
	HelpViewMode
)

// Tab selects which main pane is rendered.
type Tab int

const (
	ListTab Tab = iota
	BoardTab
	StatsTab
	tabCount
)

var tabNames = [tabCount]string{"Tasks", "Board", "Stats"}

// boardStatuses is the left-to-right column order of the kanban board.
var boardStatuses = []models.TaskStatus{
	models.TaskStatusTodo,
	models.TaskStatusInProgress,
	models.TaskStatusDone,
}

type (
	tasksLoadedMsg []*models.Task
	statsLoadedMsg struct {
		status   map[models.TaskStatus]int
		priority map[models.Priority]int
	}
	errMsg  struct{ err error }
	tickMsg time.Time
)

// Model is the top-level bubbletea model for the application.
type Model struct {
	store    Store
	notifier notify.Notifier
	logger   *zap.Logger
	styles   Styles
	keys     KeyMap

	tab  Tab
	mode InputMode

	tasks    []*models.Task
	cursor   int
	boardCol int
	boardRow int

	filter      models.FilterMode
	searchTerm  string
	searchInput textinput.Model

	form    *taskForm
	editing *models.Task

	statusCounts   map[models.TaskStatus]int
	priorityCounts map[models.Priority]int

	pom *pomodoro.Timer

	width, height int
	err           error
	quitting      bool
}

func NewModel(store Store, notifier notify.Notifier, logger *zap.Logger, cfg config.Config) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search title, description, tags"
	search.CharLimit = 128

	return Model{
		store:       store,
		notifier:    notifier,
		logger:      logger,
		styles:      NewStyles(cfg.Styles),
		keys:        DefaultKeyMap(),
		filter:      models.FilterAll,
		searchInput: search,
		pom:         pomodoro.New(cfg.PomodoroLength()),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks(), m.loadStats(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadTasks() tea.Cmd {
	search, filter := m.searchTerm, m.filter
	return func() tea.Msg {
		tasks, err := m.store.ListTasks(context.Background(), search, filter)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg(tasks)
	}
}

func (m Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		status, err := m.store.StatusCounts(context.Background())
		if err != nil {
			return errMsg{err}
		}
		priority, err := m.store.PriorityCounts(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return statsLoadedMsg{status: status, priority: priority}
	}
}

// boardColumns groups the loaded tasks into kanban columns following
// boardStatuses order.
func (m Model) boardColumns() [][]*models.Task {
	cols := make([][]*models.Task, len(boardStatuses))
	for _, t := range m.tasks {
		for i, s := range boardStatuses {
			if t.Status == s {
				cols[i] = append(cols[i], t)
				break
			}
		}
	}
	return cols
}

// selectedTask returns the task under the cursor for the active tab, or nil.
func (m Model) selectedTask() *models.Task {
	switch m.tab {
	case ListTab:
		if m.cursor >= 0 && m.cursor < len(m.tasks) {
			return m.tasks[m.cursor]
		}
	case BoardTab:
		cols := m.boardColumns()
		if m.boardCol >= 0 && m.boardCol < len(cols) {
			col := cols[m.boardCol]
			if m.boardRow >= 0 && m.boardRow < len(col) {
				return col[m.boardRow]
			}
		}
	}
	return nil
}

func (m *Model) clampCursors() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	cols := m.boardColumns()
	if m.boardCol >= len(cols) {
		m.boardCol = len(cols) - 1
	}
	if m.boardCol < 0 {
		m.boardCol = 0
	}
	if n := len(cols[m.boardCol]); m.boardRow >= n {
		m.boardRow = n - 1
	}
	if m.boardRow < 0 {
		m.boardRow = 0
	}
}

package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"taskscope/pkg/models"
)

// filterCycle is the order the f key walks through the listing modes.
var filterCycle = []models.FilterMode{
	models.FilterAll,
	models.FilterToday,
	models.FilterWeek,
	models.FilterDone,
	models.FilterUndone,
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg
		m.err = nil
		m.clampCursors()
		return m, nil

	case statsLoadedMsg:
		m.statusCounts = msg.status
		m.priorityCounts = msg.priority
		return m, nil

	case errMsg:
		m.err = msg.err
		m.logger.Error("ui operation failed", zap.Error(msg.err))
		return m, nil

	case tickMsg:
		if m.pom.Running() {
			if m.pom.Tick() {
				if err := m.notifier.Notify("Pomodoro", "Time is up! Take a break."); err != nil {
					m.logger.Warn("pomodoro notification failed", zap.Error(err))
				}
			}
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			return m.updateNormal(msg)
		case AddMode, EditMode:
			return m.updateForm(msg)
		case DeleteConfirmMode:
			return m.updateDeleteConfirm(msg)
		case SearchMode:
			return m.updateSearch(msg)
		case HelpViewMode:
			m.mode = NormalMode
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.mode = HelpViewMode

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + tabCount) % tabCount

	case key.Matches(msg, m.keys.Down):
		if m.tab == BoardTab {
			m.boardRow++
		} else {
			m.cursor++
		}
		m.clampCursors()
	case key.Matches(msg, m.keys.Up):
		if m.tab == BoardTab {
			m.boardRow--
		} else {
			m.cursor--
		}
		m.clampCursors()

	case key.Matches(msg, m.keys.Left):
		if m.tab == BoardTab {
			m.boardCol--
			m.boardRow = 0
			m.clampCursors()
		}
	case key.Matches(msg, m.keys.Right):
		if m.tab == BoardTab {
			m.boardCol++
			m.boardRow = 0
			m.clampCursors()
		}

	case key.Matches(msg, m.keys.MoveLeft):
		return m.moveSelected(-1)
	case key.Matches(msg, m.keys.MoveRight):
		return m.moveSelected(+1)

	case key.Matches(msg, m.keys.ToggleDone):
		if t := m.selectedTask(); t != nil {
			if err := m.store.SetTaskDone(context.Background(), t.ID, !t.IsDone()); err != nil {
				m.err = err
				return m, nil
			}
			return m, tea.Batch(m.loadTasks(), m.loadStats())
		}

	case key.Matches(msg, m.keys.AddTask):
		m.mode = AddMode
		m.form = newTaskForm()
		return m, nil

	case key.Matches(msg, m.keys.EditTask):
		if t := m.selectedTask(); t != nil {
			m.mode = EditMode
			m.editing = t
			m.form = formFromTask(t)
		}
		return m, nil

	case key.Matches(msg, m.keys.DeleteTask):
		if m.selectedTask() != nil {
			m.mode = DeleteConfirmMode
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = SearchMode
		m.searchInput.SetValue(m.searchTerm)
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		for i, f := range filterCycle {
			if f == m.filter {
				m.filter = filterCycle[(i+1)%len(filterCycle)]
				break
			}
		}
		m.cursor, m.boardRow = 0, 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.PomodoroStart):
		m.pom.Toggle()
	case key.Matches(msg, m.keys.PomodoroReset):
		m.pom.Reset()

	default:
		// Digits toggle the nth subtask of the selected task.
		if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9' {
			return m.toggleSubtask(int(msg.Runes[0] - '1'))
		}
	}
	return m, nil
}

// moveSelected shifts the selected task one column along the board order.
func (m Model) moveSelected(dir int) (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil {
		return m, nil
	}
	cur := -1
	for i, s := range boardStatuses {
		if t.Status == s {
			cur = i
			break
		}
	}
	next := cur + dir
	if cur < 0 || next < 0 || next >= len(boardStatuses) {
		return m, nil
	}
	if err := m.store.UpdateTaskStatus(context.Background(), t.ID, boardStatuses[next]); err != nil {
		m.err = err
		return m, nil
	}
	return m, tea.Batch(m.loadTasks(), m.loadStats())
}

func (m Model) toggleSubtask(idx int) (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil || idx >= len(t.Subtasks) {
		return m, nil
	}
	st := t.Subtasks[idx]
	if err := m.store.SetSubtaskDone(context.Background(), st.ID, !st.IsDone); err != nil {
		m.err = err
		return m, nil
	}
	return m, m.loadTasks()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = NormalMode
		m.form = nil
		m.editing = nil
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.form.next()
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
		return m, nil

	case tea.KeyEnter:
		return m.submitForm()
	}
	return m, m.form.update(msg)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	ctx := context.Background()
	if m.mode == EditMode && m.editing != nil {
		in, err := m.form.toUpdateInput()
		if err != nil {
			m.err = err
			return m, nil
		}
		if err := m.store.UpdateTask(ctx, m.editing.ID, in); err != nil {
			m.err = err
			return m, nil
		}
	} else {
		in, err := m.form.toCreateInput()
		if err != nil {
			m.err = err
			return m, nil
		}
		if _, err := m.store.CreateTask(ctx, in); err != nil {
			m.err = err
			return m, nil
		}
	}
	m.mode = NormalMode
	m.form = nil
	m.editing = nil
	m.err = nil
	return m, tea.Batch(m.loadTasks(), m.loadStats())
}

func (m Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		t := m.selectedTask()
		m.mode = NormalMode
		if t == nil {
			return m, nil
		}
		if err := m.store.DeleteTask(context.Background(), t.ID); err != nil {
			m.err = err
			return m, nil
		}
		return m, tea.Batch(m.loadTasks(), m.loadStats())
	case "n", "N", "esc":
		m.mode = NormalMode
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = NormalMode
		m.searchTerm = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		return m, m.loadTasks()

	case tea.KeyEnter:
		m.mode = NormalMode
		m.searchTerm = m.searchInput.Value()
		m.searchInput.Blur()
		m.cursor, m.boardRow = 0, 0
		return m, m.loadTasks()
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

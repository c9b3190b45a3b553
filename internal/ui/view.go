package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskscope/pkg/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar.Render("TaskScope"))
	sb.WriteString("  ")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	switch m.mode {
	case AddMode, EditMode:
		sb.WriteString(m.form.view(m.styles))
	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	default:
		switch m.tab {
		case ListTab:
			sb.WriteString(m.renderList())
		case BoardTab:
			sb.WriteString(m.renderBoard())
		case StatsTab:
			sb.WriteString(m.renderStats())
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			parts = append(parts, m.styles.ActiveTab.Render(name))
		} else {
			parts = append(parts, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderList() string {
	if len(m.tasks) == 0 {
		return m.styles.Status.Render("No tasks. Press 'a' to add one.")
	}

	var sb strings.Builder
	for i, t := range m.tasks {
		line := m.renderTaskLine(t)
		if i == m.cursor {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		if i == m.cursor {
			for n, st := range t.Subtasks {
				box := "[ ]"
				if st.IsDone {
					box = "[x]"
				}
				sb.WriteString(fmt.Sprintf("      %d. %s %s\n", n+1, box, st.Title))
			}
		}
	}
	return sb.String()
}

func (m Model) renderTaskLine(t *models.Task) string {
	box := "[ ]"
	if t.IsDone() {
		box = "[x]"
	}

	title := t.Title
	if t.IsDone() {
		title = m.styles.Done.Render(title)
	}

	parts := []string{box, title, fmt.Sprintf("(%s)", t.Priority)}
	if t.DueAt != nil {
		due := t.DueAt.Local().Format("Jan 02 15:04")
		if !t.IsDone() && t.DueAt.Before(time.Now()) {
			due = m.styles.Overdue.Render(due + " overdue")
		}
		parts = append(parts, "due "+due)
	}
	if t.Tags != "" {
		parts = append(parts, m.styles.Tag.Render("#"+strings.ReplaceAll(t.Tags, ",", " #")))
	}
	if n := len(t.Subtasks); n > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.IsDone {
				done++
			}
		}
		parts = append(parts, fmt.Sprintf("[%d/%d]", done, n))
	}
	return strings.Join(parts, " ")
}

var boardTitles = map[models.TaskStatus]string{
	models.TaskStatusTodo:       "Todo",
	models.TaskStatusInProgress: "In Progress",
	models.TaskStatusDone:       "Done",
}

func (m Model) renderBoard() string {
	cols := m.boardColumns()
	rendered := make([]string, len(cols))
	for i, col := range cols {
		var sb strings.Builder
		title := boardTitles[boardStatuses[i]]
		sb.WriteString(m.styles.TitleBar.Render(fmt.Sprintf("%s (%d)", title, len(col))))
		sb.WriteString("\n")
		for j, t := range col {
			line := t.Title
			if t.DueAt != nil && !t.IsDone() && t.DueAt.Before(time.Now()) {
				line = m.styles.Overdue.Render(line)
			}
			if i == m.boardCol && j == m.boardRow {
				line = m.styles.Selected.Render("> " + line)
			} else {
				line = "  " + line
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		if len(col) == 0 {
			sb.WriteString(m.styles.Status.Render("  empty"))
			sb.WriteString("\n")
		}
		rendered[i] = m.styles.Column.Width(28).Render(sb.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderStats() string {
	var sb strings.Builder

	sb.WriteString(m.styles.TitleBar.Render("By status"))
	sb.WriteString("\n")
	for _, s := range boardStatuses {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", boardTitles[s], m.statusCounts[s]))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.TitleBar.Render("Open by priority"))
	sb.WriteString("\n")
	prios := make([]models.Priority, 0, len(m.priorityCounts))
	for p := range m.priorityCounts {
		prios = append(prios, p)
	}
	sort.Slice(prios, func(i, j int) bool { return prios[i] < prios[j] })
	for _, p := range prios {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", p, m.priorityCounts[p]))
	}
	if len(prios) == 0 {
		sb.WriteString(m.styles.Status.Render("  nothing open"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	bindings := []struct{ keys, desc string }{
		{"tab / shift+tab", "switch between tasks, board and stats"},
		{"j / k", "move down / up"},
		{"h / l", "board column left / right"},
		{"H / L", "move task to previous / next column"},
		{"space", "toggle task done"},
		{"1-9", "toggle subtask of selected task"},
		{"a", "add task"},
		{"e / enter", "edit selected task"},
		{"d", "delete selected task"},
		{"/", "search (enter applies, esc clears)"},
		{"f", "cycle filter: all, today, week, done, undone"},
		{"p / P", "start or pause / reset pomodoro"},
		{"q", "quit"},
	}
	var sb strings.Builder
	sb.WriteString(m.styles.TitleBar.Render("Keys"))
	sb.WriteString("\n")
	for _, b := range bindings {
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", b.keys, b.desc))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("press any key to close"))
	return sb.String()
}

func (m Model) renderFooter() string {
	var parts []string

	switch m.mode {
	case SearchMode:
		return m.searchInput.View()
	case DeleteConfirmMode:
		if t := m.selectedTask(); t != nil {
			return m.styles.Overdue.Render(fmt.Sprintf("Delete %q? (y/n)", t.Title))
		}
	}

	parts = append(parts, fmt.Sprintf("filter: %s", m.filter))
	if m.searchTerm != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.searchTerm))
	}
	pomState := "paused"
	if m.pom.Running() {
		pomState = "running"
	}
	parts = append(parts, fmt.Sprintf("pomodoro %s (%s)", m.pom.Clock(), pomState))
	if m.err != nil {
		parts = append(parts, m.styles.Overdue.Render("error: "+m.err.Error()))
	}
	parts = append(parts, m.styles.Help.Render("? for help"))

	return m.styles.Status.Render(strings.Join(parts, " · "))
}

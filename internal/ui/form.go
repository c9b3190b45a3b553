package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskscope/internal/db"
	"taskscope/pkg/models"
)

const (
	formTitle = iota
	formDescription
	formDueDate
	formPriority
	formTags
	formSubtasks
	formFieldCount
)

const dueDateLayout = "2006-01-02 15:04"

var formLabels = [formFieldCount]string{
	"Title",
	"Description",
	"Due (YYYY-MM-DD HH:MM)",
	"Priority (High/Medium/Low)",
	"Tags (comma separated)",
	"Subtasks (semicolon separated)",
}

// taskForm is the inline editor used by both the add and edit modes.
type taskForm struct {
	inputs [formFieldCount]textinput.Model
	focus  int
}

func newTaskForm() *taskForm {
	f := &taskForm{}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 256
		f.inputs[i] = in
	}
	f.inputs[formTitle].Placeholder = "What needs doing?"
	f.inputs[formPriority].SetValue(string(models.PriorityMedium))
	f.inputs[formTitle].Focus()
	return f
}

// formFromTask pre-fills the editor with an existing task. Subtasks are not
// editable here, so that field stays disabled in edit mode.
func formFromTask(t *models.Task) *taskForm {
	f := newTaskForm()
	f.inputs[formTitle].SetValue(t.Title)
	f.inputs[formDescription].SetValue(t.Description)
	if t.DueAt != nil {
		f.inputs[formDueDate].SetValue(t.DueAt.Local().Format(dueDateLayout))
	}
	f.inputs[formPriority].SetValue(string(t.Priority))
	f.inputs[formTags].SetValue(t.Tags)
	f.inputs[formSubtasks].SetValue("")
	return f
}

func (f *taskForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % formFieldCount
	f.inputs[f.focus].Focus()
}

func (f *taskForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + formFieldCount) % formFieldCount
	f.inputs[f.focus].Focus()
}

func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *taskForm) view(styles Styles) string {
	var sb strings.Builder
	for i, in := range f.inputs {
		label := formLabels[i]
		if i == f.focus {
			label = styles.Selected.Render(label)
		}
		sb.WriteString(label)
		sb.WriteString("\n")
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}
	sb.WriteString(styles.Help.Render("enter: save · tab: next field · esc: cancel"))
	return styles.Form.Render(sb.String())
}

func (f *taskForm) dueAt() (*time.Time, error) {
	raw := strings.TrimSpace(f.inputs[formDueDate].Value())
	if raw == "" {
		return nil, nil
	}
	due, err := time.ParseInLocation(dueDateLayout, raw, time.Local)
	if err != nil {
		// Accept a bare date and treat it as end of day.
		day, dayErr := time.ParseInLocation("2006-01-02", raw, time.Local)
		if dayErr != nil {
			return nil, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or YYYY-MM-DD HH:MM", raw)
		}
		due = day.Add(23*time.Hour + 59*time.Minute)
	}
	return &due, nil
}

func (f *taskForm) priority() (models.Priority, error) {
	raw := strings.TrimSpace(f.inputs[formPriority].Value())
	if raw == "" {
		return models.PriorityMedium, nil
	}
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if strings.EqualFold(raw, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q: use High, Medium or Low", raw)
}

func (f *taskForm) subtasks() []string {
	var lines []string
	for _, part := range strings.Split(f.inputs[formSubtasks].Value(), ";") {
		if s := strings.TrimSpace(part); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

func (f *taskForm) toCreateInput() (db.CreateTaskInput, error) {
	due, err := f.dueAt()
	if err != nil {
		return db.CreateTaskInput{}, err
	}
	prio, err := f.priority()
	if err != nil {
		return db.CreateTaskInput{}, err
	}
	return db.CreateTaskInput{
		Title:       strings.TrimSpace(f.inputs[formTitle].Value()),
		Description: strings.TrimSpace(f.inputs[formDescription].Value()),
		DueAt:       due,
		Priority:    prio,
		Tags:        strings.TrimSpace(f.inputs[formTags].Value()),
		Subtasks:    f.subtasks(),
	}, nil
}

func (f *taskForm) toUpdateInput() (db.UpdateTaskInput, error) {
	due, err := f.dueAt()
	if err != nil {
		return db.UpdateTaskInput{}, err
	}
	prio, err := f.priority()
	if err != nil {
		return db.UpdateTaskInput{}, err
	}
	return db.UpdateTaskInput{
		Title:       strings.TrimSpace(f.inputs[formTitle].Value()),
		Description: strings.TrimSpace(f.inputs[formDescription].Value()),
		DueAt:       due,
		Priority:    prio,
		Tags:        strings.TrimSpace(f.inputs[formTags].Value()),
	}, nil
}

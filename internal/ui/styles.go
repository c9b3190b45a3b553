package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskscope/internal/config"
)

// Styles holds the lipgloss styles used by the TUI, built once from the
// configured colors.
type Styles struct {
	TitleBar  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	Overdue   lipgloss.Style
	Tag       lipgloss.Style
	Column    lipgloss.Style
	Form      lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
}

func NewStyles(cfg config.Styles) Styles {
	return Styles{
		TitleBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.AccentColor)).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.DoneColor)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cfg.AccentColor)).
			Underline(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.SelectedColor)).
			Bold(true),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.DoneColor)).
			Strikethrough(true),
		Overdue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.OverdueColor)).
			Bold(true),
		Tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.AccentColor)),
		Column: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(cfg.BorderColor)).
			Padding(0, 1).
			Margin(0, 1, 0, 0),
		Form: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(cfg.AccentColor)).
			Padding(1, 2),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.DoneColor)).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.BorderColor)),
	}
}

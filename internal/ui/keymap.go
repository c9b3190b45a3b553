package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the TUI.
type KeyMap struct {
	Quit          key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	MoveLeft      key.Binding
	MoveRight     key.Binding
	ToggleDone    key.Binding
	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
	Search        key.Binding
	CycleFilter   key.Binding
	PomodoroStart key.Binding
	PomodoroReset key.Binding
	ShowHelp      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "move up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "move down")),
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h", "column left")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l", "column right")),
		MoveLeft:      key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "move task left")),
		MoveRight:     key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "move task right")),
		ToggleDone:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		AddTask:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		EditTask:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit task")),
		DeleteTask:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete task")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		CycleFilter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		PomodoroStart: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "start/pause pomodoro")),
		PomodoroReset: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "reset pomodoro")),
		ShowHelp:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

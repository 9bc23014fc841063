package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Manual refresh
	Refresh key.Binding

	// View switching
	GoDashboard key.Binding
	GoTodos     key.Binding
	GoChat      key.Binding
	GoFiles     key.Binding
	GoCompare   key.Binding

	// Item actions
	New    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Filter key.Binding

	// Compare widget
	CycleTask     key.Binding
	CycleLanguage key.Binding

	// Session
	Logout key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		GoDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		GoTodos: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "todos"),
		),
		GoChat: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "chat"),
		),
		GoFiles: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "files"),
		),
		GoCompare: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "compare"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new item"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		CycleTask: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next task"),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next language"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
	}
}

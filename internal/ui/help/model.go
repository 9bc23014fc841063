package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/keys"
	"github.com/nhle/demodash/internal/theme"
)

// section is a titled group of bindings in the overlay.
type section struct {
	title    string
	bindings []key.Binding
}

// Model is the help overlay view.
type Model struct {
	sections []section
	width    int
	height   int
}

// New creates a help overlay over the application key map.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		sections: []section{
			{title: "Views", bindings: []key.Binding{
				k.GoDashboard, k.GoTodos, k.GoChat, k.GoFiles, k.GoCompare, k.Back,
			}},
			{title: "Lists", bindings: []key.Binding{
				k.Up, k.Down, k.New, k.Toggle, k.Delete, k.Filter,
			}},
			{title: "Compare", bindings: []key.Binding{
				k.CycleTask, k.CycleLanguage,
			}},
			{title: "Session", bindings: []key.Binding{
				k.Refresh, k.Command, k.Logout, k.Help, k.Quit,
			}},
		},
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view. The overlay is static;
// dismissal is handled by the app.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the key bindings grouped by section.
func (m Model) View() string {
	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorBlue)

	var lines []string
	for i, sec := range m.sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, theme.HeaderStyle.Render(sec.title))
		for _, b := range sec.bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf(
				"  %s  %s",
				keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				theme.HelpStyle.Render(h.Desc),
			))
		}
	}

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/theme"
)

// CommandMsg is emitted when the user executes a command.
type CommandMsg string

// known lists every command the palette accepts, in display order.
// Aliases share a line with their target.
var known = []struct {
	name    string
	aliases []string
	desc    string
}{
	{name: "dashboard", aliases: []string{"stats"}, desc: "personal stats and site analytics"},
	{name: "todos", desc: "todo list"},
	{name: "chat", desc: "chat room"},
	{name: "files", desc: "file listing"},
	{name: "compare", desc: "language comparison"},
	{name: "refresh", aliases: []string{"sync"}, desc: "re-fetch the current view"},
	{name: "logout", desc: "end the session"},
	{name: "help", desc: "keyboard shortcuts"},
	{name: "quit", aliases: []string{"q"}, desc: "exit"},
}

// isKnown reports whether input names a command or one of its aliases.
func isKnown(input string) bool {
	for _, c := range known {
		if input == c.name {
			return true
		}
		for _, a := range c.aliases {
			if input == a {
				return true
			}
		}
	}
	return false
}

// suggest returns the first command with the given prefix, or "".
func suggest(prefix string) string {
	if prefix == "" {
		return ""
	}
	for _, c := range known {
		if strings.HasPrefix(c.name, prefix) {
			return c.name
		}
	}
	return ""
}

// Model is the command palette view. Unknown commands are rejected here
// with an inline error; only validated commands reach the app.
type Model struct {
	input   textinput.Model
	lastErr string
	width   int
	height  int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "command"
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}
			if !isKnown(input) {
				m.lastErr = fmt.Sprintf("unknown command: %q", input)
				m.input.Reset()
				return m, nil
			}
			m.input.Reset()
			m.lastErr = ""
			return m, func() tea.Msg {
				return CommandMsg(input)
			}

		case "tab":
			if completed := suggest(strings.TrimSpace(m.input.Value())); completed != "" {
				m.input.SetValue(completed)
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the palette: the prompt line, an inline error or a
// completion hint, and the command reference underneath.
func (m Model) View() string {
	lines := []string{m.input.View()}

	switch {
	case m.lastErr != "":
		lines = append(lines, theme.ErrorStyle.Render(m.lastErr))
	default:
		if s := suggest(strings.TrimSpace(m.input.Value())); s != "" {
			lines = append(lines, theme.HelpStyle.Render("tab: "+s))
		}
	}

	lines = append(lines, "")
	for _, c := range known {
		name := c.name
		if len(c.aliases) > 0 {
			name += ", " + strings.Join(c.aliases, ", ")
		}
		lines = append(lines, fmt.Sprintf(
			"  %-18s %s", name, theme.HelpStyle.Render(c.desc),
		))
	}

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	m.lastErr = ""
	return m.input.Focus()
}

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/model"
	"github.com/nhle/demodash/internal/render"
	"github.com/nhle/demodash/internal/theme"
)

// SendMsg asks the app to post a chat message. Empty messages are
// blocked here and never reach the wire.
type SendMsg struct {
	Text string
}

// Model is the chat view: a scrolling transcript plus an input line.
type Model struct {
	viewport  viewport.Model
	input     textinput.Model
	inlineErr string
	loaded    bool
	width     int
	height    int
}

// New creates a new chat view model.
func New(width, height int) Model {
	vp := viewport.New(width, height-3)

	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = "> "
	ti.Width = width - 4

	return Model{
		viewport: vp,
		input:    ti,
		width:    width,
		height:   height,
	}
}

// Focus gives keyboard focus to the input line.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// SetMessages replaces the transcript with a freshly fetched snapshot.
// Rendering the same snapshot again produces the same transcript, so
// out-of-order poll responses redraw stale content at worst.
func (m *Model) SetMessages(messages []model.Message) {
	lines := render.MessageLines(messages)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
	m.loaded = true
}

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.inlineErr = "Message cannot be empty."
				return m, nil
			}
			m.input.Reset()
			m.inlineErr = ""
			return m, func() tea.Msg { return SendMsg{Text: text} }

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// View renders the chat view.
func (m Model) View() string {
	transcript := m.viewport.View()
	if !m.loaded {
		transcript = theme.PlaceholderStyle.Render("Loading messages...")
	}

	parts := []string{transcript}
	if m.inlineErr != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.inlineErr))
	}
	parts = append(parts, m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 3
	m.input.Width = width - 4
}

package compareview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/compare"
	"github.com/nhle/demodash/internal/keys"
	"github.com/nhle/demodash/internal/theme"
)

// FragmentChangedMsg is dispatched after every selection change so the
// app can write the new fragment through to durable state. The in-memory
// state and the fragment are derived in the same update; they are never
// observably out of sync.
type FragmentChangedMsg struct {
	Fragment string
}

// Model is the language comparison view. It is entirely client-side:
// no credential, no network.
type Model struct {
	state  compare.State
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a new compare view model with the default selection.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		state:  compare.DefaultState(),
		keys:   k,
		width:  width,
		height: height,
	}
}

// Restore replaces the selection from a stored fragment string.
// Invalid values silently fall back to the defaults.
func (m *Model) Restore(fragment string) {
	m.state = compare.StateFromFragment(fragment)
}

// State returns the current selection.
func (m Model) State() compare.State {
	return m.state
}

// Update handles messages for the compare view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.CycleTask):
		m.state = m.state.NextTask()
		return m, m.fragmentChanged()

	case key.Matches(keyMsg, m.keys.CycleLanguage):
		m.state = m.state.NextLanguage()
		return m, m.fragmentChanged()
	}

	switch keyMsg.String() {
	case "right":
		m.state = m.state.NextLanguage()
		return m, m.fragmentChanged()
	}

	return m, nil
}

func (m Model) fragmentChanged() tea.Cmd {
	fragment := m.state.Fragment()
	return func() tea.Msg {
		return FragmentChangedMsg{Fragment: fragment}
	}
}

// View renders the two code panels, the derived metrics, and the
// fragment string.
func (m Model) View() string {
	reference, _ := compare.ReferenceSampleFor(m.state.TaskID)
	selected, _ := compare.SampleFor(m.state.TaskID, m.state.LangID)

	panelWidth := m.width/2 - 4
	if panelWidth < 24 {
		panelWidth = 24
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)

	leftPanel := lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(compare.ReferenceLanguage()),
		theme.CodePanelStyle.Width(panelWidth).Render(reference),
	)
	rightPanel := lipgloss.JoinVertical(
		lipgloss.Left,
		labelStyle.Render(m.state.LangID),
		theme.CodePanelStyle.Width(panelWidth).Render(selected),
	)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, "  ", rightPanel)

	metrics := m.state.Metrics()
	metricsLine := fmt.Sprintf(
		"%s: %d lines (%+d), %d chars (%+d) vs %s",
		m.state.LangID,
		metrics.Lines, metrics.DeltaLines,
		metrics.Chars, metrics.DeltaChars,
		compare.ReferenceLanguage(),
	)

	taskLabel := labelStyle.Render("Task: ") + taskName(m.state.TaskID)
	fragmentLine := theme.HelpStyle.Render("#" + m.state.Fragment())

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			taskLabel,
			"",
			panels,
			"",
			metricsLine,
			fragmentLine,
		),
	)
}

// taskName resolves a task ID to its display name.
func taskName(id string) string {
	for _, t := range compare.Tasks() {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/model"
	"github.com/nhle/demodash/internal/render"
	"github.com/nhle/demodash/internal/theme"
)

// Model is the dashboard view: the per-user stats summary plus the
// site-wide analytics counters.
type Model struct {
	stats     model.Stats
	analytics model.Analytics
	loaded    bool
	width     int
	height    int
}

// New creates a new dashboard view model.
func New(width, height int) Model {
	return Model{
		width:  width,
		height: height,
	}
}

// SetData replaces the displayed summary with a freshly fetched one.
func (m *Model) SetData(stats model.Stats, analytics model.Analytics) {
	m.stats = stats
	m.analytics = analytics
	m.loaded = true
}

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the dashboard view.
func (m Model) View() string {
	if !m.loaded {
		return theme.PlaceholderStyle.Padding(1, 2).Render("Loading dashboard...")
	}

	welcomeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorBlue).
		MarginTop(1)

	parts := []string{welcomeStyle.Render(render.WelcomeLine(m.stats))}

	parts = append(parts, sectionStyle.Render("Your activity"))
	parts = append(parts, render.StatsLines(m.stats)...)

	parts = append(parts, sectionStyle.Render("Site analytics"))
	parts = append(parts, render.AnalyticsLines(m.analytics)...)

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

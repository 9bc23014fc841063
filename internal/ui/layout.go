package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/theme"
)

// Layout manages the terminal frame dimensions: a one-line header, the
// content area, and a one-line status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with a title on the left and
// session info on the right.
func (l Layout) RenderHeader(title string, session string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	sessionRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(session)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(sessionRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		sessionRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints or
// a transient notice.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderColumns places two panels side by side, splitting the content
// width evenly. Used by the compare view for its code panels.
func (l Layout) RenderColumns(left, right string) string {
	colWidth := l.ContentWidth()/2 - 1
	if colWidth < 20 {
		colWidth = 20
	}

	leftPanel := lipgloss.NewStyle().Width(colWidth).Render(left)
	rightPanel := lipgloss.NewStyle().Width(colWidth).Render(right)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, " ", rightPanel)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}

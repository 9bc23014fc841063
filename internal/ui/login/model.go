package login

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/theme"
)

// SubmitMsg is dispatched when the user submits the login form.
type SubmitMsg struct {
	Username string
	Password string
}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	username string
	password string
}

// Model is the Bubble Tea model for the login view.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	errMsg string
	notice string
	width  int
	height int
}

// New creates a new login view model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start (re)initializes the login form. The username survives a failed
// attempt; the password never does.
func (m *Model) Start() tea.Cmd {
	m.fb.password = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// SetError records a server rejection message shown above the form.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
	m.notice = ""
}

// SetNotice records a transient notice (e.g. after registration).
func (m *Model) SetNotice(msg string) {
	m.notice = msg
	m.errMsg = ""
}

// Update handles messages for the login view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		username := m.fb.username
		password := m.fb.password
		// Drop the form so a keypress during the in-flight request
		// cannot resubmit; Start rebuilds it when the result lands.
		m.form = nil
		return m, func() tea.Msg {
			return SubmitMsg{Username: username, Password: password}
		}
	}
	if m.form.State == huh.StateAborted {
		// Nowhere to go back to from login; restart the form.
		return m, m.Start()
	}

	return m, cmd
}

// View renders the login view.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	parts := []string{titleStyle.Render("Sign in to Demo Dashboard")}

	if m.errMsg != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.errMsg))
	}
	if m.notice != "" {
		parts = append(parts, theme.NoticeStyle.Render(m.notice))
	}

	if m.form != nil {
		parts = append(parts, m.form.View())
	}

	parts = append(parts, theme.HelpStyle.Render("ctrl+r: create an account"))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&m.fb.username).
				Validate(validateRequired("Username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(validateRequired("Password")),
		),
	).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

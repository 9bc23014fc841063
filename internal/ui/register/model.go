package register

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/theme"
)

// SubmitMsg is dispatched when the user submits the registration form.
// The password confirmation has already been validated client-side; no
// request leaves the client with mismatched passwords.
type SubmitMsg struct {
	Username string
	Email    string
	Password string
}

// CancelMsg is dispatched when the user abandons registration.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	username string
	email    string
	password string
	confirm  string
}

// Model is the Bubble Tea model for the registration view.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	errMsg string
	width  int
	height int
}

// New creates a new registration view model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start (re)initializes the registration form.
func (m *Model) Start() tea.Cmd {
	m.fb.password = ""
	m.fb.confirm = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// SetError records a server rejection message shown above the form.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

// Update handles messages for the registration view.
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
		email := m.fb.email
		password := m.fb.password
		m.form = nil
		return m, func() tea.Msg {
			return SubmitMsg{
				Username: username,
				Email:    email,
				Password: password,
			}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the registration view.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	parts := []string{titleStyle.Render("Create a Demo Dashboard account")}

	if m.errMsg != "" {
		parts = append(parts, theme.ErrorStyle.Render(m.errMsg))
	}

	if m.form != nil {
		parts = append(parts, m.form.View())
	}

	parts = append(parts, theme.HelpStyle.Render("esc: back to sign in"))

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
				Title("Email").
				Value(&m.fb.email).
				Validate(validateEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(validateRequired("Password")),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.confirm).
				Validate(m.validateConfirm),
		),
	).WithWidth(m.formWidth())
}

// validateConfirm blocks submission when the confirmation does not match
// the password; the mismatch never reaches the server.
func (m *Model) validateConfirm(s string) error {
	if s != m.fb.password {
		return fmt.Errorf("passwords do not match")
	}
	return nil
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

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("Email is required")
	}
	if !strings.Contains(s, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

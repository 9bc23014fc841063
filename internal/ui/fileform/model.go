package fileform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/theme"
)

// UploadedMsg is dispatched when the user submits the upload form.
// Uploads are metadata only; no file bytes leave the client.
type UploadedMsg struct {
	Filename string
	Filesize int64
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	filename string
	filesize string
}

// Model is the Bubble Tea model for the file upload form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new upload form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start initializes the form for a new upload.
func (m *Model) Start() tea.Cmd {
	m.fb.filename = ""
	m.fb.filesize = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the upload form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		filename := m.fb.filename
		size, _ := strconv.ParseInt(strings.TrimSpace(m.fb.filesize), 10, 64)
		m.form = nil
		return m, func() tea.Msg {
			return UploadedMsg{Filename: filename, Filesize: size}
		}
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the upload form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Upload File") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Filename").
				Placeholder("report.pdf").
				Value(&m.fb.filename).
				Validate(validateRequired("Filename")),
			huh.NewInput().
				Title("Size (bytes)").
				Placeholder("1024").
				Value(&m.fb.filesize).
				Validate(validateSize),
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

func validateSize(s string) error {
	size, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || size < 0 {
		return fmt.Errorf("size must be a non-negative number")
	}
	return nil
}

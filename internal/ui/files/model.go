package files

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/keys"
	"github.com/nhle/demodash/internal/model"
	"github.com/nhle/demodash/internal/render"
	"github.com/nhle/demodash/internal/theme"
)

// UploadRequestMsg asks the app to open the upload form.
type UploadRequestMsg struct{}

// FileItem wraps a sanitized file row so it can be used in a bubbles/list.
type FileItem struct {
	Row render.FileRow
}

// FilterValue returns the string used for fuzzy filtering.
func (i FileItem) FilterValue() string { return i.Row.Filename }

// itemDelegate implements list.ItemDelegate for rendering file lines.
type itemDelegate struct{}

func (d itemDelegate) Height() int  { return 1 }
func (d itemDelegate) Spacing() int { return 0 }

func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single file line: name, humanized size, upload age.
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fileItem, ok := item.(FileItem)
	if !ok {
		return
	}

	line := fmt.Sprintf(
		"%s  %s",
		fileItem.Row.Filename,
		theme.HelpStyle.Render(fileItem.Row.Size),
	)
	if fileItem.Row.Uploaded != "" {
		line += theme.HelpStyle.Render("  " + fileItem.Row.Uploaded)
	}

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
	} else {
		fmt.Fprint(w, theme.ListItemStyle.Render(line))
	}
}

// Model is the file listing view.
type Model struct {
	list       list.Model
	keys       *keys.KeyMap
	files      []model.File
	confirming bool
	notice     string
	width      int
	height     int
}

// New creates a new file listing model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, itemDelegate{}, width, height-2)
	l.Title = "Files"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		width:  width,
		height: height,
	}
}

// SetFiles replaces the displayed listing with a freshly fetched one.
func (m *Model) SetFiles(files []model.File) tea.Cmd {
	m.files = files
	m.confirming = false

	rows := render.FileRows(files, time.Now())
	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = FileItem{Row: row}
	}
	return m.list.SetItems(items)
}

// Update handles messages for the file listing view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.confirming {
		m.confirming = false
		if keyMsg.String() == "y" {
			// The server has no delete endpoint yet; the action is
			// offered in the UI but goes nowhere.
			m.notice = "File deletion is not supported by the server yet."
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.New):
		return m, func() tea.Msg { return UploadRequestMsg{} }

	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.list.Items()) == 0 {
			return m, nil
		}
		m.confirming = true
		m.notice = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// ConfirmPrompt returns the active delete confirmation prompt, or ""
// when no confirmation is pending.
func (m Model) ConfirmPrompt() string {
	if !m.confirming {
		return ""
	}
	if item, ok := m.list.SelectedItem().(FileItem); ok {
		return fmt.Sprintf("Delete %q? (y/n)", item.Row.Filename)
	}
	return "Delete this file? (y/n)"
}

// Notice returns the transient status notice, if any.
func (m Model) Notice() string {
	return m.notice
}

// View renders the file listing view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return theme.PlaceholderStyle.
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(render.NoFilesPlaceholder)
	}
	return m.list.View()
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

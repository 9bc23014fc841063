package todos

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/demodash/internal/keys"
	"github.com/nhle/demodash/internal/model"
	"github.com/nhle/demodash/internal/render"
	"github.com/nhle/demodash/internal/theme"
)

// ToggleMsg asks the app to set a todo's completed flag. Completed is
// the desired new value, not the current one; the view negates the
// row's state when emitting. Toggles are non-destructive and go out
// without confirmation.
type ToggleMsg struct {
	ID        int64
	Completed bool
}

// DeleteMsg asks the app to delete a todo. It is only emitted after the
// user confirms the in-view prompt.
type DeleteMsg struct {
	ID int64
}

// NewTodoMsg asks the app to open the todo creation form.
type NewTodoMsg struct{}

// Model is the todo list view.
type Model struct {
	list      list.Model
	keys      *keys.KeyMap
	todos     []model.Todo
	filter    render.TodoFilter
	confirmID *int64
	width     int
	height    int
}

// New creates a new todo list model.
func New(k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, itemDelegate{}, width, height-2)
	l.Title = "Todos"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		keys:   k,
		filter: render.FilterAll,
		width:  width,
		height: height,
	}
}

// SetTodos replaces the displayed collection with a freshly fetched one.
// Pending delete confirmations are dropped; the item may be gone.
func (m *Model) SetTodos(todos []model.Todo) tea.Cmd {
	m.todos = todos
	m.confirmID = nil
	return m.applyFilter()
}

// applyFilter rebuilds the visible list from the full collection and the
// active filter.
func (m *Model) applyFilter() tea.Cmd {
	filtered := render.FilterTodos(m.todos, m.filter)
	rows := render.TodoRows(filtered)

	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = TodoItem{Row: row}
	}
	return m.list.SetItems(items)
}

// Update handles messages for the todo list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// A pending delete confirmation captures the next keypress.
	if m.confirmID != nil {
		id := *m.confirmID
		m.confirmID = nil
		if keyMsg.String() == "y" {
			return m, func() tea.Msg { return DeleteMsg{ID: id} }
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.New):
		return m, func() tea.Msg { return NewTodoMsg{} }

	case key.Matches(keyMsg, m.keys.Filter):
		m.filter = m.filter.Next()
		return m, m.applyFilter()

	case key.Matches(keyMsg, m.keys.Toggle):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return ToggleMsg{ID: item.Row.ID, Completed: !item.Row.Completed}
		}

	case key.Matches(keyMsg, m.keys.Delete):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		id := item.Row.ID
		m.confirmID = &id
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// selectedItem returns the currently focused todo, if any.
func (m Model) selectedItem() (TodoItem, bool) {
	item, ok := m.list.SelectedItem().(TodoItem)
	return item, ok
}

// ConfirmPrompt returns the active delete confirmation prompt, or ""
// when no confirmation is pending.
func (m Model) ConfirmPrompt() string {
	if m.confirmID == nil {
		return ""
	}
	for _, t := range m.todos {
		if t.ID == *m.confirmID {
			return fmt.Sprintf("Delete %q? (y/n)", render.Sanitize(t.Title))
		}
	}
	return "Delete this todo? (y/n)"
}

// FilterSummary describes the active filter for the status bar.
func (m Model) FilterSummary() string {
	return "filter: " + m.filter.String()
}

// View renders the todo list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows the placeholder when the visible list is empty.
func (m Model) renderEmptyState() string {
	style := theme.PlaceholderStyle.
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center)

	if m.filter != render.FilterAll && len(m.todos) > 0 {
		return style.Render(
			fmt.Sprintf("No %s todos.\nPress f to change the filter.", m.filter),
		)
	}

	return style.Render(render.NoTodosPlaceholder)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

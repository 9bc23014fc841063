package todos

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/demodash/internal/render"
	"github.com/nhle/demodash/internal/theme"
)

// TodoItem wraps a sanitized todo row so it can be used in a bubbles/list.
type TodoItem struct {
	Row render.TodoRow
}

// FilterValue returns the string used for fuzzy filtering.
func (i TodoItem) FilterValue() string { return i.Row.Title }

// Title returns the todo title for the list.
func (i TodoItem) Title() string { return i.Row.Title }

// Description returns the todo description line.
func (i TodoItem) Description() string { return i.Row.Description }

// itemDelegate implements list.ItemDelegate for rendering todo lines.
type itemDelegate struct{}

// Height returns the number of lines each item takes.
func (d itemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d itemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single todo line.
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	todoItem, ok := item.(TodoItem)
	if !ok {
		return
	}

	prefix := "○"
	if todoItem.Row.Completed {
		prefix = "✓"
	}

	line := fmt.Sprintf("%s %s", prefix, todoItem.Row.Title)
	if todoItem.Row.Description != "" {
		line += theme.HelpStyle.Render(" - " + todoItem.Row.Description)
	}

	switch {
	case index == m.Index():
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
	case todoItem.Row.Completed:
		fmt.Fprint(w, theme.CompletedItemStyle.Render(line))
	default:
		fmt.Fprint(w, theme.ListItemStyle.Render(line))
	}
}

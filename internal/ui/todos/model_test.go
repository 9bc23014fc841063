package todos

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/demodash/internal/keys"
	"github.com/nhle/demodash/internal/model"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, todos []model.Todo) Model {
	t.Helper()
	m := New(keys.DefaultKeyMap(), 80, 24)
	m.SetTodos(todos)
	return m
}

func TestToggleEmitsFlippedValue(t *testing.T) {
	cases := []struct {
		name    string
		current bool
		want    bool
	}{
		{name: "active becomes completed", current: false, want: true},
		{name: "completed becomes active", current: true, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, []model.Todo{
				{ID: 5, Title: "write report", Completed: model.IntBool(tc.current)},
			})

			m, cmd := m.Update(keyPress('x'))
			if cmd == nil {
				t.Fatal("toggle key produced no command")
			}

			msg, ok := cmd().(ToggleMsg)
			if !ok {
				t.Fatalf("got %T, want ToggleMsg", cmd())
			}
			if msg.ID != 5 {
				t.Errorf("ID = %d, want 5", msg.ID)
			}
			if msg.Completed != tc.want {
				t.Errorf("Completed = %v, want %v (the new value, not the current one)",
					msg.Completed, tc.want)
			}
		})
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m := newTestModel(t, []model.Todo{{ID: 7, Title: "old task"}})

	m, cmd := m.Update(keyPress('d'))
	if cmd != nil {
		t.Fatal("delete key emitted a command before confirmation")
	}
	if m.ConfirmPrompt() == "" {
		t.Fatal("no confirmation prompt pending after delete key")
	}

	m, cmd = m.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("confirming produced no command")
	}
	msg, ok := cmd().(DeleteMsg)
	if !ok {
		t.Fatalf("got %T, want DeleteMsg", cmd())
	}
	if msg.ID != 7 {
		t.Errorf("ID = %d, want 7", msg.ID)
	}
}

func TestDeleteConfirmationCancelled(t *testing.T) {
	m := newTestModel(t, []model.Todo{{ID: 7, Title: "old task"}})

	m, _ = m.Update(keyPress('d'))
	m, cmd := m.Update(keyPress('n'))
	if cmd != nil {
		t.Error("cancelled confirmation still emitted a command")
	}
	if m.ConfirmPrompt() != "" {
		t.Error("confirmation still pending after cancel")
	}
}

package command

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestKnownCommandIsEmitted(t *testing.T) {
	m := New(80, 24)
	m = typeText(m, "todos")

	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("known command produced no command")
	}
	msg, ok := cmd().(CommandMsg)
	if !ok {
		t.Fatalf("got %T, want CommandMsg", cmd())
	}
	if string(msg) != "todos" {
		t.Errorf("CommandMsg = %q, want todos", msg)
	}
}

func TestAliasIsEmitted(t *testing.T) {
	m := New(80, 24)
	m = typeText(m, "sync")

	_, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatal("alias produced no command")
	}
	if msg := cmd().(CommandMsg); string(msg) != "sync" {
		t.Errorf("CommandMsg = %q, want sync", msg)
	}
}

func TestUnknownCommandRejectedInline(t *testing.T) {
	m := New(80, 24)
	m = typeText(m, "frobnicate")

	m, cmd := pressEnter(m)
	if cmd != nil {
		t.Error("unknown command still emitted")
	}
	if !strings.Contains(m.View(), "unknown command") {
		t.Error("no inline error shown for an unknown command")
	}
}

func TestTabCompletesPrefix(t *testing.T) {
	m := New(80, 24)
	m = typeText(m, "tod")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "todos" {
		t.Errorf("completed value = %q, want todos", got)
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	m := New(80, 24)
	if _, cmd := pressEnter(m); cmd != nil {
		t.Error("empty input emitted a command")
	}
}

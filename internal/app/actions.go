package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/demodash/internal/model"
	"github.com/nhle/demodash/internal/store"
)

type loginResultMsg struct {
	cred model.Credential
	err  error
}

type registerResultMsg struct {
	err error
}

type dashboardLoadedMsg struct {
	stats     model.Stats
	analytics model.Analytics
	err       error
}

type todosLoadedMsg struct {
	todos []model.Todo
	err   error
}

type messagesLoadedMsg struct {
	messages []model.Message
	err      error
}

type filesLoadedMsg struct {
	files []model.File
	err   error
}

type todoMutatedMsg struct {
	err error
}

type messageSentMsg struct {
	err error
}

type fileUploadedMsg struct {
	err error
}

type fragmentLoadedMsg struct {
	fragment string
	ok       bool
}

func (m *Model) doLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		cred, err := m.api.Login(context.Background(), username, password)
		return loginResultMsg{cred: cred, err: err}
	}
}

func (m *Model) doRegister(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		err := m.api.Register(context.Background(), username, email, password)
		return registerResultMsg{err: err}
	}
}

// loadDashboard fetches the personal stats and the site analytics in a
// single command; the view renders both together.
func (m *Model) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.api.Stats(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		analytics, err := m.api.Analytics(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{stats: stats, analytics: analytics}
	}
}

func (m *Model) loadTodos() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.api.ListTodos(context.Background())
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m *Model) loadMessages() tea.Cmd {
	return func() tea.Msg {
		messages, err := m.api.ListMessages(context.Background())
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

func (m *Model) loadFiles() tea.Cmd {
	return func() tea.Msg {
		files, err := m.api.ListFiles(context.Background())
		return filesLoadedMsg{files: files, err: err}
	}
}

// createTodo sends the mutation and reports completion. The local list
// is never updated from the request body; a successful mutation
// triggers a full re-fetch instead.
func (m *Model) createTodo(title, description string) tea.Cmd {
	return func() tea.Msg {
		err := m.api.CreateTodo(context.Background(), title, description)
		return todoMutatedMsg{err: err}
	}
}

// toggleTodo sets a todo's completed flag. completed is the value the
// item should end up with; the emitting view has already flipped it.
func (m *Model) toggleTodo(id int64, completed bool) tea.Cmd {
	return func() tea.Msg {
		err := m.api.UpdateTodo(context.Background(), id, completed)
		return todoMutatedMsg{err: err}
	}
}

func (m *Model) deleteTodo(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.api.DeleteTodo(context.Background(), id)
		return todoMutatedMsg{err: err}
	}
}

func (m *Model) sendMessage(text string) tea.Cmd {
	return func() tea.Msg {
		err := m.api.SendMessage(context.Background(), text)
		return messageSentMsg{err: err}
	}
}

func (m *Model) uploadFile(filename string, filesize int64) tea.Cmd {
	return func() tea.Msg {
		err := m.api.UploadFile(context.Background(), filename, filesize)
		return fileUploadedMsg{err: err}
	}
}

// loadFragment restores the persisted compare widget selection.
func (m *Model) loadFragment() tea.Cmd {
	return func() tea.Msg {
		fragment, ok, err := m.state.Get(
			context.Background(), store.StateKeyCompareFragment)
		if err != nil {
			m.logger.Warn("loading compare fragment", zap.Error(err))
			return fragmentLoadedMsg{}
		}
		return fragmentLoadedMsg{fragment: fragment, ok: ok}
	}
}

// saveFragment writes the compare selection through to local state.
// Persistence failures are logged and otherwise ignored; the in-memory
// selection is already applied.
func (m *Model) saveFragment(fragment string) tea.Cmd {
	return func() tea.Msg {
		err := m.state.Set(
			context.Background(), store.StateKeyCompareFragment, fragment)
		if err != nil {
			m.logger.Warn("saving compare fragment", zap.Error(err))
		}
		return nil
	}
}

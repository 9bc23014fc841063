package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/demodash/internal/api"
	"github.com/nhle/demodash/internal/credential"
	"github.com/nhle/demodash/internal/keys"
	"github.com/nhle/demodash/internal/store"
	appsync "github.com/nhle/demodash/internal/sync"
	"github.com/nhle/demodash/internal/ui"
	"github.com/nhle/demodash/internal/ui/chat"
	"github.com/nhle/demodash/internal/ui/command"
	"github.com/nhle/demodash/internal/ui/compareview"
	"github.com/nhle/demodash/internal/ui/dashboard"
	"github.com/nhle/demodash/internal/ui/fileform"
	"github.com/nhle/demodash/internal/ui/files"
	helpview "github.com/nhle/demodash/internal/ui/help"
	"github.com/nhle/demodash/internal/ui/login"
	"github.com/nhle/demodash/internal/ui/register"
	"github.com/nhle/demodash/internal/ui/todoform"
	"github.com/nhle/demodash/internal/ui/todos"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewRegister
	ViewDashboard
	ViewTodos
	ViewTodoCreate
	ViewChat
	ViewFiles
	ViewFileUpload
	ViewCompare
	ViewHelp
	ViewCommand
)

// requiresAuth reports whether a view is gated behind a stored
// credential. The compare view is the one content view that is not:
// it never touches the network.
func requiresAuth(v ViewState) bool {
	switch v {
	case ViewDashboard, ViewTodos, ViewTodoCreate,
		ViewChat, ViewFiles, ViewFileUpload:
		return true
	default:
		return false
	}
}

// Model is the root Bubble Tea model that manages view routing, the
// session gate, and dispatching mutations to the API.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	creds        *credential.Store
	api          *api.Client
	state        *store.StateStore
	logger       *zap.Logger
	keys         *keys.KeyMap
	poller       *appsync.Poller

	loginView     login.Model
	registerView  register.Model
	dashboardView dashboard.Model
	todosView     todos.Model
	todoFormView  todoform.Model
	chatView      chat.Model
	filesView     files.Model
	fileFormView  fileform.Model
	compareView   compareview.Model
	commandView   command.Model
	helpView      helpview.Model

	ready   bool
	initCmd tea.Cmd
}

// New creates the root application model. The session gate runs here,
// synchronously, before any command is scheduled: an absent credential
// lands on the login view with no fetch issued and no poller started.
func New(
	creds *credential.Store,
	client *api.Client,
	state *store.StateStore,
	logger *zap.Logger,
	chatPollInterval time.Duration,
) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	k := keys.DefaultKeyMap()

	m := Model{
		creds:         creds,
		api:           client,
		state:         state,
		logger:        logger,
		keys:          k,
		poller:        appsync.New(client, chatPollInterval),
		loginView:     login.New(80, 24),
		registerView:  register.New(80, 24),
		dashboardView: dashboard.New(80, 24),
		todosView:     todos.New(k, 80, 24),
		todoFormView:  todoform.New(80, 24),
		chatView:      chat.New(80, 24),
		filesView:     files.New(k, 80, 24),
		fileFormView:  fileform.New(80, 24),
		compareView:   compareview.New(k, 80, 24),
		commandView:   command.New(80, 24),
		helpView:      helpview.New(k, 80, 24),
	}

	if _, ok := creds.Get(); ok {
		m.currentView = ViewDashboard
		m.initCmd = m.loadDashboard()
	} else {
		m.currentView = ViewLogin
		m.initCmd = m.loginView.Start()
	}

	return m
}

// Init returns the initial commands: the gated entry view plus the
// stored compare fragment.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.loadFragment())
}

// navigate switches to the target view, running the session gate and
// starting or stopping the chat poller as needed. The gate check is
// synchronous: an unauthenticated visitor is redirected before any
// fetch or timer is scheduled.
func (m *Model) navigate(target ViewState) tea.Cmd {
	if requiresAuth(target) {
		if _, ok := m.creds.Get(); !ok {
			return m.toLogin("", "")
		}
	}

	if m.currentView == ViewChat && target != ViewChat {
		// Leaving the chat view is this client's page unload.
		m.poller.Stop()
	}

	m.previousView = m.currentView
	m.currentView = target

	switch target {
	case ViewLogin:
		return m.loginView.Start()
	case ViewRegister:
		return m.registerView.Start()
	case ViewDashboard:
		return m.loadDashboard()
	case ViewTodos:
		return m.loadTodos()
	case ViewTodoCreate:
		return m.todoFormView.Start()
	case ViewChat:
		return tea.Batch(
			m.chatView.Focus(),
			m.loadMessages(),
			m.poller.Start(),
		)
	case ViewFiles:
		return m.loadFiles()
	case ViewFileUpload:
		return m.fileFormView.Start()
	case ViewCommand:
		return m.commandView.Focus()
	}
	return nil
}

// toLogin clears the way back to the login view. notice and errMsg are
// both optional.
func (m *Model) toLogin(notice, errMsg string) tea.Cmd {
	m.poller.Stop()
	m.previousView = m.currentView
	m.currentView = ViewLogin
	if notice != "" {
		m.loginView.SetNotice(notice)
	}
	if errMsg != "" {
		m.loginView.SetError(errMsg)
	}
	return m.loginView.Start()
}

// handleAuthFailure implements the one recovery path for a rejected
// authenticated request: drop the credential, stop polling, return to
// login. The cycle's response is discarded; nothing is rendered from it.
func (m *Model) handleAuthFailure() tea.Cmd {
	if err := m.creds.Clear(); err != nil {
		m.logger.Warn("clearing credential", zap.Error(err))
	}
	return m.toLogin("", "Your session has ended. Please sign in again.")
}

// logout is the user-initiated variant of handleAuthFailure.
func (m *Model) logout() tea.Cmd {
	if err := m.creds.Clear(); err != nil {
		m.logger.Warn("clearing credential", zap.Error(err))
	}
	return m.toLogin("Signed out.", "")
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.loginView.SetSize(w, h)
		m.registerView.SetSize(w, h)
		m.dashboardView.SetSize(w, h)
		m.todosView.SetSize(w, h)
		m.todoFormView.SetSize(w, h)
		m.chatView.SetSize(w, h)
		m.filesView.SetSize(w, h)
		m.fileFormView.SetSize(w, h)
		m.compareView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		// Forward to the active view so huh forms can lay themselves out.
		return m.updateActiveView(msg)

	case login.SubmitMsg:
		return m, m.doLogin(msg.Username, msg.Password)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case register.SubmitMsg:
		return m, m.doRegister(msg.Username, msg.Email, msg.Password)

	case registerResultMsg:
		return m.handleRegisterResult(msg)

	case register.CancelMsg:
		cmd := m.navigate(ViewLogin)
		return m, cmd

	case dashboardLoadedMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			return m, nil
		}
		m.dashboardView.SetData(msg.stats, msg.analytics)
		return m, nil

	case todosLoadedMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			return m, nil
		}
		cmd := m.todosView.SetTodos(msg.todos)
		return m, cmd

	case messagesLoadedMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			return m, nil
		}
		m.chatView.SetMessages(msg.messages)
		return m, nil

	case filesLoadedMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			return m, nil
		}
		cmd := m.filesView.SetFiles(msg.files)
		return m, cmd

	case appsync.ChatResultMsg:
		return m.handleChatResult(msg)

	case todos.NewTodoMsg:
		cmd := m.navigate(ViewTodoCreate)
		return m, cmd

	case todos.ToggleMsg:
		return m, m.toggleTodo(msg.ID, msg.Completed)

	case todos.DeleteMsg:
		return m, m.deleteTodo(msg.ID)

	case todoform.CreatedMsg:
		m.currentView = ViewTodos
		return m, m.createTodo(msg.Title, msg.Description)

	case todoform.CancelMsg:
		m.currentView = ViewTodos
		return m, nil

	case todoMutatedMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			// Nothing was applied locally; the prior render stands.
			return m, nil
		}
		return m, m.loadTodos()

	case chat.SendMsg:
		return m, m.sendMessage(msg.Text)

	case messageSentMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			return m, nil
		}
		return m, m.loadMessages()

	case files.UploadRequestMsg:
		cmd := m.navigate(ViewFileUpload)
		return m, cmd

	case fileform.UploadedMsg:
		m.currentView = ViewFiles
		return m, m.uploadFile(msg.Filename, msg.Filesize)

	case fileform.CancelMsg:
		m.currentView = ViewFiles
		return m, nil

	case fileUploadedMsg:
		if msg.err != nil {
			if api.IsAuthError(msg.err) {
				cmd := m.handleAuthFailure()
				return m, cmd
			}
			return m, nil
		}
		return m, m.loadFiles()

	case compareview.FragmentChangedMsg:
		return m, m.saveFragment(msg.Fragment)

	case fragmentLoadedMsg:
		if msg.ok {
			m.compareView.Restore(msg.fragment)
		}
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		cmd := m.executeCommand(string(msg))
		return m, cmd

	case tea.KeyMsg:
		if handled, model, cmd := m.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work outside text-entry views.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.poller.Stop()
		return true, m, tea.Quit
	}

	switch m.currentView {
	case ViewLogin:
		if msg.String() == "ctrl+r" {
			cmd := m.navigate(ViewRegister)
			return true, m, cmd
		}
		return false, m, nil

	case ViewHelp:
		if msg.String() == "?" || msg.String() == "esc" {
			m.currentView = m.previousView
			return true, m, nil
		}
		return false, m, nil

	case ViewChat:
		// The input line owns the keyboard; only esc leaves.
		if msg.String() == "esc" {
			cmd := m.navigate(ViewDashboard)
			return true, m, cmd
		}
		return false, m, nil

	case ViewDashboard, ViewTodos, ViewFiles, ViewCompare:
		switch msg.String() {
		case "esc":
			if m.currentView != ViewDashboard {
				cmd := m.navigate(ViewDashboard)
				return true, m, cmd
			}
		case "q":
			m.poller.Stop()
			return true, m, tea.Quit
		case "?":
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return true, m, nil
		case ":":
			m.previousView = m.currentView
			m.currentView = ViewCommand
			cmd := m.commandView.Focus()
			return true, m, cmd
		case "r":
			return true, m, m.refreshCurrent()
		case "L":
			cmd := m.logout()
			return true, m, cmd
		case "1":
			cmd := m.navigate(ViewDashboard)
			return true, m, cmd
		case "2":
			cmd := m.navigate(ViewTodos)
			return true, m, cmd
		case "3":
			cmd := m.navigate(ViewChat)
			return true, m, cmd
		case "4":
			cmd := m.navigate(ViewFiles)
			return true, m, cmd
		case "5":
			cmd := m.navigate(ViewCompare)
			return true, m, cmd
		}
		return false, m, nil

	case ViewCommand:
		if msg.String() == "esc" {
			m.currentView = m.previousView
			return true, m, nil
		}
		return false, m, nil
	}

	return false, m, nil
}

// refreshCurrent re-fetches the active view's collection.
func (m *Model) refreshCurrent() tea.Cmd {
	switch m.currentView {
	case ViewDashboard:
		return m.loadDashboard()
	case ViewTodos:
		return m.loadTodos()
	case ViewChat:
		return m.loadMessages()
	case ViewFiles:
		return m.loadFiles()
	}
	return nil
}

// handleChatResult processes one poll cycle's outcome. A rejected
// credential redirects; a transport failure leaves the previous
// transcript in place and keeps listening.
func (m Model) handleChatResult(msg appsync.ChatResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if api.IsAuthError(msg.Err) {
			cmd := m.handleAuthFailure()
			return m, cmd
		}
		// Transport failure: already logged by the client.
		if m.poller.Running() {
			return m, m.poller.WaitForNextResult()
		}
		return m, nil
	}

	if m.currentView == ViewChat {
		m.chatView.SetMessages(msg.Messages)
	}

	if m.poller.Running() {
		return m, m.poller.WaitForNextResult()
	}
	return m, nil
}

// handleLoginResult stores the credential and enters the dashboard, or
// surfaces the rejection inline.
func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsServerError(msg.err) {
			m.loginView.SetError(msg.err.Error())
		}
		// Transport failures stay silent; the form simply resets.
		cmd := m.loginView.Start()
		return m, cmd
	}

	if err := m.creds.Set(msg.cred); err != nil {
		m.logger.Warn("storing credential", zap.Error(err))
		m.loginView.SetError("Could not store the session. Try again.")
		cmd := m.loginView.Start()
		return m, cmd
	}

	cmd := m.navigate(ViewDashboard)
	return m, cmd
}

// handleRegisterResult returns to login on success or surfaces the
// rejection inline.
func (m Model) handleRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsServerError(msg.err) {
			m.registerView.SetError(msg.err.Error())
		}
		cmd := m.registerView.Start()
		return m, cmd
	}
	cmd := m.toLogin("Account created. Sign in to continue.", "")
	return m, cmd
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case "refresh", "sync":
		return m.refreshCurrent()
	case "dashboard", "stats":
		return m.navigate(ViewDashboard)
	case "todos":
		return m.navigate(ViewTodos)
	case "chat":
		return m.navigate(ViewChat)
	case "files":
		return m.navigate(ViewFiles)
	case "compare":
		return m.navigate(ViewCompare)
	case "logout":
		return m.logout()
	case "help":
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil
	case "quit", "q":
		m.poller.Stop()
		return tea.Quit
	default:
		return nil
	}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewRegister:
		m.registerView, cmd = m.registerView.Update(msg)
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewTodos:
		m.todosView, cmd = m.todosView.Update(msg)
	case ViewTodoCreate:
		m.todoFormView, cmd = m.todoFormView.Update(msg)
	case ViewChat:
		m.chatView, cmd = m.chatView.Update(msg)
	case ViewFiles:
		m.filesView, cmd = m.filesView.Update(msg)
	case ViewFileUpload:
		m.fileFormView, cmd = m.fileFormView.Update(msg)
	case ViewCompare:
		m.compareView, cmd = m.compareView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Demo Dashboard", m.sessionLabel())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewRegister:
		return m.registerView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTodos:
		return m.todosView.View()
	case ViewTodoCreate:
		return m.todoFormView.View()
	case ViewChat:
		return m.chatView.View()
	case ViewFiles:
		return m.filesView.View()
	case ViewFileUpload:
		return m.fileFormView.View()
	case ViewCompare:
		return m.compareView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// sessionLabel describes the current session for the header.
func (m Model) sessionLabel() string {
	if cred, ok := m.creds.Get(); ok {
		return cred.Username
	}
	return "anonymous"
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewLogin:
		return "enter submit | ctrl+r register | ctrl+c quit"
	case ViewRegister:
		return "enter submit | esc back"
	case ViewTodos:
		if prompt := m.todosView.ConfirmPrompt(); prompt != "" {
			return prompt
		}
		return m.todosView.FilterSummary() +
			" | n new | x toggle | d delete | f filter | r refresh"
	case ViewTodoCreate, ViewFileUpload:
		return "enter submit | esc cancel"
	case ViewChat:
		return "enter send | pgup/pgdn scroll | esc back"
	case ViewFiles:
		if prompt := m.filesView.ConfirmPrompt(); prompt != "" {
			return prompt
		}
		if notice := m.filesView.Notice(); notice != "" {
			return notice
		}
		return "n upload | d delete | r refresh | esc back"
	case ViewCompare:
		return "t next task | l next language | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewHelp:
		return "? close help | esc back"
	default:
		return "1-5 views | r refresh | : command | ? help | L logout | q quit"
	}
}

// Package tui provides the terminal user interface for the phonebook.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/guilhermegouw/phonebook/internal/bridge"
	"github.com/guilhermegouw/phonebook/internal/debug"
	"github.com/guilhermegouw/phonebook/internal/pubsub"
	"github.com/guilhermegouw/phonebook/internal/tui/page/prompt"
	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("phonebook TUI requires an interactive terminal")

// Options configures the TUI.
type Options struct {
	Hub        *pubsub.Hub
	Window     string
	IsFirstRun bool
	// Follow limits status bar events to one contact when set.
	Follow string
}

// Model is the main TUI model.
type Model struct {
	page   *prompt.Model
	width  int
	height int
	ready  bool
}

// New creates a new TUI model.
func New(exec prompt.Executor, counter prompt.Counter, opts Options) *Model {
	return &Model{
		page: prompt.New(exec, counter, prompt.Options{
			Window:     opts.Window,
			IsFirstRun: opts.IsFirstRun,
		}),
	}
}

// Init initializes the TUI.
func (m *Model) Init() tea.Cmd {
	return m.page.Init()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		debug.Event("tui", "WindowSize", fmt.Sprintf("width=%d height=%d", msg.Width, msg.Height))
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.page.SetSize(m.width, m.height)
		return m, nil
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			debug.Event("tui", "quit", "ctrl+c")
			return m, tea.Quit
		}
	case bridge.ContactEventMsg:
		debug.Event("tui", "ContactEvent", msg.Summary())
	}

	_, cmd := m.page.Update(msg)
	return m, cmd
}

// View renders the TUI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = "phonebook"

	if !m.ready {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.page.View()
	view.Cursor = m.page.Cursor()
	return view
}

// Page returns the command page.
func (m *Model) Page() *prompt.Model {
	return m.page
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program and blocks until it exits.
func Run(ctx context.Context, exec prompt.Executor, counter prompt.Counter, opts Options) error {
	if !IsInteractive() {
		return ErrNotTerminal
	}

	styles.SetTheme(styles.NewDefaultTheme())

	model := New(exec, counter, opts)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// Forward contact events from the hub to the program.
	if opts.Hub != nil {
		tuiBridge := bridge.NewTUIBridge(opts.Hub.Contact, p, bridge.WithNameFilter(opts.Follow))
		tuiBridge.Start(ctx)
		defer tuiBridge.Stop()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

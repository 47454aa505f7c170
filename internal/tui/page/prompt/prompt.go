// Package prompt provides the command page of the phonebook TUI.
package prompt

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"

	"github.com/guilhermegouw/phonebook/internal/bridge"
	"github.com/guilhermegouw/phonebook/internal/command"
	"github.com/guilhermegouw/phonebook/internal/debug"
	"github.com/guilhermegouw/phonebook/internal/tui/components/welcome"
)

// Executor runs one input line.
type Executor interface {
	Execute(line string) command.Result
	Names() []string
}

// Counter reports the number of contacts.
type Counter interface {
	Len() int
}

// CopiedMsg reports the outcome of copying the last output.
type CopiedMsg struct {
	Err error
}

// CopyFunc writes text to the system clipboard.
type CopyFunc func(text string) error

// Model is the command page model.
type Model struct {
	exec       Executor
	counter    Counter
	copyFn     CopyFunc
	welcome    *welcome.Welcome
	transcript *Transcript
	input      *Input
	status     *StatusBar
	lastOutput string
	width      int
	height     int
}

// Options configures the page.
type Options struct {
	// Window describes the birthday window in the status bar.
	Window     string
	IsFirstRun bool
	// Copy replaces the system clipboard, mainly for tests.
	Copy CopyFunc
}

// New creates the command page.
func New(exec Executor, counter Counter, opts Options) *Model {
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &Model{
		exec:       exec,
		counter:    counter,
		copyFn:     copyFn,
		welcome:    welcome.New(opts.IsFirstRun),
		transcript: NewTranscript(NewMarkdownRenderer()),
		input:      NewInput(exec.Names()),
		status:     NewStatusBar(opts.Window),
	}
	m.status.SetContacts(counter.Len())
	return m
}

// Init initializes the page.
func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.PasteMsg:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case bridge.ContactEventMsg:
		m.status.SetLastEvent(msg.Summary())
		m.status.SetContacts(m.counter.Len())
		return m, nil
	case CopiedMsg:
		if msg.Err != nil {
			debug.Error("tui", msg.Err, "copying output")
			m.status.SetStatus(StatusError, "Copy failed")
		} else {
			m.status.SetStatus(StatusInfo, "Copied")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "ctrl+y":
		return m, m.copyLast()
	case "pgup":
		m.transcript.ScrollUp(m.transcriptHeight() / 2)
		return m, nil
	case "pgdown":
		m.transcript.ScrollDown(m.transcriptHeight() / 2)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (*Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Clear()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	res := m.exec.Execute(line)
	debug.Event("tui", "execute", fmt.Sprintf("failed=%v quit=%v", res.Failed, res.Quit))

	m.transcript.Append(Entry{
		Input:    strings.TrimSpace(line),
		Output:   res.Output,
		Failed:   res.Failed,
		Markdown: res.Markdown,
	})
	if res.Output != "" {
		m.lastOutput = res.Output
	}
	m.status.SetContacts(m.counter.Len())
	if res.Failed {
		m.status.SetStatus(StatusError, firstLine(res.Output))
	} else {
		m.status.SetStatus(StatusOK, "OK")
	}

	if res.Quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) copyLast() tea.Cmd {
	text := m.lastOutput
	if text == "" {
		m.status.SetStatus(StatusInfo, "Nothing to copy")
		return nil
	}
	copyFn := m.copyFn
	return func() tea.Msg {
		return CopiedMsg{Err: copyFn(text)}
	}
}

// LastOutput returns the most recent non-empty command output.
func (m *Model) LastOutput() string {
	return m.lastOutput
}

// Transcript returns the page transcript.
func (m *Model) Transcript() *Transcript {
	return m.transcript
}

// Status returns the page status bar.
func (m *Model) Status() *StatusBar {
	return m.status
}

// SetSize sets the page size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.input.SetWidth(width)
	m.status.SetWidth(width)
	m.transcript.SetSize(width, m.transcriptHeight())
	m.welcome.SetSize(width, m.transcriptHeight())
}

func (m *Model) transcriptHeight() int {
	h := m.height - inputHeight - 1 // status bar
	if h < 1 {
		return 1
	}
	return h
}

// View renders the page.
func (m *Model) View() string {
	var body string
	if m.transcript.Len() == 0 {
		body = m.welcome.View()
	} else {
		body = lipgloss.NewStyle().
			Height(m.transcriptHeight()).
			MaxHeight(m.transcriptHeight()).
			AlignVertical(lipgloss.Bottom).
			Render(m.transcript.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.input.View(),
		m.status.View(),
	)
}

// Cursor returns the cursor position on screen.
func (m *Model) Cursor() *tea.Cursor {
	c := m.input.Cursor()
	if c == nil {
		return nil
	}
	c.Y += m.transcriptHeight()
	return c
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

package prompt

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

// Status represents the outcome of the last action.
type Status int

const (
	StatusReady Status = iota
	StatusOK
	StatusError
	StatusInfo
)

// StatusBar shows the last outcome, the last contact event and the book size.
type StatusBar struct {
	status    Status
	message   string
	lastEvent string
	contacts  int
	window    string
	width     int
}

// NewStatusBar creates a new status bar.
func NewStatusBar(window string) *StatusBar {
	return &StatusBar{
		status: StatusReady,
		window: window,
	}
}

// SetStatus sets the outcome shown on the left.
func (s *StatusBar) SetStatus(status Status, message string) {
	s.status = status
	s.message = message
}

// SetLastEvent records the summary of the latest contact event.
func (s *StatusBar) SetLastEvent(summary string) {
	s.lastEvent = summary
}

// LastEvent returns the summary of the latest contact event.
func (s *StatusBar) LastEvent() string {
	return s.lastEvent
}

// SetContacts sets the number of contacts in the book.
func (s *StatusBar) SetContacts(n int) {
	s.contacts = n
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar on a single line.
func (s *StatusBar) View() string {
	t := styles.CurrentTheme()

	var left string
	switch s.status {
	case StatusReady:
		left = t.S().Success.Render("Ready")
	case StatusOK:
		left = t.S().Success.Render(s.message)
	case StatusError:
		left = t.S().Error.Render(s.message)
	case StatusInfo:
		left = t.S().Info.Render(s.message)
	}
	if s.lastEvent != "" {
		left += t.S().Muted.Render(" · " + s.lastEvent)
	}

	right := t.S().Muted.Render(fmt.Sprintf("%d contacts · %s · ctrl+y copy · ctrl+c quit", s.contacts, s.window))

	inner := s.width - 2 // horizontal padding
	if inner < 1 {
		inner = 1
	}
	rightWidth := lipgloss.Width(right)
	if rightWidth > inner/2 {
		right = ansi.Truncate(right, inner/2, "…")
		rightWidth = lipgloss.Width(right)
	}
	left = ansi.Truncate(left, inner-rightWidth-1, "…")

	gap := inner - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		MaxHeight(1).
		Padding(0, 1).
		Background(t.BgSubtle).
		Render(left + strings.Repeat(" ", gap) + right)
}

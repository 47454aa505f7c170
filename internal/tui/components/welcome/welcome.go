// Package welcome renders the banner shown above an empty transcript.
package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/guilhermegouw/phonebook/internal/tui/components/logo"
	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

// Welcome displays the greeting and a short hint.
type Welcome struct {
	width      int
	height     int
	isFirstRun bool
}

// New creates a new welcome banner.
func New(isFirstRun bool) *Welcome {
	return &Welcome{isFirstRun: isFirstRun}
}

// View renders the welcome banner centered in its area.
func (w *Welcome) View() string {
	t := styles.CurrentTheme()

	messages := []string{
		t.S().Text.Render("Welcome to the assistant bot!"),
		"",
		t.S().Muted.Render("Type help to list commands • close or exit to leave"),
	}
	if w.isFirstRun {
		messages = append(messages, "",
			t.S().Subtitle.Render("First run: settings live in phonebook config"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		logo.RenderWithTagline(w.width),
		"",
		lipgloss.JoinVertical(lipgloss.Center, messages...),
	)

	return lipgloss.Place(
		w.width, w.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// SetSize sets the banner size.
func (w *Welcome) SetSize(width, height int) {
	w.width = width
	w.height = height
}

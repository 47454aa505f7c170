// Package logo renders the phonebook wordmark.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

const wordmark = `
╔═╗╦ ╦╔═╗╔╗╔╔═╗╔╗ ╔═╗╔═╗╦╔═
╠═╝╠═╣║ ║║║║║╣ ╠╩╗║ ║║ ║╠╩╗
╩  ╩ ╩╚═╝╝╚╝╚═╝╚═╝╚═╝╚═╝╩ ╩
`

// Shown when the window is narrower than the wordmark.
const wordmarkSmall = `☎ phonebook`

// Render returns the wordmark with the current theme colors.
func Render() string {
	t := styles.CurrentTheme()
	return styles.ApplyForegroundGrad(strings.Trim(wordmark, "\n"), t.Primary, t.Secondary)
}

// RenderSmall returns the one-line version of the wordmark.
func RenderSmall() string {
	t := styles.CurrentTheme()
	return styles.ApplyForegroundGrad(wordmarkSmall, t.Primary, t.Secondary)
}

// RenderFor picks the wordmark that fits width.
func RenderFor(width int) string {
	if width > 0 && width < Width() {
		return RenderSmall()
	}
	return Render()
}

// RenderWithTagline returns the logo with a tagline.
func RenderWithTagline(width int) string {
	t := styles.CurrentTheme()
	tagline := t.S().Muted.Render("contacts and birthdays")
	return lipgloss.JoinVertical(lipgloss.Center, RenderFor(width), "", tagline)
}

// Width returns the width of the full logo.
func Width() int {
	return lipgloss.Width(strings.TrimSpace(wordmark))
}

// Height returns the height of the full logo.
func Height() int {
	return lipgloss.Height(strings.TrimSpace(wordmark))
}

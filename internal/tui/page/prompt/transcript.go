package prompt

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

// Entry is one command and its response.
type Entry struct {
	Input    string
	Output   string
	Failed   bool
	Markdown bool
}

// Transcript displays the command history, newest at the bottom.
type Transcript struct {
	entries  []Entry
	markdown *MarkdownRenderer
	width    int
	height   int
	offset   int // lines scrolled up from the bottom
}

// NewTranscript creates an empty transcript.
func NewTranscript(md *MarkdownRenderer) *Transcript {
	return &Transcript{markdown: md}
}

// Append adds an entry and scrolls to the bottom.
func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
	t.offset = 0
}

// Entries returns the recorded entries.
func (t *Transcript) Entries() []Entry {
	return t.entries
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// SetSize sets the component size.
func (t *Transcript) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// ScrollUp scrolls the transcript up by n lines.
func (t *Transcript) ScrollUp(n int) {
	t.offset += n
}

// ScrollDown scrolls the transcript down by n lines.
func (t *Transcript) ScrollDown(n int) {
	t.offset -= n
	if t.offset < 0 {
		t.offset = 0
	}
}

// View renders the visible tail of the transcript.
func (t *Transcript) View() string {
	lines := t.lines()

	if t.height <= 0 || len(lines) <= t.height {
		t.offset = 0
		return strings.Join(lines, "\n")
	}

	maxOffset := len(lines) - t.height
	if t.offset > maxOffset {
		t.offset = maxOffset
	}
	end := len(lines) - t.offset
	return strings.Join(lines[end-t.height:end], "\n")
}

func (t *Transcript) lines() []string {
	th := styles.CurrentTheme()

	var rendered []string
	for _, e := range t.entries {
		rendered = append(rendered, th.S().Prompt.Render("› ")+th.S().Text.Render(e.Input))
		if out := t.renderOutput(e); out != "" {
			rendered = append(rendered, out)
		}
		rendered = append(rendered, "")
	}

	var lines []string
	for _, block := range rendered {
		lines = append(lines, strings.Split(block, "\n")...)
	}
	return lines
}

func (t *Transcript) renderOutput(e Entry) string {
	if e.Output == "" {
		return ""
	}
	th := styles.CurrentTheme()

	if e.Markdown && t.markdown != nil {
		if out, err := t.markdown.Render(e.Output, t.width); err == nil {
			return strings.Trim(out, "\n")
		}
	}

	style := th.S().Text
	if e.Failed {
		style = th.S().Error
	}
	if t.width > 2 {
		style = style.Width(t.width - 2)
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(style.Render(e.Output))
}

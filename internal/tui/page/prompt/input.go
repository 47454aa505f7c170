package prompt

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/guilhermegouw/phonebook/internal/tui/styles"
)

// inputHeight is the rendered height of the input box, borders included.
const inputHeight = 3

// Input is the command line component.
type Input struct {
	textInput textinput.Model
	width     int
}

// NewInput creates a new input component.
func NewInput(suggestions []string) *Input {
	t := styles.CurrentTheme()

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Enter a command..."
	ti.CharLimit = 256
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions)

	s := textinput.DefaultStyles(t.IsDark)
	s.Focused.Prompt = t.S().Prompt
	s.Blurred.Prompt = t.S().Muted
	ti.SetStyles(s)
	ti.Focus()

	return &Input{textInput: ti}
}

// Init initializes the input.
func (i *Input) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input events.
func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	var cmd tea.Cmd
	i.textInput, cmd = i.textInput.Update(msg)
	return i, cmd
}

// View renders the input.
func (i *Input) View() string {
	t := styles.CurrentTheme()

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Width(i.width).
		Render(i.textInput.View())
}

// SetWidth sets the input width.
func (i *Input) SetWidth(width int) {
	i.width = width
	i.textInput.SetWidth(width - 6) // Account for border, padding and prompt
}

// Value returns the current input value.
func (i *Input) Value() string {
	return i.textInput.Value()
}

// SetValue sets the input value.
func (i *Input) SetValue(value string) {
	i.textInput.SetValue(value)
}

// Clear clears the input.
func (i *Input) Clear() {
	i.textInput.Reset()
}

// Cursor returns the cursor relative to the input box.
func (i *Input) Cursor() *tea.Cursor {
	c := i.textInput.Cursor()
	if c == nil {
		return nil
	}
	// One cell of border and one of padding on the left, one border row on top.
	c.X += 2
	c.Y++
	return c
}

// Package command maps lines typed at the prompt to address book operations.
//
// A Registry owns no state of its own beyond the address book it was built
// with; every front end (plain REPL or TUI) shares the same registry so both
// answer identically.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/guilhermegouw/phonebook/internal/book"
	"github.com/guilhermegouw/phonebook/internal/debug"
)

// Result is the outcome of executing one line.
type Result struct {
	// Output is the text to show the user. It may be empty.
	Output string
	// Markdown marks Output as markdown that a rich front end may render.
	Markdown bool
	// Quit asks the front end to end the session.
	Quit bool
	// Failed marks Output as an error message.
	Failed bool
}

// Command represents one prompt command.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	// MinArgs and MaxArgs bound the number of arguments after the name.
	MinArgs int
	MaxArgs int
	Handler func(args []string) Result
}

// Options configures a Registry.
type Options struct {
	// WindowDays is the default look-ahead of the birthdays command.
	WindowDays int
	// WindowMode selects the birthday window rule.
	WindowMode book.WindowMode
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Registry holds the registered commands.
type Registry struct {
	book     *book.AddressBook
	opts     Options
	commands map[string]*Command
	order    []*Command
}

// NewRegistry creates a registry with the default commands bound to ab.
func NewRegistry(ab *book.AddressBook, opts Options) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = book.DefaultWindowDays
	}
	if opts.WindowMode == "" {
		opts.WindowMode = book.WindowCalendar
	}

	r := &Registry{
		book:     ab,
		opts:     opts,
		commands: make(map[string]*Command),
	}
	r.registerDefaults()
	return r
}

// Register adds a command to the registry under its name and aliases.
func (r *Registry) Register(cmd Command) {
	c := &cmd
	r.commands[c.Name] = c
	for _, alias := range c.Aliases {
		r.commands[alias] = c
	}
	r.order = append(r.order, c)
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.order))
	for i, c := range r.order {
		out[i] = *c
	}
	return out
}

// Names returns every name and alias accepted by the registry.
func (r *Registry) Names() []string {
	var names []string
	for _, c := range r.order {
		names = append(names, c.Name)
		names = append(names, c.Aliases...)
	}
	return names
}

// Execute parses and runs a single input line.
func (r *Registry) Execute(line string) Result {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Result{}
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, ok := r.commands[name]
	if !ok {
		debug.Event("command", "unknown", fmt.Sprintf("name=%q", name))
		return failure("Unknown command")
	}

	if len(args) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(args) > cmd.MaxArgs) {
		debug.Event("command", "usage", fmt.Sprintf("name=%s args=%d", cmd.Name, len(args)))
		return failure("Invalid command usage: %s", cmd.Usage)
	}

	debug.Event("command", "run", fmt.Sprintf("name=%s args=%d", cmd.Name, len(args)))
	return cmd.Handler(args)
}

func success(format string, args ...any) Result {
	return Result{Output: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Result {
	return Result{Output: fmt.Sprintf(format, args...), Failed: true}
}

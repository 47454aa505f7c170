// Package repl runs the plain line-oriented prompt used when no terminal UI
// is available.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/guilhermegouw/phonebook/internal/command"
	"github.com/guilhermegouw/phonebook/internal/debug"
)

// DefaultPrompt is printed before every line read.
const DefaultPrompt = "Enter a command: "

// Executor runs one input line.
type Executor interface {
	Execute(line string) command.Result
}

// REPL reads commands from In and writes results to Out.
type REPL struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	// Greeting is written once before the first prompt when non-empty.
	Greeting string
}

// New creates a REPL over in and out with the default prompt.
func New(in io.Reader, out io.Writer) *REPL {
	return &REPL{
		In:       in,
		Out:      out,
		Prompt:   DefaultPrompt,
		Greeting: "Welcome to the assistant bot!",
	}
}

// Run reads lines until a command asks to quit, the input ends, or ctx is
// canceled. End of input is not an error.
func (r *REPL) Run(ctx context.Context, exec Executor) error {
	if r.Greeting != "" {
		if _, err := fmt.Fprintln(r.Out, r.Greeting); err != nil {
			return fmt.Errorf("writing greeting: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errc := r.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(r.Out, r.Prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				debug.Event("repl", "eof", "")
				return nil
			}
			line = l
		}

		res := exec.Execute(line)
		if res.Output != "" {
			if _, err := fmt.Fprintln(r.Out, strings.TrimRight(res.Output, "\n")); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
		if res.Quit {
			debug.Event("repl", "quit", "")
			return nil
		}
	}
}

// readLines scans In on its own goroutine so a blocked read cannot delay
// cancellation. errc receives the scan error before lines is closed.
func (r *REPL) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			errc <- err
			close(lines)
		}()

		scanner := bufio.NewScanner(r.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		err = scanner.Err()
	}()

	return lines, errc
}

// Package cmd provides the CLI commands for the phonebook.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/phonebook/internal/book"
	"github.com/guilhermegouw/phonebook/internal/command"
	"github.com/guilhermegouw/phonebook/internal/config"
	"github.com/guilhermegouw/phonebook/internal/debug"
	"github.com/guilhermegouw/phonebook/internal/pubsub"
	"github.com/guilhermegouw/phonebook/internal/repl"
	"github.com/guilhermegouw/phonebook/internal/tui"
)

// Swapped in tests.
var (
	loadConfig    = config.Load
	isInteractive = tui.IsInteractive
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phonebook",
		Short: "In-memory contact and birthday assistant",
		Long: `phonebook keeps contacts with phone numbers and birthdays for the
length of one session and answers commands typed at its prompt:

  add <name> <phone>          add a contact or another phone
  change <name> <new_phone>   replace a contact's first phone
  phone <name>                show a contact's phones
  all                         list every contact
  add-birthday <name> <date>  set a birthday (DD.MM.YYYY)
  show-birthday <name>        show a birthday
  birthdays [days]            birthdays coming up
  close, exit                 leave

Contacts are not saved between sessions.`,
		SilenceUsage: true,
		RunE:         runSession,
	}

	cmd.Flags().Bool("debug", false, "Enable debug logging to the data directory")
	cmd.Flags().Bool("plain", false, "Use the plain line prompt instead of the terminal UI")
	cmd.Flags().Int("window", 0, "Default look-ahead of the birthdays command, in days")
	cmd.Flags().String("window-mode", "", "Birthday window rule: calendar or tuple")
	cmd.Flags().String("follow", "", "Only show changes to this contact in the status bar")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// sessionSettings are the effective settings after flags override config.
type sessionSettings struct {
	window int
	mode   book.WindowMode
	plain  bool
	debug  bool
}

func resolveSettings(cmd *cobra.Command, cfg *config.Config) (sessionSettings, error) {
	s := sessionSettings{
		window: cfg.Window(),
		mode:   cfg.Mode(),
		plain:  cfg.Options != nil && cfg.Options.Plain,
		debug:  cfg.Options != nil && cfg.Options.Debug,
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		v, err := flags.GetBool("debug")
		if err != nil {
			return s, fmt.Errorf("getting debug flag: %w", err)
		}
		s.debug = v
	}
	if flags.Changed("plain") {
		v, err := flags.GetBool("plain")
		if err != nil {
			return s, fmt.Errorf("getting plain flag: %w", err)
		}
		s.plain = v
	}
	if flags.Changed("window") {
		v, err := flags.GetInt("window")
		if err != nil {
			return s, fmt.Errorf("getting window flag: %w", err)
		}
		if v < 1 {
			return s, fmt.Errorf("--window must be at least 1, got %d", v)
		}
		s.window = v
	}
	if flags.Changed("window-mode") {
		v, err := flags.GetString("window-mode")
		if err != nil {
			return s, fmt.Errorf("getting window-mode flag: %w", err)
		}
		mode, err := book.ParseWindowMode(v)
		if err != nil {
			return s, err
		}
		s.mode = mode
	}
	return s, nil
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to load config: %v\n", err)
		cfg = config.NewConfig()
	}

	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	firstRun := config.IsFirstRun(configPath())
	if firstRun {
		if saveErr := config.SaveToFile(config.Default(), configPath()); saveErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to write default config: %v\n", saveErr)
		}
	}

	if settings.debug {
		logPath := cfg.DebugLogPath()
		if debugErr := debug.Enable(logPath); debugErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to enable debug logging: %v\n", debugErr)
		} else {
			defer debug.Disable()
			fmt.Fprintf(cmd.ErrOrStderr(), "Debug: %s\n", logPath)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	hub := pubsub.NewHub()
	defer hub.Shutdown()
	if debug.IsEnabled() {
		logContactEvents(ctx, hub)
		defer func() { debug.Log("hub metrics:\n%s", hub.DebugString()) }()
	}

	ab := book.New(book.WithBroker(hub.Contact))
	registry := command.NewRegistry(ab, command.Options{
		WindowDays: settings.window,
		WindowMode: settings.mode,
	})

	if !settings.plain && isInteractive() {
		follow, _ := cmd.Flags().GetString("follow")
		window := fmt.Sprintf("%s, %d days", settings.mode, settings.window)
		if follow != "" {
			window += ", following " + follow
		}
		err := tui.Run(ctx, registry, ab, tui.Options{
			Hub:        hub,
			Window:     window,
			IsFirstRun: firstRun,
			Follow:     follow,
		})
		if !errors.Is(err, tui.ErrNotTerminal) {
			return err
		}
	}

	return runPlain(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), registry)
}

func runPlain(ctx context.Context, in io.Reader, out io.Writer, exec repl.Executor) error {
	err := repl.New(in, out).Run(ctx, exec)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// logContactEvents writes every contact event to the debug log until ctx ends
// or the hub shuts down.
func logContactEvents(ctx context.Context, hub *pubsub.Hub) {
	ch := hub.Contact.Subscribe(ctx)
	go func() {
		for ev := range ch {
			debug.Event("hub", string(ev.Payload.Type), fmt.Sprintf("name=%s detail=%q", ev.Payload.Name, ev.Payload.Detail))
		}
	}()
}

// Execute runs the root command. An interrupt cancels the session.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

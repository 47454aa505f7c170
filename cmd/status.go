package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/phonebook/internal/config"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the effective configuration",
		Long: `Display the phonebook status including:
  - Config file location
  - Birthday window and rule
  - Data directory and debug log location`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Fprintln(out, "phonebook status")
	fmt.Fprintln(out, strings.Repeat("─", 40))
	fmt.Fprintln(out)

	file := configPath()
	if config.IsFirstRun(file) {
		file += " (not created yet)"
	}
	fmt.Fprintf(out, "Config File:     %s\n", file)
	fmt.Fprintf(out, "Birthday Window: %d days\n", cfg.Window())
	fmt.Fprintf(out, "Window Mode:     %s\n", cfg.Mode())
	fmt.Fprintf(out, "Plain Prompt:    %v\n", cfg.Options.Plain)
	fmt.Fprintf(out, "Data Directory:  %s\n", cfg.DataDir())
	fmt.Fprintf(out, "Debug Log:       %s (enabled: %v)\n", cfg.DebugLogPath(), cfg.Options.Debug)

	return nil
}

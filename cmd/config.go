package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guilhermegouw/phonebook/internal/config"
)

// configPath returns the file the config commands read and write.
var configPath = config.GlobalConfigPath

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change phonebook settings",
		Long: `Read and change settings in the global phonebook config file.

Keys: birthday_window, window_mode, data_directory, debug, plain.

Examples:
  phonebook config get                     Show every setting in the file
  phonebook config get birthday_window     Show one setting
  phonebook config set window_mode tuple   Change one setting
  phonebook config path                    Print the config file location`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Show settings stored in the config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigGet,
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	keys := config.Keys()
	if len(args) == 1 {
		keys = args
	}

	out := cmd.OutOrStdout()
	for _, key := range keys {
		path, err := config.NormalizeKey(key)
		if err != nil {
			return err
		}
		value, ok, err := config.GetFileField(configPath(), path)
		if err != nil {
			return err
		}
		if !ok {
			value = "(not set)"
		}
		if len(args) == 1 {
			fmt.Fprintln(out, value)
		} else {
			fmt.Fprintf(out, "%s = %s\n", key, value)
		}
	}
	return nil
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting in the config file",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := config.NormalizeKey(args[0])
	if err != nil {
		return err
	}
	value, err := config.ParseValue(args[0], args[1])
	if err != nil {
		return err
	}
	if err := config.SetFileField(configPath(), path, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", args[0], value)
	return nil
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath())
		},
	}
}

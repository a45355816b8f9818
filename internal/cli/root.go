// Package cli provides the command-line interface for linefold.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linefold/internal/cli/commands"
	"linefold/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		// Skip flags (start with -)
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					return plugins.Execute(pluginPath, os.Args[2:])
				}
				// Plugin not found - fall through to Cobra which will show error
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Check if this was an unknown command that could be a plugin
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return 2
				}
			}
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linefold",
		Short: "Consolidate actor assignment scripts into numbered lines",
		Long: `linefold reformats loosely structured actor assignment script files
into a single consolidated, numbered plain-text file.

It recognizes:
  - Dashed monologue blocks (--- MONOLOGUE ---)
  - Equals-bordered ITEM monologue blocks
  - Plain numbered dialogue lines with continuations

Speaker labels, metadata, and instructional boilerplate are stripped;
bracketed direction tags like [apologetically] are kept verbatim.

The renumber command shifts line identifiers in a batch of script files
by a fixed offset, in place.

PLUGINS:
  linefold supports plugins for extended functionality. Plugins are
  standalone binaries named linefold-<command> that are automatically
  discovered and invoked.

  Plugin locations (searched in order):
    1. Same directory as the linefold binary
    2. ~/.linefold/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewConsolidateCommand())
	rootCmd.AddCommand(commands.NewRenumberCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linefold/pkg/config"
	"linefold/pkg/renumber"
	"linefold/pkg/script"
)

// RenumberOptions holds command-line options for the renumber command.
type RenumberOptions struct {
	Offset     int
	StartIndex int
	DryRun     bool
}

// NewRenumberCommand creates the renumber command.
func NewRenumberCommand() *cobra.Command {
	opts := &RenumberOptions{}

	cmd := &cobra.Command{
		Use:   "renumber <config-file>",
		Short: "Shift line identifiers in script files by a fixed offset",
		Long: `Rewrite every line beginning "<number><whitespace>" in the configured
script files, adding a fixed offset to the number. Files are modified in
place. Only files whose filename carries a numeric suffix at or above the
start index are touched.

The offset and start index come from the config's renumber section and can
be overridden with flags.

Example:
  linefold renumber config.yaml
  linefold renumber --offset 612 --start-index 8 config.yaml
  linefold renumber --dry-run config.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRenumber(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Offset to add (overrides config)")
	cmd.Flags().IntVar(&opts.StartIndex, "start-index", 0, "Minimum filename suffix (overrides config)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would change without writing")

	return cmd
}

func runRenumber(cmd *cobra.Command, args []string, opts *RenumberOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	runOpts := renumber.Options{
		Offset:     cfg.Renumber.Offset,
		StartIndex: cfg.Renumber.StartIndex,
	}
	if cmd.Flags().Changed("offset") {
		runOpts.Offset = opts.Offset
	}
	if cmd.Flags().Changed("start-index") {
		runOpts.StartIndex = opts.StartIndex
	}

	if runOpts.Offset == 0 {
		if err := config.ValidateRenumber(cfg); err != nil {
			return err
		}
	}

	files, err := script.ExpandGlobs(cfg.Sources)
	if err != nil {
		return fmt.Errorf("expanding sources: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no script files matched patterns: %v", cfg.Sources)
	}

	changes, err := renumber.Run(files, runOpts, opts.DryRun)
	if err != nil {
		return fmt.Errorf("renumbering failed: %w", err)
	}

	processed := 0
	for _, change := range changes {
		if change.Skipped {
			continue
		}
		processed++
		if opts.DryRun {
			fmt.Printf("Would renumber: %s (%d lines, offset %+d)\n",
				change.Path, change.LinesChanged, runOpts.Offset)
		} else {
			fmt.Printf("Processed: %s (%d lines)\n", change.Path, change.LinesChanged)
		}
	}

	fmt.Printf("\n%d of %d files at or above index %d\n",
		processed, len(changes), runOpts.StartIndex)

	return nil
}

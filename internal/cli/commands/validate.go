package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linefold/pkg/config"
	"linefold/pkg/script"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a linefold configuration file without running consolidation.

Checks:
  - YAML syntax
  - Required fields
  - Renumber settings
  - Webhook definitions
  - Source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Sources: %d pattern(s)\n", len(cfg.Sources))
	fmt.Printf("  Output:  %s\n", cfg.Output)

	if cfg.Renumber.Offset != 0 {
		fmt.Printf("  Renumber: offset %+d, start index %d\n",
			cfg.Renumber.Offset, cfg.Renumber.StartIndex)
	}
	if len(cfg.Cleaning.ExtraMarkers) > 0 {
		fmt.Printf("  Extra truncation markers: %d\n", len(cfg.Cleaning.ExtraMarkers))
	}
	if len(cfg.Webhooks) > 0 {
		fmt.Printf("  Webhooks: %d\n", len(cfg.Webhooks))
	}

	// Check if sources exist (warnings only)
	files, err := script.ExpandGlobs(cfg.Sources)
	if err != nil {
		fmt.Printf("\nWarning: Error expanding source patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Printf("\nWarning: No files match source patterns\n")
	} else {
		fmt.Printf("\nScript files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}

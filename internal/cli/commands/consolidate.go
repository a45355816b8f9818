package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"linefold/pkg/config"
	"linefold/pkg/extract"
	"linefold/pkg/output"
	"linefold/pkg/script"
	"linefold/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ConsolidateOptions holds command-line options for the consolidate command.
type ConsolidateOptions struct {
	Output  string
	Verbose bool
	Quiet   bool
	DryRun  bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewConsolidateCommand creates the consolidate command.
func NewConsolidateCommand() *cobra.Command {
	opts := &ConsolidateOptions{}

	cmd := &cobra.Command{
		Use:   "consolidate <config-file>",
		Short: "Consolidate script files into one numbered line file",
		Long: `Consolidate actor assignment script files into a single numbered
plain-text output file.

Monologue blocks are collapsed to one line each, plain numbered lines are
gathered with their continuations, speaker labels and metadata are removed,
entries are sorted by number, and duplicate numbers are dropped
(first occurrence wins).

Exit codes:
  0 - Clean run
  1 - Issues found (missing input files or dropped duplicates)
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsolidate(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Report format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-file details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report what would be written without writing")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_issues", "When to fire webhook (on_issues|always|never)")

	return cmd
}

func runConsolidate(cmd *cobra.Command, args []string, opts *ConsolidateOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	// Load configuration
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Expand source globs
	files, err := script.ExpandGlobs(cfg.Sources)
	if err != nil {
		return fmt.Errorf("expanding sources: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no script files matched patterns: %v", cfg.Sources)
	}

	// Run extraction; missing files are warned about and skipped
	extractor := extract.New(extract.WithExtraMarkers(cfg.Cleaning.ExtraMarkers))
	result, err := extractor.Run(files, os.Stderr)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Aggregate: sort, deduplicate, clean, format
	cons := output.Consolidate(result.Entries, extractor.Cleaner())

	if !opts.DryRun {
		if err := cons.WriteFile(cfg.Output); err != nil {
			return err
		}
	}

	// Create report
	end := time.Now()
	report := output.NewReport(result, cons, output.Metadata{
		ConfigFile: configPath,
		OutputPath: cfg.Output,
		DryRun:     opts.DryRun,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	})

	// Create formatter
	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	// Output report
	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report)

	// Set exit code based on results
	if report.HasIssues() {
		ExitCode = 1
	}

	return nil
}

func createFormatter(opts *ConsolidateOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ConsolidateOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasIssues()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ConsolidateOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnIssues
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger and issues.
func shouldFireWebhook(trigger config.WebhookTrigger, hasIssues bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnIssues:
		return hasIssues
	default:
		return hasIssues
	}
}

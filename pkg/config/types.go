// Package config provides configuration loading and validation for linefold.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources are glob patterns or paths for the input script files.
	Sources []string `yaml:"sources"`

	// Output is the consolidated output file path.
	Output string `yaml:"output"`

	// Cleaning tunes the final cleanup pass.
	Cleaning CleaningConfig `yaml:"cleaning,omitempty"`

	// Renumber configures the renumber command.
	Renumber RenumberConfig `yaml:"renumber,omitempty"`

	// Webhooks are optional endpoints notified after a run.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// CleaningConfig tunes the cleanup pass applied to each entry.
type CleaningConfig struct {
	// ExtraMarkers are additional truncation markers appended to the
	// built-in list. Text from the first marker occurrence onward is
	// discarded.
	ExtraMarkers []string `yaml:"extra_markers,omitempty"`
}

// RenumberConfig configures offset renumbering.
type RenumberConfig struct {
	// Offset is added to every line-leading identifier.
	Offset int `yaml:"offset"`

	// StartIndex is the minimum filename-suffix number a file must carry
	// to be renumbered.
	StartIndex int `yaml:"start_index"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnIssues fires only when the run had issues (default).
	WebhookTriggerOnIssues WebhookTrigger = "on_issues"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for run reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_issues" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

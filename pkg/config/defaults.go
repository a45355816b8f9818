package config

import (
	"os"
	"strings"
	"time"
)

// Default values for configuration.
const (
	DefaultOutput         = "all_lines_numbered.txt"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvSources = "LINEFOLD_SOURCES"
	EnvOutput  = "LINEFOLD_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources: []string{},
		Output:  DefaultOutput,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if sources := os.Getenv(EnvSources); sources != "" {
		c.Sources = c.Sources[:0]
		for _, s := range strings.Split(sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Sources = append(c.Sources, s)
			}
		}
	}
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
}

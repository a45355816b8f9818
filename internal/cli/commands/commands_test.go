package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"linefold/pkg/config"
)

func writeTestScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create script file: %v", err)
	}
	return path
}

func writeTestConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "linefold.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	return path
}

func TestNewConsolidateCommand(t *testing.T) {
	cmd := NewConsolidateCommand()

	if cmd.Use != "consolidate <config-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	flags := []string{"output", "verbose", "quiet", "dry-run", "webhook-url", "webhook-token", "webhook-trigger"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewRenumberCommand(t *testing.T) {
	cmd := NewRenumberCommand()

	if cmd.Use != "renumber <config-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	for _, flag := range []string{"offset", "start-index", "dry-run"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewInspectCommand(t *testing.T) {
	cmd := NewInspectCommand()

	if cmd.Use != "inspect <script-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	for _, flag := range []string{"output", "sample", "write-config"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	if cmd.Use != "validate <config-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if !strings.Contains(cmd.Long, "Validate") {
		t.Error("Missing description in Long")
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestRunConsolidate_Success(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestScript(t, tmpDir, "actor_assignments1.txt",
		"1 Hello there.\n2 Second line.\nand a continuation\n3 Third line.\n")
	outPath := filepath.Join(tmpDir, "all_lines_numbered.txt")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+filepath.Join(tmpDir, "actor_assignments*.txt")+`
output: `+outPath+`
`)

	ExitCode = 0
	cmd := NewConsolidateCommand()
	cmd.SetArgs([]string{"--quiet", configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	want := "1  Hello there.\n2  Second line. and a continuation\n3  Third line."
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestRunConsolidate_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestScript(t, tmpDir, "actor_assignments1.txt", "1 Hello.\n")
	outPath := filepath.Join(tmpDir, "out.txt")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+filepath.Join(tmpDir, "actor_assignments*.txt")+`
output: `+outPath+`
`)

	ExitCode = 0
	cmd := NewConsolidateCommand()
	cmd.SetArgs([]string{"--dry-run", "--quiet", configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Consolidate --dry-run failed: %v", err)
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("dry run should not write the output file")
	}
}

func TestRunConsolidate_MissingConfig(t *testing.T) {
	cmd := NewConsolidateCommand()
	cmd.SetArgs([]string{"/nonexistent/config.yaml"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing config")
	}
}

func TestRunConsolidate_MissingSourceSetsExitCode(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestScript(t, tmpDir, "actor_assignments1.txt", "1 Hello.\n")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+filepath.Join(tmpDir, "actor_assignments1.txt")+`
  - `+filepath.Join(tmpDir, "actor_assignments2.txt")+`
output: `+filepath.Join(tmpDir, "out.txt")+`
`)

	ExitCode = 0
	defer func() { ExitCode = 0 }()

	cmd := NewConsolidateCommand()
	cmd.SetArgs([]string{"--quiet", configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1 for missing source file", ExitCode)
	}
}

func TestRunRenumber(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := writeTestScript(t, tmpDir, "actor_assignments9.txt", "5 Hello world\n6 More text\n")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+scriptPath+`
output: `+filepath.Join(tmpDir, "out.txt")+`
renumber:
  offset: 612
  start_index: 8
`)

	cmd := NewRenumberCommand()
	cmd.SetArgs([]string{configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Renumber failed: %v", err)
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "617 Hello world\n618 More text\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestRunRenumber_NoOffset(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := writeTestScript(t, tmpDir, "actor_assignments9.txt", "5 Hello\n")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+scriptPath+`
output: `+filepath.Join(tmpDir, "out.txt")+`
`)

	cmd := NewRenumberCommand()
	cmd.SetArgs([]string{configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error when no offset is configured")
	}
}

func TestRunRenumber_FlagOverride(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := writeTestScript(t, tmpDir, "actor_assignments9.txt", "5 Hello\n")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+scriptPath+`
output: `+filepath.Join(tmpDir, "out.txt")+`
renumber:
  offset: 612
`)

	cmd := NewRenumberCommand()
	cmd.SetArgs([]string{"--offset", "100", configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Renumber failed: %v", err)
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "105 Hello\n" {
		t.Errorf("file = %q, want %q", string(data), "105 Hello\n")
	}
}

func TestRunInspect_MissingFile(t *testing.T) {
	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"/nonexistent/script.txt"})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRunInspect_Success(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := writeTestScript(t, tmpDir, "actor_assignments1.txt",
		"1 First entry\n2 Second entry\n3 Third entry\n")

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{scriptPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Errorf("Inspect failed: %v", err)
	}
}

func TestRunInspect_WriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := writeTestScript(t, tmpDir, "actor_assignments1.txt", "1 Entry\n")
	configPath := filepath.Join(tmpDir, "starter.yaml")

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"--write-config", configPath, scriptPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Inspect with write-config failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
	if !strings.Contains(string(data), "actor_assignments*.txt") {
		t.Error("starter config missing source pattern")
	}
}

func TestWriteStarterConfig_RefusesOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "existing.yaml")
	if err := os.WriteFile(configPath, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	err := writeStarterConfig("script.txt", configPath)
	if err == nil {
		t.Fatal("Expected error for existing config file")
	}

	data, _ := os.ReadFile(configPath)
	if string(data) != "keep me" {
		t.Error("existing config file was modified")
	}
}

func TestRunValidate_Success(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := writeTestScript(t, tmpDir, "actor_assignments1.txt", "1 Entry\n")
	configPath := writeTestConfig(t, tmpDir, `sources:
  - `+scriptPath+`
output: `+filepath.Join(tmpDir, "out.txt")+`
`)

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{configPath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeTestConfig(t, tmpDir, "output: only-output.txt\n")

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{configPath})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for config without sources")
	}
}

func TestCreateFormatter(t *testing.T) {
	tests := []struct {
		output  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			opts := &ConsolidateOptions{Output: tt.output}
			_, err := createFormatter(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("createFormatter(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestShouldFireWebhook(t *testing.T) {
	tests := []struct {
		trigger   config.WebhookTrigger
		hasIssues bool
		want      bool
	}{
		{config.WebhookTriggerAlways, false, true},
		{config.WebhookTriggerAlways, true, true},
		{config.WebhookTriggerNever, true, false},
		{config.WebhookTriggerOnIssues, false, false},
		{config.WebhookTriggerOnIssues, true, true},
		{"", true, true},
	}

	for _, tt := range tests {
		got := shouldFireWebhook(tt.trigger, tt.hasIssues)
		if got != tt.want {
			t.Errorf("shouldFireWebhook(%q, %v) = %v, want %v", tt.trigger, tt.hasIssues, got, tt.want)
		}
	}
}

func TestCollectWebhooks(t *testing.T) {
	cfg := &config.Config{
		Webhooks: []config.WebhookConfig{{Name: "file", URL: "https://example.com/a"}},
	}
	opts := &ConsolidateOptions{
		WebhookURL:     "https://example.com/b",
		WebhookTrigger: "always",
	}

	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) != 2 {
		t.Fatalf("len(webhooks) = %d, want 2", len(webhooks))
	}
	if webhooks[0].Name != "file" {
		t.Errorf("webhooks[0].Name = %q", webhooks[0].Name)
	}
	if webhooks[1].Name != "cli" || webhooks[1].Trigger != config.WebhookTriggerAlways {
		t.Errorf("CLI webhook = %+v", webhooks[1])
	}
}

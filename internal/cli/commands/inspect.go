package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"linefold/pkg/inspect"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output      string
	SampleSize  int
	WriteConfig string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <script-file>",
		Short: "Inspect the structure of a script file",
		Long: `Sample lines from a script file and report its structure: which block
formats appear (dashed monologues, ITEM monologues, basic scenario items,
plain numbered lines) and how the lines classify.

Optionally generates a starter config file with --write-config.

Example:
  linefold inspect lines/actor_assignments1.txt
  linefold inspect --sample 500 lines/actor_assignments1.txt
  linefold inspect --write-config linefold.yaml lines/actor_assignments1.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 200, "Number of lines to sample")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	scriptFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(scriptFile); os.IsNotExist(err) {
		return fmt.Errorf("script file not found: %s", scriptFile)
	}

	ins := inspect.New(inspect.WithSampleSize(opts.SampleSize))

	result, err := ins.InspectFile(ctx, scriptFile)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(scriptFile, opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputInspectJSON(result, scriptFile)
	default:
		return outputInspectText(result, scriptFile, opts)
	}
}

func outputInspectText(result *inspect.Result, scriptFile string, opts *InspectOptions) error {
	fmt.Println("=== Script Structure ===")
	fmt.Println()
	fmt.Printf("File: %s\n", scriptFile)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	if result.MaxNumber > 0 {
		fmt.Printf("Entry numbers seen: %d-%d\n", result.MinNumber, result.MaxNumber)
	}
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No known block formats detected.")
		fmt.Println()
		fmt.Println("Tip: The file may not contain numbered entries, or uses an")
		fmt.Println("uncommon layout. Check the first few lines manually.")
		return nil
	}

	rows := make([][]string, 0, len(result.Formats))
	for _, m := range result.Formats {
		rows = append(rows, []string{
			m.Format.Name,
			strconv.Itoa(m.Count),
			m.SampleLine,
		})
	}
	fmt.Println(renderTable(
		[]string{"Format", "Blocks", "Sample"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	))
	fmt.Println()

	kindRows := make([][]string, 0, len(result.Kinds))
	for _, kc := range result.Kinds {
		kindRows = append(kindRows, []string{kc.Kind.String(), strconv.Itoa(kc.Count)})
	}
	fmt.Println(renderTable(
		[]string{"Line kind", "Count"},
		kindRows,
		[]columnAlignment{alignLeft, alignRight},
	))

	if opts.WriteConfig != "" {
		fmt.Println()
		fmt.Printf("Starter config written to %s\n", opts.WriteConfig)
	}

	return nil
}

func outputInspectJSON(result *inspect.Result, scriptFile string) error {
	type formatOut struct {
		Name   string `json:"name"`
		Count  int    `json:"count"`
		Sample string `json:"sample"`
	}
	type kindOut struct {
		Kind  string `json:"kind"`
		Count int    `json:"count"`
	}

	out := struct {
		File         string      `json:"file"`
		SampledLines int         `json:"sampled_lines"`
		MinNumber    int         `json:"min_number"`
		MaxNumber    int         `json:"max_number"`
		Formats      []formatOut `json:"formats"`
		Kinds        []kindOut   `json:"kinds"`
	}{
		File:         scriptFile,
		SampledLines: result.SampledLines,
		MinNumber:    result.MinNumber,
		MaxNumber:    result.MaxNumber,
	}

	for _, m := range result.Formats {
		out.Formats = append(out.Formats, formatOut{
			Name:   m.Format.Name,
			Count:  m.Count,
			Sample: m.SampleLine,
		})
	}
	for _, kc := range result.Kinds {
		out.Kinds = append(out.Kinds, kindOut{Kind: kc.Kind.String(), Count: kc.Count})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig writes a minimal config pointing at files like the
// inspected one. Refuses to overwrite an existing file.
func writeStarterConfig(scriptFile, configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	dir := filepath.Dir(scriptFile)
	content := fmt.Sprintf(`# linefold starter configuration
sources:
  - %s
output: %s

# Uncomment to configure the renumber command:
# renumber:
#   offset: 612
#   start_index: 8
`,
		filepath.Join(dir, "actor_assignments*.txt"),
		filepath.Join(dir, "all_lines_numbered.txt"))

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

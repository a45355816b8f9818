package test

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"linefold/pkg/extract"
	"linefold/pkg/output"
)

var outputLineRe = regexp.MustCompile(`^(\d+)  (\S.*)$`)

// TestOutputProperties checks the structural guarantees of the consolidated
// output over the mixed fixtures: every line is "<number>  <text>", numbers
// strictly increase, and no entry text contains collapsed-away artifacts.
func TestOutputProperties(t *testing.T) {
	configPath, _ := writeFixtures(t)
	_, _, cons := runPipeline(t, configPath)

	if len(cons.Lines) == 0 {
		t.Fatal("No output lines produced")
	}

	prev := 0
	for i, line := range cons.Lines {
		m := outputLineRe.FindStringSubmatch(line)
		if m == nil {
			t.Errorf("Line %d does not match output format: %q", i, line)
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil {
			t.Errorf("Line %d has invalid number: %q", i, m[1])
			continue
		}
		if n <= prev {
			t.Errorf("Line %d: number %d not strictly greater than previous %d", i, n, prev)
		}
		prev = n

		text := m[2]
		if strings.Contains(text, "\n") {
			t.Errorf("Line %d contains embedded newline: %q", i, text)
		}
		if strings.Contains(text, "  ") {
			t.Errorf("Line %d contains uncollapsed whitespace: %q", i, text)
		}
		if strings.Contains(text, "MONOLOGUE") || strings.Contains(text, "SCENARIO:") {
			t.Errorf("Line %d leaked structural text: %q", i, text)
		}
	}
}

// TestOutputProperties_NoSpeakerLabels verifies cleanup strips speaker
// labels and role prefixes from every surviving entry.
func TestOutputProperties_NoSpeakerLabels(t *testing.T) {
	dir := t.TempDir()
	content := "1 Character 1: First line\n2 Agent: B1: Second line\n3 Third line\n"
	scriptPath := filepath.Join(dir, "actor_assignments1.txt")
	if err := os.WriteFile(scriptPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	extractor := extract.New()
	result, err := extractor.Run([]string{scriptPath}, io.Discard)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}

	cons := output.Consolidate(result.Entries, extractor.Cleaner())
	for _, line := range cons.Lines {
		if strings.Contains(line, "Character 1:") {
			t.Errorf("Speaker label leaked into output: %q", line)
		}
		if strings.Contains(line, "Agent:") {
			t.Errorf("Role prefix leaked into output: %q", line)
		}
	}
}

// getProjectRoot returns the project root directory based on this test file's location.
func getProjectRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filepath.Dir(filename))
}

// TestNoSkippedTests ensures no test files contain t.Skip() calls.
// Skipped tests hide failures - tests should either pass or fail, never skip.
func TestNoSkippedTests(t *testing.T) {
	forbiddenPatterns := []string{
		"t.Skip(",
		"t.SkipNow(",
		"testing.Short()",
	}

	projectRoot := getProjectRoot()
	testFiles := []string{}

	err := filepath.Walk(projectRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(path, "_test.go") && !strings.Contains(path, "quality_test.go") {
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}

	if len(testFiles) == 0 {
		t.Fatal("No test files found - something is wrong with test discovery")
	}

	violations := []string{}

	for _, testFile := range testFiles {
		f, err := os.Open(testFile)
		if err != nil {
			t.Fatalf("Failed to open %s: %v", testFile, err)
		}

		scanner := bufio.NewScanner(f)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()

			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "//") {
				continue
			}

			for _, pattern := range forbiddenPatterns {
				if strings.Contains(line, pattern) {
					violations = append(violations,
						testFile+":"+strconv.Itoa(lineNum)+": contains forbidden pattern '"+pattern+"'")
				}
			}
		}
		f.Close()

		if err := scanner.Err(); err != nil {
			t.Fatalf("Error scanning %s: %v", testFile, err)
		}
	}

	if len(violations) > 0 {
		t.Errorf("Found %d test skip violation(s):", len(violations))
		for _, v := range violations {
			t.Errorf("  %s", v)
		}
	}
}

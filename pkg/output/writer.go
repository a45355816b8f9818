package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"linefold/pkg/extract"
)

// Consolidation is the aggregated, cleaned body of the output file.
type Consolidation struct {
	// Lines are the formatted output lines, "<number>  <text>".
	Lines []string

	// DuplicatesDropped counts entries dropped for a repeated number.
	DuplicatesDropped int

	// EmptyDropped counts entries omitted because cleanup left no text.
	EmptyDropped int
}

// Consolidate sorts entries by number (stable, so first-collected wins among
// duplicates), deduplicates, cleans each surviving entry, and formats the
// output lines. Deduplication happens before cleanup: an entry emptied by
// cleanup does not yield its number to a later duplicate.
func Consolidate(entries []extract.Entry, cleaner *extract.Cleaner) *Consolidation {
	sorted := make([]extract.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	cons := &Consolidation{}
	seen := make(map[int]bool, len(sorted))

	for _, e := range sorted {
		if seen[e.Number] {
			cons.DuplicatesDropped++
			continue
		}
		seen[e.Number] = true

		text := cleaner.Clean(e.Text)
		if text == "" {
			cons.EmptyDropped++
			continue
		}

		cons.Lines = append(cons.Lines, fmt.Sprintf("%d  %s", e.Number, text))
	}

	return cons
}

// Content returns the full output file content: lines joined by single
// newlines, no trailing newline.
func (c *Consolidation) Content() string {
	return strings.Join(c.Lines, "\n")
}

// WriteFile writes the consolidated content, replacing any previous file.
func (c *Consolidation) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(c.Content()), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", path, err)
	}
	return nil
}

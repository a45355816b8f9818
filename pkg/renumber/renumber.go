// Package renumber shifts the line identifiers in a batch of script files
// by a fixed offset, in place.
package renumber

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// lineNumRe matches a line-leading identifier and the single whitespace
// character after it. The whitespace may be the line's own terminator
// (a bare number line) and is reinserted unchanged.
var lineNumRe = regexp.MustCompile(`(?m)^(\d+)(\s)`)

// Options controls a renumbering run.
type Options struct {
	// Offset is added to every line identifier.
	Offset int

	// StartIndex is the minimum filename-suffix number; files with a
	// smaller suffix (or none) are left untouched.
	StartIndex int
}

// Change describes what happened to one candidate file.
type Change struct {
	// Path is the file considered.
	Path string

	// Index is the numeric suffix parsed from the filename, -1 if none.
	Index int

	// LinesChanged is the number of identifiers rewritten.
	LinesChanged int

	// Skipped is true when the file was below the start index or had no
	// numeric suffix.
	Skipped bool
}

// FileIndex extracts the numeric suffix from a filename, the trailing
// digits of the base name before the extension. Returns false when the
// name carries no suffix.
func FileIndex(path string) (int, bool) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	end := len(base)
	start := end
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0, false
	}

	idx, err := strconv.Atoi(base[start:end])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// Content rewrites every line-leading identifier in content by offset and
// returns the new content and the number of rewritten lines. The rest of
// each line, including the whitespace after the identifier, is preserved.
func Content(content string, offset int) (string, int) {
	changed := 0
	out := lineNumRe.ReplaceAllStringFunc(content, func(m string) string {
		// The trailing whitespace character is always a single byte.
		ws := m[len(m)-1:]
		n, err := strconv.Atoi(m[:len(m)-1])
		if err != nil {
			return m
		}
		changed++
		return strconv.Itoa(n+offset) + ws
	})
	return out, changed
}

// File rewrites one file in place. With dryRun set, the file is read and
// counted but not written.
func File(path string, offset int, dryRun bool) (int, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	content, changed := Content(string(data), offset)
	if dryRun || changed == 0 {
		return changed, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	return changed, nil
}

// Run applies the offset to every file whose filename suffix is at or above
// the start index. Files are processed in the given (filename-sorted) order.
func Run(paths []string, opts Options, dryRun bool) ([]Change, error) {
	var changes []Change

	for _, path := range paths {
		change := Change{Path: path, Index: -1}

		idx, ok := FileIndex(path)
		if ok {
			change.Index = idx
		}
		if !ok || idx < opts.StartIndex {
			change.Skipped = true
			changes = append(changes, change)
			continue
		}

		changed, err := File(path, opts.Offset, dryRun)
		if err != nil {
			return changes, err
		}
		change.LinesChanged = changed
		changes = append(changes, change)
	}

	return changes, nil
}

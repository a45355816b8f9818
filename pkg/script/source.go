package script

import (
	"fmt"
	"os"
	"strings"
)

// NormalizeNewlines unifies Windows and old-Mac line endings to "\n".
func NormalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

// ReadFile reads a script file and returns its content with normalized
// line endings.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", fmt.Errorf("reading script file %s: %w", path, err)
	}
	return NormalizeNewlines(string(data)), nil
}

// ReadLines reads a script file and returns its classified lines.
func ReadLines(path string) ([]Line, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ClassifyAll(content), nil
}

// Exists reports whether a path exists as a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

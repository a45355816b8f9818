package extract

import (
	"strings"

	"linefold/pkg/script"
)

// collectNumbered scans the lines left over after monologue extraction and
// assembles entries from plain numbered lines.
//
// It is a two-state machine: scanning-for-header and accumulating-body.
// A numbered line opens an entry; plain text lines are appended to it,
// trimmed and joined by single spaces. Blank lines, structural noise, and
// hard breaks (another speaker, an item header, an instruction) are consumed
// and terminate the entry. A new numbered line terminates the entry without
// being consumed, so it opens the next one.
func collectNumbered(lines []script.Line, consumed []bool) []Entry {
	var entries []Entry

	i := 0
	for i < len(lines) {
		if consumed[i] || lines[i].Kind != script.KindNumbered {
			i++
			continue
		}

		number := lines[i].Number
		parts := []string{lines[i].Rest}
		i++

		for i < len(lines) {
			if consumed[i] {
				// A removed monologue span reads as a section break.
				i++
				break
			}
			next := lines[i]
			if next.Kind == script.KindNumbered {
				break
			}
			if next.Kind != script.KindText {
				i++
				break
			}
			parts = append(parts, strings.TrimSpace(next.Raw))
			i++
		}

		text := strings.Join(parts, " ")
		if strings.TrimSpace(text) != "" {
			entries = append(entries, Entry{Number: number, Text: text})
		}
	}

	return entries
}

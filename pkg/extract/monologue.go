package extract

import (
	"strings"

	"linefold/pkg/script"
)

// longBorderLen is the minimum run of "=" characters that opens an
// equals-bordered ITEM block, as opposed to the shorter rule under a
// scenario marker.
const longBorderLen = 10

// extractMonologues runs the three monologue recognizers over the classified
// lines of one file. It returns the extracted entries and a parallel slice
// marking the line ranges each match consumed; consumed lines are excluded
// from regular-line collection.
func extractMonologues(lines []script.Line) ([]Entry, []bool) {
	consumed := make([]bool, len(lines))
	var entries []Entry

	entries = append(entries, matchDashedBlocks(lines, consumed)...)
	entries = append(entries, matchItemBlocks(lines, consumed)...)

	seen := make(map[int]bool, len(entries))
	for _, e := range entries {
		seen[e.Number] = true
	}

	// Fallback: standalone scenario markers that neither structural
	// variant claimed. Never introduces a duplicate number.
	for _, e := range matchBareScenarios(lines, consumed) {
		if seen[e.Number] {
			continue
		}
		seen[e.Number] = true
		entries = append(entries, e)
	}

	return entries, consumed
}

// matchDashedBlocks recognizes the dashed-header variant:
//
//	--- MONOLOGUE ... ---
//	<optional single metadata line>
//	<number> SCENARIO: description
//	====
//	<body lines>
func matchDashedBlocks(lines []script.Line, consumed []bool) []Entry {
	var entries []Entry

	for i := 0; i < len(lines); i++ {
		if consumed[i] || lines[i].Kind != script.KindDashedHeader {
			continue
		}
		if !strings.Contains(lines[i].Raw, "MONOLOGUE") {
			continue
		}

		j := skipBlanks(lines, i+1)

		// Tolerate one metadata line between header and marker.
		if j < len(lines) && lines[j].Kind != script.KindScenarioMarker && !startsWithDigit(lines[j].Raw) {
			j = skipBlanks(lines, j+1)
		}

		if j >= len(lines) || lines[j].Kind != script.KindScenarioMarker {
			continue
		}
		number := lines[j].Number

		j++
		if j >= len(lines) || lines[j].Kind != script.KindBorder {
			continue
		}

		body, end := gatherBody(lines, j+1)
		markConsumed(consumed, i, end)
		entries = append(entries, Entry{Number: number, Text: body})
		i = end - 1
	}

	return entries
}

// matchItemBlocks recognizes the equals-bordered variant:
//
//	============
//	ITEM <number> - MONOLOGUE ...
//	Source: ...
//	============
//	<optional metadata lines>
//	<n> SCENARIO: description
//	====
//	<body lines>
//
// The entry number comes from the ITEM header, not from the marker.
func matchItemBlocks(lines []script.Line, consumed []bool) []Entry {
	var entries []Entry

	for i := 0; i+3 < len(lines); i++ {
		if consumed[i] || !isLongBorder(lines[i]) {
			continue
		}
		header := lines[i+1]
		if header.Kind != script.KindItemHeader || !strings.Contains(header.Raw, "MONOLOGUE") {
			continue
		}
		if lines[i+2].Kind != script.KindSourceMeta || !isLongBorder(lines[i+3]) {
			continue
		}

		// Skip metadata lines until the scenario marker.
		j := i + 4
		for j < len(lines) && lines[j].Kind != script.KindScenarioMarker {
			if lines[j].Kind == script.KindDashedHeader || isItemBlockStart(lines, j) {
				j = -1
				break
			}
			j++
		}
		if j < 0 || j >= len(lines) {
			continue
		}

		j++
		if j >= len(lines) || lines[j].Kind != script.KindBorder {
			continue
		}

		body, end := gatherBody(lines, j+1)
		markConsumed(consumed, i, end)
		entries = append(entries, Entry{Number: header.Number, Text: body})
		i = end - 1
	}

	return entries
}

// matchBareScenarios catches "<number> SCENARIO:" markers followed by a
// border that no structural variant consumed.
func matchBareScenarios(lines []script.Line, consumed []bool) []Entry {
	var entries []Entry

	for i := 0; i+1 < len(lines); i++ {
		if consumed[i] || lines[i].Kind != script.KindScenarioMarker {
			continue
		}
		if lines[i+1].Kind != script.KindBorder {
			continue
		}

		body, end := gatherBody(lines, i+2)
		number := lines[i].Number
		markConsumed(consumed, i, end)
		entries = append(entries, Entry{Number: number, Text: body})
		i = end - 1
	}

	return entries
}

// gatherBody collects body lines starting at index start until a block
// boundary: the next dashed header, a blank line followed by a numbered
// entry, the start of a new ITEM block, or end of input. It returns the
// whitespace-collapsed body and the index one past the last consumed line.
func gatherBody(lines []script.Line, start int) (string, int) {
	var parts []string
	i := start

	for i < len(lines) {
		ln := lines[i]
		if ln.Kind == script.KindDashedHeader || isItemBlockStart(lines, i) {
			break
		}
		if ln.Kind == script.KindBlank && i+1 < len(lines) && numberLed(lines[i+1]) {
			i++ // the blank belongs to the block
			break
		}
		parts = append(parts, ln.Raw)
		i++
	}

	// Collapse all whitespace runs, including embedded newlines.
	body := strings.Join(strings.Fields(strings.Join(parts, "\n")), " ")
	return body, i
}

func isItemBlockStart(lines []script.Line, i int) bool {
	return isLongBorder(lines[i]) && i+1 < len(lines) && lines[i+1].Kind == script.KindItemHeader
}

func isLongBorder(ln script.Line) bool {
	return ln.Kind == script.KindBorder && strings.Count(ln.Raw, "=") >= longBorderLen
}

func skipBlanks(lines []script.Line, i int) int {
	for i < len(lines) && lines[i].Kind == script.KindBlank {
		i++
	}
	return i
}

// numberLed reports whether the line starts with an identifier at column
// zero. After a blank line this signals a new entry or marker, ending the
// current block body.
func numberLed(ln script.Line) bool {
	return ln.Raw != "" && ln.Raw[0] >= '0' && ln.Raw[0] <= '9'
}

func startsWithDigit(s string) bool {
	t := strings.TrimSpace(s)
	return t != "" && t[0] >= '0' && t[0] <= '9'
}

func markConsumed(consumed []bool, from, to int) {
	for i := from; i < to && i < len(consumed); i++ {
		consumed[i] = true
	}
}

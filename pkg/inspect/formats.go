package inspect

import (
	"strings"

	"linefold/pkg/script"
)

// BlockFormat is a known script block format to detect.
type BlockFormat struct {
	// Name is a human-readable format name.
	Name string

	// Description explains what the format looks like.
	Description string

	// Matches reports whether the line at index i starts a block of this
	// format.
	Matches func(lines []script.Line, i int) bool
}

// DefaultFormats returns the built-in block formats to detect, ordered by
// specificity.
func DefaultFormats() []*BlockFormat {
	return []*BlockFormat{
		{
			Name:        "dashed monologue",
			Description: `"--- MONOLOGUE ---" header with a scenario marker and bordered body`,
			Matches: func(lines []script.Line, i int) bool {
				return lines[i].Kind == script.KindDashedHeader &&
					strings.Contains(lines[i].Raw, "MONOLOGUE")
			},
		},
		{
			Name:        "item monologue",
			Description: `"ITEM N - MONOLOGUE" header between "=" borders`,
			Matches: func(lines []script.Line, i int) bool {
				return lines[i].Kind == script.KindItemHeader &&
					strings.Contains(lines[i].Raw, "MONOLOGUE")
			},
		},
		{
			Name:        "basic scenario item",
			Description: `"ITEM N - BASIC SCENARIO" header with a single-line body`,
			Matches: func(lines []script.Line, i int) bool {
				return lines[i].Kind == script.KindItemHeader &&
					strings.Contains(lines[i].Raw, "BASIC SCENARIO")
			},
		},
		{
			Name:        "plain numbered line",
			Description: `"<number> <text>" dialogue line, no surrounding block`,
			Matches: func(lines []script.Line, i int) bool {
				return lines[i].Kind == script.KindNumbered
			},
		},
	}
}

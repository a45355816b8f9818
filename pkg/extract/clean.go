package extract

import (
	"regexp"
	"strings"
)

var (
	characterLabelRe = regexp.MustCompile(`Character\s*\d+:\s*`)
	roleCodeRe       = regexp.MustCompile(`[A-Z][A-Za-z\s]+:\s*[A-Z]?\d+:\s*`)
	rolePrefixRe     = regexp.MustCompile(`^[A-Z][A-Za-z\s]+:\s*`)
	equalsRunRe      = regexp.MustCompile(`\s*={5,}\s*`)
	dashRunRe        = regexp.MustCompile(`\s*-{5,}\s*`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// defaultMarkers are the metadata markers that truncate an entry's text.
// Everything from the first marker occurrence onward is discarded.
var defaultMarkers = []string{
	"ITEMS ",
	"ITEM ",
	"You are B;",
	"You are A;",
	"You are Character",
	"You are playing a customer service agent",
}

// Cleaner applies the ordered cleanup rules to entry text. Bracketed
// direction tags such as "[apologetically]" pass through untouched.
type Cleaner struct {
	markers []string
}

// NewCleaner creates a Cleaner with the built-in truncation markers plus
// any extra markers from configuration.
func NewCleaner(extra ...string) *Cleaner {
	markers := make([]string, 0, len(defaultMarkers)+len(extra))
	markers = append(markers, defaultMarkers...)
	markers = append(markers, extra...)
	return &Cleaner{markers: markers}
}

// Clean applies the cleanup rules in order:
//
//  1. remove "Character N:" labels anywhere
//  2. remove "Role Name: X2:" coded labels anywhere
//  3. remove a "Role Name:" prefix at the start only
//  4. truncate at the first metadata marker
//  5. collapse leftover runs of 5+ "=" or "-" characters
//  6. collapse whitespace runs and trim
//
// An empty result means the entry should be omitted.
func (c *Cleaner) Clean(text string) string {
	text = characterLabelRe.ReplaceAllString(text, "")
	text = roleCodeRe.ReplaceAllString(text, "")
	text = rolePrefixRe.ReplaceAllString(text, "")

	if cut := c.markerIndex(text); cut >= 0 {
		text = text[:cut]
	}

	text = equalsRunRe.ReplaceAllString(text, " ")
	text = dashRunRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// markerIndex returns the earliest index of any truncation marker,
// or -1 when no marker occurs.
func (c *Cleaner) markerIndex(text string) int {
	cut := -1
	for _, marker := range c.markers {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		if cut < 0 || idx < cut {
			cut = idx
		}
	}
	return cut
}

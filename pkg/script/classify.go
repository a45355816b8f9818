package script

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	borderRe   = regexp.MustCompile(`^\s*=+\s*$`)
	scenarioRe = regexp.MustCompile(`^\s*(\d+)\s+SCENARIO:`)
	itemRe     = regexp.MustCompile(`^\s*ITEM\s+(\d+)`)
	itemsRe    = regexp.MustCompile(`^\s*ITEMS\s+\d+\s*-\s*\d+`)
	speakerRe  = regexp.MustCompile(`^\s*Character\s*\d+:`)
	numberedRe = regexp.MustCompile(`^(\d+)\s+(.*)$`)
)

// Classify assigns a structural kind to a single raw line.
//
// Classification order matters: scenario markers and headers are recognized
// before numbered entries so that "7 SCENARIO: intro" never opens an entry.
// Numbered entries require the identifier at column zero; everything else
// tolerates leading whitespace.
func Classify(raw string) Line {
	line := Line{Raw: raw, Kind: KindText}
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		line.Kind = KindBlank

	case strings.HasPrefix(trimmed, "---"):
		line.Kind = KindDashedHeader

	case borderRe.MatchString(raw) || strings.HasPrefix(trimmed, "==="):
		line.Kind = KindBorder

	case scenarioRe.MatchString(raw):
		line.Kind = KindScenarioMarker
		m := scenarioRe.FindStringSubmatch(raw)
		line.Number, _ = strconv.Atoi(m[1])

	case itemsRe.MatchString(raw) || strings.HasPrefix(trimmed, "ITEMS "):
		line.Kind = KindItemHeader

	case itemRe.MatchString(raw) || strings.HasPrefix(trimmed, "ITEM "):
		line.Kind = KindItemHeader
		if m := itemRe.FindStringSubmatch(raw); m != nil {
			line.Number, _ = strconv.Atoi(m[1])
		}

	case strings.HasPrefix(trimmed, "Source:"):
		line.Kind = KindSourceMeta

	case strings.HasPrefix(trimmed, "Script:"):
		line.Kind = KindScriptMeta

	case strings.HasPrefix(trimmed, "This must be read"):
		line.Kind = KindReadAloud

	case speakerRe.MatchString(raw) || strings.HasPrefix(trimmed, "Character "):
		line.Kind = KindSpeaker

	case strings.HasPrefix(trimmed, "You are"):
		line.Kind = KindInstruction

	case numberedRe.MatchString(raw):
		m := numberedRe.FindStringSubmatch(raw)
		line.Kind = KindNumbered
		line.Number, _ = strconv.Atoi(m[1])
		line.Rest = m[2]
	}

	return line
}

// ClassifyAll classifies every line of normalized content.
// Line numbers are 1-based.
func ClassifyAll(content string) []Line {
	rawLines := strings.Split(content, "\n")
	lines := make([]Line, len(rawLines))
	for i, raw := range rawLines {
		lines[i] = Classify(raw)
		lines[i].Num = i + 1
	}
	return lines
}

// Package script provides discovery, reading, and line classification for
// actor assignment script files.
package script

// LineKind identifies the structural role of a single line.
type LineKind int

const (
	// KindText is ordinary content with no recognized structure.
	KindText LineKind = iota

	// KindBlank is an empty or whitespace-only line.
	KindBlank

	// KindDashedHeader is a dashed block header such as "--- MONOLOGUE ---".
	KindDashedHeader

	// KindBorder is a rule made of "=" characters, possibly indented.
	KindBorder

	// KindScenarioMarker is a "<number> SCENARIO:" marker line.
	KindScenarioMarker

	// KindItemHeader is an "ITEM N ..." or "ITEMS N-M ..." header line.
	KindItemHeader

	// KindSourceMeta is a "Source:" metadata line.
	KindSourceMeta

	// KindScriptMeta is a "Script:" metadata line.
	KindScriptMeta

	// KindReadAloud is a "This must be read..." instructional line.
	KindReadAloud

	// KindSpeaker is another character's dialogue ("Character N: ...").
	KindSpeaker

	// KindInstruction is a role-assignment instruction ("You are ...").
	KindInstruction

	// KindNumbered opens a numbered entry ("<number> <text>", no indent).
	KindNumbered
)

// String returns a short name for the kind, used in inspect output.
func (k LineKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlank:
		return "blank"
	case KindDashedHeader:
		return "dashed-header"
	case KindBorder:
		return "border"
	case KindScenarioMarker:
		return "scenario-marker"
	case KindItemHeader:
		return "item-header"
	case KindSourceMeta:
		return "source-meta"
	case KindScriptMeta:
		return "script-meta"
	case KindReadAloud:
		return "read-aloud"
	case KindSpeaker:
		return "speaker"
	case KindInstruction:
		return "instruction"
	case KindNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// Line is a classified script line.
type Line struct {
	// Raw is the original line content, without its terminator.
	Raw string

	// Kind is the structural classification.
	Kind LineKind

	// Number is the parsed identifier for KindNumbered, KindScenarioMarker,
	// and KindItemHeader lines. Zero otherwise.
	Number int

	// Rest is the text following the identifier on a KindNumbered line.
	Rest string

	// Num is the 1-based position in the source file.
	Num int
}

// IsBreak reports whether the line must terminate continuation-gathering
// as a hard stop: another speaker, an item header, or an instruction.
func (l Line) IsBreak() bool {
	switch l.Kind {
	case KindSpeaker, KindItemHeader, KindInstruction:
		return true
	}
	return false
}

// IsStructural reports whether the line is structural noise rather than
// content: headers, borders, and metadata that the stripper removes.
func (l Line) IsStructural() bool {
	switch l.Kind {
	case KindDashedHeader, KindBorder, KindScenarioMarker,
		KindSourceMeta, KindScriptMeta, KindReadAloud:
		return true
	}
	return false
}

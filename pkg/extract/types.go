// Package extract turns classified script lines into numbered entries.
//
// Extraction runs in three stages per file: monologue block extraction,
// numbered-line collection over the remaining lines, and a final cleanup
// pass applied to each entry's text.
package extract

// Entry is a (line number, text) pair destined for the consolidated output.
type Entry struct {
	Number int
	Text   string
}

// FileResult holds the entries collected from a single script file.
type FileResult struct {
	// Path is the script file this result came from.
	Path string

	// Missing is true when the file did not exist and was skipped.
	Missing bool

	// Monologues is the number of entries extracted from monologue blocks.
	Monologues int

	// Regular is the number of entries collected from plain numbered lines.
	Regular int

	// Entries are the raw (uncleaned) entries in collection order:
	// monologue entries first, then regular entries.
	Entries []Entry
}

// Result accumulates entries across all files in a run.
type Result struct {
	// Files holds per-file results in processing order.
	Files []*FileResult

	// Entries are all raw entries in collection order.
	Entries []Entry
}

// MonologueEntries returns the total count of monologue-block entries.
func (r *Result) MonologueEntries() int {
	total := 0
	for _, f := range r.Files {
		total += f.Monologues
	}
	return total
}

// RegularEntries returns the total count of plain numbered-line entries.
func (r *Result) RegularEntries() int {
	total := 0
	for _, f := range r.Files {
		total += f.Regular
	}
	return total
}

// MissingFiles returns the count of input files that were skipped.
func (r *Result) MissingFiles() int {
	count := 0
	for _, f := range r.Files {
		if f.Missing {
			count++
		}
	}
	return count
}

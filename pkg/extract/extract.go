package extract

import (
	"fmt"
	"io"

	"linefold/pkg/script"
)

// Extractor runs the extraction pipeline over script files.
type Extractor struct {
	cleaner *Cleaner
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithExtraMarkers adds configured truncation markers to the built-ins.
func WithExtraMarkers(markers []string) Option {
	return func(e *Extractor) {
		e.cleaner = NewCleaner(markers...)
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{cleaner: NewCleaner()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Cleaner returns the cleaner used for the final per-entry cleanup pass.
func (e *Extractor) Cleaner() *Cleaner {
	return e.cleaner
}

// File extracts entries from a single script file. A missing file is not an
// error: the result is marked Missing and contains no entries.
func (e *Extractor) File(path string) (*FileResult, error) {
	result := &FileResult{Path: path}

	if !script.Exists(path) {
		result.Missing = true
		return result, nil
	}

	lines, err := script.ReadLines(path)
	if err != nil {
		return nil, err
	}

	monologues, consumed := extractMonologues(lines)
	regular := collectNumbered(lines, consumed)

	result.Monologues = len(monologues)
	result.Regular = len(regular)
	result.Entries = append(result.Entries, monologues...)
	result.Entries = append(result.Entries, regular...)

	return result, nil
}

// Run processes the given files in order and accumulates their entries.
// Missing files are reported as warnings on warn and skipped; any other
// read failure aborts the run.
func (e *Extractor) Run(paths []string, warn io.Writer) (*Result, error) {
	result := &Result{}

	for _, path := range paths {
		fr, err := e.File(path)
		if err != nil {
			return nil, err
		}
		if fr.Missing && warn != nil {
			fmt.Fprintf(warn, "Warning: %s not found, skipping\n", path)
		}
		result.Files = append(result.Files, fr)
		result.Entries = append(result.Entries, fr.Entries...)
	}

	return result, nil
}

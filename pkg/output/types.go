// Package output provides the run report, its formatters, and the
// consolidated-file writer.
package output

import (
	"time"

	"linefold/pkg/extract"
)

// Report is the complete output of a consolidation run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Files holds per-file statistics in processing order.
	Files []FileSummary

	// Metadata provides context about the run.
	Metadata Metadata
}

// Summary provides aggregate statistics for a run.
type Summary struct {
	// FilesProcessed is the number of input files read.
	FilesProcessed int

	// FilesMissing is the number of input files that were skipped.
	FilesMissing int

	// EntriesWritten is the number of lines in the consolidated output.
	EntriesWritten int

	// MonologueEntries is the count of entries from monologue blocks.
	MonologueEntries int

	// RegularEntries is the count of entries from plain numbered lines.
	RegularEntries int

	// DuplicatesDropped counts later entries dropped for a repeated number.
	DuplicatesDropped int

	// EmptyDropped counts entries whose text was empty after cleanup.
	EmptyDropped int
}

// FileSummary describes one input file's contribution.
type FileSummary struct {
	Path       string
	Missing    bool
	Monologues int
	Regular    int
}

// Metadata provides context about the run.
type Metadata struct {
	// ConfigFile is the path to the configuration file used.
	ConfigFile string

	// OutputPath is where the consolidated file was (or would be) written.
	OutputPath string

	// DryRun is true when no file was written.
	DryRun bool

	// StartTime is when the run began.
	StartTime time.Time

	// EndTime is when the run completed.
	EndTime time.Time

	// Duration is the elapsed run time.
	Duration time.Duration
}

// NewReport builds a report from extraction results and the consolidation.
func NewReport(res *extract.Result, cons *Consolidation, meta Metadata) *Report {
	report := &Report{
		Summary: Summary{
			FilesProcessed:    len(res.Files) - res.MissingFiles(),
			FilesMissing:      res.MissingFiles(),
			EntriesWritten:    len(cons.Lines),
			MonologueEntries:  res.MonologueEntries(),
			RegularEntries:    res.RegularEntries(),
			DuplicatesDropped: cons.DuplicatesDropped,
			EmptyDropped:      cons.EmptyDropped,
		},
		Metadata: meta,
	}

	for _, f := range res.Files {
		report.Files = append(report.Files, FileSummary{
			Path:       f.Path,
			Missing:    f.Missing,
			Monologues: f.Monologues,
			Regular:    f.Regular,
		})
	}

	return report
}

// HasIssues reports whether the run had anything worth flagging: missing
// input files or silently dropped duplicate numbers.
func (r *Report) HasIssues() bool {
	return r.Summary.FilesMissing > 0 || r.Summary.DuplicatesDropped > 0
}

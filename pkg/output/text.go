package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats run reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "linefold: %d files, %d entries written, %d duplicates dropped\n",
		report.Summary.FilesProcessed,
		report.Summary.EntriesWritten,
		report.Summary.DuplicatesDropped)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== Consolidation Report ===")
	fmt.Fprintln(w)

	if f.opts.Verbose {
		for _, file := range report.Files {
			f.formatFile(&file, w)
		}
		fmt.Fprintln(w)
	}

	action := "Wrote"
	if report.Metadata.DryRun {
		action = "Would write"
	}
	fmt.Fprintf(w, "%s %d entries to %s\n",
		action, report.Summary.EntriesWritten, report.Metadata.OutputPath)
	fmt.Fprintf(w, "  Monologue entries: %d\n", report.Summary.MonologueEntries)
	fmt.Fprintf(w, "  Regular entries:   %d\n", report.Summary.RegularEntries)

	if report.Summary.DuplicatesDropped > 0 {
		fmt.Fprintf(w, "  Duplicates dropped: %d\n", report.Summary.DuplicatesDropped)
	}
	if report.Summary.EmptyDropped > 0 {
		fmt.Fprintf(w, "  Empty after cleanup: %d\n", report.Summary.EmptyDropped)
	}
	if report.Summary.FilesMissing > 0 {
		fmt.Fprintf(w, "  Missing input files: %d\n", report.Summary.FilesMissing)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d files processed, %d missing, %d entries\n",
		report.Summary.FilesProcessed,
		report.Summary.FilesMissing,
		report.Summary.EntriesWritten)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatFile(file *FileSummary, w io.Writer) {
	if file.Missing {
		fmt.Fprintf(w, "  %s: missing, skipped\n", file.Path)
		return
	}
	fmt.Fprintf(w, "  %s: %d monologue, %d regular\n",
		file.Path, file.Monologues, file.Regular)
}

package output

import (
	"context"
	"io"
)

// Formatter renders a run report.
type Formatter interface {
	// Name returns the format name.
	Name() string

	// Format renders the report to w.
	Format(ctx context.Context, report *Report, w io.Writer) error
}

// FormatOptions controls formatter verbosity.
type FormatOptions struct {
	// Verbose includes per-file details.
	Verbose bool

	// Quiet reduces output to the summary line.
	Quiet bool
}

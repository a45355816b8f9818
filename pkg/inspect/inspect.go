// Package inspect reports the structure of a script file: which block
// formats it uses and how its lines classify.
package inspect

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"linefold/pkg/script"
)

// KindCount is the number of sampled lines with a given classification.
type KindCount struct {
	Kind  script.LineKind
	Count int
}

// FormatMatch is a block format found in the sample.
type FormatMatch struct {
	Format     *BlockFormat
	Count      int
	SampleLine string
}

// Result holds the outcome of inspecting a file sample.
type Result struct {
	// SampledLines is the number of lines examined.
	SampledLines int

	// Kinds counts lines per classification, in classification order.
	Kinds []KindCount

	// Formats lists block formats found, most frequent first.
	Formats []*FormatMatch

	// MinNumber and MaxNumber bound the entry identifiers seen.
	// Both are zero when the sample has no numbered content.
	MinNumber int
	MaxNumber int
}

// HasMatch reports whether any block format was found.
func (r *Result) HasMatch() bool {
	return len(r.Formats) > 0
}

// Inspector samples script files and detects their structure.
type Inspector struct {
	formats    []*BlockFormat
	sampleSize int
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithSampleSize sets the number of lines to sample (default 200).
func WithSampleSize(n int) Option {
	return func(ins *Inspector) {
		if n > 0 {
			ins.sampleSize = n
		}
	}
}

// New creates an Inspector with the default block formats.
func New(opts ...Option) *Inspector {
	ins := &Inspector{
		formats:    DefaultFormats(),
		sampleSize: 200,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// InspectFile samples a script file and returns its detected structure.
func (ins *Inspector) InspectFile(ctx context.Context, path string) (*Result, error) {
	raw, err := ins.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return ins.InspectLines(raw), nil
}

// InspectLines analyzes a slice of raw lines.
func (ins *Inspector) InspectLines(raw []string) *Result {
	lines := script.ClassifyAll(script.NormalizeNewlines(strings.Join(raw, "\n")))
	result := &Result{SampledLines: len(raw)}
	if len(raw) == 0 {
		return result
	}

	counts := make(map[script.LineKind]int)
	matches := make(map[string]*FormatMatch)

	for i, ln := range lines {
		counts[ln.Kind]++

		if ln.Kind == script.KindNumbered || ln.Kind == script.KindScenarioMarker {
			if result.MinNumber == 0 && result.MaxNumber == 0 {
				result.MinNumber, result.MaxNumber = ln.Number, ln.Number
			}
			if ln.Number < result.MinNumber {
				result.MinNumber = ln.Number
			}
			if ln.Number > result.MaxNumber {
				result.MaxNumber = ln.Number
			}
		}

		for _, format := range ins.formats {
			if !format.Matches(lines, i) {
				continue
			}
			m := matches[format.Name]
			if m == nil {
				m = &FormatMatch{Format: format, SampleLine: strings.TrimSpace(ln.Raw)}
				matches[format.Name] = m
			}
			m.Count++
			break
		}
	}

	for _, kind := range []script.LineKind{
		script.KindText, script.KindBlank, script.KindDashedHeader,
		script.KindBorder, script.KindScenarioMarker, script.KindItemHeader,
		script.KindSourceMeta, script.KindScriptMeta, script.KindReadAloud,
		script.KindSpeaker, script.KindInstruction, script.KindNumbered,
	} {
		if counts[kind] > 0 {
			result.Kinds = append(result.Kinds, KindCount{Kind: kind, Count: counts[kind]})
		}
	}

	// Order formats by frequency; iterate declared order for stable ties.
	for _, format := range ins.formats {
		if m := matches[format.Name]; m != nil {
			result.Formats = append(result.Formats, m)
		}
	}
	for i := 1; i < len(result.Formats); i++ {
		for j := i; j > 0 && result.Formats[j].Count > result.Formats[j-1].Count; j-- {
			result.Formats[j], result.Formats[j-1] = result.Formats[j-1], result.Formats[j]
		}
	}

	return result
}

// sampleFile reads up to sampleSize lines from the start of the file.
func (ins *Inspector) sampleFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening script file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for len(lines) < ins.sampleSize && scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return lines, nil
}

// Package output provides output formatting.
// This package produces human and machine-readable reports of case
// assessments and portfolio SROI results.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"casecost/core/engine"
	"casecost/core/types"
	"casecost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is everything one CLI invocation prints
type Report struct {
	// Assessments are case assessments in input order
	Assessments []*engine.Assessment `json:"assessments,omitempty"`

	// SROI is a portfolio SROI result
	SROI *types.ROICalculationResult `json:"sroi,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the report was produced
	Timestamp string `json:"timestamp,omitempty"`

	// Duration is how long the run took
	Duration string `json:"duration,omitempty"`

	// Version is the tool version
	Version string `json:"version,omitempty"`

	// Sources are the input files
	Sources []string `json:"sources,omitempty"`
}

// Options controls the level of detail of human-readable formats
type Options struct {
	// ShowItems lists every cost item
	ShowItems bool

	// ShowValidation lists validation findings per task
	ShowValidation bool
}

// DefaultOptions shows everything
func DefaultOptions() Options {
	return Options{ShowItems: true, ShowValidation: true}
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.mustRegister(NewCLIFormatter(opts))
	r.mustRegister(NewJSONFormatter())
	r.mustRegister(NewMarkdownFormatter(opts))
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

func (r *Registry) mustRegister(f Formatter) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// Lookup is GetFormatter with a typed error for unknown formats
func (r *Registry) Lookup(name string) (Formatter, error) {
	f, ok := r.GetFormatter(Format(name))
	if !ok {
		return nil, errors.NotSupported("output format " + name).
			WithContext("available", r.Formats())
	}
	return f, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Render renders the report in the named format
func (r *Registry) Render(w io.Writer, name string, report *Report) error {
	f, err := r.Lookup(name)
	if err != nil {
		return err
	}
	return f.Render(w, report)
}

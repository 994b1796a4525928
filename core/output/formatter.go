// Package output provides quote formatters.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"strings"

	"enterprise-quote/core/types"
	qerrors "enterprise-quote/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat resolves a format name; "table" and "md" are accepted aliases
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cli", "table":
		return FormatCLI, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", qerrors.Newf(qerrors.TypeInput, "unknown output format %q", s)
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is everything a formatter needs to present one quote
type Report struct {
	// Quote is the computed quote
	Quote *types.Quote

	// Book names the price book or preset
	Book string

	// Currency is the display currency
	Currency types.Currency

	// Tiers is the price book's tier table
	Tiers types.TierTable

	// Position is the slider position for the quoted volume
	Position float64

	// Clamped reports that the volume was forced into range
	Clamped bool

	// ShowTiers includes the tier table
	ShowTiers bool

	// ShowDetails includes the usage walk and line items
	ShowDetails bool

	// NoColor disables ANSI colors in the cli format
	NoColor bool
}

func (r *Report) validate() error {
	if r == nil || r.Quote == nil {
		return qerrors.New(qerrors.TypeInput, "report has no quote")
	}
	return nil
}

// FormatterRegistry manages formatter registration
type FormatterRegistry interface {
	// Register adds a formatter to the registry
	Register(formatter Formatter) error

	// GetFormatter returns a formatter for a format type
	GetFormatter(format Format) (Formatter, bool)

	// GetAll returns all registered formatters
	GetAll() []Formatter
}

// Registry is the in-memory FormatterRegistry
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry() *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	for _, f := range []Formatter{CLIFormatter{}, JSONFormatter{}, YAMLFormatter{}, MarkdownFormatter{}} {
		_ = r.Register(f)
	}
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	if _, exists := r.formatters[formatter.Format()]; exists {
		return qerrors.Newf(qerrors.TypeInternal, "formatter %q already registered", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// GetAll returns all registered formatters sorted by format
func (r *Registry) GetAll() []Formatter {
	all := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Format() < all[j].Format() })
	return all
}

var defaultRegistry = NewRegistry()

// Render writes report in the named format using the built-in formatters
func Render(w io.Writer, format Format, report *Report) error {
	f, ok := defaultRegistry.GetFormatter(format)
	if !ok {
		return qerrors.NotFound("formatter", string(format))
	}
	return f.Render(w, report)
}

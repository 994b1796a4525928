package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// JSONFormatter writes the quote view as indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report
func (JSONFormatter) Render(w io.Writer, r *Report) error {
	view, err := NewQuoteView(r)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

// YAMLFormatter writes the quote view as YAML
type YAMLFormatter struct{}

// Format returns FormatYAML
func (YAMLFormatter) Format() Format { return FormatYAML }

// Render writes the report
func (YAMLFormatter) Render(w io.Writer, r *Report) error {
	view, err := NewQuoteView(r)
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(view); err != nil {
		return err
	}
	return encoder.Close()
}

package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter writes each result as one JSON document.
type JSONFormatter struct {
	// Indent is the per-level indentation. Empty means two spaces.
	Indent string
}

// Format encodes data without HTML escaping, so layouts and zone names
// print as typed.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	indent := f.Indent
	if indent == "" {
		indent = "  "
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

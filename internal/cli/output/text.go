package output

import (
	"fmt"
	"io"
)

// TextFormatter writes human-readable output.
type TextFormatter struct{}

// Format writes a Table as aligned columns, a Texter as its line, and
// anything else with fmt.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case *Table:
		return v.Render(w)
	case Table:
		return v.Render(w)
	case Texter:
		_, err := fmt.Fprintln(w, v.Text())
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

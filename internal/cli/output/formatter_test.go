package output

import (
	"bytes"
	"strings"
	"testing"
)

type line string

func (l line) Text() string { return "line: " + string(l) }

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
	}{
		{FormatJSON},
		{FormatYAML},
		{FormatText},
		{"unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format)
			if f == nil {
				t.Fatal("NewFormatter returned nil")
			}

			switch tt.format {
			case FormatJSON:
				if _, ok := f.(*JSONFormatter); !ok {
					t.Error("expected JSONFormatter")
				}
			case FormatYAML:
				if _, ok := f.(*YAMLFormatter); !ok {
					t.Error("expected YAMLFormatter")
				}
			default:
				if _, ok := f.(*TextFormatter); !ok {
					t.Error("expected TextFormatter")
				}
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", FormatText, false},
		{"table", "", true},
		{"JSON", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := &TextFormatter{}

	t.Run("uses Text for Texter", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Format(&buf, line("x")); err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if buf.String() != "line: x\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("prints plain values", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Format(&buf, "1970-01-01 00:00:00"); err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if buf.String() != "1970-01-01 00:00:00\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("renders tables", func(t *testing.T) {
		var buf bytes.Buffer
		tbl := &Table{}
		tbl.SetHeaders("NAME", "SCALE")
		tbl.AddRow("second", "1")
		if err := f.Format(&buf, tbl); err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if !strings.Contains(buf.String(), "NAME") || !strings.Contains(buf.String(), "second") {
			t.Errorf("unexpected table output %q", buf.String())
		}
	})

	t.Run("nil writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		if err := f.Format(&buf, nil); err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected empty output, got %q", buf.String())
		}
	})
}

func TestJSONFormatter_Format(t *testing.T) {
	f := &JSONFormatter{}

	data := struct {
		Timestamp int64  `json:"timestamp"`
		Formatted string `json:"formatted"`
	}{
		Timestamp: 0,
		Formatted: "1970-01-01 00:00:00",
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"timestamp": 0`) {
		t.Errorf("expected timestamp field, got %s", out)
	}
	if !strings.Contains(out, `"formatted": "1970-01-01 00:00:00"`) {
		t.Errorf("expected formatted field, got %s", out)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	f := &YAMLFormatter{}

	data := struct {
		Preset    string `yaml:"preset"`
		Timestamp int64  `yaml:"timestamp"`
	}{
		Preset:    "today",
		Timestamp: 1715904000,
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "preset: today") {
		t.Errorf("expected preset key, got %s", out)
	}
	if !strings.Contains(out, "timestamp: 1715904000") {
		t.Errorf("expected timestamp key, got %s", out)
	}
}

func TestJSONFormatter_Options(t *testing.T) {
	t.Run("custom indent", func(t *testing.T) {
		var buf bytes.Buffer
		f := &JSONFormatter{Indent: "\t"}
		if err := f.Format(&buf, map[string]int{"scale": 1000}); err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if buf.String() != "{\n\t\"scale\": 1000\n}\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("no html escaping", func(t *testing.T) {
		var buf bytes.Buffer
		f := &JSONFormatter{}
		if err := f.Format(&buf, map[string]string{"note": "<b>&</b>"}); err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		if !strings.Contains(buf.String(), `"<b>&</b>"`) {
			t.Errorf("expected unescaped value, got %s", buf.String())
		}
	})

	t.Run("unsupported value", func(t *testing.T) {
		var buf bytes.Buffer
		f := &JSONFormatter{}
		err := f.Format(&buf, make(chan int))
		if err == nil || !strings.Contains(err.Error(), "encode json") {
			t.Errorf("expected encode error, got %v", err)
		}
	})
}

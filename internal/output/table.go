package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hightemp/zipzap/internal/extract"
	"gopkg.in/yaml.v3"
)

// Table output formats.
const (
	FormatGo   = "go"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat checks a table format name.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case "", "go", "text":
		return FormatGo, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid table format: %s (use go, json, or yaml)", s)
	}
}

// WriteTable renders entries in the given format.
func WriteTable(w io.Writer, entries []extract.Entry, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, TableLine(e)); err != nil {
				return err
			}
		}
		return nil
	}
}

// TableLine renders an entry as a map literal row ready to paste into the
// format table source:
//
//	"AD": {"AD###"}, // Andorra, Notes: Each parish has its own code.
func TableLine(e extract.Entry) string {
	quoted := make([]string, len(e.Formats))
	for i, f := range e.Formats {
		quoted[i] = strconv.Quote(f)
	}

	var b strings.Builder
	b.WriteByte('\t')
	b.WriteString(strconv.Quote(e.Code))
	b.WriteString(": {")
	b.WriteString(strings.Join(quoted, ", "))
	b.WriteString("},")

	comment := oneLine(e.Country)
	if notes := oneLine(e.Notes); notes != "" {
		comment += ", Notes: " + notes
	}
	if comment != "" {
		b.WriteString(" // ")
		b.WriteString(comment)
	}

	return b.String()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

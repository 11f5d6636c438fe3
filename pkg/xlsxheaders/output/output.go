// Package output renders extracted header rows.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/models"
)

// Format selects how a header row is rendered.
type Format string

const (
	// FormatLine joins the values with commas on one line.
	FormatLine Format = "line"
	// FormatJSON writes the header row as a JSON document.
	FormatJSON Format = "json"
	// FormatYAML writes the header row as a YAML document.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatLine, FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (must be line, json, or yaml)", s)
}

// Line joins values with a single comma. Commas, quotes and newlines inside
// values are written as is.
func Line(values []string) string {
	return strings.Join(values, ",")
}

// ToJSON serializes a header row.
func ToJSON(row *models.HeaderRow, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(row, "", "  ")
	}
	return json.Marshal(row)
}

// ToYAML serializes a header row.
func ToYAML(row *models.HeaderRow) ([]byte, error) {
	return yaml.Marshal(row)
}

// Render produces the bytes written to stdout for the given format,
// including the trailing newline.
func Render(row *models.HeaderRow, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatLine, "":
		return []byte(Line(row.Values()) + "\n"), nil
	case FormatJSON:
		data, err := ToJSON(row, pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		// yaml.Marshal already ends with a newline.
		return ToYAML(row)
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

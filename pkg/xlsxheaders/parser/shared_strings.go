package parser

import (
	"fmt"
	"strings"
)

// NSMain is the SpreadsheetML main namespace.
const NSMain = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// SharedStringsPart is the conventional location of the shared string table.
const SharedStringsPart = "xl/sharedStrings.xml"

// SharedStrings is the resolved shared string table, indexed by position.
type SharedStrings []string

// Lookup returns the entry at idx. Negative indices are rejected rather than
// counted from the end.
func (s SharedStrings) Lookup(idx int) (string, error) {
	if idx < 0 || idx >= len(s) {
		return "", fmt.Errorf("%w: %d (table has %d entries)", ErrIndexOutOfRange, idx, len(s))
	}
	return s[idx], nil
}

// xlsxSST maps the sst root. The root name itself is not checked.
type xlsxSST struct {
	SI []xlsxSI `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main si"`
}

// xlsxSI is a string item: either one plain t, or a list of rich text runs.
type xlsxSI struct {
	T *xlsxT  `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main t"`
	R []xlsxR `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main r"`
}

type xlsxR struct {
	T *xlsxT `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main t"`
}

type xlsxT struct {
	Text string `xml:",chardata"`
}

// ParseSharedStrings parses the sharedStrings part into its text entries.
func ParseSharedStrings(data []byte) (SharedStrings, error) {
	var sst xlsxSST
	decoder, err := newDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: shared strings: %v", ErrMalformedXML, err)
	}
	if err := decoder.Decode(&sst); err != nil {
		return nil, fmt.Errorf("%w: shared strings: %v", ErrMalformedXML, err)
	}
	if err := drainDocument(decoder); err != nil {
		return nil, fmt.Errorf("%w: shared strings: %v", ErrMalformedXML, err)
	}

	result := make(SharedStrings, 0, len(sst.SI))
	for _, si := range sst.SI {
		result = append(result, si.text())
	}
	return result, nil
}

func (si xlsxSI) text() string {
	if si.T != nil {
		return strings.TrimSpace(si.T.Text)
	}
	var sb strings.Builder
	for _, r := range si.R {
		if r.T != nil {
			sb.WriteString(r.T.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

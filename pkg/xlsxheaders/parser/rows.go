package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/models"
)

// DefaultSheetPart is the archive path of the first worksheet.
const DefaultSheetPart = "xl/worksheets/sheet1.xml"

type xlsxRow struct {
	C []xlsxC `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main c"`
}

type xlsxC struct {
	R string `xml:"r,attr"`
	T string `xml:"t,attr"`
	V *xlsxV `xml:"http://schemas.openxmlformats.org/spreadsheetml/2006/main v"`
}

type xlsxV struct {
	Text string `xml:",chardata"`
}

var errNoRoot = errors.New("no root element")

// ExtractRow returns the cells of the first sheetData row whose r attribute
// equals rowRef, in document order. The whole document is read, so malformed
// markup after the row is still reported.
func ExtractRow(data []byte, rowRef string) ([]models.Cell, error) {
	decoder, err := newDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: worksheet: %v", ErrMalformedXML, err)
	}

	var (
		stack    []xml.Name
		cells    []models.Cell
		found    bool
		seenRoot bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: worksheet: %v", ErrMalformedXML, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				if seenRoot {
					return nil, fmt.Errorf("%w: worksheet: %v", ErrMalformedXML, errTrailingElement)
				}
				seenRoot = true
			}
			if !found && isRowOfSheetData(t, stack, rowRef) {
				var row xlsxRow
				if err := decoder.DecodeElement(&row, &t); err != nil {
					return nil, fmt.Errorf("%w: worksheet row %s: %v", ErrMalformedXML, rowRef, err)
				}
				cells = row.cells()
				found = true
				continue
			}
			stack = append(stack, t.Name)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if !seenRoot {
		return nil, fmt.Errorf("%w: worksheet: %v", ErrMalformedXML, errNoRoot)
	}
	if !found {
		return nil, fmt.Errorf("%w: r=%q", ErrRowNotFound, rowRef)
	}
	return cells, nil
}

// isRowOfSheetData matches a row element nested directly under a sheetData
// element that is itself below the document root.
func isRowOfSheetData(se xml.StartElement, stack []xml.Name, rowRef string) bool {
	if !isMain(se.Name, "row") || len(stack) < 2 || !isMain(stack[len(stack)-1], "sheetData") {
		return false
	}
	r, ok := attrValue(se, "r")
	return ok && r == rowRef
}

func isMain(name xml.Name, local string) bool {
	return name.Space == NSMain && name.Local == local
}

func (r xlsxRow) cells() []models.Cell {
	cells := make([]models.Cell, 0, len(r.C))
	for _, c := range r.C {
		cell := models.Cell{Ref: c.R, Type: c.T}
		if c.V != nil {
			v := c.V.Text
			cell.Value = &v
		}
		cells = append(cells, cell)
	}
	return cells
}

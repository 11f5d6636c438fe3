package models

// Column is one resolved header cell.
type Column struct {
	// Cell is the cell reference, e.g. "A1".
	Cell string `json:"cell" yaml:"cell"`
	// Value is the resolved cell text.
	Value string `json:"value" yaml:"value"`
}

// HeaderRow is the resolved first row of a worksheet.
type HeaderRow struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// SheetPart is the archive path of the worksheet part.
	SheetPart string `json:"sheet_part" yaml:"sheet_part"`
	// Columns holds the resolved cells in document order.
	Columns []Column `json:"columns" yaml:"columns"`
}

// Values returns the resolved cell texts in order.
func (h HeaderRow) Values() []string {
	values := make([]string, len(h.Columns))
	for i, c := range h.Columns {
		values[i] = c.Value
	}
	return values
}

// Package models defines data structures for header row extraction.
package models

// CellTypeSharedString is the t attribute value of cells that reference the
// shared string table.
const CellTypeSharedString = "s"

// Cell is a raw cell descriptor as read from a worksheet row.
type Cell struct {
	// Ref is the cell reference (e.g. "B1"); empty when the r attribute is absent.
	Ref string
	// Type is the t attribute; empty when absent.
	Type string
	// Value is the text of the v child, nil when there is no v element.
	Value *string
}

// IsSharedString reports whether the cell value is a shared string index.
func (c Cell) IsSharedString() bool {
	return c.Type == CellTypeSharedString && c.Value != nil
}

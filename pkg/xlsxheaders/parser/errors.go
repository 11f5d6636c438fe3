package parser

import "errors"

var (
	// ErrOpenArchive indicates the input path is missing or is not a zip container.
	ErrOpenArchive = errors.New("cannot open xlsx archive")
	// ErrPartNotFound indicates a required part is absent from the archive.
	ErrPartNotFound = errors.New("part not found in archive")
	// ErrMalformedXML indicates a part could not be parsed as XML.
	ErrMalformedXML = errors.New("malformed xml")
	// ErrRowNotFound indicates the worksheet has no row with the requested number.
	ErrRowNotFound = errors.New("row not found")
	// ErrIndexOutOfRange indicates a shared string reference beyond the table.
	ErrIndexOutOfRange = errors.New("shared string index out of range")
	// ErrInvalidIndex indicates a shared string cell whose value is not an integer.
	ErrInvalidIndex = errors.New("invalid shared string index")
	// ErrSheetNotFound indicates the workbook has no sheet with the given name.
	ErrSheetNotFound = errors.New("sheet not found")
)

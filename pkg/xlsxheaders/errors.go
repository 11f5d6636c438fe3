package xlsxheaders

import (
	"fmt"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/parser"
)

// Error kinds reported by Extract. Use errors.Is to test for them.
var (
	ErrOpenArchive     = parser.ErrOpenArchive
	ErrPartNotFound    = parser.ErrPartNotFound
	ErrMalformedXML    = parser.ErrMalformedXML
	ErrRowNotFound     = parser.ErrRowNotFound
	ErrIndexOutOfRange = parser.ErrIndexOutOfRange
	ErrInvalidIndex    = parser.ErrInvalidIndex
	ErrSheetNotFound   = parser.ErrSheetNotFound
)

// ExtractionError represents a failure in one stage of the pipeline.
type ExtractionError struct {
	Part      string
	Component string // "archive", "shared_strings", "sheet", "row", "cells"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in part %q (%s): %v", e.Part, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(part, component string, err error) *ExtractionError {
	return &ExtractionError{
		Part:      part,
		Component: component,
		Err:       err,
	}
}

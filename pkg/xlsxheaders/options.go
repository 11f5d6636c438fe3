// Package xlsxheaders extracts the header row of an xlsx worksheet.
package xlsxheaders

import (
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/parser"
)

// HeaderRowRef is the row number attribute of the header row.
const HeaderRowRef = "1"

// Options configures extraction behavior.
type Options struct {
	// SheetPart is the archive path of the worksheet part.
	SheetPart string
	// SheetName, when set, selects the worksheet by name through the workbook
	// relationships and takes precedence over SheetPart.
	SheetName string
	// SharedStringsPart is the archive path of the shared string table.
	SharedStringsPart string
	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		SheetPart:         parser.DefaultSheetPart,
		SharedStringsPart: parser.SharedStringsPart,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) sharedStringsPart() string {
	if o.SharedStringsPart == "" {
		return parser.SharedStringsPart
	}
	return o.SharedStringsPart
}

package xlsxheaders

import (
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/models"
	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/output"
	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/parser"
)

// Extract reads the header row of one worksheet of the xlsx file at path.
// The shared string table is loaded before the worksheet is read.
func Extract(path string, opts Options) (*models.HeaderRow, error) {
	log := opts.logger()

	a, err := parser.OpenArchive(path)
	if err != nil {
		return nil, NewExtractionError(path, "archive", err)
	}
	defer a.Close()

	sstPart := opts.sharedStringsPart()
	sstXML, err := a.ReadPart(sstPart)
	if err != nil {
		return nil, NewExtractionError(sstPart, "shared_strings", err)
	}
	sst, err := parser.ParseSharedStrings(sstXML)
	if err != nil {
		return nil, NewExtractionError(sstPart, "shared_strings", err)
	}
	log.Debug("loaded shared strings", zap.String("part", sstPart), zap.Int("count", len(sst)))

	sheetPart := opts.SheetPart
	if opts.SheetName != "" {
		sheetPart, err = parser.SheetPartByName(a, opts.SheetName)
		if err != nil {
			return nil, NewExtractionError(parser.WorkbookPart, "sheet", err)
		}
		log.Debug("resolved sheet", zap.String("name", opts.SheetName), zap.String("part", sheetPart))
	}
	if sheetPart == "" {
		sheetPart = parser.DefaultSheetPart
	}

	sheetXML, err := a.ReadPart(sheetPart)
	if err != nil {
		return nil, NewExtractionError(sheetPart, "sheet", err)
	}
	cells, err := parser.ExtractRow(sheetXML, HeaderRowRef)
	if err != nil {
		return nil, NewExtractionError(sheetPart, "row", err)
	}
	log.Debug("located header row", zap.String("part", sheetPart), zap.Int("cells", len(cells)))

	values, err := parser.ResolveRow(cells, sst)
	if err != nil {
		return nil, NewExtractionError(sheetPart, "cells", err)
	}

	return &models.HeaderRow{
		BookName:  filepath.Base(path),
		SheetPart: sheetPart,
		Columns:   columnsOf(cells, values, log),
	}, nil
}

// columnsOf pairs resolved values with cell names. A cell without an r
// attribute takes the column after its predecessor; past the last sheet
// column it is left unnamed.
func columnsOf(cells []models.Cell, values []string, log *zap.Logger) []models.Column {
	columns := make([]models.Column, len(cells))
	col := 0
	for i, c := range cells {
		ref := c.Ref
		if n, _, err := excelize.CellNameToCoordinates(ref); ref != "" && err == nil {
			col = n
		} else {
			col++
			if ref, err = excelize.CoordinatesToCellName(col, 1); err != nil {
				log.Warn("cannot name header cell", zap.Int("column", col), zap.Error(err))
			}
		}
		columns[i] = models.Column{Cell: ref, Value: values[i]}
	}
	return columns
}

// ExtractLine is Extract followed by joining the header values with commas.
func ExtractLine(path string, opts Options) (string, error) {
	row, err := Extract(path, opts)
	if err != nil {
		return "", err
	}
	return output.Line(row.Values()), nil
}

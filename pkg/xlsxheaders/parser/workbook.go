package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	// WorkbookPart lists the sheets of the workbook.
	WorkbookPart = "xl/workbook.xml"
	// WorkbookRelsPart maps workbook relationship ids to part targets.
	WorkbookRelsPart = "xl/_rels/workbook.xml.rels"
)

// sheetEntry is a sheet element of workbook.xml.
type sheetEntry struct {
	name string
	rID  string
}

// SheetPartByName resolves the worksheet part path of the named sheet using
// the workbook and its relationships.
func SheetPartByName(a *Archive, name string) (string, error) {
	workbookXML, err := a.ReadPart(WorkbookPart)
	if err != nil {
		return "", err
	}
	sheets, err := parseWorkbookSheets(workbookXML)
	if err != nil {
		return "", err
	}

	var rID string
	for _, s := range sheets {
		if s.name == name {
			rID = s.rID
			break
		}
	}
	if rID == "" {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, name, strings.Join(sheetNames(sheets), ", "))
	}

	relsXML, err := a.ReadPart(WorkbookRelsPart)
	if err != nil {
		return "", err
	}
	targets, err := parseWorkbookRels(relsXML)
	if err != nil {
		return "", err
	}
	target, ok := targets[rID]
	if !ok {
		return "", fmt.Errorf("%w: relationship %s for sheet %q", ErrPartNotFound, rID, name)
	}
	return resolveRelativePath(target, "xl"), nil
}

func sheetNames(sheets []sheetEntry) []string {
	names := make([]string, len(sheets))
	for i, s := range sheets {
		names[i] = s.name
	}
	return names
}

func parseWorkbookSheets(data []byte) ([]sheetEntry, error) {
	var result []sheetEntry
	decoder, err := newDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: workbook: %v", ErrMalformedXML, err)
	}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: workbook: %v", ErrMalformedXML, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result = append(result, sheetEntry{name: name, rID: rID})
			}
		}
	}

	return result, nil
}

// parseWorkbookRels returns relationship id -> target for worksheet relationships.
func parseWorkbookRels(data []byte) (map[string]string, error) {
	result := make(map[string]string)
	decoder, err := newDecoder(data)
	if err != nil {
		return nil, fmt.Errorf("%w: workbook relationships: %v", ErrMalformedXML, err)
	}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: workbook relationships: %v", ErrMalformedXML, err)
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, relType, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Type":
					relType = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if rID != "" && strings.HasSuffix(strings.ToLower(relType), "/worksheet") {
				result[rID] = target
			}
		}
	}

	return result, nil
}

// resolveRelativePath turns a relationship target into an archive path.
// Absolute targets are rooted at the archive, relative ones at baseDir.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(baseDir, target))
}

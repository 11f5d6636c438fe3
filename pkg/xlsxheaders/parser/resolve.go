package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxheaders-go/pkg/xlsxheaders/models"
)

// ResolveCell returns the display text of a cell. Shared string cells are
// looked up by index; any other cell with a value yields that value verbatim,
// and a cell without a value yields "".
func ResolveCell(cell models.Cell, sst SharedStrings) (string, error) {
	if cell.IsSharedString() {
		idx, err := strconv.Atoi(strings.TrimSpace(*cell.Value))
		if err != nil {
			return "", fmt.Errorf("%w: cell %s: %q", ErrInvalidIndex, cell.Ref, *cell.Value)
		}
		s, err := sst.Lookup(idx)
		if err != nil {
			return "", fmt.Errorf("cell %s: %w", cell.Ref, err)
		}
		return s, nil
	}
	if cell.Value != nil {
		return *cell.Value, nil
	}
	return "", nil
}

// ResolveRow resolves every cell in order and stops at the first failure.
func ResolveRow(cells []models.Cell, sst SharedStrings) ([]string, error) {
	values := make([]string, 0, len(cells))
	for _, c := range cells {
		v, err := ResolveCell(c, sst)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// ErrNoWorksheet indicates the workbook contains no worksheet to read.
var ErrNoWorksheet = errors.New("workbook has no worksheets")

// ReadRows decodes the first worksheet of an xlsx document into rows of cell text.
// Blank cells are returned as empty strings. When raw is true numeric cells are
// rendered without their number format applied; boolean cells are always
// rendered as "true" or "false".
func ReadRows(fsys afero.Fs, path string, raw bool) ([][]string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheetList[0], excelize.Options{RawCellValue: raw})
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheetList[0], err)
	}
	if raw {
		if err := renderBooleans(f, sheetList[0], rows); err != nil {
			return nil, fmt.Errorf("read worksheet %q: %w", sheetList[0], err)
		}
	}
	return rows, nil
}

// renderBooleans replaces the stored "1"/"0" of boolean cells, which raw
// reads return, with "true"/"false".
func renderBooleans(f *excelize.File, sheet string, rows [][]string) error {
	for r, row := range rows {
		for c, value := range row {
			if value != "1" && value != "0" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			cellType, err := f.GetCellType(sheet, cell)
			if err != nil {
				return err
			}
			if cellType == excelize.CellTypeBool {
				row[c] = strconv.FormatBool(value == "1")
			}
		}
	}
	return nil
}

// cellAt returns the cell at idx, or an empty string when the decoder trimmed it.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// isEmptyRow reports whether every cell of the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

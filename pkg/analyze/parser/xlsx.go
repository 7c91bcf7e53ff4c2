package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/23f2005290/analyze/pkg/analyze/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ReadSheet reads one worksheet of an xlsx workbook into a Table.
// An empty sheet name selects the first sheet. The table starts at the
// first non-empty row and column, so blank margins are ignored.
func ReadSheet(r io.Reader, sheetName string) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	// Raw values keep number formats such as "#,##0" from leaking into the text.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	minRow, minCol := findDataOrigin(rows)
	if minRow < 0 {
		return models.NewTable(nil, nil), nil
	}

	header := NormalizeHeader(rows[minRow][minCol:])

	var records []models.RawRecord
	for rowIdx := minRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) <= minCol || isBlank(row[minCol:]) {
			continue
		}
		records = append(records, models.RawRecord{
			Line:  rowIdx + 1, // 1-based row index
			Cells: row[minCol:],
		})
	}

	return models.NewTable(header, records), nil
}

// findDataOrigin finds the top-left corner of the non-empty cells.
// It returns -1 for both when the sheet has no data.
func findDataOrigin(rows [][]string) (minRow, minCol int) {
	minRow, minCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
		}
	}

	return
}

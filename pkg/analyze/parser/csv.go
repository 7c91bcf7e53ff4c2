package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/23f2005290/analyze/pkg/analyze/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV parses delimited text into a Table, using the first row as the header.
// A leading UTF-8 byte-order mark is dropped. A zero delimiter means comma.
func ReadCSV(r io.Reader, delimiter rune) (*models.Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	if delimiter != 0 {
		reader.Comma = delimiter
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return models.NewTable(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var records []models.RawRecord
	skipped := 0
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlank(cells) {
			continue
		}

		line, _ := reader.FieldPos(0)
		records = append(records, models.RawRecord{Line: line, Cells: cells})
	}

	table := models.NewTable(NormalizeHeader(header), records)
	table.Skipped = skipped
	return table, nil
}

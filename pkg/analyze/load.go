package analyze

import (
	"errors"
	"fmt"
	"os"

	"github.com/23f2005290/analyze/pkg/analyze/models"
	"github.com/23f2005290/analyze/pkg/analyze/parser"
)

// requiredFields must be present in every input header.
var requiredFields = []string{models.FieldCategory, models.FieldValue}

// Load opens the input at path, parses it into a Table, and checks that
// the required fields are present. The file is closed before Load returns.
func Load(path string, opts Options) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewMissingInputError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, NewMissingInputError(path, err)
	}
	if info.IsDir() {
		return nil, NewMissingInputError(path, errors.New("is a directory"))
	}

	var table *models.Table
	switch opts.ResolveFormat(path) {
	case FormatXLSX:
		table, err = parser.ReadSheet(f, opts.Sheet)
		if err != nil {
			return nil, NewMissingInputError(path, err)
		}
	default:
		table, err = parser.ReadCSV(f, opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	for _, field := range requiredFields {
		if _, ok := table.Index(field); !ok {
			return nil, NewSchemaError(field, table.Header)
		}
	}

	return table, nil
}

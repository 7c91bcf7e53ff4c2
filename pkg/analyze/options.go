// Package analyze computes per-category summary statistics from tabular input.
package analyze

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV reads delimited UTF-8 text.
	FormatCSV Format = "csv"
	// FormatXLSX reads one worksheet of an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatAuto, "":
		return FormatAuto, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("invalid input format: %s (must be auto, csv, or xlsx)", s)
	}
}

// Options configures loading behavior.
type Options struct {
	// Format selects the parser. Zero value behaves like FormatAuto.
	Format Format
	// Sheet names the worksheet to read from xlsx input.
	// If empty, the first sheet is used.
	Sheet string
	// Delimiter is the CSV field separator. If zero, comma is used.
	Delimiter rune
	// Logger receives diagnostics. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Format:    FormatAuto,
		Delimiter: ',',
	}
}

// ResolveFormat returns the concrete format to use for path.
func (o Options) ResolveFormat(path string) Format {
	if o.Format == FormatCSV || o.Format == FormatXLSX {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

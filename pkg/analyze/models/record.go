// Package models defines data structures for the category summary pipeline.
package models

import "strings"

// Required field names, compared after header normalization.
const (
	FieldCategory = "Category"
	FieldValue    = "Value"
)

// RawRecord represents a single data row as read from the input.
type RawRecord struct {
	// Line is the 1-based line (CSV) or row (XLSX) number in the source.
	Line int
	// Cells holds the row's text values in header order.
	// Rows shorter than the header simply carry fewer cells.
	Cells []string
}

// Multiline reports whether any cell spans more than one source line.
func (r RawRecord) Multiline() bool {
	for _, cell := range r.Cells {
		if strings.ContainsAny(cell, "\r\n") {
			return true
		}
	}
	return false
}

// Table is a loaded tabular input: a normalized header plus its data rows.
type Table struct {
	// Header is the list of trimmed field names in column order.
	Header []string
	// Records contains the non-blank data rows.
	Records []RawRecord
	// Skipped counts rows the reader could not tokenize at all.
	Skipped int

	index map[string]int
}

// NewTable builds a Table and indexes its header.
// When two columns share a name, the first one wins.
func NewTable(header []string, records []RawRecord) *Table {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return &Table{
		Header:  header,
		Records: records,
		index:   index,
	}
}

// Index returns the column position of the named field.
func (t *Table) Index(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Lookup returns the named field's value in rec.
// It reports false when the field is unknown or the row is too short to hold it.
func (t *Table) Lookup(rec RawRecord, name string) (string, bool) {
	i, ok := t.index[name]
	if !ok || i >= len(rec.Cells) {
		return "", false
	}
	return rec.Cells[i], true
}

// Record is a row that passed schema and numeric checks.
type Record struct {
	// Category is the grouping key, used verbatim.
	Category string
	// Value is always a finite number.
	Value float64
	// Line is the source line the record came from.
	Line int
}

// Package parser provides tabular input parsing utilities.
package parser

import "strings"

// NormalizeHeader trims surrounding whitespace from every field name.
func NormalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, name := range raw {
		header[i] = strings.TrimSpace(name)
	}
	return header
}

// isBlank reports whether every cell in a row is empty or whitespace.
func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

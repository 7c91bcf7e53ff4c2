package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue parses a cell as a decimal number.
// Surrounding whitespace is ignored. It reports false for empty or
// non-numeric text, hexadecimal notation, and values that are not finite
// (NaN, Inf, or out of float64 range).
func ParseValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || isHexLiteral(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isHexLiteral reports whether s uses a 0x prefix, which ParseFloat would accept.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

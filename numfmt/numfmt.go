// Package numfmt formats numbers the way they appear in TikZ output.
package numfmt

import (
	"strconv"
	"strings"
)

// DefaultPrecision is the number of decimals kept by Format.
const DefaultPrecision = 2

// Formatter rounds to Precision decimals and trims the result: no
// trailing zeros, no trailing point, never "-0". It is stateless and safe
// for concurrent use.
type Formatter struct {
	Precision int
}

// New returns a Formatter with the default precision.
func New() Formatter {
	return Formatter{Precision: DefaultPrecision}
}

// Format renders v.
func (f Formatter) Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', f.Precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Format renders v with the default precision.
func Format(v float64) string {
	return New().Format(v)
}

// Parse reads a number the way attribute values are written, tolerating
// surrounding spaces and a "px" or "pt" unit.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSuffix(s, "pt")
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

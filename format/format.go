package format

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

import (
	"strings"

	"github.com/ardnew/morph/value"
)

// Kind is the rendering a pattern denotes.
type Kind int

const (
	KindNone    Kind = iota // none
	KindDecimal             // decimal
	KindDate                // date
)

// dateMarks are the characters that mark a pattern as a date pattern.
const dateMarks = "DMYHms"

// Infer classifies pattern. The decimal test runs first, so "0.00" is
// decimal and "DD.MM.YYYY" (no '0') is a date.
func Infer(pattern string) Kind {
	switch {
	case strings.Contains(pattern, ".") && strings.Contains(pattern, "0"):
		return KindDecimal

	case strings.ContainsAny(pattern, dateMarks):
		return KindDate

	default:
		return KindNone
	}
}

// Render formats v according to the kind inferred from pattern.
// Unclassified patterns render v as plain text and never fail.
func Render(pattern string, v any) (string, error) {
	switch Infer(pattern) {
	case KindDecimal:
		return Decimal(pattern, v)

	case KindDate:
		return Date(pattern, v)

	default:
		return value.Of(v).Text(), nil
	}
}

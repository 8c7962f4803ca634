package format

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/morph/value"
)

// Decimal renders v with as many fractional digits as pattern has characters
// after its last '.'. Numbers and numeric strings are accepted.
func Decimal(pattern string, v any) (string, error) {
	num, err := Number(v)
	if err != nil {
		return "", err
	}

	return fixed(num, places(pattern)), nil
}

// Percent renders v multiplied by 100 followed by '%'. The fractional digit
// count comes from the pattern's fractional segment with any '%' removed, so
// "0.00%" renders 1.234 as "123.40%".
func Percent(pattern string, v any) (string, error) {
	num, err := Number(v)
	if err != nil {
		return "", err
	}

	return fixed(num*100, places(strings.ReplaceAll(pattern, "%", ""))) + "%", nil
}

// Number coerces v to a float64.
func Number(v any) (float64, error) {
	val := value.Of(v)

	switch val.Kind() {
	case value.KindNumber:
		f, _ := val.Float()

		return f, nil

	case value.KindString:
		s, _ := val.Str()

		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
	}

	return 0, convError(val, "number")
}

// places counts the characters after the last '.' in pattern.
func places(pattern string) int {
	i := strings.LastIndexByte(pattern, '.')
	if i < 0 {
		return 0
	}

	return utf8.RuneCountInString(pattern[i+1:])
}

func fixed(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "nan"

	case math.IsInf(f, 1):
		return "inf"

	case math.IsInf(f, -1):
		return "-inf"
	}

	return strconv.FormatFloat(f, 'f', prec, 64)
}

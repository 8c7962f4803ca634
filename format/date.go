package format

import (
	"math"
	"strings"
	"time"

	"github.com/ardnew/morph/value"
)

// inputLayouts are tried in order when a string is coerced to a date.
// Day and month accept one or two digits.
var inputLayouts = []string{
	"2006-1-2", // YYYY-MM-DD
	"2.1.2006", // DD.MM.YYYY
	"2/1/2006", // DD/MM/YYYY
	"2006/1/2", // YYYY/MM/DD
	"2-1-2006", // DD-MM-YYYY
}

// tokens maps pattern tokens to time layout elements. Order matters: YYYY is
// replaced before YY.
var tokens = []struct {
	token, layout string
}{
	{"DD", "02"},
	{"MM", "01"},
	{"YYYY", "2006"},
	{"YY", "06"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// Date coerces v to a time and renders it with [DateTime].
//
// Times pass through, numbers are Unix seconds in local time, and strings are
// parsed with the first matching input layout (YYYY-MM-DD, DD.MM.YYYY,
// DD/MM/YYYY, YYYY/MM/DD, DD-MM-YYYY).
func Date(pattern string, v any) (string, error) {
	t, err := Time(v)
	if err != nil {
		return "", err
	}

	return DateTime(pattern, t), nil
}

// DateTime substitutes the date tokens of pattern with fields of t.
// Characters that are not part of a token are copied through.
func DateTime(pattern string, t time.Time) string {
	out := pattern
	for _, tok := range tokens {
		out = strings.ReplaceAll(out, tok.token, t.Format(tok.layout))
	}

	return out
}

// Time coerces v to a time.Time.
func Time(v any) (time.Time, error) {
	val := value.Of(v)

	switch val.Kind() {
	case value.KindTime:
		t, _ := val.Time()

		return t, nil

	case value.KindNumber:
		f, _ := val.Float()
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			sec, frac := math.Modf(f)
			nsec := math.Round(frac*1e6) * 1e3

			return time.Unix(int64(sec), int64(nsec)), nil
		}

	case value.KindString:
		s, _ := val.Str()
		for _, layout := range inputLayouts {
			t, err := time.ParseInLocation(layout, s, time.Local)
			if err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, convError(val, "date")
}

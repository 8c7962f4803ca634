package value

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"
)

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	KindNil    Kind = iota // nil
	KindString             // string
	KindNumber             // number
	KindBool               // bool
	KindTime               // time
	KindMap                // map
	KindList               // list
	KindObject             // object
)

// Layouts used by [Value.Text] for time values. A time whose clock is exactly
// midnight renders as a calendar date only.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Value is an immutable tagged value.
// The zero Value is nil.
type Value struct {
	ref  any // original Go value
	when time.Time
	str  string // string content, or canonical number text
	num  float64
	kind Kind
	flag bool
}

// Nil returns the nil Value.
func Nil() Value { return Value{} }

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s, ref: s}
}

// Number returns a number Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f, str: formatFloat(f), ref: f}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b, ref: b}
}

// Time returns a time Value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, when: t, ref: t}
}

func integer[T int | int8 | int16 | int32 | int64](i T, ref any) Value {
	return Value{
		kind: KindNumber,
		num:  float64(i),
		str:  strconv.FormatInt(int64(i), 10),
		ref:  ref,
	}
}

func unsigned[T uint | uint8 | uint16 | uint32 | uint64 | uintptr](
	u T,
	ref any,
) Value {
	return Value{
		kind: KindNumber,
		num:  float64(u),
		str:  strconv.FormatUint(uint64(u), 10),
		ref:  ref,
	}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the nil Value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Interface returns the Go value v was built from.
func (v Value) Interface() any { return v.ref }

// Str returns the content of a string Value.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Float returns the content of a number Value.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Bool returns the content of a boolean Value.
func (v Value) Bool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Time returns the content of a time Value.
func (v Value) Time() (time.Time, bool) {
	return v.when, v.kind == KindTime
}

// Text converts v to text. It never fails.
func (v Value) Text() string {
	switch v.kind {
	case KindNil:
		return ""

	case KindString, KindNumber:
		return v.str

	case KindBool:
		return strconv.FormatBool(v.flag)

	case KindTime:
		if isMidnight(v.when) {
			return v.when.Format(DateLayout)
		}

		return v.when.Format(DateTimeLayout)

	default:
		return fmt.Sprint(v.ref)
	}
}

// String implements [fmt.Stringer] using [Value.Text].
func (v Value) String() string { return v.Text() }

// Truthy reports whether v counts as true in a condition.
// Empty strings, zero numbers, false, nil, and empty maps or lists are false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false

	case KindString:
		return v.str != ""

	case KindNumber:
		return v.num != 0

	case KindBool:
		return v.flag

	case KindMap, KindList:
		return v.Len() > 0

	default:
		return true
	}
}

// LogValue implements [slog.LogValuer].
func (v Value) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", v.kind.String()),
		slog.String("text", v.Text()),
	)
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()

	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// formatFloat renders f in shortest round-trip form, switching to exponent
// notation for very large or very small magnitudes.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"

	case math.IsInf(f, 1):
		return "inf"

	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

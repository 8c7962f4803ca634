package lang

import (
	"strconv"
	"strings"

	"github.com/ardnew/morph/value"
)

// Resolve follows the dot-separated path through data.
//
// Each segment is looked up as a map key, then as a list index when it is
// all ASCII digits and in range, then as an exported field or zero-argument
// method. The first segment that cannot be followed ends resolution with the
// empty string.
func Resolve(data any, path string) value.Value {
	v, ok := Lookup(data, path)
	if !ok {
		return value.String("")
	}

	return v
}

// Lookup is like [Resolve] but reports whether every segment of path was
// found.
func Lookup(data any, path string) (value.Value, bool) {
	cur := value.Of(data)

	for seg := range strings.SplitSeq(path, ".") {
		next, ok := child(cur, seg)
		if !ok {
			return value.Nil(), false
		}

		cur = next
	}

	return cur, true
}

func child(v value.Value, seg string) (value.Value, bool) {
	switch v.Kind() {
	case value.KindMap:
		return v.Key(seg)

	case value.KindList:
		if !digits(seg) {
			return value.Nil(), false
		}

		i, err := strconv.Atoi(seg)
		if err != nil {
			return value.Nil(), false
		}

		return v.Index(i)

	default:
		return v.Attr(seg)
	}
}

func digits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

package value

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Attributer is implemented by host objects that expose named attributes
// computed at lookup time.
type Attributer interface {
	Attr(name string) (any, bool)
}

// Key returns the child of a map Value stored under key.
// It reports false for missing keys and for non-map values.
func (v Value) Key(key string) (Value, bool) {
	if v.kind != KindMap {
		return Nil(), false
	}

	if m, ok := v.ref.(map[string]any); ok {
		child, ok := m[key]
		if !ok {
			return Nil(), false
		}

		return Of(child), true
	}

	rv := reflect.ValueOf(v.ref)
	kv := reflect.ValueOf(key).Convert(rv.Type().Key())

	child := rv.MapIndex(kv)
	if !child.IsValid() {
		return Nil(), false
	}

	return Of(child.Interface()), true
}

// Index returns the element of a list Value at position i.
// It reports false when i is out of range and for non-list values.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindList || i < 0 {
		return Nil(), false
	}

	if s, ok := v.ref.([]any); ok {
		if i >= len(s) {
			return Nil(), false
		}

		return Of(s[i]), true
	}

	rv := reflect.ValueOf(v.ref)
	if i >= rv.Len() {
		return Nil(), false
	}

	return Of(rv.Index(i).Interface()), true
}

// Attr returns the named attribute of an object Value.
//
// Lookup order is [Attributer], then an exported struct field matching name
// exactly, then one matching case-insensitively, then an exported method
// taking no arguments and returning one value (or a value and a nil error).
func (v Value) Attr(name string) (Value, bool) {
	if v.kind != KindObject || name == "" {
		return Nil(), false
	}

	if a, ok := v.ref.(Attributer); ok {
		child, ok := a.Attr(name)
		if !ok {
			return Nil(), false
		}

		return Of(child), true
	}

	if child, ok := field(reflect.ValueOf(v.ref), name); ok {
		return child, true
	}

	return method(reflect.ValueOf(v.ref), name)
}

func field(rv reflect.Value, name string) (Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Nil(), false
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return Nil(), false
	}

	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		sf, ok = rv.Type().FieldByNameFunc(func(s string) bool {
			return strings.EqualFold(s, name)
		})
	}

	if !ok || !sf.IsExported() {
		return Nil(), false
	}

	fv, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return Nil(), false
	}

	return Of(fv.Interface()), true
}

var errorType = reflect.TypeFor[error]()

func method(rv reflect.Value, name string) (Value, bool) {
	m := rv.MethodByName(name)
	if !m.IsValid() {
		return Nil(), false
	}

	t := m.Type()
	if t.NumIn() != 0 {
		return Nil(), false
	}

	switch {
	case t.NumOut() == 1:
		return Of(m.Call(nil)[0].Interface()), true

	case t.NumOut() == 2 && t.Out(1).Implements(errorType):
		out := m.Call(nil)
		if !out[1].IsNil() {
			return Nil(), false
		}

		return Of(out[0].Interface()), true
	}

	return Nil(), false
}

// Len returns the number of children of a map or list Value, and 0 for every
// other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindMap:
		if m, ok := v.ref.(map[string]any); ok {
			return len(m)
		}

		return reflect.ValueOf(v.ref).Len()

	case KindList:
		if s, ok := v.ref.([]any); ok {
			return len(s)
		}

		return reflect.ValueOf(v.ref).Len()

	default:
		return 0
	}
}

// Keys returns the names of the children of v in sorted order: map keys,
// list indices, or the exported field names of a struct object.
func (v Value) Keys() []string {
	var keys []string

	switch v.kind {
	case KindMap:
		iter := reflect.ValueOf(v.ref).MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}

		slices.Sort(keys)

	case KindList:
		for i := range v.Len() {
			keys = append(keys, strconv.Itoa(i))
		}

	case KindObject:
		rv := reflect.ValueOf(v.ref)
		for rv.Kind() == reflect.Pointer && !rv.IsNil() {
			rv = rv.Elem()
		}

		if rv.Kind() != reflect.Struct {
			return nil
		}

		t := rv.Type()
		for i := range t.NumField() {
			if sf := t.Field(i); sf.IsExported() && !sf.Anonymous {
				keys = append(keys, sf.Name)
			}
		}

		slices.Sort(keys)
	}

	return keys
}

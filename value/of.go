package value

import (
	"reflect"
	"time"
)

// Of classifies an arbitrary Go value. It never fails: anything that is not a
// scalar, a time, a string-keyed map, or a sequence becomes [KindObject].
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Nil()
	case Value:
		return x
	case *Value:
		if x == nil {
			return Nil()
		}

		return *x
	case string:
		return String(x)
	case []byte:
		if x == nil {
			return Nil()
		}

		return Value{kind: KindString, str: string(x), ref: v}
	case bool:
		return Bool(x)
	case int:
		return integer(x, v)
	case int8:
		return integer(x, v)
	case int16:
		return integer(x, v)
	case int32:
		return integer(x, v)
	case int64:
		return integer(x, v)
	case uint:
		return unsigned(x, v)
	case uint8:
		return unsigned(x, v)
	case uint16:
		return unsigned(x, v)
	case uint32:
		return unsigned(x, v)
	case uint64:
		return unsigned(x, v)
	case float32:
		n := Number(float64(x))
		n.ref = v

		return n
	case float64:
		return Number(x)
	case time.Time:
		return Time(x)
	case *time.Time:
		if x == nil {
			return Nil()
		}

		return Time(*x)
	case map[string]any:
		if x == nil {
			return Nil()
		}

		return Value{kind: KindMap, ref: x}
	case []any:
		if x == nil {
			return Nil()
		}

		return Value{kind: KindList, ref: x}
	}

	return reflected(reflect.ValueOf(v))
}

var timeType = reflect.TypeFor[time.Time]()

// reflected classifies named types and containers the fast path in [Of]
// does not recognize.
func reflected(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Invalid:
		return Nil()

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Nil()
		}

		// Pointers to structs stay objects so their methods remain reachable.
		if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Struct &&
			!rv.Elem().Type().ConvertibleTo(timeType) {
			return Value{kind: KindObject, ref: rv.Interface()}
		}

		return Of(rv.Elem().Interface())

	case reflect.Map:
		if rv.IsNil() {
			return Nil()
		}

		if rv.Type().Key().Kind() == reflect.String {
			return Value{kind: KindMap, ref: rv.Interface()}
		}

	case reflect.Slice:
		if rv.IsNil() {
			return Nil()
		}

		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Value{kind: KindString, str: string(rv.Bytes()), ref: rv.Interface()}
		}

		return Value{kind: KindList, ref: rv.Interface()}

	case reflect.Array:
		return Value{kind: KindList, ref: rv.Interface()}

	case reflect.String:
		return Value{kind: KindString, str: rv.String(), ref: rv.Interface()}

	case reflect.Bool:
		return Value{kind: KindBool, flag: rv.Bool(), ref: rv.Interface()}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integer(rv.Int(), rv.Interface())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return unsigned(rv.Uint(), rv.Interface())

	case reflect.Float32, reflect.Float64:
		n := Number(rv.Float())
		n.ref = rv.Interface()

		return n

	case reflect.Struct:
		if rv.Type().ConvertibleTo(timeType) {
			t, _ := rv.Convert(timeType).Interface().(time.Time)

			return Value{kind: KindTime, when: t, ref: rv.Interface()}
		}
	}

	return Value{kind: KindObject, ref: rv.Interface()}
}

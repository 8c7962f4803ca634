package value_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/morph/value"
)

type address struct {
	City string
	zip  string
}

type customer struct {
	Name    string
	Address *address
	Tags    []string
}

func (c customer) Greeting() string { return "hello " + c.Name }

func (c customer) Broken() (string, error) { return "", errors.New("broken") }

type label string

type lookup struct{ m map[string]string }

func (l lookup) Attr(name string) (any, bool) {
	v, ok := l.m[name]

	return v, ok
}

func TestOf_Kind(t *testing.T) {
	var (
		nilMap   map[string]any
		nilSlice []int
		nilPtr   *customer
		when     = time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	)

	tests := []struct {
		name string
		in   any
		want value.Kind
	}{
		{"nil", nil, value.KindNil},
		{"nil_map", nilMap, value.KindNil},
		{"nil_slice", nilSlice, value.KindNil},
		{"nil_pointer", nilPtr, value.KindNil},
		{"string", "x", value.KindString},
		{"named_string", label("x"), value.KindString},
		{"bytes", []byte("x"), value.KindString},
		{"int", 1, value.KindNumber},
		{"uint8", uint8(1), value.KindNumber},
		{"float32", float32(1.5), value.KindNumber},
		{"bool", true, value.KindBool},
		{"time", when, value.KindTime},
		{"time_pointer", &when, value.KindTime},
		{"map_any", map[string]any{"a": 1}, value.KindMap},
		{"map_typed", map[string]int{"a": 1}, value.KindMap},
		{"map_int_keys", map[int]string{1: "a"}, value.KindObject},
		{"slice_any", []any{1}, value.KindList},
		{"slice_typed", []string{"a"}, value.KindList},
		{"array", [2]int{1, 2}, value.KindList},
		{"struct", customer{}, value.KindObject},
		{"struct_pointer", &customer{}, value.KindObject},
		{"func", func() {}, value.KindObject},
		{"value", value.String("x"), value.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Of(tt.in).Kind())
		})
	}
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"int", 1, "1"},
		{"negative_int", int64(-42), "-42"},
		{"uint64", uint64(18446744073709551615), "18446744073709551615"},
		{"float", 1.5, "1.5"},
		{"integral_float", 10.0, "10"},
		{"small_float", 0.00001, "1e-05"},
		{"large_float", 1e21, "1e+21"},
		{"bool", false, "false"},
		{"date", time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), "2025-10-05"},
		{"datetime", time.Date(2025, 10, 5, 2, 40, 0, 0, time.UTC), "2025-10-05 02:40:00"},
		{"list", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, value.Of(tt.in).Text())
		})
	}
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{"", false},
		{"x", true},
		{"false", true},
		{0, false},
		{0.0, false},
		{-1, true},
		{false, false},
		{true, true},
		{map[string]any{}, false},
		{map[string]any{"a": 1}, true},
		{[]int{}, false},
		{[]int{0}, true},
		{time.Time{}, true},
		{customer{}, true},
	}

	for _, tt := range tests {
		t.Run(value.Of(tt.in).Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, value.Of(tt.in).Truthy(), "%#v", tt.in)
		})
	}
}

func TestValue_Key(t *testing.T) {
	v := value.Of(map[string]any{"a": 1, "n": nil})

	got, ok := v.Key("a")
	require.True(t, ok)
	assert.Equal(t, "1", got.Text())

	got, ok = v.Key("n")
	require.True(t, ok)
	assert.True(t, got.IsNil())

	_, ok = v.Key("missing")
	assert.False(t, ok)

	typed := value.Of(map[label]int{"b": 2})
	got, ok = typed.Key("b")
	require.True(t, ok)
	assert.Equal(t, "2", got.Text())

	_, ok = value.String("a").Key("a")
	assert.False(t, ok)
}

func TestValue_Index(t *testing.T) {
	v := value.Of([]string{"x", "y"})

	got, ok := v.Index(1)
	require.True(t, ok)
	assert.Equal(t, "y", got.Text())

	_, ok = v.Index(2)
	assert.False(t, ok)

	_, ok = v.Index(-1)
	assert.False(t, ok)

	arr := value.Of([2]int{7, 8})
	got, ok = arr.Index(0)
	require.True(t, ok)
	assert.Equal(t, "7", got.Text())
}

func TestValue_Attr(t *testing.T) {
	c := &customer{Name: "Ada", Address: &address{City: "Paris", zip: "75000"}}
	v := value.Of(c)

	got, ok := v.Attr("Name")
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Text())

	got, ok = v.Attr("name")
	require.True(t, ok, "case-insensitive field lookup")
	assert.Equal(t, "Ada", got.Text())

	addr, ok := v.Attr("address")
	require.True(t, ok)
	city, ok := addr.Attr("city")
	require.True(t, ok)
	assert.Equal(t, "Paris", city.Text())

	_, ok = addr.Attr("zip")
	assert.False(t, ok, "unexported fields are hidden")

	got, ok = v.Attr("Greeting")
	require.True(t, ok)
	assert.Equal(t, "hello Ada", got.Text())

	_, ok = v.Attr("Broken")
	assert.False(t, ok)

	_, ok = v.Attr("missing")
	assert.False(t, ok)

	got, ok = value.Of(lookup{m: map[string]string{"k": "v"}}).Attr("k")
	require.True(t, ok)
	assert.Equal(t, "v", got.Text())
}

func TestValue_Keys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, value.Of(map[string]int{"b": 1, "a": 2}).Keys())
	assert.Equal(t, []string{"0", "1"}, value.Of([]int{5, 6}).Keys())
	assert.Equal(t, []string{"Address", "Name", "Tags"}, value.Of(customer{}).Keys())
	assert.Nil(t, value.String("x").Keys())
}

func TestValue_Accessors(t *testing.T) {
	s, ok := value.Of("x").Str()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = value.Of(1).Str()
	assert.False(t, ok)

	f, ok := value.Of(int32(3)).Float()
	assert.True(t, ok)
	assert.InDelta(t, 3.0, f, 0)

	b, ok := value.Of(true).Bool()
	assert.True(t, ok)
	assert.True(t, b)

	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	got, ok := value.Of(when).Time()
	assert.True(t, ok)
	assert.True(t, when.Equal(got))

	assert.Equal(t, int16(4), value.Of(int16(4)).Interface())
	assert.Equal(t, "time", value.KindTime.String())
	assert.Equal(t, "Kind(99)", value.Kind(99).String())
}

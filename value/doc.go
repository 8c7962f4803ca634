// Package value defines the tagged value type shared by the template
// evaluator and the value formatter.
//
// Every context leaf and every evaluation result is a [Value]. A Value has
// one [Kind] and converts to text totally via [Value.Text], so evaluation
// never needs to type-switch on arbitrary Go values.
//
// # Classification
//
// [Of] classifies an arbitrary Go value:
//
//   - nil, nil pointers, nil maps and nil slices are [KindNil]
//   - string and []byte are [KindString]
//   - every integer and float kind is [KindNumber]
//   - bool is [KindBool]
//   - time.Time and *time.Time are [KindTime]
//   - maps keyed by a string kind are [KindMap]
//   - slices and arrays are [KindList]
//   - everything else (structs, pointers to structs, funcs) is [KindObject]
//
// # Children
//
// Maps expose children with [Value.Key], lists with [Value.Index], and
// objects with [Value.Attr]. Attribute access reads exported struct fields,
// first by exact name and then case-insensitively, or defers to the object
// when it implements [Attributer].
package value

// Package data assembles the context a template is rendered against.
//
// A context is a map[string]any built from zero or more documents followed by
// zero or more assignments:
//
//   - Documents are YAML, JSON or TOML files chosen by extension. The name "-"
//     reads YAML (or JSON) from standard input. Later documents are merged
//     over earlier ones; nested mappings merge key by key and any other value
//     is replaced.
//   - Assignments have the form key.path=text, which stores text as a string,
//     or key.path:=expression, which stores the result of an expr-lang
//     expression evaluated against the context built so far.
//
// Relative document names that do not exist in the working directory are
// looked up in each directory of the search path.
package data

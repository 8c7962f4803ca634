package lang

//go:generate go tool stringer --linecomment --type Func --output func_string.go

import "strings"

// Func identifies a built-in template function.
type Func int

const (
	FuncIf     Func = iota // if
	FuncFormat             // format
)

// Funcs returns the built-in functions in dispatch order.
func Funcs() []Func { return []Func{FuncIf, FuncFormat} }

// Arity returns the exact number of arguments f accepts.
func (f Func) Arity() int {
	switch f {
	case FuncIf:
		return 3
	case FuncFormat:
		return 2
	default:
		return 0
	}
}

// Signature returns a short usage string for f.
func (f Func) Signature() string {
	switch f {
	case FuncIf:
		return "if(cond, then, else)"
	case FuncFormat:
		return "format(value, 'pattern')"
	default:
		return f.String() + "()"
	}
}

// call reports whether expr is a call to a built-in function and returns the
// text between its first '(' and its final ')'.
//
// Only the prefix and suffix are checked, so format($a,'0.0') + format($b,'0.0')
// is one call to format whose inner text has three arguments.
func call(expr string) (Func, string, bool) {
	for _, f := range Funcs() {
		open := len(f.String())
		if !strings.HasPrefix(expr, f.String()+"(") ||
			!strings.HasSuffix(expr, ")") || len(expr) < open+2 {
			continue
		}

		return f, expr[open+1 : len(expr)-1], true
	}

	return 0, "", false
}

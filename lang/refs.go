package lang

import "strings"

// Reference is a data path used by a template.
type Reference struct {
	// Path is the dotted path without the leading '$'.
	Path string
	// Pattern is the first format() pattern applied directly to the path.
	Pattern string
	// Cond is set when the path is used as an if() condition.
	Cond bool
}

// References returns the data paths referenced by template in order of first
// appearance, without evaluating anything. Calls with the wrong number of
// arguments contribute no references.
func References(template string) []Reference {
	w := walker{index: map[string]int{}}

	for p := range Placeholders(template) {
		w.walk(p.Expr, "", false)
	}

	return w.refs
}

type walker struct {
	index map[string]int
	refs  []Reference
}

func (w *walker) walk(expr, pattern string, cond bool) {
	expr = strings.TrimSpace(expr)

	if fn, inner, ok := call(expr); ok {
		args, _ := split(inner, ',')
		if len(args) != fn.Arity() {
			return
		}

		switch fn {
		case FuncIf:
			w.walk(args[0], "", true)
			w.walk(args[1], pattern, cond)
			w.walk(args[2], pattern, cond)

		case FuncFormat:
			p := ""
			if _, ok := literal(args[1]); ok {
				p = strings.Trim(args[1], `"'`)
			}

			w.walk(args[0], p, cond)
		}

		return
	}

	if terms, ok := split(expr, '+'); ok {
		for _, term := range terms {
			w.walk(term, "", cond)
		}

		return
	}

	if _, ok := literal(expr); ok {
		return
	}

	if path, ok := strings.CutPrefix(expr, "$"); ok {
		w.add(Reference{Path: path, Pattern: pattern, Cond: cond})
	}
}

func (w *walker) add(ref Reference) {
	i, ok := w.index[ref.Path]
	if !ok {
		w.index[ref.Path] = len(w.refs)
		w.refs = append(w.refs, ref)

		return
	}

	if w.refs[i].Pattern == "" {
		w.refs[i].Pattern = ref.Pattern
	}

	w.refs[i].Cond = w.refs[i].Cond || ref.Cond
}

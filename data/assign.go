package data

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
)

// Assign applies one assignment to data.
//
// key.path=text stores text verbatim. key.path:=source stores the result of
// evaluating source with expr-lang, using data as the environment.
// Intermediate mappings are created as needed. A nil data is an error.
func Assign(data map[string]any, spec string) error {
	if data == nil {
		return ErrAssign.Wrap(errors.New("nil context")).With(slog.String("spec", spec))
	}

	key, src, ok := strings.Cut(spec, "=")
	if !ok {
		return ErrAssign.Wrap(fmt.Errorf("missing '=' in %q", spec))
	}

	var v any = src

	if k, isExpr := strings.CutSuffix(key, ":"); isExpr {
		out, err := Eval(src, data)
		if err != nil {
			return err
		}

		key, v = k, out
	}

	return set(data, strings.TrimSpace(key), v)
}

// Eval evaluates an expr-lang expression with env as its environment.
func Eval(source string, env map[string]any) (any, error) {
	if env == nil {
		env = map[string]any{}
	}

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, ErrAssign.Wrap(err).With(slog.String("source", source))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, ErrAssign.Wrap(err).With(slog.String("source", source))
	}

	return out, nil
}

func set(data map[string]any, key string, v any) error {
	path := strings.Split(key, ".")
	for _, seg := range path {
		if seg == "" {
			return ErrAssign.Wrap(fmt.Errorf("empty segment in key %q", key))
		}
	}

	m := data

	for _, seg := range path[:len(path)-1] {
		next, ok := m[seg]
		if !ok {
			child := map[string]any{}
			m[seg] = child
			m = child

			continue
		}

		child, ok := next.(map[string]any)
		if !ok {
			return ErrAssign.Wrap(fmt.Errorf("%q in key %q is not a mapping", seg, key))
		}

		m = child
	}

	m[path[len(path)-1]] = v

	return nil
}

// Merge merges src into dst. Mappings present in both are merged
// recursively; any other value in src replaces the one in dst.
func Merge(dst, src map[string]any) {
	for k, sv := range src {
		sm, ok := sv.(map[string]any)
		if !ok {
			dst[k] = sv

			continue
		}

		dm, ok := dst[k].(map[string]any)
		if !ok {
			dm = map[string]any{}
			dst[k] = dm
		}

		Merge(dm, sm)
	}
}

package lang

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/morph/format"
	"github.com/ardnew/morph/value"
)

// unquotedPattern replaces the result of format() when its pattern argument
// is not a quoted literal.
const unquotedPattern = "value|format pattern must be quoted, e.g. 'DD.MM.YYYY'"

// evaluator carries the state of one placeholder evaluation.
type evaluator struct {
	*Renderer

	ctx  context.Context
	root value.Value
}

// eval classifies and evaluates expr.
//
// raw suppresses the default date format for references. It is set while
// evaluating the value argument of format() so the pattern sees the date
// itself rather than its pre-formatted text.
func (e *evaluator) eval(expr string, raw bool) (value.Value, error) {
	expr = strings.TrimSpace(expr)

	if fn, inner, ok := call(expr); ok {
		return e.apply(fn, inner, raw)
	}

	if terms, ok := split(expr, '+'); ok {
		return e.concat(terms, raw)
	}

	if lit, ok := literal(expr); ok {
		return value.String(lit), nil
	}

	if path, ok := strings.CutPrefix(expr, "$"); ok {
		return e.reference(path, raw), nil
	}

	return value.String(expr), nil
}

func (e *evaluator) apply(fn Func, inner string, raw bool) (value.Value, error) {
	args, _ := split(inner, ',')

	if len(args) != fn.Arity() {
		return value.Nil(), ErrArgCount.Wrap(
			fmt.Errorf("%s() requires exactly %d arguments", fn, fn.Arity()),
		).With(
			slog.String("func", fn.String()),
			slog.Int("args", len(args)),
		)
	}

	switch fn {
	case FuncIf:
		return e.cond(args, raw)

	case FuncFormat:
		return e.format(args)

	default:
		return value.String(inner), nil
	}
}

// cond evaluates exactly one of the two branches.
func (e *evaluator) cond(args []string, raw bool) (value.Value, error) {
	test, err := e.eval(args[0], raw)
	if err != nil {
		return value.Nil(), err
	}

	branch := args[2]
	if test.Truthy() {
		branch = args[1]
	}

	return e.eval(branch, raw)
}

func (e *evaluator) format(args []string) (value.Value, error) {
	v, err := e.eval(args[0], true)
	if err != nil {
		return value.Nil(), err
	}

	if _, ok := literal(args[1]); !ok {
		return value.String(unquotedPattern), nil
	}

	pattern := strings.Trim(args[1], `"'`)

	out, err := format.Render(pattern, v)
	if err != nil {
		e.logger.TraceContext(e.ctx, "format failed",
			slog.String("pattern", pattern),
			slog.Any("value", v),
			slog.String("error", err.Error()),
		)

		return value.String("value|" + err.Error()), nil
	}

	return value.String(out), nil
}

func (e *evaluator) concat(terms []string, raw bool) (value.Value, error) {
	var sb strings.Builder

	for _, term := range terms {
		v, err := e.eval(term, raw)
		if err != nil {
			return value.Nil(), err
		}

		sb.WriteString(v.Text())
	}

	return value.String(sb.String()), nil
}

func (e *evaluator) reference(path string, raw bool) value.Value {
	v := Resolve(e.root, path)

	if raw || e.config.DefaultDateFormat == "" {
		return v
	}

	if t, ok := v.Time(); ok {
		return value.String(format.DateTime(e.config.DefaultDateFormat, t))
	}

	return v
}

// literal returns the text between matching outer quotes. A lone quote
// character is a literal empty string.
func literal(expr string) (string, bool) {
	if expr == "" {
		return "", false
	}

	q := expr[0]
	if (q != '"' && q != '\'') || expr[len(expr)-1] != q {
		return "", false
	}

	if len(expr) == 1 {
		return "", true
	}

	return expr[1 : len(expr)-1], true
}

package lang

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/morph/log"
	"github.com/ardnew/morph/value"
)

// Renderer evaluates templates against a data context.
// A Renderer is immutable after construction and safe for concurrent use.
type Renderer struct {
	logger log.Logger
	config Config
}

// New returns a [Renderer] configured by opts.
// The zero configuration has no default date format and does not log.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config { return r.config }

// Render replaces every placeholder in template with its evaluated text.
// Failed placeholders render as {{ERROR: <message>}}.
func (r *Renderer) Render(ctx context.Context, template string, data any) string {
	root := value.Of(data)

	var sb strings.Builder

	sb.Grow(len(template))

	last := 0

	for p := range Placeholders(template) {
		sb.WriteString(template[last:p.Start])
		sb.WriteString(r.placeholder(ctx, p, root))

		last = p.End
	}

	sb.WriteString(template[last:])

	return sb.String()
}

// Eval evaluates a single expression, without delimiters, against data.
func (r *Renderer) Eval(
	ctx context.Context,
	expr string,
	data any,
) (value.Value, error) {
	e := evaluator{ctx: ctx, root: value.Of(data), Renderer: r}

	return e.eval(expr, false)
}

func (r *Renderer) placeholder(
	ctx context.Context,
	p Placeholder,
	root value.Value,
) string {
	e := evaluator{ctx: ctx, root: root, Renderer: r}

	v, err := e.eval(p.Expr, false)
	if err != nil {
		r.logger.DebugContext(ctx, "placeholder failed",
			slog.Int("offset", p.Start),
			slog.String("expr", p.Expr),
			slog.Any("error", WrapError(err)),
		)

		return Open + "ERROR: " + err.Error() + Close
	}

	r.logger.TraceContext(ctx, "placeholder",
		slog.Int("offset", p.Start),
		slog.String("expr", p.Expr),
		slog.Any("value", v),
	)

	return v.Text()
}

// Render renders template against data with a renderer configured by opts.
func Render(template string, data any, opts ...Option) string {
	return New(opts...).Render(context.Background(), template, data)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/morph/format"
	"github.com/ardnew/morph/lang"
)

// Format formats each value with a pattern, one result per line.
type Format struct {
	Pattern string   `arg:"" help:"Format pattern such as '0.00' or 'DD.MM.YYYY'"`
	Values  []string `arg:"" help:"Values to format; '$path' reads a value from the loaded data"`
	Percent bool     `       help:"Scale values by 100 and append a percent sign"`
}

// Run executes the format command.
func (f *Format) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	opts := optionsFrom(ctx)

	var ctxData map[string]any

	render := format.Render
	if f.Percent {
		render = format.Percent
	}

	for _, arg := range f.Values {
		var v any = arg

		if path, ok := strings.CutPrefix(arg, "$"); ok {
			if ctxData == nil {
				if ctxData, err = opts.load(ctx); err != nil {
					return err
				}
			}

			v = lang.Resolve(ctxData, path)
		}

		out, err := render(f.Pattern, v)
		if err != nil {
			return ErrFormat.Wrap(err).With(
				slog.String("pattern", f.Pattern),
				slog.String("value", arg),
			)
		}

		if _, err := fmt.Fprintln(opts.Stdout, out); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}

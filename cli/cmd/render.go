package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ardnew/morph/data"
)

// defaultFileMode is the permission mode for files written by commands.
const defaultFileMode os.FileMode = 0o644

// Render renders a template against the loaded context.
type Render struct {
	Template string        `arg:"" default:"-"  help:"Template file or '-' for stdin"                     optional:""`
	Text     string        `                    help:"Inline template text used instead of a file"        short:"t"`
	Output   string        `                    help:"Write output to file instead of stdout"             short:"o" type:"path"`
	Watch    bool          `                    help:"Render again whenever the template or data changes" short:"w"`
	Interval time.Duration `default:"1s"        help:"Polling interval when file events are unavailable"`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	opts := optionsFrom(ctx)

	if r.Watch {
		return r.watch(ctx, opts)
	}

	return r.render(ctx, opts)
}

func (r *Render) render(ctx context.Context, opts Options) error {
	tpl, err := opts.template(r.Template, r.Text)
	if err != nil {
		return err
	}

	ctxData, err := opts.load(ctx)
	if err != nil {
		return err
	}

	out := opts.renderer().Render(ctx, tpl, ctxData)

	if r.Output == "" {
		return write(opts.Stdout, out)
	}

	if err := os.WriteFile(r.Output, []byte(out), defaultFileMode); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("file", r.Output))
	}

	opts.Logger.DebugContext(ctx, "rendered",
		slog.String("output", r.Output),
		slog.Int("bytes", len(out)),
	)

	return nil
}

// watch renders once, then again after every change to a watched file, until
// ctx is done. Failed renders are logged so that the next edit can fix them.
func (r *Render) watch(ctx context.Context, opts Options) error {
	paths, err := r.watched(opts)
	if err != nil {
		return err
	}

	opts.Logger.InfoContext(ctx, "watching", slog.Any("files", paths))

	changes := watch(ctx, paths, r.Interval, opts.Logger)

	for {
		if err := r.render(ctx, opts); err != nil {
			opts.Logger.ErrorContext(ctx, "render failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			return nil

		case path, ok := <-changes:
			if !ok {
				return nil
			}

			settle(ctx, changes, settleDelay)

			opts.Logger.DebugContext(ctx, "changed", slog.String("file", path))
		}
	}
}

// watched returns the absolute paths of the template and data files.
// Standard input cannot be watched.
func (r *Render) watched(opts Options) ([]string, error) {
	names := opts.files()
	if r.Text == "" {
		names = append([]string{r.Template}, names...)
	}

	paths := make([]string, 0, len(names))

	for _, name := range names {
		if name == data.Stdin {
			return nil, ErrWatch.Wrap(ErrWatchStdin)
		}

		path, err := filepath.Abs(data.Find(name, opts.Search))
		if err != nil {
			return nil, ErrWatch.Wrap(err).With(slog.String("file", name))
		}

		paths = append(paths, path)
	}

	return paths, nil
}

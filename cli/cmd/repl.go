package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/morph/cli/cmd/repl"
	"github.com/ardnew/morph/lang"
)

// Repl evaluates expressions interactively against the loaded data.
type Repl struct {
	NoHistory bool `help:"Do not read or write the history file"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	opts := optionsFrom(ctx)

	data, err := opts.load(ctx)
	if err != nil {
		return err
	}

	var cacheDir string
	if !r.NoHistory {
		cacheDir = kongContextFrom(ctx).Model.Vars()[CacheIdentifier]
	}

	opts.Logger.DebugContext(ctx, "starting repl",
		slog.String("history_dir", cacheDir),
	)

	return repl.Run(ctx, data, lang.Config{DefaultDateFormat: opts.DateFormat},
		cacheDir, opts.Logger)
}

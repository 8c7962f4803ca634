package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/morph/data"
	"github.com/ardnew/morph/lang"
	"github.com/ardnew/morph/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Options are the global settings shared by every command.
type Options struct {
	// Stdin is read for the name "-". Defaults to [os.Stdin].
	Stdin io.Reader
	// Stdout receives command output. Defaults to [os.Stdout].
	Stdout io.Writer
	// Logger is handed to the loader and renderer. Defaults to [log.Default].
	Logger log.Logger
	// DateFormat is the pattern applied to dates referenced outside format().
	DateFormat string
	// Data lists the context documents in merge order.
	Data []string
	// Set lists assignments applied over the merged documents.
	Set []string
	// Search lists directories searched for relative file names.
	Search []string
}

type optionsKey struct{}

// WithOptions returns a new context.Context containing opts.
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// optionsFrom returns the [Options] stored in ctx with defaults filled in.
func optionsFrom(ctx context.Context) Options {
	opts, _ := ctx.Value(optionsKey{}).(Options)

	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	if opts.Logger.Logger == nil {
		opts.Logger = log.Default()
	}

	return opts
}

// renderer returns a renderer configured by o.
func (o Options) renderer() *lang.Renderer {
	return lang.New(
		lang.WithDefaultDateFormat(o.DateFormat),
		lang.WithLogger(o.Logger),
	)
}

// load builds the context from the data files and assignments in o.
func (o Options) load(ctx context.Context) (map[string]any, error) {
	return data.Load(ctx,
		data.WithFiles(o.files()...),
		data.WithSearchPath(o.Search...),
		data.WithAssignments(o.Set...),
		data.WithStdin(o.Stdin),
		data.WithLogger(o.Logger),
	)
}

// files returns the data file names with duplicates removed.
func (o Options) files() []string {
	return uniqueFiles(o.Data, o.Search)
}

// read returns the contents of the named file, or of [Options.Stdin] for "-".
func (o Options) read(name string) ([]byte, error) {
	if name == data.Stdin {
		return io.ReadAll(o.Stdin)
	}

	return os.ReadFile(data.Find(name, o.Search))
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueFiles returns names with later references to an already named file
// removed. Files are compared by device and inode after resolving the search
// path and symlinks. Every "-" collapses into a single entry placed last, so
// standard input merges over all regular files. Names that cannot be
// resolved are kept, so that loading reports them.
func uniqueFiles(names, search []string) []string {
	if len(names) == 0 {
		return nil
	}

	unique := make([]string, 0, len(names))
	seen := make(map[fileKey]struct{})
	stdin := false

	for _, name := range names {
		if name == data.Stdin {
			stdin = true

			continue
		}

		key, ok := resolveFileKey(data.Find(name, search))
		if ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		unique = append(unique, name)
	}

	if stdin {
		unique = append(unique, data.Stdin)
	}

	return unique
}

// resolveFileKey returns the device/inode pair of the file at path after
// resolving it to an absolute path without symlinks.
func resolveFileKey(path string) (fileKey, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	return makeFileKey(info)
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}

// template returns the template text: text when set, otherwise the contents
// of the named file.
func (o Options) template(name, text string) (string, error) {
	if text != "" {
		return text, nil
	}

	if name == data.Stdin && slices.Contains(o.Data, data.Stdin) {
		return "", ErrStdinReused.With(slog.String("template", name))
	}

	src, err := o.read(name)
	if err != nil {
		return "", ErrReadTemplate.Wrap(err).With(slog.String("template", name))
	}

	return string(src), nil
}

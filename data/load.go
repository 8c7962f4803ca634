package data

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/morph/log"
)

// Stdin is the document name that reads standard input.
const Stdin = "-"

// Loader builds a context from documents and assignments.
type Loader struct {
	stdin  io.Reader
	logger log.Logger
	files  []string
	search []string
	assign []string
}

// Option configures a [Loader].
type Option func(*Loader)

// WithFiles appends documents to load, in merge order.
func WithFiles(names ...string) Option {
	return func(l *Loader) { l.files = append(l.files, names...) }
}

// WithSearchPath appends directories searched for relative document names.
func WithSearchPath(dirs ...string) Option {
	return func(l *Loader) { l.search = append(l.search, dirs...) }
}

// WithAssignments appends assignments applied after all documents.
func WithAssignments(specs ...string) Option {
	return func(l *Loader) { l.assign = append(l.assign, specs...) }
}

// WithStdin sets the reader used for the document named [Stdin].
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New returns a [Loader] configured by opts.
func New(opts ...Option) *Loader {
	l := &Loader{stdin: os.Stdin}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load builds a context with a [Loader] configured by opts.
func Load(ctx context.Context, opts ...Option) (map[string]any, error) {
	return New(opts...).Load(ctx)
}

// Load reads and merges every document, then applies every assignment.
// The result is never nil when err is nil.
func (l *Loader) Load(ctx context.Context) (map[string]any, error) {
	data := map[string]any{}

	for _, name := range l.files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := l.document(ctx, name)
		if err != nil {
			return nil, err
		}

		Merge(data, doc)
	}

	for _, spec := range l.assign {
		if err := Assign(data, spec); err != nil {
			return nil, err
		}

		l.logger.TraceContext(ctx, "assigned", slog.String("spec", spec))
	}

	return data, nil
}

func (l *Loader) document(ctx context.Context, name string) (map[string]any, error) {
	var (
		src  []byte
		err  error
		path = name
	)

	if name == Stdin {
		src, err = io.ReadAll(l.stdin)
	} else {
		path = Find(name, l.search)
		src, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, ErrOpen.Wrap(err).With(slog.String("name", name))
	}

	doc, err := DecoderFor(path)(src)
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	l.logger.DebugContext(ctx, "loaded document",
		slog.String("path", path),
		slog.Int("keys", len(doc)),
	)

	return doc, nil
}

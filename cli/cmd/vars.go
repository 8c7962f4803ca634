package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/morph/lang"
)

const (
	// suggestDepth bounds how deep --check looks for similar paths.
	suggestDepth = 8
	// suggestCount is the number of similar paths reported per miss.
	suggestCount = 3
	// schemaIndent is the indentation of --schema output.
	schemaIndent = "  "
)

// Vars lists the data paths a template references.
type Vars struct {
	Template string `arg:"" default:"-" help:"Template file or '-' for stdin"              optional:""`
	Text     string `                   help:"Inline template text used instead of a file" short:"t"`

	Check  bool `help:"Resolve each path against the loaded data and report misses" xor:"mode"`
	Schema bool `help:"Print a JSON Schema of the data the template needs"         xor:"mode"`
	YAML   bool `help:"Print a YAML skeleton of the data the template needs"       xor:"mode" name:"yaml"`
}

// Run executes the vars command.
func (v *Vars) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	opts := optionsFrom(ctx)

	tpl, err := opts.template(v.Template, v.Text)
	if err != nil {
		return err
	}

	refs := lang.References(tpl)

	switch {
	case v.Check:
		return v.check(ctx, opts, refs)

	case v.Schema:
		s := shapeOf(refs).schema()
		s.Version = jsonschema.Version

		out, err := json.MarshalIndent(s, "", schemaIndent)
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		return write(opts.Stdout, string(out)+"\n")

	case v.YAML:
		out, err := yaml.MarshalWithOptions(
			shapeOf(refs).skeleton(),
			yaml.Indent(len(schemaIndent)),
			yaml.IndentSequence(true),
		)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		return write(opts.Stdout, string(out))
	}

	var b strings.Builder

	for _, ref := range refs {
		b.WriteString(ref.Path)

		if ref.Pattern != "" {
			fmt.Fprintf(&b, "\t%s", ref.Pattern)
		}

		if ref.Cond {
			b.WriteString("\t(condition)")
		}

		b.WriteByte('\n')
	}

	return write(opts.Stdout, b.String())
}

// check reports every reference missing from the loaded data, with similar
// paths that do exist.
func (v *Vars) check(ctx context.Context, opts Options, refs []lang.Reference) error {
	ctxData, err := opts.load(ctx)
	if err != nil {
		return err
	}

	var (
		b       strings.Builder
		missing []string
		known   []string
	)

	for _, ref := range refs {
		if _, ok := lang.Lookup(ctxData, ref.Path); ok {
			fmt.Fprintf(&b, "ok\t%s\n", ref.Path)

			continue
		}

		missing = append(missing, ref.Path)

		if known == nil {
			known = paths(ctxData, suggestDepth)
		}

		fmt.Fprintf(&b, "missing\t%s", ref.Path)

		if similar := suggest(ref.Path, known); len(similar) > 0 {
			fmt.Fprintf(&b, "\t(did you mean %s?)", strings.Join(similar, ", "))
		}

		b.WriteByte('\n')
	}

	if err := write(opts.Stdout, b.String()); err != nil {
		return err
	}

	if len(missing) > 0 {
		return ErrUnresolved.With(slog.Any("paths", missing))
	}

	return nil
}

// suggest returns up to suggestCount paths from known that fuzzily match
// path, best first.
func suggest(path string, known []string) []string {
	matches := fuzzy.Find(path, known)

	out := make([]string, 0, min(len(matches), suggestCount))
	for _, m := range matches[:min(len(matches), suggestCount)] {
		out = append(out, m.Str)
	}

	return out
}

func write(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

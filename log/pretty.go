package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// styles colors log output for the terminal behind one writer. Writers that
// are not terminals get a renderer without colors.
type styles struct {
	key, str, num, on, off, when, null lipgloss.Style
	level                              map[slog.Level]lipgloss.Style
}

func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &styles{
		key:  fg("8"),
		str:  fg("6"),
		num:  fg("3"),
		on:   fg("2"),
		off:  fg("1"),
		when: fg("4"),
		null: fg("8"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("5"),
			slog.LevelDebug:        fg("4"),
			slog.LevelInfo:         fg("2").Bold(true),
			slog.LevelWarn:         fg("3").Bold(true),
			slog.LevelError:        fg("1").Bold(true),
		},
	}
}

func (s *styles) forLevel(l slog.Level) lipgloss.Style {
	for _, at := range []slog.Level{
		slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug,
	} {
		if l >= at {
			return s.level[at]
		}
	}

	return s.level[slog.Level(LevelTrace)]
}

// prettyHandler writes one styled record per line in text format, or one
// indented object per record in JSON format.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	styles *styles
	attrs  []slog.Attr
	group  string
	format Format
}

func newPrettyHandler(
	w io.Writer,
	format Format,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		styles: newStyles(w),
		format: format,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], h.qualify(attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.group = h.prefix(name)

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		fields = h.builtin(fields, slog.Time(slog.TimeKey, r.Time))
	}

	fields = h.builtin(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = append(fields,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	var own []slog.Attr

	r.Attrs(func(a slog.Attr) bool {
		own = append(own, a)

		return true
	})

	fields = append(fields, h.qualify(own)...)

	var buf bytes.Buffer

	if h.format == FormatJSON {
		h.writeObject(&buf, r.Level, fields)
	} else {
		h.writeLine(&buf, r.Level, fields)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// builtin applies ReplaceAttr to a built-in field and drops it when the
// replacement is empty.
func (h *prettyHandler) builtin(fields []slog.Attr, a slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return fields
	}

	return append(fields, a)
}

// qualify resolves values and flattens groups into dotted keys.
func (h *prettyHandler) qualify(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))

	for _, a := range attrs {
		a.Value = a.Value.Resolve()

		if a.Value.Kind() == slog.KindGroup {
			sub := *h
			sub.group = h.prefix(a.Key)
			out = append(out, sub.qualify(a.Value.Group())...)

			continue
		}

		if a.Key == "" {
			continue
		}

		a.Key = h.prefix(a.Key)
		out = append(out, a)
	}

	return out
}

func (h *prettyHandler) prefix(key string) string {
	if h.group == "" || key == "" {
		return h.group + key
	}

	return h.group + "." + key
}

func (h *prettyHandler) writeLine(buf *bytes.Buffer, level slog.Level, fields []slog.Attr) {
	for i, a := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.styles.key.Render(a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.value(level, a))
	}

	buf.WriteByte('\n')
}

func (h *prettyHandler) writeObject(buf *bytes.Buffer, level slog.Level, fields []slog.Attr) {
	buf.WriteString("{\n")

	for i, a := range fields {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString("  ")
		buf.WriteString(h.styles.key.Render(a.Key))
		buf.WriteString(": ")
		buf.WriteString(h.value(level, a))
	}

	buf.WriteString("\n}\n")
}

func (h *prettyHandler) value(level slog.Level, a slog.Attr) string {
	v := a.Value
	s := h.styles

	if a.Key == slog.LevelKey {
		return s.forLevel(level).Render(v.String())
	}

	switch v.Kind() {
	case slog.KindString:
		return s.str.Render(v.String())

	case slog.KindInt64:
		return s.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return s.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return s.on.Render("true")
		}

		return s.off.Render("false")

	case slog.KindDuration:
		return s.when.Render(v.Duration().String())

	case slog.KindTime:
		return s.when.Render(v.Time().String())

	case slog.KindAny:
		if v.Any() == nil {
			return s.null.Render("null")
		}

		if err, ok := v.Any().(error); ok {
			return s.off.Render(err.Error())
		}
	}

	return s.str.Render(strings.TrimSpace(v.String()))
}

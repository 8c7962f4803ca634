package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_Functions(t *testing.T) {
	original := Default()
	t.Cleanup(func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	})

	var buf bytes.Buffer

	Config(
		WithOutput(&buf),
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithPretty(false),
	)

	ctx := context.Background()

	tests := []struct {
		level string
		fn    func(string, ...slog.Attr)
	}{
		{"TRACE", Trace},
		{"DEBUG", Debug},
		{"INFO", Info},
		{"WARN", Warn},
		{"ERROR", Error},
		{"TRACE", func(m string, a ...slog.Attr) { TraceContext(ctx, m, a...) }},
		{"DEBUG", func(m string, a ...slog.Attr) { DebugContext(ctx, m, a...) }},
		{"INFO", func(m string, a ...slog.Attr) { InfoContext(ctx, m, a...) }},
		{"WARN", func(m string, a ...slog.Attr) { WarnContext(ctx, m, a...) }},
		{"ERROR", func(m string, a ...slog.Attr) { ErrorContext(ctx, m, a...) }},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()

			tt.fn("package message", slog.String("key", "value"))

			out := buf.String()
			for _, want := range []string{
				"package message", `"level":"` + tt.level + `"`, `"key":"value"`,
			} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in %s", want, out)
				}
			}
		})
	}

	buf.Reset()
	With(slog.String("scope", "pkg")).Info("scoped")

	if !strings.Contains(buf.String(), `"scope":"pkg"`) {
		t.Errorf("expected scoped attribute, got %s", buf.String())
	}
}

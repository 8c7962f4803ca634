// Package log is the leveled, structured logger used throughout morph.
//
// It wraps [log/slog] with a fixed set of levels ([LevelTrace] through
// [LevelError]), two output formats and optional terminal styling.
// Configuration is applied with functional options when a [Logger] is made:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("DateTime"),
//	)
//	logger.Info("rendered", slog.String("template", name))
//
// Attributes are always [slog.Attr] values, never alternating key/value
// arguments.
//
// The package-level functions ([Info], [DebugContext] and so on) write to a
// default logger that [Config] reconfigures. The CLI configures it from its
// --log-* flags before any command runs. Library packages instead accept a
// [Logger] through their options; the zero Logger discards everything, so
// logging stays off unless a caller asks for it.
//
// Calls without a context use [DefaultContextProvider].
package log

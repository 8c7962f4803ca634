package lang

import "github.com/ardnew/morph/log"

// Config holds the settings that affect evaluation.
type Config struct {
	// DefaultDateFormat is applied to date values referenced directly by a
	// placeholder. Date values used as the first argument of format() are
	// never pre-formatted. Empty disables the default.
	DefaultDateFormat string `json:"default_date_format,omitempty" yaml:"default_date_format,omitempty"`
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithConfig replaces the renderer's configuration.
func WithConfig(c Config) Option {
	return func(r *Renderer) { r.config = c }
}

// WithDefaultDateFormat sets the pattern applied to date values that are
// referenced outside format().
func WithDefaultDateFormat(pattern string) Option {
	return func(r *Renderer) { r.config.DefaultDateFormat = pattern }
}

// WithLogger sets the logger used to trace evaluation.
func WithLogger(logger log.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

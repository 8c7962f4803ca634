package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`

// Config returns the profiler settings: the mode (one of [Modes]), the output
// directory, and whether github.com/pkg/profile should stay quiet.
type Config func() (mode, path string, quiet bool)

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

// Start starts the profiler described by c. An empty or unsupported mode, or
// a build without the pprof tag, yields a no-op [Stopper].
func (c Config) Start() Stopper {
	if c == nil {
		return ignore{}
	}

	mode, path, quiet := c()
	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// With returns c with opts applied in order.
func (c Config) With(opts ...func(Config) Config) Config {
	if c == nil {
		c = func() (string, string, bool) { return "", "", false }
	}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithMode sets the profiling mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithPath sets the output directory.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

// WithQuiet controls the profiler's own logging.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) { return mode, path, quiet }
	}
}

type ignore struct{}

func (ignore) Stop() {}

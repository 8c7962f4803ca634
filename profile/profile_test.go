package profile

import "testing"

func TestConfig_With(t *testing.T) {
	var c Config

	c = c.With(WithMode("cpu"), WithPath("/tmp/p"), WithQuiet(true))

	mode, path, quiet := c()
	if mode != "cpu" || path != "/tmp/p" || !quiet {
		t.Errorf("unexpected config %q %q %v", mode, path, quiet)
	}

	c = c.With(WithMode(""))
	if mode, path, _ := c(); mode != "" || path != "/tmp/p" {
		t.Errorf("WithMode changed other fields: %q %q", mode, path)
	}
}

func TestConfig_Start_NoMode(t *testing.T) {
	var nilConfig Config

	for _, c := range []Config{nilConfig, nilConfig.With(WithPath(t.TempDir()))} {
		s := c.Start()
		if _, ok := s.(ignore); !ok {
			t.Errorf("expected no-op stopper, got %T", s)
		}

		s.Stop()
	}
}

func TestConfig_Start_UnknownMode(t *testing.T) {
	var c Config

	s := c.With(WithMode("not-a-mode"), WithPath(t.TempDir())).Start()
	if _, ok := s.(ignore); !ok {
		t.Errorf("expected no-op stopper, got %T", s)
	}

	s.Stop()
}

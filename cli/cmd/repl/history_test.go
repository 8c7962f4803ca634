package repl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHistoryPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	for _, e := range []HistoryEntry{
		{Line: "$total", Mode: modeEval},
		{Line: "vars", Mode: modeCtrl},
		{Line: "  ", Mode: modeEval},
		{Line: "$total", Mode: modeEval},
	} {
		if _, err := h.WriteWithMode(e.Line, e.Mode); err != nil {
			t.Fatalf("WriteWithMode(%q): %v", e.Line, err)
		}
	}

	want := []HistoryEntry{
		{Line: "vars", Mode: modeCtrl},
		{Line: "$total", Mode: modeEval},
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(content); got != "C:vars\nE:$total\n" {
		t.Errorf("history file = %q", got)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	got := reloaded.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := reloaded.GetEntry(len(want)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("GetEntry(%d) error = %v, want %v", len(want), err, ErrOutOfBounds)
	}
}

func TestHistoryMemoryOnly(t *testing.T) {
	h := NewHistory("")

	if _, err := h.WriteWithMode("help", modeCtrl); err != nil {
		t.Fatal(err)
	}

	if _, err := h.WriteWithMode("help", modeEval); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	e, err := h.GetEntry(0)
	if err != nil || e.Mode != modeCtrl {
		t.Errorf("GetEntry(0) = %v, %v", e, err)
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		line string
		want HistoryEntry
	}{
		{"E:$a", HistoryEntry{Line: "$a", Mode: modeEval}},
		{"C:date", HistoryEntry{Line: "date", Mode: modeCtrl}},
		{"$legacy", HistoryEntry{Line: "$legacy", Mode: modeEval}},
	}

	for _, tt := range tests {
		if got := parseEntry(tt.line); got != tt.want {
			t.Errorf("parseEntry(%q) = %v, want %v", tt.line, got, tt.want)
		}

		if tt.line[1] == ':' && tt.want.String() != tt.line {
			t.Errorf("%v.String() = %q, want %q", tt.want, tt.want.String(), tt.line)
		}
	}
}

package repl

import (
	"context"
	"slices"
	"testing"

	"github.com/ardnew/morph/lang"
	"github.com/ardnew/morph/log"
)

func testData() map[string]any {
	return map[string]any{
		"customer": map[string]any{"name": "Ada", "email": "ada@example.com"},
		"lines":    []any{map[string]any{"sku": "X1", "qty": 2}},
		"total":    12.5,
	}
}

func testModel(t *testing.T) model {
	t.Helper()

	return newModel(context.Background(), testData(), lang.Config{}, NewHistory(""), log.Make(nil))
}

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "forma", 5, "forma", 0, 5},
		{"after_sigil", "$cust", 5, "cust", 1, 5},
		{"after_dot", "$customer.na", 12, "na", 10, 12},
		{"empty_after_dot", "$customer.", 10, "", 10, 10},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_paren", "format(fo", 9, "fo", 7, 9},
		{"after_comma", "if(a, fo", 8, "fo", 6, 8},
		{"after_quote", "'fo", 3, "fo", 1, 3},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "format", 3, "format", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"cursor_past_end", "foo", 99, "foo", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReferencePath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wordStart int
		want      string
		wantRef   bool
	}{
		{"first_segment", "$cu", 1, "", true},
		{"second_segment", "$customer.na", 10, "customer", true},
		{"deep_chain", "if($order.lines.0.sk", 18, "order.lines.0", true},
		{"in_concat", "'x' + $customer.", 16, "customer", true},
		{"no_sigil", "forma", 0, "", false},
		{"after_operator", "a + fo", 4, "", false},
		{"after_paren", "format(na", 7, "", false},
		{"after_reference", "$a + b", 5, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := referencePath(tt.input, tt.wordStart)
			if got != tt.want || ok != tt.wantRef {
				t.Errorf("referencePath(%q, %d) = (%q, %v), want (%q, %v)",
					tt.input, tt.wordStart, got, ok, tt.want, tt.wantRef)
			}
		})
	}
}

func TestChildCandidates(t *testing.T) {
	tests := []struct {
		parent string
		want   []string
	}{
		{"", []string{"customer", "lines", "total"}},
		{"customer", []string{"email", "name"}},
		{"lines", []string{"0"}},
		{"lines.0", []string{"qty", "sku"}},
		{"total", nil},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.parent, func(t *testing.T) {
			got := childCandidates(testData(), tt.parent)
			if !slices.Equal(got, tt.want) {
				t.Errorf("childCandidates(%q) = %v, want %v", tt.parent, got, tt.want)
			}
		})
	}
}

func TestComputeMatches(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		mode      inputMode
		wantFirst string
		wantCount int
	}{
		{name: "browse_top_level", input: "$", wantFirst: "customer", wantCount: 3},
		{name: "browse_children", input: "$customer.", wantFirst: "email", wantCount: 2},
		{name: "fuzzy_key", input: "$cus", wantFirst: "customer", wantCount: 1},
		{name: "function", input: "for", wantFirst: "format", wantCount: 1},
		{name: "empty_word", input: "a + "},
		{name: "unknown_parent", input: "$nope."},
		{name: "command", input: "da", mode: modeCtrl, wantFirst: "date", wantCount: 1},
		{name: "command_argument", input: "date DD", mode: modeCtrl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t)
			m.mode = tt.mode
			m.input.SetValue(tt.input)
			m.input.SetCursor(len(tt.input))

			matches, _, _, end := m.computeMatches()
			if len(matches) != tt.wantCount {
				t.Fatalf("computeMatches(%q) returned %d matches, want %d",
					tt.input, len(matches), tt.wantCount)
			}

			if end != len(tt.input) {
				t.Errorf("computeMatches(%q) word end = %d, want %d", tt.input, end, len(tt.input))
			}

			if tt.wantCount > 0 && matches[0].Str != tt.wantFirst {
				t.Errorf("computeMatches(%q) first = %q, want %q",
					tt.input, matches[0].Str, tt.wantFirst)
			}
		})
	}
}

func TestEllipsize(t *testing.T) {
	if got := ellipsize("short", 10); got != "short" {
		t.Errorf("ellipsize(short) = %q", got)
	}

	if got := ellipsize("abcdefghijkl", 8); got != "abcde..." {
		t.Errorf("ellipsize(abcdefghijkl) = %q, want %q", got, "abcde...")
	}
}

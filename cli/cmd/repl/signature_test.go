package repl

import (
	"slices"
	"strings"
	"testing"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		want   functionCall
	}{
		{"not_in_call", "$total", 6, functionCall{}},
		{"first_arg", "format($total", 13, functionCall{name: "format", inCall: true}},
		{"second_arg", "format($total, ", 15, functionCall{name: "format", argIndex: 1, inCall: true}},
		{"third_arg", "if($a, 'x', ", 12, functionCall{name: "if", argIndex: 2, inCall: true}},
		{"closed", "format($total, '0')", 19, functionCall{}},
		{"cursor_inside", "format($total, '0')", 10, functionCall{name: "format", inCall: true}},
		{"nested_inner", "if($a, format($b, ", 18, functionCall{name: "format", argIndex: 1, inCall: true}},
		{"nested_after_inner", "if($a, format($b, '0'), ", 24, functionCall{name: "if", argIndex: 2, inCall: true}},
		{"quoted_comma", "format($d, 'a,b", 15, functionCall{name: "format", argIndex: 1, inCall: true}},
		{"quoted_paren", "if('(', ", 8, functionCall{name: "if", argIndex: 1, inCall: true}},
		{"bare_paren", "(x, ", 4, functionCall{}},
		{"cursor_past_end", "if(", 99, functionCall{name: "if", inCall: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectFunctionCall(tt.input, tt.cursor)
			if got != tt.want {
				t.Errorf("detectFunctionCall(%q, %d) = %+v, want %+v",
					tt.input, tt.cursor, got, tt.want)
			}
		})
	}
}

func TestGetSignature(t *testing.T) {
	tests := []struct {
		name       string
		wantPrefix string
		wantParams int
	}{
		{"if", "if(", 3},
		{"format", "format(", 2},
		{"nope", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, params := getSignature(tt.name)
			if !strings.HasPrefix(sig, tt.wantPrefix) || (tt.wantPrefix == "" && sig != "") {
				t.Errorf("getSignature(%q) = %q, want prefix %q", tt.name, sig, tt.wantPrefix)
			}

			if len(params) != tt.wantParams {
				t.Errorf("getSignature(%q) params = %v, want %d", tt.name, params, tt.wantParams)
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	sig, params := getSignature("format")

	got := renderSignatureHint(sig, params, 1)
	for _, param := range params {
		if !strings.Contains(got, param) {
			t.Errorf("renderSignatureHint() = %q, missing %q", got, param)
		}
	}

	if strings.Contains(got, "too many arguments") {
		t.Errorf("renderSignatureHint() = %q, unexpected overflow note", got)
	}

	if got := renderSignatureHint(sig, params, len(params)); !strings.Contains(got, "too many arguments") {
		t.Errorf("renderSignatureHint() = %q, want overflow note", got)
	}

	if got := renderSignatureHint("", nil, 0); got != "" {
		t.Errorf("renderSignatureHint(empty) = %q, want empty", got)
	}

	if !slices.Contains(funcNames(), "format") {
		t.Errorf("funcNames() = %v, want format", funcNames())
	}
}

package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/morph/format"
)

func TestFormatRun(t *testing.T) {
	tests := []struct {
		name string
		cmd  Format
		opts Options
		want string
	}{
		{
			name: "decimal",
			cmd:  Format{Pattern: "0.00", Values: []string{"1234.5", "7"}},
			want: "1234.50\n7.00\n",
		},
		{
			name: "date",
			cmd:  Format{Pattern: "DD.MM.YYYY", Values: []string{"2025-10-05", "5/1/2024"}},
			want: "05.10.2025\n05.01.2024\n",
		},
		{
			name: "percent",
			cmd:  Format{Pattern: "0.0", Values: []string{"0.125"}, Percent: true},
			want: "12.5%\n",
		},
		{
			name: "reference",
			cmd:  Format{Pattern: "0.000", Values: []string{"$order.total"}},
			opts: Options{Set: []string{"order.total:=2.5"}},
			want: "2.500\n",
		},
		{
			name: "unclassified",
			cmd:  Format{Pattern: "plain", Values: []string{"as is"}},
			want: "as is\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := testContext(t, tt.opts)

			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("Format.Run() unexpected error: %v", err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("Format.Run() output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRunConversionError(t *testing.T) {
	ctx, out := testContext(t, Options{})

	f := Format{Pattern: "0.00", Values: []string{"1", "abc", "2"}}

	err := f.Run(ctx)
	if !errors.Is(err, ErrFormat) || !errors.Is(err, format.ErrConversion) {
		t.Fatalf("Format.Run() error = %v, want %v wrapping %v", err, ErrFormat, format.ErrConversion)
	}

	if got := out.String(); got != "1.00\n" {
		t.Errorf("Format.Run() output before failure = %q, want %q", got, "1.00\n")
	}
}

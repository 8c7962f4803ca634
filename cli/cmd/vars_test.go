package cmd

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

const varsTemplate = "{{$customer.name}} owes {{format($order.total, '0.00')}} " +
	"due {{format($order.due, 'DD.MM.YYYY')}}{{if($vip, ' (VIP)', '')}} " +
	"for {{$order.lines.0.sku}}"

func TestVarsRun(t *testing.T) {
	ctx, out := testContext(t, Options{})

	v := Vars{Text: varsTemplate}
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Vars.Run() unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"customer.name",
		"order.total\t0.00",
		"order.due\tDD.MM.YYYY",
		"vip\t(condition)",
		"order.lines.0.sku",
	}, "\n") + "\n"

	if got := out.String(); got != want {
		t.Errorf("Vars.Run() output =\n%s\nwant\n%s", got, want)
	}
}

func TestVarsCheck(t *testing.T) {
	ctx, out := testContext(t, Options{Set: []string{
		"customer.name=Alex",
		"order.total:=10",
		"order.due=2025-10-05",
		"vip:=false",
	}})

	v := Vars{Text: varsTemplate + " {{$custmer.name}}", Check: true}

	err := v.Run(ctx)
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("Vars.Run() error = %v, want %v", err, ErrUnresolved)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	for _, want := range []string{
		"ok\tcustomer.name",
		"ok\torder.total",
		"ok\tvip",
		"missing\torder.lines.0.sku",
	} {
		if !slices.Contains(lines, want) {
			t.Errorf("Vars.Run() output missing line %q:\n%s", want, out.String())
		}
	}

	if !strings.Contains(out.String(), "missing\tcustmer.name\t(did you mean customer.name") {
		t.Errorf("Vars.Run() output missing suggestion:\n%s", out.String())
	}
}

func TestVarsCheckResolved(t *testing.T) {
	ctx, _ := testContext(t, Options{Set: []string{"a.b=1"}})

	v := Vars{Text: "{{$a.b}}", Check: true}
	if err := v.Run(ctx); err != nil {
		t.Errorf("Vars.Run() unexpected error: %v", err)
	}
}

func TestVarsSchema(t *testing.T) {
	ctx, out := testContext(t, Options{})

	v := Vars{Text: varsTemplate, Schema: true}
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Vars.Run() unexpected error: %v", err)
	}

	var doc struct {
		Schema     string `json:"$schema"`
		Type       string `json:"type"`
		Required   []string
		Properties map[string]struct {
			Type       string `json:"type"`
			Properties map[string]struct {
				Type   string `json:"type"`
				Format string `json:"format"`
				Items  *struct {
					Type string `json:"type"`
				} `json:"items"`
			} `json:"properties"`
		} `json:"properties"`
	}

	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON schema: %v\n%s", err, out.String())
	}

	if doc.Schema == "" || doc.Type != "object" {
		t.Errorf("unexpected root: $schema=%q type=%q", doc.Schema, doc.Type)
	}

	if !slices.Equal(doc.Required, []string{"customer", "order", "vip"}) {
		t.Errorf("required = %v", doc.Required)
	}

	order := doc.Properties["order"].Properties

	if order["total"].Type != "number" {
		t.Errorf("order.total type = %q, want number", order["total"].Type)
	}

	if order["due"].Type != "string" || order["due"].Format != "date" {
		t.Errorf("order.due = %+v, want string/date", order["due"])
	}

	if order["lines"].Type != "array" || order["lines"].Items == nil || order["lines"].Items.Type != "object" {
		t.Errorf("order.lines = %+v, want array of object", order["lines"])
	}
}

func TestVarsYAML(t *testing.T) {
	ctx, out := testContext(t, Options{})

	v := Vars{Text: varsTemplate, YAML: true}
	if err := v.Run(ctx); err != nil {
		t.Fatalf("Vars.Run() unexpected error: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML skeleton: %v\n%s", err, out.String())
	}

	if _, ok := doc["customer"].(map[string]any)["name"]; !ok {
		t.Errorf("skeleton missing customer.name:\n%s", out.String())
	}

	lines, ok := doc["order"].(map[string]any)["lines"].([]any)
	if !ok || len(lines) != 1 {
		t.Errorf("skeleton order.lines should be a one-element list:\n%s", out.String())
	}

	if vip, ok := doc["vip"].(bool); !ok || vip {
		t.Errorf("skeleton vip = %v, want false", doc["vip"])
	}
}

func TestPaths(t *testing.T) {
	data := map[string]any{
		"a": map[string]any{"b": 1, "c": []any{"x"}},
		"d": "e",
	}

	got := paths(data, 8)
	want := []string{"a", "a.b", "a.c", "a.c.0", "d"}

	if !slices.Equal(got, want) {
		t.Errorf("paths() = %v, want %v", got, want)
	}

	if got := paths(data, 1); !slices.Equal(got, []string{"a", "d"}) {
		t.Errorf("paths(depth 1) = %v", got)
	}
}

package data_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/morph/data"
	"github.com/ardnew/morph/value"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func text(m map[string]any, path ...string) string {
	v := value.Of(m)
	for _, seg := range path {
		v, _ = v.Key(seg)
	}

	return v.Text()
}

func TestLoad_Formats(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"doc.yaml", "customer:\n  name: Alex\ntotal: 12.5\n"},
		{"doc.yml", "customer: {name: Alex}\ntotal: 12.5\n"},
		{"doc.json", `{"customer": {"name": "Alex"}, "total": 12.5}`},
		{"doc.toml", "total = 12.5\n[customer]\nname = \"Alex\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(t, dir, tt.name, tt.content)

			got, err := data.Load(t.Context(), data.WithFiles(path))
			require.NoError(t, err)
			assert.Equal(t, "Alex", text(got, "customer", "name"))
			assert.Equal(t, "12.5", text(got, "total"))
		})
	}
}

func TestLoad_TOMLTables(t *testing.T) {
	path := write(t, t.TempDir(), "items.toml",
		"[[items]]\nsku = \"A-1\"\n\n[[items]]\nsku = \"B-2\"\n")

	got, err := data.Load(t.Context(), data.WithFiles(path))
	require.NoError(t, err)

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "B-2", items[1].(map[string]any)["sku"])
}

func TestLoad_Merge(t *testing.T) {
	dir := t.TempDir()
	base := write(t, dir, "base.yaml", "a:\n  x: 1\n  y: 2\nlist: [1, 2]\n")
	over := write(t, dir, "over.json", `{"a": {"y": 3, "z": 4}, "list": [9]}`)

	got, err := data.Load(t.Context(), data.WithFiles(base, over))
	require.NoError(t, err)

	assert.Equal(t, "1", text(got, "a", "x"))
	assert.Equal(t, "3", text(got, "a", "y"))
	assert.Equal(t, "4", text(got, "a", "z"))
	assert.Len(t, got["list"], 1)
}

func TestLoad_Stdin(t *testing.T) {
	got, err := data.Load(t.Context(),
		data.WithFiles(data.Stdin),
		data.WithStdin(strings.NewReader("name: from-stdin\n")),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", got["name"])
}

func TestLoad_SearchPath(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "found-in-search-path.yaml", "hit: true\n")

	got, err := data.Load(t.Context(),
		data.WithFiles("found-in-search-path.yaml"),
		data.WithSearchPath(dir),
	)
	require.NoError(t, err)
	assert.Equal(t, true, got["hit"])
}

func TestLoad_Empty(t *testing.T) {
	got, err := data.Load(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	path := write(t, t.TempDir(), "empty.yaml", "")
	got, err = data.Load(t.Context(), data.WithFiles(path))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		opts []data.Option
		want error
	}{
		{
			name: "missing_file",
			opts: []data.Option{data.WithFiles(filepath.Join(dir, "nope.yaml"))},
			want: data.ErrOpen,
		},
		{
			name: "bad_yaml",
			opts: []data.Option{data.WithFiles(write(t, dir, "bad.yaml", "a: [1, 2\n"))},
			want: data.ErrDecode,
		},
		{
			name: "bad_toml",
			opts: []data.Option{data.WithFiles(write(t, dir, "bad.toml", "a = = 1\n"))},
			want: data.ErrDecode,
		},
		{
			name: "top_level_list",
			opts: []data.Option{data.WithFiles(write(t, dir, "list.yaml", "- 1\n- 2\n"))},
			want: data.ErrNotMapping,
		},
		{
			name: "bad_assignment",
			opts: []data.Option{data.WithAssignments("no-equals-sign")},
			want: data.ErrAssign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := data.Load(t.Context(), tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAssign(t *testing.T) {
	m := map[string]any{
		"price": 2.5,
		"qty":   4,
		"customer": map[string]any{
			"first": "Ada",
		},
	}

	require.NoError(t, data.Assign(m, "customer.last=Lovelace"))
	require.NoError(t, data.Assign(m, "total:=price * qty"))
	require.NoError(t, data.Assign(m, "label:=customer.first + ' ' + customer.last"))
	require.NoError(t, data.Assign(m, "order.id = 2025-10-05"))
	require.NoError(t, data.Assign(m, "flags.rush:=qty > 3"))

	assert.Equal(t, "Lovelace", text(m, "customer", "last"))
	assert.Equal(t, "10", text(m, "total"))
	assert.Equal(t, "Ada Lovelace", m["label"])
	assert.Equal(t, " 2025-10-05", text(m, "order", "id"))
	assert.Equal(t, true, m["flags"].(map[string]any)["rush"])
}

func TestAssign_Errors(t *testing.T) {
	m := map[string]any{"scalar": 1}

	for _, spec := range []string{
		"missing",
		"=value",
		"a..b=value",
		"scalar.child=value",
		"x:=1 +",
		"x:=undefinedName",
	} {
		t.Run(spec, func(t *testing.T) {
			assert.ErrorIs(t, data.Assign(m, spec), data.ErrAssign)
		})
	}

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, data.Assign(nil, "a=b"), data.ErrAssign)
	})
}

func TestMerge(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1}, "b": 1}
	src := map[string]any{"a": map[string]any{"y": 2}, "b": map[string]any{"z": 3}}

	data.Merge(dst, src)

	assert.Equal(t, map[string]any{
		"a": map[string]any{"x": 1, "y": 2},
		"b": map[string]any{"z": 3},
	}, dst)

	dst["b"].(map[string]any)["w"] = 4
	assert.NotContains(t, src["b"], "w")
}

func TestSearchPath(t *testing.T) {
	dir := t.TempDir()

	assert.Contains(t, data.SearchPath("", dir), dir)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "letter.tpl", "Dear {{$name}}")

	assert.Equal(t, path, data.Find("letter.tpl", []string{t.TempDir(), dir}))
	assert.Equal(t, "missing.tpl", data.Find("missing.tpl", []string{dir}))
	assert.Equal(t, path, data.Find(path, nil))
}

package data

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// Decoder decodes a document into a mapping.
type Decoder func(src []byte) (map[string]any, error)

// DecoderFor returns the decoder for the file extension of name.
// YAML is the default, and it also accepts JSON.
func DecoderFor(name string) Decoder {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".tml":
		return DecodeTOML
	default:
		return DecodeYAML
	}
}

// DecodeYAML decodes a YAML or JSON document. An empty document decodes to an
// empty mapping.
func DecodeYAML(src []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.String("format", "yaml"))
	}

	return mapping(doc)
}

// DecodeTOML decodes a TOML document.
func DecodeTOML(src []byte) (map[string]any, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(src), &doc); err != nil {
		return nil, ErrDecode.Wrap(err).With(slog.String("format", "toml"))
	}

	return mapping(doc)
}

func mapping(doc any) (map[string]any, error) {
	if doc == nil {
		return map[string]any{}, nil
	}

	m, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, ErrNotMapping.With(slog.String("type", fmt.Sprintf("%T", doc)))
	}

	return m, nil
}

// normalize converts decoder-specific containers to map[string]any and []any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}

		return t

	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalize(e)
		}

		return m

	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}

		return t

	case []map[string]any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = normalize(e)
		}

		return l

	default:
		return v
	}
}

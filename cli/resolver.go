package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that reads a YAML configuration
// file. It is used with [kong.Configuration]:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Nested mappings are flattened by joining keys with "-", so both forms below
// set --log-level. Keys may use "_" in place of "-".
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Scalars are handed to kong as strings. Sequences become lists of strings
// for slice flags such as --data. Command-line flags override file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened configuration document.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	if v, ok := c[flag.Name]; ok {
		return v, nil
	}

	return nil, nil //nolint:nilnil
}

func (c config) flatten(prefix string, doc map[string]any) {
	for key, val := range doc {
		name := strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			name = prefix + "-" + name
		}

		switch v := val.(type) {
		case map[string]any:
			c.flatten(name, v)

		case []any:
			list := make([]any, len(v))
			for i, elem := range v {
				list[i] = scalar(elem)
			}

			c[name] = list

		case nil:

		default:
			c[name] = scalar(v)
		}
	}
}

// scalar returns v as kong expects to parse it from a resolver.
func scalar(v any) any {
	switch v := v.(type) {
	case string, bool:
		return v
	case uint64:
		return strconv.FormatUint(v, 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

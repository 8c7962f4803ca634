package cmd

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/ardnew/morph/format"
	"github.com/ardnew/morph/lang"
	"github.com/ardnew/morph/value"
)

// leaf is the kind of scalar a template expects at a path.
type leaf int

const (
	leafText leaf = iota
	leafNumber
	leafDate
	leafCond
)

// leafOf infers what ref expects from the way the template uses it.
func leafOf(ref lang.Reference) leaf {
	switch {
	case ref.Pattern != "" && format.Infer(ref.Pattern) == format.KindDecimal:
		return leafNumber
	case ref.Pattern != "" && format.Infer(ref.Pattern) == format.KindDate:
		return leafDate
	case ref.Cond:
		return leafCond
	default:
		return leafText
	}
}

// shape is the context structure a template needs: a tree of mappings and
// sequences whose leaves are the referenced paths.
type shape struct {
	fields map[string]*shape
	items  *shape
	leaf   leaf
}

// shapeOf merges the paths of refs into one tree. A numeric segment makes its
// parent a sequence.
func shapeOf(refs []lang.Reference) *shape {
	root := &shape{}

	for _, ref := range refs {
		node := root

		for seg := range strings.SplitSeq(ref.Path, ".") {
			if _, err := strconv.Atoi(seg); err == nil {
				if node.items == nil {
					node.items = &shape{}
				}

				node = node.items

				continue
			}

			if node.fields == nil {
				node.fields = map[string]*shape{}
			}

			child, ok := node.fields[seg]
			if !ok {
				child = &shape{}
				node.fields[seg] = child
			}

			node = child
		}

		node.leaf = max(node.leaf, leafOf(ref))
	}

	return root
}

// schema returns the JSON Schema describing s.
func (s *shape) schema() *jsonschema.Schema {
	switch {
	case s.fields != nil:
		props := jsonschema.NewProperties()
		for _, name := range slices.Sorted(maps.Keys(s.fields)) {
			props.Set(name, s.fields[name].schema())
		}

		return &jsonschema.Schema{
			Type:       "object",
			Properties: props,
			Required:   slices.Sorted(maps.Keys(s.fields)),
		}

	case s.items != nil:
		return &jsonschema.Schema{Type: "array", Items: s.items.schema()}
	}

	switch s.leaf {
	case leafNumber:
		return &jsonschema.Schema{Type: "number"}
	case leafDate:
		return &jsonschema.Schema{Type: "string", Format: "date"}
	case leafCond:
		return &jsonschema.Schema{Description: "truthy or falsy"}
	default:
		return &jsonschema.Schema{Type: "string"}
	}
}

// skeleton returns an example document of shape s with a placeholder value
// at every leaf.
func (s *shape) skeleton() any {
	switch {
	case s.fields != nil:
		doc := make(map[string]any, len(s.fields))
		for name, field := range s.fields {
			doc[name] = field.skeleton()
		}

		return doc

	case s.items != nil:
		return []any{s.items.skeleton()}
	}

	switch s.leaf {
	case leafNumber:
		return 0
	case leafDate:
		return "2006-01-02"
	case leafCond:
		return false
	default:
		return ""
	}
}

// paths returns every dotted path in data, depth first in sorted key order,
// down to depth segments.
func paths(data any, depth int) []string {
	var out []string

	var walk func(v value.Value, prefix string, depth int)

	walk = func(v value.Value, prefix string, depth int) {
		if depth == 0 {
			return
		}

		for _, key := range v.Keys() {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}

			out = append(out, path)

			if child, ok := lang.Lookup(v.Interface(), key); ok {
				walk(child, path, depth-1)
			}
		}
	}

	walk(value.Of(data), "", depth)

	return out
}

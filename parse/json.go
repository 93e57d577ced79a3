package parse

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/jsontree"
)

// ParseJSON imports a JSON object.  Objects become nested documents,
// strings become untagged strings and arrays of strings become "array"
// tagged strings joined with ','.  Any other JSON value is an error.
func ParseJSON(d []byte, opts ...ParseOption) (*ir.Document, error) {
	return parseJSON(d, newParseOpts(opts))
}

func parseJSON(d []byte, opts *parseOpts) (*ir.Document, error) {
	n, err := jsontree.Parse(d)
	if err != nil {
		if debug.Convert() {
			debug.Logf("json: %v\n", err)
		}
		return nil, err
	}
	if n.Kind != jsontree.ObjectKind {
		return nil, fmt.Errorf("%w: top level %s is not an object", ErrJSONStructure, n.Kind)
	}
	return fromJSONObject(n, 0, opts)
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Document, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrParse, err)
	}
	if debug.Convert() {
		debug.Logf("yaml as json: %s\n", j)
	}
	return parseJSON(j, opts)
}

func fromJSONObject(n *jsontree.Node, depth int, opts *parseOpts) (*ir.Document, error) {
	if err := checkDepth(depth, opts); err != nil {
		return nil, err
	}
	doc := ir.NewDocument()
	for i := range n.Members {
		m := &n.Members[i]
		it, err := doc.Add(m.Key)
		if err != nil {
			switch {
			case errors.Is(err, ir.ErrDuplicateKey):
				return nil, &DuplicateKeyError{Key: m.Key}
			case errors.Is(err, ir.ErrEmptyKey):
				return nil, fmt.Errorf("%w: json member name", ErrEmptyKey)
			}
			return nil, err
		}
		v := m.Value
		switch v.Kind {
		case jsontree.ObjectKind:
			sub, err := fromJSONObject(v, depth+1, opts)
			if err != nil {
				return nil, nestedErr(m.Key, err)
			}
			*it = *ir.FromDocument(sub)
		case jsontree.StringKind:
			*it = *ir.FromString(v.Text)
		case jsontree.ArrayKind:
			elts := make([]string, len(v.Elems))
			for j, e := range v.Elems {
				if e.Kind != jsontree.StringKind {
					if debug.Convert() {
						debug.Logf("array %q item %d is a %s\n", m.Key, j, e.Kind)
					}
					return nil, fmt.Errorf("%w: array item not a string: %q[%d] is a %s", ErrJSONStructure, m.Key, j, e.Kind)
				}
				elts[j] = e.Text
			}
			*it = *ir.FromArray(elts)
		default:
			if debug.Convert() {
				debug.Logf("unhandled %s under %q\n", v.Kind, m.Key)
			}
			return nil, fmt.Errorf("%w: unhandled JSON type %s for %q", ErrJSONStructure, v.Kind, m.Key)
		}
	}
	return doc, nil
}

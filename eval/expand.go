package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"

	json "github.com/goccy/go-json"
)

// Expand returns a copy of doc in which string items tagged with a
// registered symbol are replaced by the result of the symbol's op, and
// "$[expr]" references in all other strings are replaced by the value of
// expr.  A nil env evaluates against the top level entries of doc.
func Expand(doc *ir.Document, env Env) (*ir.Document, error) {
	if env == nil {
		env = DocEnv(doc)
	}
	res := doc.Clone()
	if err := expandDoc(res, res, env, ir.Path{}); err != nil {
		return nil, err
	}
	return res, nil
}

func expandDoc(d, root *ir.Document, env Env, path ir.Path) error {
	for _, f := range d.Fields() {
		p := path.Child(f.Key)
		it, err := expandItem(f.Item, root, env)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if it != f.Item {
			d.Set(f.Key, it)
		}
		if it.Type == ir.DocumentType {
			if err := expandDoc(it.Doc, root, env, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func expandItem(it *ir.Item, root *ir.Document, env Env) (*ir.Item, error) {
	if it.Type != ir.StringType {
		return it, nil
	}
	if sym := Lookup(it.Tag); sym != nil {
		op, err := sym.Instance(it)
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("%s op on %q\n", op, it.String)
		}
		return op.Eval(root, env)
	}
	v, err := ExpandString(it.String, env, root)
	if err != nil {
		return nil, err
	}
	it.String = v
	return it, nil
}

// ExpandString replaces each "$[expr]" in v by the value of expr.  Inside
// an expression a backslash escapes the next byte, so "\]" is a literal
// "]".  A reference without a closing "]" is left as is.
func ExpandString(v string, env Env, doc *ir.Document) (string, error) {
	if !strings.Contains(v, "$[") {
		return v, nil
	}
	out := make([]byte, 0, len(v))
	i, n := 0, len(v)
	for i < n {
		if v[i] != '$' || i+1 == n || v[i+1] != '[' {
			out = append(out, v[i])
			i++
			continue
		}
		key, end, ok := scanExpr(v, i+2)
		if !ok {
			out = append(out, v[i:]...)
			break
		}
		key = strings.TrimSpace(key)
		x, err := run(key, env, doc)
		if err != nil {
			return "", err
		}
		d, err := anyToBytes(x)
		if err != nil {
			return "", fmt.Errorf("%w: could not format result of %q: %w", ErrEval, key, err)
		}
		out = append(out, d...)
		i = end
	}
	return string(out), nil
}

// scanExpr reads an expression starting at i up to the first unescaped
// ']' and returns the unescaped text and the offset after the ']'.
func scanExpr(v string, i int) (string, int, bool) {
	var key []byte
	for i < len(v) {
		c := v[i]
		switch {
		case c == '\\' && i+1 < len(v):
			key = append(key, v[i+1])
			i += 2
		case c == ']':
			return string(key), i + 1, true
		default:
			key = append(key, c)
			i++
		}
	}
	return "", 0, false
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case json.Number:
		return []byte(x), nil
	default:
		return json.Marshal(x)
	}
}

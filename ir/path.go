package ir

import (
	"bytes"
	"fmt"
	"strings"
)

// Path is a sequence of keys addressing an item, written "$.a.b".  Keys
// containing any of ".'$[]" or whitespace are single quoted with "\'"
// escaping quotes.
type Path struct {
	Keys []string
}

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, k := range p.Keys {
		buf.WriteString("." + quoteKey(k))
	}
	return buf.String()
}

func (p Path) Child(key string) Path {
	keys := make([]string, len(p.Keys)+1)
	copy(keys, p.Keys)
	keys[len(p.Keys)] = key
	return Path{Keys: keys}
}

func quoteKey(k string) string {
	if k != "" && strings.IndexAny(k, "'.$[] \t\n\r") == -1 {
		return k
	}
	return "'" + strings.Replace(k, "'", "\\'", -1) + "'"
}

func ParsePath(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return Path{}, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	res := Path{}
	frag := p[1:]
	for len(frag) != 0 {
		if frag[0] != '.' {
			return Path{}, fmt.Errorf("%w: expected '.' at %q", ErrPath, frag)
		}
		key, rest, err := parseKey(frag[1:])
		if err != nil {
			return Path{}, err
		}
		res.Keys = append(res.Keys, key)
		frag = rest
	}
	return res, nil
}

func parseKey(frag string) (string, string, error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: empty key", ErrPath)
	}
	if frag[0] != '\'' {
		i := strings.IndexByte(frag, '.')
		if i == -1 {
			i = len(frag)
		}
		if i == 0 {
			return "", "", fmt.Errorf("%w: empty key", ErrPath)
		}
		return frag[:i], frag[i:], nil
	}
	buf := []byte{}
	esc := false
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case esc:
			buf = append(buf, c)
			esc = false
		case c == '\\':
			esc = true
		case c == '\'':
			return string(buf), frag[i+1:], nil
		default:
			buf = append(buf, c)
		}
	}
	return "", "", fmt.Errorf("%w: unterminated quote in %q", ErrPath, frag)
}

// GetPath returns the item at path p.  The root "$" yields the document
// itself wrapped in a document item.
func (d *Document) GetPath(p string) (*Item, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return d.Lookup(path)
}

func (d *Document) Lookup(path Path) (*Item, error) {
	cur := FromDocument(d)
	for i, k := range path.Keys {
		if cur.Type != DocumentType {
			return nil, fmt.Errorf("%w: %s is a %s", ErrPath, Path{Keys: path.Keys[:i]}, cur.Type)
		}
		next, ok := cur.Doc.Get(k)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, Path{Keys: path.Keys[:i+1]})
		}
		cur = next
	}
	return cur, nil
}

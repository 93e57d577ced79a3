// Package jsontree parses JSON into an ordered tree.
//
// Unlike decoding into map[string]any, a [Node] keeps object members in
// document order and reports duplicate member names instead of silently
// keeping the last one.  Scalars keep their source text.
package jsontree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

var ErrSyntax = errors.New("json syntax error")

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Member is one name/value pair of an object.
type Member struct {
	Key   string
	Value *Node
}

type Node struct {
	Kind Kind
	// Text holds the decoded string of a string node and the source text
	// of number and bool nodes.
	Text    string
	Members []Member
	Elems   []*Node
}

type frame struct {
	node         *Node
	expectingKey bool
	key          string
}

// Parse parses the single JSON value in d.
func Parse(d []byte) (*Node, error) {
	if !j.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrSyntax)
	}
	return ParseReader(bytes.NewReader(d))
}

// ParseReader parses the first JSON value of r.
func ParseReader(r io.Reader) (*Node, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var (
		stack []frame
		root  *Node
	)
	add := func(n *Node) {
		if len(stack) == 0 {
			root = n
			return
		}
		top := &stack[len(stack)-1]
		switch top.node.Kind {
		case ObjectKind:
			top.node.Members = append(top.node.Members, Member{Key: top.key, Value: n})
			top.expectingKey = true
		case ArrayKind:
			top.node.Elems = append(top.node.Elems, n)
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		var done *Node
		switch v := tok.(type) {
		case j.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{node: &Node{Kind: ObjectKind}, expectingKey: true})
				continue
			case '[':
				stack = append(stack, frame{node: &Node{Kind: ArrayKind}})
				continue
			case '}', ']':
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, rune(v))
				}
				done = stack[len(stack)-1].node
				stack = stack[:len(stack)-1]
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.node.Kind == ObjectKind && top.expectingKey {
					top.key = v
					top.expectingKey = false
					continue
				}
			}
			done = &Node{Kind: StringKind, Text: v}
		case j.Number:
			done = &Node{Kind: NumberKind, Text: v.String()}
		case float64:
			done = &Node{Kind: NumberKind, Text: strconv.FormatFloat(v, 'g', -1, 64)}
		case bool:
			done = &Node{Kind: BoolKind, Text: strconv.FormatBool(v)}
		case nil:
			done = &Node{Kind: NullKind}
		default:
			return nil, fmt.Errorf("%w: unexpected token %T", ErrSyntax, tok)
		}
		add(done)
		if len(stack) == 0 {
			return root, nil
		}
	}
}

// Get returns the value of the first member named key.
func (n *Node) Get(key string) (*Node, bool) {
	for i := range n.Members {
		if n.Members[i].Key == key {
			return n.Members[i].Value, true
		}
	}
	return nil, false
}

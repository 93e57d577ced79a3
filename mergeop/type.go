package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var typeSym = &typeSymbol{matchName: typeName}

func Type() Symbol {
	return typeSym
}

const (
	typeName matchName = "type"
)

type typeSymbol struct {
	matchName
}

// kinds names the values accepted by the type op.
var kinds = map[string]func(*ir.Item) bool{
	"none":     func(it *ir.Item) bool { return it.Type == ir.NoneType },
	"string":   func(it *ir.Item) bool { return it.Type == ir.StringType && !it.IsArray() },
	"array":    func(it *ir.Item) bool { return it.IsArray() },
	"document": func(it *ir.Item) bool { return it.Type == ir.DocumentType },
}

func (s typeSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	f := kinds[child.String]
	if f == nil {
		return nil, fmt.Errorf("%w: unknown type %q", ErrOp, child.String)
	}
	return &typeOp{is: f, matchOp: matchOp{op: op{name: s.matchName, child: child}}}, nil
}

type typeOp struct {
	matchOp
	is func(*ir.Item) bool
}

func (t typeOp) Match(it *ir.Item, _ MatchFunc) (bool, error) {
	if debug.Match() {
		debug.Logf("type op %q\n", t.child.String)
	}
	if it == nil {
		return false, nil
	}
	return t.is(it), nil
}

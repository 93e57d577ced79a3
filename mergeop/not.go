package mergeop

import (
	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var notSym = &notSymbol{matchName: notName}

func Not() Symbol {
	return notSym
}

const (
	notName matchName = "not"
)

type notSymbol struct {
	matchName
}

func (s notSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &notOp{matchOp: matchOp{op: op{name: s.matchName, child: child}}}, nil
}

type notOp struct {
	matchOp
}

// Match reports whether it does not equal the untagged string value.
func (n notOp) Match(it *ir.Item, f MatchFunc) (bool, error) {
	if debug.Match() {
		debug.Logf("not op match against %q\n", n.child.String)
	}
	subMatch, err := f(it, ir.FromString(n.child.String))
	if err != nil {
		return false, err
	}
	return !subMatch, nil
}

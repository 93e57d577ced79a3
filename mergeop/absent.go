package mergeop

import (
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var absentSym = &absentSymbol{matchName: absentName}

func Absent() Symbol {
	return absentSym
}

const (
	absentName matchName = "absent"
)

type absentSymbol struct {
	matchName
}

func (s absentSymbol) Instance(child *ir.Item) (Op, error) {
	return &absentOp{matchOp: matchOp{op: op{name: s.matchName, child: child}}}, nil
}

// absentOp matches when the key is missing from the document.
type absentOp struct {
	matchOp
}

func (absentOp) Match(it *ir.Item, _ MatchFunc) (bool, error) {
	return it == nil, nil
}

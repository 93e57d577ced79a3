package mergeop

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var globSym = &globSymbol{matchName: globName}

func Glob() Symbol {
	return globSym
}

const (
	globName matchName = "glob"
)

type globSymbol struct {
	matchName
}

func (s globSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	if _, err := filepath.Match(child.String, ""); err != nil {
		return nil, fmt.Errorf("%w: glob %q: %w", ErrOp, child.String, err)
	}
	return &globOp{matchOp: matchOp{op: op{name: s.matchName, child: child}}}, nil
}

type globOp struct {
	matchOp
}

func (g globOp) Match(it *ir.Item, _ MatchFunc) (bool, error) {
	if debug.Match() {
		debug.Logf("glob op %q\n", g.child.String)
	}
	if it == nil || it.Type != ir.StringType {
		return false, nil
	}
	return filepath.Match(g.child.String, it.String)
}

package mergeop

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var tagSym = &tagSymbol{matchName: tagName}

func Tag() Symbol {
	return tagSym
}

const (
	tagName matchName = "tag"
)

type tagSymbol struct {
	matchName
}

func (s tagSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	if _, err := filepath.Match(child.String, ""); err != nil {
		return nil, fmt.Errorf("%w: tag glob %q: %w", ErrOp, child.String, err)
	}
	return &tagOp{matchOp: matchOp{op: op{name: s.matchName, child: child}}}, nil
}

type tagOp struct {
	matchOp
}

// Match matches the tag of an item against a glob.  An empty glob matches
// untagged items.
func (g tagOp) Match(it *ir.Item, _ MatchFunc) (bool, error) {
	if debug.Match() {
		debug.Logf("tag op %q\n", g.child.String)
	}
	if it == nil {
		return false, nil
	}
	if g.child.String == "" {
		return it.Tag == "", nil
	}
	return filepath.Match(g.child.String, it.Tag)
}

package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var deleteSym = &deleteSymbol{patchName: deleteName}

func Delete() Symbol {
	return deleteSym
}

const (
	deleteName patchName = "delete"
)

type deleteSymbol struct {
	patchName
}

func (s deleteSymbol) Instance(child *ir.Item) (Op, error) {
	return &deleteOp{patchOp: patchOp{op: op{name: s.patchName, child: child}}}, nil
}

// deleteOp removes an entry.  A non-empty value must equal the tag of the
// entry being removed.
type deleteOp struct {
	patchOp
}

func (n deleteOp) Patch(dst *ir.Document, key string, _ PatchFunc) error {
	if debug.Patch() {
		debug.Logf("delete op called on %q\n", key)
	}
	cur, ok := dst.Get(key)
	if !ok {
		return nil
	}
	if n.child.Type == ir.StringType && n.child.String != "" && cur.Tag != n.child.String {
		return fmt.Errorf("%w: tag %q of %q didn't match %q", ErrPatch, cur.Tag, key, n.child.String)
	}
	dst.Delete(key)
	return nil
}

package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/ir"
)

type patchOp struct {
	op
}

func (p patchOp) Match(*ir.Item, MatchFunc) (bool, error) {
	return false, fmt.Errorf("%w: cannot match with %s operation", ErrOp, p)
}

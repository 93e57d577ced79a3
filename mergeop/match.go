package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/ir"
)

type matchOp struct {
	op
}

func (m matchOp) Patch(_ *ir.Document, _ string, _ PatchFunc) error {
	return fmt.Errorf("%w: cannot patch with %s operation", ErrOp, m)
}

package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var appendSym = &appendSymbol{patchName: appendName}

func Append() Symbol {
	return appendSym
}

const (
	appendName patchName = "append"
)

type appendSymbol struct {
	patchName
}

func (s appendSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &appendOp{patchOp: patchOp{op: op{name: s.patchName, child: child}}}, nil
}

// appendOp appends the comma separated elements of its value to an array
// entry, creating the entry if needed.
type appendOp struct {
	patchOp
}

func (a appendOp) Patch(dst *ir.Document, key string, _ PatchFunc) error {
	if debug.Patch() {
		debug.Logf("append op called on %q\n", key)
	}
	var elts []string
	if cur, ok := dst.Get(key); ok {
		if !cur.IsArray() {
			return fmt.Errorf("%w: cannot append to %q, not an array", ErrPatch, key)
		}
		elts = cur.Array()
	}
	add := ir.FromString(a.child.String).WithTag(ir.TagArray)
	elts = append(elts, add.Array()...)
	return dst.Set(key, ir.FromArray(elts))
}

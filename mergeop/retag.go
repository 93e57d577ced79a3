package mergeop

import (
	"fmt"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var retagSym = &retagSymbol{patchName: retagName}

func Retag() Symbol {
	return retagSym
}

const (
	retagName patchName = "retag"
)

type retagSymbol struct {
	patchName
}

func (s retagSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	if strings.ContainsAny(child.String, "{} \t\r\n") || child.String == ir.TagKmkv {
		return nil, fmt.Errorf("%w: invalid tag %q", ErrOp, child.String)
	}
	return &retagOp{patchOp: patchOp{op: op{name: s.patchName, child: child}}}, nil
}

// retagOp sets the tag of a string entry.  An empty value removes the tag.
type retagOp struct {
	patchOp
}

func (p retagOp) Patch(dst *ir.Document, key string, _ PatchFunc) error {
	if debug.Patch() {
		debug.Logf("retag op patch on %q\n", key)
	}
	cur, ok := dst.Get(key)
	if !ok {
		return fmt.Errorf("%w: cannot retag missing %q", ErrPatch, key)
	}
	if cur.Type != ir.StringType {
		return fmt.Errorf("%w: cannot retag %s %q", ErrPatch, cur.Type, key)
	}
	cur.Tag = p.child.String
	return nil
}

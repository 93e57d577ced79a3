package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/ir"
)

// MatchFunc matches an item against a pattern item.  The item is nil when
// the pattern key is absent from the document.
type MatchFunc func(it, pattern *ir.Item) (bool, error)

// PatchFunc merges src into dst.
type PatchFunc func(dst, src *ir.Document) error

type Op interface {
	Match(it *ir.Item, f MatchFunc) (bool, error)
	Patch(dst *ir.Document, key string, pf PatchFunc) error
	String() string
}

type op struct {
	name  Name
	child *ir.Item
}

func (o op) String() string {
	return o.name.String()
}

func (o op) IsMatch() bool {
	return o.name.IsMatch()
}

func (o op) IsPatch() bool {
	return o.name.IsPatch()
}

// stringChild checks that an operation is applied to a string item.
func stringChild(s Symbol, child *ir.Item) error {
	if child == nil || child.Type != ir.StringType {
		return fmt.Errorf("%w: %s op needs a string value", ErrOp, s)
	}
	return nil
}

// Instantiate returns the operation named by the tag of child, or nil if
// the tag names no operation.
func Instantiate(child *ir.Item) (Op, error) {
	if child == nil || child.Tag == "" {
		return nil, nil
	}
	sym := Lookup(child.Tag)
	if sym == nil {
		return nil, nil
	}
	return sym.Instance(child)
}

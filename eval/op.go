package eval

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/ir"
)

// Op replaces a tagged string item with the result of evaluating it.  doc
// is the root document.
type Op interface {
	Eval(doc *ir.Document, env Env) (*ir.Item, error)
	String() string
}

type op struct {
	name  name
	child *ir.Item
}

func (o op) String() string {
	return string(o.name)
}

func stringChild(s Symbol, child *ir.Item) error {
	if child == nil || child.Type != ir.StringType {
		return fmt.Errorf("%w: %s only applies to strings", ErrEval, s)
	}
	return nil
}

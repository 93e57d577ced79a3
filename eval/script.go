package eval

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var scriptSym = &scriptSymbol{name: scriptName}

func Script() Symbol {
	return scriptSym
}

const (
	scriptName name = "script"
)

type scriptSymbol struct {
	name
}

func (s scriptSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &scriptOp{op: op{name: s.name, child: child}}, nil
}

// scriptOp evaluates its value as an expression.  Maps become documents,
// lists become arrays and scalars become strings.
type scriptOp struct {
	op
}

func (p scriptOp) Eval(doc *ir.Document, env Env) (*ir.Item, error) {
	if debug.Eval() {
		debug.Logf("script %q\n", p.child.String)
	}
	res, err := run(p.child.String, env, doc)
	if err != nil {
		return nil, err
	}
	it, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: script result: %w", ErrEval, err)
	}
	return it, nil
}

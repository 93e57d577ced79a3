package eval

import (
	"os"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var osenvSym = &osenvSymbol{name: osenvName}

func OSEnv() Symbol {
	return osenvSym
}

const (
	osenvName name = "osenv"
)

type osenvSymbol struct {
	name
}

func (s osenvSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &osenvOp{op: op{name: s.name, child: child}}, nil
}

type osenvOp struct {
	op
}

func (p osenvOp) Eval(doc *ir.Document, env Env) (*ir.Item, error) {
	if debug.Eval() {
		debug.Logf("osenv %q\n", p.child.String)
	}
	v, err := ExpandString(p.child.String, env, doc)
	if err != nil {
		return nil, err
	}
	return ir.FromString(os.Getenv(strings.TrimSpace(v))), nil
}

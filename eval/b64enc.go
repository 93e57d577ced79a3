package eval

import (
	"encoding/base64"

	"github.com/signadot/kmkv-format/kmkv/ir"
)

var b64EncSym = &b64EncSymbol{name: b64EncName}

func B64Enc() Symbol {
	return b64EncSym
}

const (
	b64EncName name = "b64enc"
)

type b64EncSymbol struct {
	name
}

func (s b64EncSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &b64EncOp{op: op{name: s.name, child: child}}, nil
}

type b64EncOp struct {
	op
}

func (p b64EncOp) Eval(doc *ir.Document, env Env) (*ir.Item, error) {
	v, err := ExpandString(p.child.String, env, doc)
	if err != nil {
		return nil, err
	}
	return ir.FromString(base64.StdEncoding.EncodeToString([]byte(v))), nil
}

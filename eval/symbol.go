package eval

import "github.com/signadot/kmkv-format/kmkv/ir"

type Symbol interface {
	String() string
	Instance(child *ir.Item) (Op, error)
}

type name string

func (s name) String() string {
	return string(s)
}

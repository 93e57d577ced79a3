package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var fileSym = &fileSymbol{name: fileName}

func File() Symbol {
	return fileSym
}

const (
	fileName name = "file"
)

type fileSymbol struct {
	name
}

func (s fileSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &fileOp{op: op{name: s.name, child: child}}, nil
}

// fileOp replaces its value, a path, with the contents of the file.
type fileOp struct {
	op
}

func (p fileOp) Eval(doc *ir.Document, env Env) (*ir.Item, error) {
	path, err := ExpandString(p.child.String, env, doc)
	if err != nil {
		return nil, err
	}
	path = strings.TrimSpace(path)
	if debug.Eval() {
		debug.Logf("file %q\n", path)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return ir.FromString(string(d)), nil
}

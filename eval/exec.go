package eval

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

var execSym = &execSymbol{name: execName}

func Exec() Symbol {
	return execSym
}

const (
	execName name = "exec"
)

type execSymbol struct {
	name
}

func (s execSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	return &execOp{op: op{name: s.name, child: child}}, nil
}

// execOp replaces its value, a shell command, with the command's output
// less trailing newlines.
type execOp struct {
	op
}

func (p execOp) Eval(doc *ir.Document, env Env) (*ir.Item, error) {
	cmdText, err := ExpandString(p.child.String, env, doc)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("exec %q\n", cmdText)
	}
	cmd := exec.Command("sh", "-c", cmdText)
	buf := bytes.NewBuffer(nil)
	cmd.Stdout = buf
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: exec %q: %w", ErrEval, cmdText, err)
	}
	return ir.FromString(strings.TrimRight(buf.String(), "\n")), nil
}

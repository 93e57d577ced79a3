package eval

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Env map[string]any

// DocEnv returns the top level entries of doc as an expression
// environment.
func DocEnv(doc *ir.Document) Env {
	return Env(doc.ToAny())
}

func run(input string, env Env, doc *ir.Document) (any, error) {
	program, err := expr.Compile(input, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, input, err)
	}
	res, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, input, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", input, res)
	}
	return res, nil
}

// Eval evaluates input with the top level entries of doc as variables.
func Eval(doc *ir.Document, input string) (any, error) {
	return run(input, DocEnv(doc), doc)
}

// EvalEnv evaluates input against env.  doc serves the path functions.
func EvalEnv(doc *ir.Document, env Env, input string) (any, error) {
	return run(input, env, doc)
}

// EvalItem evaluates input like Eval and converts the result to an item.
func EvalItem(doc *ir.Document, input string) (*ir.Item, error) {
	res, err := Eval(doc, input)
	if err != nil {
		return nil, err
	}
	it, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return it, nil
}

// Filter returns a document holding the top level entries of doc for which
// input is truthy.  Each evaluation sees the variables key, tag, value and
// doc.
func Filter(doc *ir.Document, input string) (*ir.Document, error) {
	program, err := expr.Compile(input, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, input, err)
	}
	root := doc.ToAny()
	res := ir.NewDocument()
	for k, it := range doc.All() {
		env := map[string]any{
			"key":   k,
			"tag":   it.Tag,
			"value": it.ToAny(),
			"doc":   root,
		}
		v, err := vm.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("%w: evaluating %q for %q: %w", ErrEval, input, k, err)
		}
		keep, err := truth(v)
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("filter %q on %q: %t\n", input, k, keep)
		}
		if keep {
			res.Set(k, it.Clone())
		}
	}
	return res, nil
}

func truth(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	it, err := ir.FromAny(v)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEval, err)
	}
	return ir.Truth(it), nil
}

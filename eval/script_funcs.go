package eval

import (
	"errors"
	"os"

	"github.com/signadot/kmkv-format/kmkv/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Document) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return res.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := doc.GetPath(params[0].(string))
			if errors.Is(err, ir.ErrNotFound) {
				return false, nil
			}
			return err == nil, err
		},
			new(func(string) bool)),
		expr.Function("keys", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			if res.Type != ir.DocumentType {
				return []any{}, nil
			}
			keys := res.Doc.Keys()
			out := make([]any, len(keys))
			for i, k := range keys {
				out[i] = k
			}
			return out, nil
		},
			new(func(string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

package eval

import "errors"

var (
	ErrSymbolExists = errors.New("symbol exists")
	ErrEval         = errors.New("eval error")
)

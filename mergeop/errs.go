package mergeop

import "errors"

var (
	ErrSymbolExists = errors.New("symbol exists")
	ErrOp           = errors.New("bad operation")
	ErrPatch        = errors.New("patch error")
)

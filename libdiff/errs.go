package libdiff

import "errors"

var (
	ErrPatch    = errors.New("bad patch")
	ErrConflict = errors.New("conflict")
)

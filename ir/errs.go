package ir

import "errors"

var (
	ErrDuplicateKey = errors.New("duplicate keyword")
	ErrEmptyKey     = errors.New("empty keyword")
	ErrPath         = errors.New("bad path")
	ErrNotFound     = errors.New("not found")
)

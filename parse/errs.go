package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/jsontree"
	"github.com/signadot/kmkv-format/kmkv/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrTagUnmatched  = fmt.Errorf("%w: unmatched tag bracket", ErrParse)
	ErrTagTrailing   = fmt.Errorf("%w: bytes after tag bracket", ErrParse)
	ErrEmptyKey      = fmt.Errorf("%w: empty keyword", ErrParse)
	ErrMaxDepth      = fmt.Errorf("%w: maximum nesting depth exceeded", ErrParse)
	ErrJSONStructure = errors.New("json structure error")
	ErrJSONSyntax    = jsontree.ErrSyntax
	ErrIO            = errors.New("io error")
)

// DuplicateKeyError reports a keyword which occurs twice in one document.
// Pos is nil for JSON input.
type DuplicateKeyError struct {
	Key string
	Pos *token.Pos
}

func (e *DuplicateKeyError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s %q", ir.ErrDuplicateKey, e.Key)
	}
	return fmt.Sprintf("%s %q %s", ir.ErrDuplicateKey, e.Key, e.Pos)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ir.ErrDuplicateKey
}

// KeywordError reports a keyword which does not split into a key and a
// tag.  Err is one of ErrTagUnmatched, ErrTagTrailing or ErrEmptyKey.
type KeywordError struct {
	Keyword string
	Pos     *token.Pos
	Err     error
}

func (e *KeywordError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%v: %q", e.Err, e.Keyword)
	}
	return fmt.Sprintf("%v: %q %s", e.Err, e.Keyword, e.Pos)
}

func (e *KeywordError) Unwrap() error {
	return e.Err
}

// NestedError reports a failure inside a nested document.  Key is the
// outermost key and Path leads from the top level document to the
// document where Err occurred.
type NestedError struct {
	Key  string
	Path ir.Path
	Err  error
}

func (e *NestedError) Error() string {
	return fmt.Sprintf("in %s: %v", e.Path, e.Err)
}

func (e *NestedError) Unwrap() error {
	return e.Err
}

// nestedErr wraps err, which occurred under key.  Failures of nested
// documents of nested documents collapse into one error.
func nestedErr(key string, err error) error {
	if nErr, ok := err.(*NestedError); ok {
		nErr.Key = key
		nErr.Path.Keys = append([]string{key}, nErr.Path.Keys...)
		return nErr
	}
	return &NestedError{Key: key, Path: ir.Path{Keys: []string{key}}, Err: err}
}

// ErrPos returns the position of the keyword at which err occurred, or nil
// if err carries no position.
func ErrPos(err error) *token.Pos {
	var dErr *DuplicateKeyError
	if errors.As(err, &dErr) {
		return dErr.Pos
	}
	var kErr *KeywordError
	if errors.As(err, &kErr) {
		return kErr.Pos
	}
	var tErr *token.TokenizeErr
	if errors.As(err, &tErr) {
		return tErr.Pos
	}
	return nil
}

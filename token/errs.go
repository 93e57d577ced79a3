package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKeyword     = errors.New("empty keyword")
	ErrUnmatchedBracket = errors.New("unmatched value bracket")
)

// TokenizeErr reports a tokenization failure for the keyword starting at
// Pos.
type TokenizeErr struct {
	Err     error
	Keyword string
	Pos     *Pos
}

func NewTokenizeErr(err error, keyword []byte, pos *Pos) *TokenizeErr {
	return &TokenizeErr{Err: err, Keyword: string(keyword), Pos: pos}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	msg := e.Err.Error()
	if e.Keyword != "" {
		msg = fmt.Sprintf("%s for keyword %q", msg, e.Keyword)
	}
	if e.Pos == nil {
		return msg
	}
	return msg + " " + e.Pos.String()
}

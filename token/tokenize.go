package token

import (
	"errors"

	"github.com/signadot/kmkv-format/kmkv/debug"
)

// Token is a keyword and its value.  Keyword still carries any "{tag}"
// suffix.  Offsets are relative to the input given to [Next] or absolute
// when produced by a [Tokenizer].
type Token struct {
	Keyword     []byte
	Value       []byte
	Offset      int
	ValueOffset int
	Bracket     bool
}

// lineState tracks whether only whitespace has been seen since the last
// newline.  Closing braces count only at the start of a line.
type lineState int

const (
	midLine lineState = iota
	atLineStart
)

func (s lineState) next(c byte) lineState {
	if IsNewline(c) {
		return atLineStart
	}
	if s == atLineStart && !IsWhitespace(c) {
		return midLine
	}
	return s
}

// Next reads the keyword/value pair at the front of src and returns it
// together with the number of bytes consumed, including the whitespace
// which follows the value.  At the end of input, or when src starts with
// a NUL byte, Next returns 0 bytes consumed and no error.
func Next(src []byte) (Token, int, error) {
	tok := Token{}
	if len(src) == 0 || IsTerminator(src[0]) {
		return tok, 0, nil
	}
	i := 0
	for i < len(src) && !IsWhitespace(src[i]) {
		i++
	}
	tok.Keyword = src[:i]
	if i == 0 {
		return tok, 0, NewTokenizeErr(ErrEmptyKeyword, nil, nil)
	}
	for i < len(src) && src[i] == ' ' {
		i++
	}

	start, size := i, 0
	for i < len(src) {
		if IsNewline(src[i]) {
			i++
			break
		}
		if src[i] == '{' && size == 0 {
			i++
			tok.Bracket = true
			break
		}
		size++
		i++
	}

	if tok.Bracket {
		var ok bool
		start, size, i, ok = bracketValue(src, i)
		if !ok {
			if debug.Tokenize() {
				debug.Logf("value bracket unmatched for keyword %q\n", tok.Keyword)
			}
			return tok, 0, NewTokenizeErr(ErrUnmatchedBracket, tok.Keyword, nil)
		}
	}
	tok.ValueOffset = start
	tok.Value = TrimRightSpace(src[start : start+size])

	for i < len(src) && IsWhitespace(src[i]) {
		i++
	}
	return tok, i, nil
}

// bracketValue scans a bracket value starting just after its opening
// brace.  It returns the value start and size and the offset just after
// the matching closing brace.
func bracketValue(src []byte, i int) (start, size, end int, ok bool) {
	depth := 1
	state := midLine
	start = i
	for i < len(src) {
		c := src[i]
		if c == '{' && i+1 < len(src) && IsNewline(src[i+1]) {
			depth++
		} else if c == '}' && state == atLineStart {
			depth--
			if depth == 0 {
				return start, size, i + 1, true
			}
		}
		state = state.next(c)
		if size == 0 && IsWhitespace(c) {
			i++
			start = i
			continue
		}
		size++
		i++
	}
	return start, size, i, false
}

// Tokenizer produces the tokens of a whole input.
type Tokenizer struct {
	src  []byte
	off  int
	base int
	doc  *PosDoc
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{src: src, doc: NewPosDoc(src)}
}

// NewSubTokenizer tokenizes src, which starts at offset base of the
// document described by doc.
func NewSubTokenizer(src []byte, base int, doc *PosDoc) *Tokenizer {
	return &Tokenizer{src: src, base: base, doc: doc}
}

func (t *Tokenizer) PosDoc() *PosDoc {
	return t.doc
}

// SkipSpace skips whitespace at the current position.
func (t *Tokenizer) SkipSpace() {
	for t.off < len(t.src) && IsWhitespace(t.src[t.off]) {
		t.off++
	}
}

// Next returns the next token or nil at the end of input.
func (t *Tokenizer) Next() (*Token, error) {
	tok, n, err := Next(t.src[t.off:])
	abs := t.base + t.off
	if err != nil {
		var tErr *TokenizeErr
		if errors.As(err, &tErr) && tErr.Pos == nil && t.doc != nil {
			tErr.Pos = t.doc.Pos(abs)
		}
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	tok.Offset = abs
	tok.ValueOffset += abs
	t.off += n
	if debug.Tokenize() {
		debug.Logf("token %q %q at %d\n", tok.Keyword, tok.Value, tok.Offset)
	}
	return &tok, nil
}

// Tokenize returns all tokens of src.
func Tokenize(src []byte) ([]Token, error) {
	t := NewTokenizer(src)
	t.SkipSpace()
	res := []Token{}
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return res, nil
		}
		res = append(res, *tok)
	}
}

package parse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/format"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/token"
)

// Parse parses d into a document.  Empty input, or input holding only
// whitespace, yields an empty document.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := newParseOpts(opts)
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d, pOpts)
	case format.YAMLFormat:
		return parseYAML(d, pOpts)
	}
	return parseBlock(token.NewTokenizer(d), 0, pOpts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(d, opts...)
}

// ParseFile reads and parses the file at path.  The format defaults to the
// one named by the file extension.
func ParseFile(path string, opts ...ParseOption) (*ir.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if debug.Parse() {
			debug.Logf("read %s: %v\n", path, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	opts = append([]ParseOption{ParseFormat(format.FromPath(path))}, opts...)
	doc, err := Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func trackPos(it *ir.Item, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[it] = pos
	}
}

func checkDepth(depth int, opts *parseOpts) error {
	if opts.maxDepth > 0 && depth > opts.maxDepth {
		return fmt.Errorf("%w: limit %d", ErrMaxDepth, opts.maxDepth)
	}
	return nil
}

func parseBlock(t *token.Tokenizer, depth int, opts *parseOpts) (*ir.Document, error) {
	if err := checkDepth(depth, opts); err != nil {
		return nil, err
	}
	doc := ir.NewDocument()
	t.SkipSpace()
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return doc, nil
		}
		pos := t.PosDoc().Pos(tok.Offset)
		key, tag, err := SplitKeyword(tok.Keyword)
		if err != nil {
			if debug.Parse() {
				debug.Logf("bad keyword %q: %v\n", tok.Keyword, err)
			}
			return nil, &KeywordError{Keyword: string(tok.Keyword), Pos: pos, Err: err}
		}
		it, err := doc.Add(key)
		if err != nil {
			if debug.Parse() {
				debug.Logf("%v %s\n", err, pos)
			}
			if errors.Is(err, ir.ErrDuplicateKey) {
				return nil, &DuplicateKeyError{Key: key, Pos: pos}
			}
			return nil, err
		}
		trackPos(it, pos, opts)
		if tag != ir.TagKmkv {
			it.Type = ir.StringType
			it.Tag = tag
			it.String = string(tok.Value)
			continue
		}
		sub := token.NewSubTokenizer(tok.Value, tok.ValueOffset, t.PosDoc())
		nested, err := parseBlock(sub, depth+1, opts)
		if err != nil {
			if debug.Parse() {
				debug.Logf("nested document %q: %v\n", key, err)
			}
			return nil, nestedErr(key, err)
		}
		it.Type = ir.DocumentType
		it.Tag = ir.TagKmkv
		it.Doc = nested
	}
}

// SplitKeyword splits a raw keyword of the form "key" or "key{tag}".  The
// tag bracket must close at the last byte of the keyword.
func SplitKeyword(kw []byte) (key, tag string, err error) {
	i := 0
	for i < len(kw) && kw[i] != '{' {
		i++
	}
	if i == 0 {
		return "", "", ErrEmptyKey
	}
	if i == len(kw) {
		return string(kw), "", nil
	}
	j := i + 1
	for j < len(kw) && kw[j] != '}' {
		j++
	}
	if j == len(kw) {
		return "", "", ErrTagUnmatched
	}
	if j != len(kw)-1 {
		return "", "", ErrTagTrailing
	}
	return string(kw[:i]), string(kw[i+1 : j]), nil
}

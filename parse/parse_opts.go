package parse

import (
	"github.com/signadot/kmkv-format/kmkv/format"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/token"
)

const DefaultMaxDepth = 512

type parseOpts struct {
	format    format.Format
	maxDepth  int
	positions map[*ir.Item]*token.Pos
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{format: format.KmkvFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

func ParseKmkv() ParseOption {
	return ParseFormat(format.KmkvFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseMaxDepth limits the nesting of documents.  A limit of 0 or less
// disables the check.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// ParsePositions records the position of the keyword of every item parsed
// from kmkv text.
func ParsePositions(m map[*ir.Item]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

package kmkv

import (
	"bytes"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/libdiff"
	"github.com/signadot/kmkv-format/kmkv/mergeop"
	"github.com/signadot/kmkv-format/kmkv/parse"
)

// Load reads and parses the file at path.  The format is chosen from the
// file suffix unless given in opts.
func Load(path string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.ParseFile(path, opts...)
}

func Unmarshal(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

func Marshal(doc *ir.Document, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON exports doc as a compact JSON object.
func ToJSON(doc *ir.Document) ([]byte, error) {
	return encode.MarshalJSON(doc)
}

// FromJSON imports a JSON object as a document.
func FromJSON(d []byte) (*ir.Document, error) {
	return parse.ParseJSON(d)
}

func Diff(from, to *ir.Document) []libdiff.Change {
	return libdiff.Diff(from, to)
}

// Patch returns the result of merging patch onto a copy of doc.
func Patch(doc, patch *ir.Document) (*ir.Document, error) {
	res := doc.Clone()
	if err := mergeop.Merge(res, patch); err != nil {
		return nil, err
	}
	return res, nil
}

// Package gomap maps kmkv documents to and from Go values through their
// JSON form.  Struct fields use json tags.  Since kmkv values are strings,
// fields decoded from documents should be strings, string slices, maps or
// structs.
package gomap

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"

	json "github.com/goccy/go-json"
)

// DocumentFromer is implemented by values which decode themselves.
type DocumentFromer interface {
	FromDocument(*ir.Document) error
}

// Load parses d and decodes the result into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromDocument(doc, p)
}

func FromDocument(doc *ir.Document, p any) error {
	if x, ok := p.(DocumentFromer); ok {
		return x.FromDocument(doc)
	}
	j, err := encode.MarshalJSON(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(j, p)
}

// ToDocument converts v, which must marshal to a JSON object, to a
// document.  Numbers and booleans become strings.
func ToDocument(v any) (*ir.Document, error) {
	j, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var a any
	if err := json.Unmarshal(j, &a); err != nil {
		return nil, err
	}
	if debug.Convert() {
		debug.LogAny(a)
	}
	m, ok := a.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("cannot convert %T to a document", v)
	}
	it, err := ir.FromAny(m)
	if err != nil {
		return nil, err
	}
	return it.Doc, nil
}

// Dump encodes v as a document.
func Dump(v any, opts ...encode.EncodeOption) (string, error) {
	doc, err := ToDocument(v)
	if err != nil {
		return "", err
	}
	return encode.MustString(doc, opts...), nil
}

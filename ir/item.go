// Package ir provides the in-memory representation of kmkv documents.
//
// A [Document] maps keys to [Item]s. An Item is either empty ([NoneType]),
// a possibly tagged string ([StringType]) or a nested Document
// ([DocumentType]). Two tags are interpreted: [TagKmkv] marks nested
// documents and [TagArray] marks strings that hold a comma separated list.
package ir

import (
	"github.com/signadot/kmkv-format/kmkv/token"
)

const (
	TagKmkv  = "kmkv"
	TagArray = "array"
)

// Item is one value slot of a Document.
type Item struct {
	Type   Type
	Tag    string
	String string
	Doc    *Document
}

func FromString(v string) *Item {
	return &Item{Type: StringType, String: v}
}

// FromArray joins elems with ',' into an array tagged string.  Elements
// containing ',' or surrounding whitespace do not survive [Item.Array].
func FromArray(elems []string) *Item {
	n := 0
	for _, e := range elems {
		n += len(e) + 1
	}
	buf := make([]byte, 0, n)
	for i, e := range elems {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, e...)
	}
	return &Item{Type: StringType, Tag: TagArray, String: string(buf)}
}

func FromDocument(d *Document) *Item {
	if d == nil {
		d = NewDocument()
	}
	return &Item{Type: DocumentType, Tag: TagKmkv, Doc: d}
}

func (it *Item) WithTag(tag string) *Item {
	it.Tag = tag
	return it
}

func (it *Item) IsArray() bool {
	return it.Type == StringType && it.Tag == TagArray
}

// Array splits the string value on ',' and trims whitespace from each
// element.  An empty value has no elements and a trailing ',' does not
// produce a trailing empty element.
func (it *Item) Array() []string {
	if it.Type != StringType {
		return nil
	}
	rest := []byte(it.String)
	res := []string{}
	for len(rest) > 0 {
		var elt []byte
		elt, rest = token.SplitNext(rest, ',')
		res = append(res, string(token.TrimSpace(elt)))
	}
	return res
}

func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	res := *it
	if it.Doc != nil {
		res.Doc = it.Doc.Clone()
	}
	return &res
}

// Equal reports whether a and b hold the same kind, tag and value.
// Nested documents are compared without regard to enumeration order.
func Equal(a, b *Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Tag != b.Tag {
		return false
	}
	switch a.Type {
	case StringType:
		return a.String == b.String
	case DocumentType:
		return a.Doc.Equal(b.Doc)
	default:
		return true
	}
}

// ToAny converts the item to plain Go values: strings, []any for array
// tagged strings and map[string]any for documents.
func (it *Item) ToAny() any {
	switch it.Type {
	case StringType:
		if it.Tag != TagArray {
			return it.String
		}
		elts := it.Array()
		res := make([]any, len(elts))
		for i, e := range elts {
			res[i] = e
		}
		return res
	case DocumentType:
		return it.Doc.ToAny()
	default:
		return nil
	}
}

package ir

import (
	"fmt"
	"iter"
)

// Field is one key/item pair of a Document.
type Field struct {
	Key  string
	Item *Item
}

// Document maps non-empty keys to items.  Keys are unique and fields are
// enumerated in insertion order.
type Document struct {
	fields []Field
	index  map[string]int // key -> position in fields
}

func NewDocument() *Document {
	return &Document{index: map[string]int{}}
}

// Add inserts a new empty item under key and returns it.  Adding a key
// which is already present is an error and leaves the document unchanged.
func (d *Document) Add(key string) (*Item, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if d.index == nil {
		d.index = map[string]int{}
	}
	if _, ok := d.index[key]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	it := &Item{}
	d.index[key] = len(d.fields)
	d.fields = append(d.fields, Field{Key: key, Item: it})
	return it, nil
}

// Set stores item under key, replacing any existing item in place.
func (d *Document) Set(key string, item *Item) error {
	if key == "" {
		return ErrEmptyKey
	}
	if d.index == nil {
		d.index = map[string]int{}
	}
	if i, ok := d.index[key]; ok {
		d.fields[i].Item = item
		return nil
	}
	d.index[key] = len(d.fields)
	d.fields = append(d.fields, Field{Key: key, Item: item})
	return nil
}

func (d *Document) Get(key string) (*Item, bool) {
	if d == nil {
		return nil, false
	}
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return d.fields[i].Item, true
}

func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

func (d *Document) Delete(key string) bool {
	i, ok := d.index[key]
	if !ok {
		return false
	}
	d.fields = append(d.fields[:i], d.fields[i+1:]...)
	delete(d.index, key)
	for j := i; j < len(d.fields); j++ {
		d.index[d.fields[j].Key] = j
	}
	return true
}

func (d *Document) Clear() {
	d.fields = nil
	d.index = map[string]int{}
}

func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.fields)
}

// Fields returns the fields in enumeration order.  The slice must not be
// modified.
func (d *Document) Fields() []Field {
	if d == nil {
		return nil
	}
	return d.fields
}

func (d *Document) Keys() []string {
	res := make([]string, 0, d.Len())
	for _, f := range d.Fields() {
		res = append(res, f.Key)
	}
	return res
}

func (d *Document) All() iter.Seq2[string, *Item] {
	return func(yield func(string, *Item) bool) {
		for _, f := range d.Fields() {
			if !yield(f.Key, f.Item) {
				return
			}
		}
	}
}

// GetString returns the value of the string item under key.
func (d *Document) GetString(key string) (string, bool) {
	it, ok := d.Get(key)
	if !ok || it.Type != StringType {
		return "", false
	}
	return it.String, true
}

// GetDocument returns the nested document under key.
func (d *Document) GetDocument(key string) (*Document, bool) {
	it, ok := d.Get(key)
	if !ok || it.Type != DocumentType {
		return nil, false
	}
	return it.Doc, true
}

// GetArray returns the elements of the array tagged string under key.
func (d *Document) GetArray(key string) ([]string, bool) {
	it, ok := d.Get(key)
	if !ok || !it.IsArray() {
		return nil, false
	}
	return it.Array(), true
}

func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	res := &Document{
		fields: make([]Field, len(d.fields)),
		index:  make(map[string]int, len(d.fields)),
	}
	for i, f := range d.fields {
		res.fields[i] = Field{Key: f.Key, Item: f.Item.Clone()}
		res.index[f.Key] = i
	}
	return res
}

// Equal reports whether d and o have the same keys mapping to equal items.
// Enumeration order is not considered.
func (d *Document) Equal(o *Document) bool {
	if d.Len() != o.Len() {
		return false
	}
	for _, f := range d.Fields() {
		oi, ok := o.Get(f.Key)
		if !ok {
			return false
		}
		if !Equal(f.Item, oi) {
			return false
		}
	}
	return true
}

func (d *Document) ToAny() map[string]any {
	res := make(map[string]any, d.Len())
	for _, f := range d.Fields() {
		res[f.Key] = f.Item.ToAny()
	}
	return res
}

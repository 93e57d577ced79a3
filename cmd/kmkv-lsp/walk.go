package main

import (
	"github.com/signadot/kmkv-format/kmkv/ir"
)

// entry is a parsed item together with its key and path.
type entry struct {
	key  string
	path ir.Path
	item *ir.Item
}

// entries lists the items of doc depth first in enumeration order.
func entries(doc *ir.Document) []entry {
	var res []entry
	var visit func(d *ir.Document, p ir.Path)
	visit = func(d *ir.Document, p ir.Path) {
		for _, f := range d.Fields() {
			cp := p.Child(f.Key)
			res = append(res, entry{key: f.Key, path: cp, item: f.Item})
			if f.Item.Type == ir.DocumentType {
				visit(f.Item.Doc, cp)
			}
		}
	}
	visit(doc, ir.Path{})
	return res
}

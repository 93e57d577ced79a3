package libdiff

import (
	"github.com/signadot/kmkv-format/kmkv/ir"
)

// Change is one difference at Path.  From is nil for Added and To is nil
// for Removed.
type Change struct {
	Path ir.Path
	Op   Op
	From *ir.Item
	To   *ir.Item
	// Patch holds a textual character patch when both sides are strings.
	Patch string
}

// Diff returns the changes turning from into to.  Changes are ordered by
// the enumeration order of from, followed by additions in the order of to.
func Diff(from, to *ir.Document) []Change {
	return diffDoc(ir.Path{}, from, to, nil)
}

func diffDoc(p ir.Path, from, to *ir.Document, res []Change) []Change {
	for _, f := range from.Fields() {
		cp := p.Child(f.Key)
		toItem, ok := to.Get(f.Key)
		if !ok {
			res = append(res, Change{Path: cp, Op: Removed, From: f.Item})
			continue
		}
		res = diffItem(cp, f.Item, toItem, res)
	}
	for _, f := range to.Fields() {
		if from.Has(f.Key) {
			continue
		}
		res = append(res, Change{Path: p.Child(f.Key), Op: Added, To: f.Item})
	}
	return res
}

func diffItem(p ir.Path, from, to *ir.Item, res []Change) []Change {
	if from.Type != to.Type {
		return append(res, Change{Path: p, Op: KindChanged, From: from, To: to})
	}
	switch from.Type {
	case ir.DocumentType:
		return diffDoc(p, from.Doc, to.Doc, res)
	case ir.StringType:
		if from.String != to.String {
			return append(res, Change{
				Path:  p,
				Op:    Modified,
				From:  from,
				To:    to,
				Patch: DiffString(from.String, to.String),
			})
		}
		if from.Tag != to.Tag {
			return append(res, Change{Path: p, Op: Retagged, From: from, To: to})
		}
	}
	return res
}

// Reverse returns the changes undoing changes, in reverse order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[i]
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Added:
			c.Op = Removed
		case Removed:
			c.Op = Added
		case Modified:
			c.Patch = DiffString(c.From.String, c.To.String)
		}
		res[len(changes)-1-i] = c
	}
	return res
}

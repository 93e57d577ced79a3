package kmkv

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/mergeop"
)

// Match reports whether doc matches pattern.  Every key of pattern must
// match the item stored under the same key in doc.  Keys of doc absent
// from pattern are ignored.
func Match(doc, pattern *ir.Document) (bool, error) {
	for _, f := range pattern.Fields() {
		it, _ := doc.Get(f.Key)
		ok, err := MatchItem(it, f.Item)
		if err != nil {
			return false, fmt.Errorf("%q: %w", f.Key, err)
		}
		if debug.Match() {
			debug.Logf("match key %q: %t\n", f.Key, ok)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// MatchItem matches a single item.  it is nil when the key is missing.
// A pattern tagged with a match operation is matched by that operation.
// An untagged empty pattern matches any present item.  Otherwise tags must be
// equal, strings must be equal, arrays must have equal elements and
// documents must match recursively.
func MatchItem(it, pattern *ir.Item) (bool, error) {
	if sym := mergeop.Lookup(pattern.Tag); sym != nil {
		if !sym.IsMatch() {
			return false, fmt.Errorf("%w: %s is not a match operation", mergeop.ErrOp, sym)
		}
		op, err := sym.Instance(pattern)
		if err != nil {
			return false, err
		}
		return op.Match(it, MatchItem)
	}
	if it == nil {
		return false, nil
	}
	if pattern.Tag == "" && (pattern.Type == ir.NoneType || pattern.Type == ir.StringType && pattern.String == "") {
		return true, nil
	}
	if it.Type != pattern.Type || it.Tag != pattern.Tag {
		return false, nil
	}
	switch pattern.Type {
	case ir.StringType:
		if pattern.IsArray() {
			return equalStrings(it.Array(), pattern.Array()), nil
		}
		return it.String == pattern.String, nil
	case ir.DocumentType:
		return Match(it.Doc, pattern.Doc)
	default:
		return true, nil
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Trim returns a copy of doc holding only the keys present in pattern.
// Nested documents present on both sides are trimmed recursively.
func Trim(pattern, doc *ir.Document) *ir.Document {
	res := ir.NewDocument()
	for _, f := range doc.Fields() {
		pit, ok := pattern.Get(f.Key)
		if !ok {
			continue
		}
		if f.Item.Type == ir.DocumentType && pit.Type == ir.DocumentType {
			res.Set(f.Key, ir.FromDocument(Trim(pit.Doc, f.Item.Doc)).WithTag(f.Item.Tag))
			continue
		}
		res.Set(f.Key, f.Item.Clone())
	}
	return res
}

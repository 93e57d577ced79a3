package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

// Merge overlays src onto dst in place.  Entries of src tagged with a
// patch operation are applied as that operation.  Nested documents present
// in both are merged recursively.  Any other entry of src replaces the
// entry of dst, keeping its position if the key exists.
func Merge(dst, src *ir.Document) error {
	for _, f := range src.Fields() {
		it := f.Item
		if sym := Lookup(it.Tag); sym != nil && sym.IsPatch() {
			op, err := sym.Instance(it)
			if err != nil {
				return fmt.Errorf("%q: %w", f.Key, err)
			}
			if err := op.Patch(dst, f.Key, Merge); err != nil {
				return err
			}
			continue
		}
		if it.Type == ir.DocumentType {
			if cur, ok := dst.GetDocument(f.Key); ok {
				if debug.Patch() {
					debug.Logf("merge into %q\n", f.Key)
				}
				if err := Merge(cur, it.Doc); err != nil {
					return &KeyError{Key: f.Key, Err: err}
				}
				continue
			}
		}
		if err := dst.Set(f.Key, it.Clone()); err != nil {
			return err
		}
	}
	return nil
}

// KeyError reports a failure merging the nested document under Key.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/ir"
)

// Apply applies changes to doc in place.  A change whose precondition does
// not hold, such as adding an existing key, is a conflict.  Modified
// strings are patched so that edits elsewhere in the string are kept.
func Apply(doc *ir.Document, changes []Change) error {
	for i := range changes {
		c := &changes[i]
		if err := apply(doc, c); err != nil {
			if debug.Patch() {
				debug.Logf("apply %s %s: %v\n", c.Op, c.Path, err)
			}
			return fmt.Errorf("%s %s: %w", c.Op, c.Path, err)
		}
	}
	return nil
}

func apply(doc *ir.Document, c *Change) error {
	if len(c.Path.Keys) == 0 {
		return fmt.Errorf("%w: change at document root", ErrPatch)
	}
	parentPath := ir.Path{Keys: c.Path.Keys[:len(c.Path.Keys)-1]}
	key := c.Path.Keys[len(c.Path.Keys)-1]
	parent, err := doc.Lookup(parentPath)
	if err != nil {
		return errors.Join(ErrConflict, err)
	}
	if parent.Type != ir.DocumentType {
		return fmt.Errorf("%w: %s is a %s", ErrConflict, parentPath, parent.Type)
	}
	pd := parent.Doc
	cur, exists := pd.Get(key)
	switch c.Op {
	case Added:
		if exists {
			return fmt.Errorf("%w: key exists", ErrConflict)
		}
		return pd.Set(key, c.To.Clone())
	case Removed:
		if !exists {
			return fmt.Errorf("%w: key missing", ErrConflict)
		}
		pd.Delete(key)
		return nil
	}
	if !exists {
		return fmt.Errorf("%w: key missing", ErrConflict)
	}
	switch c.Op {
	case KindChanged:
		if cur.Type != c.From.Type {
			return fmt.Errorf("%w: expected %s, found %s", ErrConflict, c.From.Type, cur.Type)
		}
		return pd.Set(key, c.To.Clone())
	case Retagged:
		if cur.Type != ir.StringType || cur.Tag != c.From.Tag {
			return fmt.Errorf("%w: expected tag %q", ErrConflict, c.From.Tag)
		}
		cur.Tag = c.To.Tag
		return nil
	case Modified:
		if cur.Type != ir.StringType {
			return fmt.Errorf("%w: expected %s, found %s", ErrConflict, ir.StringType, cur.Type)
		}
		v := c.To.String
		if cur.String != c.From.String && c.Patch != "" {
			v, err = PatchString(cur.String, c.Patch)
			if err != nil {
				return err
			}
		}
		cur.String = v
		cur.Tag = c.To.Tag
		return nil
	default:
		return fmt.Errorf("%w: unknown op %s", ErrPatch, c.Op)
	}
}

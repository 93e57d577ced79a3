package mergeop

import (
	"fmt"

	"github.com/signadot/kmkv-format/kmkv/debug"
	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// JSONPatch applies an RFC 6902 JSON patch to doc through its JSON form.
func JSONPatch(doc *ir.Document, patch []byte) (*ir.Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return viaJSON(doc, ops.Apply)
}

// MergePatch applies an RFC 7386 JSON merge patch to doc through its JSON
// form.  Members of merged objects come out sorted by name.
func MergePatch(doc *ir.Document, patch []byte) (*ir.Document, error) {
	return viaJSON(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	})
}

func viaJSON(doc *ir.Document, f func([]byte) ([]byte, error)) (*ir.Document, error) {
	d, err := encode.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch result %s\n", out)
	}
	return parse.ParseJSON(out)
}

var jPatchSym = &jPatchSymbol{patchName: jPatchName}
var mPatchSym = &mPatchSymbol{patchName: mPatchName}

func JSONPatchOp() Symbol {
	return jPatchSym
}

func MergePatchOp() Symbol {
	return mPatchSym
}

const (
	jPatchName patchName = "json-patch"
	mPatchName patchName = "merge-patch"
)

type jPatchSymbol struct {
	patchName
}

func (s jPatchSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch([]byte(child.String))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOp, err)
	}
	return &jPatchOp{apply: ops.Apply, patchOp: patchOp{op: op{name: s.patchName, child: child}}}, nil
}

type mPatchSymbol struct {
	patchName
}

func (s mPatchSymbol) Instance(child *ir.Item) (Op, error) {
	if err := stringChild(s, child); err != nil {
		return nil, err
	}
	patch := []byte(child.String)
	apply := func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, patch)
	}
	return &jPatchOp{apply: apply, patchOp: patchOp{op: op{name: s.patchName, child: child}}}, nil
}

// jPatchOp patches a nested document entry through its JSON form.  A
// missing entry is patched as an empty document.
type jPatchOp struct {
	patchOp
	apply func([]byte) ([]byte, error)
}

func (jp jPatchOp) Patch(dst *ir.Document, key string, _ PatchFunc) error {
	if debug.Patch() {
		debug.Logf("%s op called on %q\n", jp, key)
	}
	sub := ir.NewDocument()
	if cur, ok := dst.Get(key); ok {
		if cur.Type != ir.DocumentType {
			return fmt.Errorf("%w: %s needs a document at %q, got %s", ErrPatch, jp, key, cur.Type)
		}
		sub = cur.Doc
	}
	res, err := viaJSON(sub, jp.apply)
	if err != nil {
		return fmt.Errorf("%s %q: %w", jp, key, err)
	}
	return dst.Set(key, ir.FromDocument(res))
}

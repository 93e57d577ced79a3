package mergeop

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"
)

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	d, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

type mergeTest struct {
	dst, src, out string
	err           error
}

func TestMerge(t *testing.T) {
	mts := []mergeTest{
		{
			dst: "a 1\nb 2\n",
			src: "b 3\nc 4\n",
			out: "a 1\nb 3\nc 4\n",
		},
		{
			dst: "sub{kmkv} {\n    x 1\n    y 2\n}\n",
			src: "sub{kmkv} {\n    y 3\n    z 4\n}\n",
			out: "sub{kmkv} {\n    x 1\n    y 3\n    z 4\n}\n",
		},
		{
			dst: "sub a string\n",
			src: "sub{kmkv} {\n    y 3\n}\n",
			out: "sub{kmkv} {\n    y 3\n}\n",
		},
		{
			dst: "a 1\nb{x} 2\nc 3\n",
			src: "a{delete}\nb{delete} x\nmissing{delete}\n",
			out: "c 3\n",
		},
		{
			dst: "b{x} 2\n",
			src: "b{delete} y\n",
			err: ErrPatch,
		},
		{
			dst: "tags{array} a, b\n",
			src: "tags{append} c, d\nnew{append} x\n",
			out: "tags{array} a,b,c,d\nnew{array} x\n",
		},
		{
			dst: "tags plain\n",
			src: "tags{append} c\n",
			err: ErrPatch,
		},
		{
			dst: "v{old} 1\n",
			src: "v{retag} new\n",
			out: "v{new} 1\n",
		},
		{
			dst: "v 1\n",
			src: "w{retag} new\n",
			err: ErrPatch,
		},
		{
			dst: "sub{kmkv} {\n    x 1\n}\n",
			src: `sub{json-patch} [{"op": "add", "path": "/y", "value": "2"}, {"op": "remove", "path": "/x"}]` + "\n",
			out: "sub{kmkv} {\n    y 2\n}\n",
		},
		{
			dst: "sub{kmkv} {\n    x 1\n    y 2\n}\n",
			src: "sub{merge-patch} {\n" + `{"x": null, "z": "3"}` + "\n}\n",
			out: "sub{kmkv} {\n    y 2\n    z 3\n}\n",
		},
		{
			dst: "sub{kmkv} {\n    x 1\n}\n",
			src: `sub{json-patch} [{"op": "remove", "path": "/nope"}]` + "\n",
			err: ErrPatch,
		},
		{
			dst: "g 1\n",
			src: "g{glob} [\n",
			out: "g{glob} [\n",
		},
	}
	for _, mt := range mts {
		dst := mustParse(t, mt.dst)
		err := Merge(dst, mustParse(t, mt.src))
		if mt.err != nil {
			if !errors.Is(err, mt.err) {
				t.Errorf("%q <- %q: got %v, expected %v", mt.dst, mt.src, err, mt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q <- %q: %v", mt.dst, mt.src, err)
			continue
		}
		out := mustParse(t, mt.out)
		if !dst.Equal(out) {
			t.Errorf("%q <- %q:\n%s", mt.dst, mt.src, cmp.Diff(out.ToAny(), dst.ToAny()))
		}
	}
}

func TestMergeOrder(t *testing.T) {
	dst := mustParse(t, "a 1\nb 2\nc 3\n")
	if err := Merge(dst, mustParse(t, "d 4\nb 5\n")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, dst.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJSONPatch(t *testing.T) {
	d := mustParse(t, "name Alice\ntags{array} a, b\n")
	res, err := JSONPatch(d, []byte(`[{"op": "replace", "path": "/name", "value": "Bob"}, {"op": "add", "path": "/tags/-", "value": "c"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := res.GetString("name"); v != "Bob" {
		t.Errorf("name: got %q", v)
	}
	if v, _ := res.GetArray("tags"); !cmp.Equal(v, []string{"a", "b", "c"}) {
		t.Errorf("tags: got %q", v)
	}
	if _, err := JSONPatch(d, []byte(`not a patch`)); !errors.Is(err, ErrPatch) {
		t.Errorf("expected patch error, got %v", err)
	}
	if _, err := JSONPatch(d, []byte(`[{"op": "add", "path": "/n", "value": 1}]`)); err == nil {
		t.Error("expected error for number result")
	}
}

func TestMergePatch(t *testing.T) {
	d := mustParse(t, "name Alice\nsub{kmkv} {\n    x 1\n}\n")
	res, err := MergePatch(d, []byte(`{"name": null, "sub": {"y": "2"}}`))
	if err != nil {
		t.Fatal(err)
	}
	exp := mustParse(t, "sub{kmkv} {\n    x 1\n    y 2\n}\n")
	if !res.Equal(exp) {
		t.Errorf("%s", cmp.Diff(exp.ToAny(), res.ToAny()))
	}
}

func TestSymbols(t *testing.T) {
	names := []string{}
	for _, s := range Symbols() {
		names = append(names, s.String())
	}
	exp := []string{"absent", "append", "delete", "glob", "json-patch", "merge-patch", "not", "regex", "retag", "tag", "type"}
	if diff := cmp.Diff(exp, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Register(Glob()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("expected symbol exists, got %v", err)
	}
	if _, err := Glob().Instance(ir.FromDocument(nil)); !errors.Is(err, ErrOp) {
		t.Errorf("expected op error, got %v", err)
	}
}

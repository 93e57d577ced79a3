package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/kmkv-format/kmkv/format"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/token"
)

func str(v, tag string) *ir.Item {
	return ir.FromString(v).WithTag(tag)
}

func doc(kvs ...any) *ir.Document {
	d := ir.NewDocument()
	for i := 0; i < len(kvs); i += 2 {
		d.Set(kvs[i].(string), kvs[i+1].(*ir.Item))
	}
	return d
}

type parseTest struct {
	in  string
	out *ir.Document
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: "", out: doc()},
		{in: " \n\t\r\n", out: doc()},
		{in: "\x00garbage", out: doc()},
		{
			in:  "name Alice\nage 30\n",
			out: doc("name", str("Alice", ""), "age", str("30", "")),
		},
		{
			in: "outer{kmkv} {\n    inner value\n}\n",
			out: doc("outer", ir.FromDocument(
				doc("inner", str("value", "")))),
		},
		{
			in:  "\n\n  name Alice\n",
			out: doc("name", str("Alice", "")),
		},
		{
			in:  "empty\nnext x\n",
			out: doc("empty", str("", ""), "next", str("x", "")),
		},
		{
			in:  "tags{array} a, b, c\n",
			out: doc("tags", str("a, b, c", "array")),
		},
		{
			in:  "n{int} 42\n",
			out: doc("n", str("42", "int")),
		},
		{
			in:  "n{} 42\n",
			out: doc("n", str("42", "")),
		},
		{
			in:  "text {\nline one\n  line two\n}\n",
			out: doc("text", str("line one\n  line two", "")),
		},
		{
			in:  "text{kmkvish} {\nnot parsed\n}\n",
			out: doc("text", str("not parsed", "kmkvish")),
		},
		{
			in:  "k{kmkv}\n",
			out: doc("k", ir.FromDocument(nil)),
		},
		{
			in: "a{kmkv} {\n    b{kmkv} {\n        c deep\n    }\n    d {\n        raw\n    }\n}\ne last\n",
			out: doc(
				"a", ir.FromDocument(doc(
					"b", ir.FromDocument(doc("c", str("deep", ""))),
					"d", str("raw", ""),
				)),
				"e", str("last", ""),
			),
		},
	}
	for _, pt := range pts {
		d, err := ParseString(pt.in)
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if !d.Equal(pt.out) {
			t.Errorf("%q:\n%s", pt.in, cmp.Diff(pt.out.ToAny(), d.ToAny()))
		}
	}
}

func TestParseOrder(t *testing.T) {
	d, err := ParseString("z 1\na 2\nm 3\n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, d.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type errTest struct {
	in string
	e  error
}

func TestParseErr(t *testing.T) {
	ets := []errTest{
		{in: "bad {\nunterminated\n", e: token.ErrUnmatchedBracket},
		{in: "x 1\nx 2\n", e: ir.ErrDuplicateKey},
		{in: "x{a} 1\nx{b} 2\n", e: ir.ErrDuplicateKey},
		{in: "x{kmkv} {\n}\nx 2\n", e: ir.ErrDuplicateKey},
		{in: "k{tag 1\n", e: ErrTagUnmatched},
		{in: "k{tag}x 1\n", e: ErrTagTrailing},
		{in: "{tag} 1\n", e: ErrEmptyKey},
		{in: "outer{kmkv} {\n    x 1\n    x 2\n}\n", e: ir.ErrDuplicateKey},
		{in: "outer{kmkv} {\n    b{kmkv} {\n        u {\n    }\n}\n", e: token.ErrUnmatchedBracket},
	}
	for _, et := range ets {
		d, err := ParseString(et.in)
		if err == nil {
			t.Errorf("%q: expected error, got %v", et.in, d.ToAny())
			continue
		}
		if d != nil {
			t.Errorf("%q: expected nil document on error", et.in)
		}
		if !errors.Is(err, et.e) {
			t.Errorf("%q: got %v, expected %v", et.in, err, et.e)
		}
	}
	for _, e := range []error{ErrTagUnmatched, ErrTagTrailing, ErrEmptyKey, ErrMaxDepth} {
		if !errors.Is(e, ErrParse) {
			t.Errorf("%v does not wrap ErrParse", e)
		}
	}
}

func TestParseErrDetail(t *testing.T) {
	_, err := ParseString("a 1\nouter{kmkv} {\n    x 1\n    x 2\n}\n")
	var nErr *NestedError
	if !errors.As(err, &nErr) {
		t.Fatalf("expected nested error, got %v", err)
	}
	if nErr.Key != "outer" {
		t.Errorf("got key %q", nErr.Key)
	}
	var dErr *DuplicateKeyError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	if dErr.Key != "x" {
		t.Errorf("got key %q", dErr.Key)
	}
	if dErr.Pos == nil || dErr.Pos.Line() != 3 || dErr.Pos.Col() != 4 {
		t.Errorf("got pos %v", dErr.Pos)
	}
}

func TestParseKeywordErrPos(t *testing.T) {
	kts := []struct {
		in        string
		e         error
		kw        string
		line, col int
	}{
		{in: "a 1\n  k{tag 1\n", e: ErrTagUnmatched, kw: "k{tag", line: 1, col: 2},
		{in: "k{t}x 1\n", e: ErrTagTrailing, kw: "k{t}x", line: 0, col: 0},
		{in: "o{kmkv} {\n    a 1\n    {t} 2\n}\n", e: ErrEmptyKey, kw: "{t}", line: 2, col: 4},
	}
	for _, kt := range kts {
		_, err := ParseString(kt.in)
		if !errors.Is(err, kt.e) {
			t.Errorf("%q: got %v, expected %v", kt.in, err, kt.e)
			continue
		}
		var kErr *KeywordError
		if !errors.As(err, &kErr) {
			t.Errorf("%q: expected *KeywordError, got %T", kt.in, err)
			continue
		}
		if kErr.Keyword != kt.kw {
			t.Errorf("%q: keyword %q, expected %q", kt.in, kErr.Keyword, kt.kw)
		}
		pos := ErrPos(err)
		if pos == nil {
			t.Errorf("%q: no position", kt.in)
			continue
		}
		if line, col := pos.LineCol(); line != kt.line || col != kt.col {
			t.Errorf("%q: got %d:%d, expected %d:%d", kt.in, line, col, kt.line, kt.col)
		}
	}
	if ErrPos(ErrParse) != nil {
		t.Error("unexpected position for a bare sentinel")
	}
}

func TestNestedErrorPath(t *testing.T) {
	_, err := ParseString("a{kmkv} {\n    b.c{kmkv} {\n        x 1\n        x 2\n    }\n}\n")
	var nErr *NestedError
	if !errors.As(err, &nErr) {
		t.Fatalf("expected nested error, got %v", err)
	}
	if nErr.Key != "a" {
		t.Errorf("got key %q", nErr.Key)
	}
	if got := nErr.Path.String(); got != "$.a.'b.c'" {
		t.Errorf("got path %s", got)
	}
	var inner *NestedError
	if errors.As(nErr.Err, &inner) {
		t.Errorf("nested errors not collapsed: %v", err)
	}
	if !errors.Is(err, ir.ErrDuplicateKey) {
		t.Errorf("got %v", err)
	}
}

func TestParseMaxDepthMessage(t *testing.T) {
	deepKmkv := func(n int) string {
		sb := &strings.Builder{}
		for i := 0; i < n; i++ {
			sb.WriteString("a{kmkv} {\n")
		}
		sb.WriteString("x 1\n")
		for i := 0; i < n; i++ {
			sb.WriteString("}\n")
		}
		return sb.String()
	}
	deepJSON := strings.Repeat(`{"a":`, 20) + `"x"` + strings.Repeat("}", 20)
	for _, f := range []format.Format{format.KmkvFormat, format.JSONFormat} {
		in := deepKmkv(20)
		if f == format.JSONFormat {
			in = deepJSON
		}
		_, err := Parse([]byte(in), ParseFormat(f), ParseMaxDepth(5))
		if !errors.Is(err, ErrMaxDepth) {
			t.Errorf("%s: expected max depth error, got %v", f, err)
			continue
		}
		msg := err.Error()
		if n := strings.Count(msg, "in $"); n != 1 {
			t.Errorf("%s: %d path prefixes in %q", f, n, msg)
		}
		if !strings.HasPrefix(msg, "in $.a.a.a.a.a.a: ") {
			t.Errorf("%s: got %q", f, msg)
		}
	}
}

func TestSplitKeyword(t *testing.T) {
	sts := []struct {
		in       string
		key, tag string
		err      error
	}{
		{in: "k", key: "k"},
		{in: "k{t}", key: "k", tag: "t"},
		{in: "k{}", key: "k"},
		{in: "k{a{b}", key: "k", tag: "a{b"},
		{in: "k{t", err: ErrTagUnmatched},
		{in: "k{t}}", err: ErrTagTrailing},
		{in: "{t}", err: ErrEmptyKey},
	}
	for _, st := range sts {
		key, tag, err := SplitKeyword([]byte(st.in))
		if !errors.Is(err, st.err) {
			t.Errorf("%q: got error %v, expected %v", st.in, err, st.err)
			continue
		}
		if key != st.key || tag != st.tag {
			t.Errorf("%q: got %q %q", st.in, key, tag)
		}
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := "a{kmkv} {\n    b{kmkv} {\n        c{kmkv} {\n            d 1\n        }\n    }\n}\n"
	if _, err := ParseString(in); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseString(in, ParseMaxDepth(2)); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("expected max depth error, got %v", err)
	}
	if _, err := ParseString(in, ParseMaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	in := "a 1\nouter{kmkv} {\n    inner v\n}\n"
	pos := map[*ir.Item]*token.Pos{}
	d, err := ParseString(in, ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	outer, _ := d.GetDocument("outer")
	inner, _ := outer.Get("inner")
	p := pos[inner]
	if p == nil {
		t.Fatal("no position for inner")
	}
	if line, col := p.LineCol(); line != 2 || col != 4 {
		t.Errorf("got line %d col %d", line, col)
	}
	if len(pos) != 3 {
		t.Errorf("expected 3 positions, got %d", len(pos))
	}
}

func TestParseJSON(t *testing.T) {
	in := `{"name": "Alice", "tags": ["a", "b"], "nested": {"x": "1\n2"}, "none": []}`
	d, err := ParseJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	exp := doc(
		"name", str("Alice", ""),
		"tags", str("a,b", "array"),
		"nested", ir.FromDocument(doc("x", str("1\n2", ""))),
		"none", str("", "array"),
	)
	if !d.Equal(exp) {
		t.Errorf("%s", cmp.Diff(exp.ToAny(), d.ToAny()))
	}
	if diff := cmp.Diff([]string{"name", "tags", "nested", "none"}, d.Keys()); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestParseJSONErr(t *testing.T) {
	ets := []errTest{
		{in: `{"a": `, e: ErrJSONSyntax},
		{in: `not json`, e: ErrJSONSyntax},
		{in: `["a"]`, e: ErrJSONStructure},
		{in: `"a"`, e: ErrJSONStructure},
		{in: `{"a": 1}`, e: ErrJSONStructure},
		{in: `{"a": true}`, e: ErrJSONStructure},
		{in: `{"a": null}`, e: ErrJSONStructure},
		{in: `{"a": ["x", 1]}`, e: ErrJSONStructure},
		{in: `{"a": {"b": {"c": 2}}}`, e: ErrJSONStructure},
		{in: `{"a": "1", "a": "2"}`, e: ir.ErrDuplicateKey},
		{in: `{"": "1"}`, e: ErrEmptyKey},
	}
	for _, et := range ets {
		_, err := Parse([]byte(et.in), ParseFormat(format.JSONFormat))
		if !errors.Is(err, et.e) {
			t.Errorf("%s: got %v, expected %v", et.in, err, et.e)
		}
	}
}

func TestParseYAML(t *testing.T) {
	in := "name: Alice\ntags:\n  - a\n  - b\nnested:\n  x: \"1\"\n"
	d, err := Parse([]byte(in), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	exp := doc(
		"name", str("Alice", ""),
		"tags", str("a,b", "array"),
		"nested", ir.FromDocument(doc("x", str("1", ""))),
	)
	if !d.Equal(exp) {
		t.Errorf("%s", cmp.Diff(exp.ToAny(), d.ToAny()))
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(p, []byte(`{"a": "b"}`), 0644); err != nil {
		t.Fatal(err)
	}
	d, err := ParseFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.GetString("a"); v != "b" {
		t.Errorf("got %q", v)
	}
	_, err = ParseFile(filepath.Join(dir, "missing.kmkv"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected io error, got %v", err)
	}
}

package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/kmkv-format/kmkv/format"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"
	"github.com/tidwall/gjson"
)

func testDoc() *ir.Document {
	deep := ir.NewDocument()
	deep.Set("x", ir.FromString("z1"))
	outer := ir.NewDocument()
	outer.Set("inner", ir.FromString("v"))
	outer.Set("deep", ir.FromDocument(deep))
	d := ir.NewDocument()
	d.Set("name", ir.FromString("Alice"))
	d.Set("tags", ir.FromString("a, b").WithTag(ir.TagArray))
	d.Set("text", ir.FromString("line 1\nline 2"))
	d.Set("outer", ir.FromDocument(outer))
	return d
}

func TestEncodeKmkv(t *testing.T) {
	exp := `name Alice
tags{array} a, b
text {
line 1
line 2
}
outer{kmkv} {
    inner v
    deep{kmkv} {
        x z1
    }
}
`
	buf := bytes.NewBuffer(nil)
	if err := Encode(testDoc(), buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exp, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeIndent(t *testing.T) {
	got := MustString(testDoc(), EncodeIndent(2))
	if !strings.Contains(got, "\n  deep{kmkv} {\n    x z1\n  }\n") {
		t.Errorf("unexpected indentation:\n%s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	ins := []string{
		"name Alice\nage 30\n",
		"outer{kmkv} {\n    inner value\n}\n",
		"t{array} a,b, c\nbrace {\n{x}\n}\nempty\nlong {\n  keep inner\n\tindent\n}\n",
		"a{kmkv} {\n    b{kmkv} {\n        c{x} y\n        d {\n            e\n        }\n    }\n}\n",
		"o{kmkv} {\n    bb a{ \n}\n",
		"k {\n{ \n}",
		"k {}\nb\n}\n",
	}
	for _, in := range ins {
		d, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		buf := bytes.NewBuffer(nil)
		if err := Encode(d, buf); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		back, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("%q: reparse %q: %v", in, buf.String(), err)
		}
		if !back.Equal(d) {
			t.Errorf("%q: round trip through %q gave %v", in, buf.String(), back.ToAny())
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	nested := func(key string, it *ir.Item) *ir.Document {
		inner := ir.NewDocument()
		inner.Set(key, it)
		d := ir.NewDocument()
		d.Set("outer", ir.FromDocument(inner))
		return d
	}
	single := func(key string, it *ir.Item) *ir.Document {
		d := ir.NewDocument()
		d.Set(key, it)
		return d
	}
	docs := []*ir.Document{
		single("a b", ir.FromString("x")),
		single("a{b", ir.FromString("x")),
		single("k", ir.FromString("x").WithTag("a}")),
		single("k", ir.FromString("x").WithTag("a b")),
		single("k", ir.FromString("x").WithTag(ir.TagKmkv)),
		single("k", ir.FromString("a\n}\nb")),
		single("\x00k", ir.FromString("x")),
		nested("}k", ir.FromString("x")),
		nested("k", ir.FromString("}\nb")),
	}
	for i, d := range docs {
		err := Encode(d, bytes.NewBuffer(nil))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%d: expected encoding error, got %v", i, err)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	d := ir.NewDocument()
	d.Set("tags", ir.FromString("a, b, c").WithTag(ir.TagArray))
	got, err := MarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"tags":["a","b","c"]}` {
		t.Errorf("got %s", got)
	}

	got, err = MarshalJSON(testDoc())
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.ValidBytes(got) {
		t.Fatalf("invalid json %s", got)
	}
	res := gjson.ParseBytes(got)
	if v := res.Get("tags.1").String(); v != "b" {
		t.Errorf("tags.1: got %q", v)
	}
	if v := res.Get("text").String(); v != "line 1\nline 2" {
		t.Errorf("text: got %q", v)
	}
	if v := res.Get("outer.deep.x").String(); v != "z1" {
		t.Errorf("outer.deep.x: got %q", v)
	}
	var keys []string
	res.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	if diff := cmp.Diff([]string{"name", "tags", "text", "outer"}, keys); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONEscapes(t *testing.T) {
	d := ir.NewDocument()
	d.Set("k\"ey", ir.FromString("q\" b\\ \b\f\n\r\t end"))
	d.Set("arr", ir.FromArray([]string{" x ", "y\n"}))
	d.Set("empty", ir.FromString("").WithTag(ir.TagArray))
	d.Set("trailing", ir.FromString("a,").WithTag(ir.TagArray))
	d.Add("none")
	got, err := MarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	exp := `{"k\"ey":"q\" b\\ \b\f\n\r\t end","arr":["x","y"],"empty":[],"trailing":["a"],"none":null}`
	if diff := cmp.Diff(exp, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := testDoc()
	j, err := MarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parse.ParseJSON(j)
	if err != nil {
		t.Fatal(err)
	}
	// array elements are trimmed and rejoined with ','
	tags, _ := back.Get("tags")
	if tags.String != "a,b" || tags.Tag != ir.TagArray {
		t.Errorf("tags: got %+v", tags)
	}
	back.Set("tags", ir.FromString("a, b").WithTag(ir.TagArray))
	if !back.Equal(d) {
		t.Errorf("got %v", back.ToAny())
	}
}

func TestEncodePrettyYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(testDoc(), buf, EncodeFormat(format.JSONFormat), EncodePretty(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n  \"name\": \"Alice\",\n") {
		t.Errorf("not pretty:\n%s", buf.String())
	}
	buf.Reset()
	if err := Encode(testDoc(), buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	back, err := parse.Parse(buf.Bytes(), parse.ParseYAML())
	if err != nil {
		t.Fatalf("%v:\n%s", err, buf.String())
	}
	if v, _ := back.GetString("name"); v != "Alice" {
		t.Errorf("name: got %q", v)
	}
	if v, _ := back.GetArray("tags"); !cmp.Equal(v, []string{"a", "b"}) {
		t.Errorf("tags: got %q", v)
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{
		{Type: ir.StringType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got := MustString(testDoc(), EncodeColors(c))
	if !strings.HasPrefix(got, "<name> Alice\n") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, "\nouter{kmkv} {") {
		t.Errorf("uncolored document key changed: %q", got)
	}
}

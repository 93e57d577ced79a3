package eval

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"

	"github.com/google/go-cmp/cmp"
)

const testDoc = `name Alice
age 30
tags{array} a, b, c
server{kmkv} {
    host example.com
    port 8080
}
`

func mustParse(t *testing.T, s string) *ir.Document {
	t.Helper()
	doc, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestEval(t *testing.T) {
	doc := mustParse(t, testDoc)
	ets := []struct {
		in  string
		out any
	}{
		{`name + " is " + age`, "Alice is 30"},
		{`len(tags)`, 3},
		{`tags[1]`, "b"},
		{`server.port`, "8080"},
		{`getpath("$.server.host")`, "example.com"},
		{`haspath("$.server.user")`, false},
		{`keys("$.server")`, []any{"host", "port"}},
	}
	for _, et := range ets {
		got, err := Eval(doc, et.in)
		if err != nil {
			t.Errorf("%s: %v", et.in, err)
			continue
		}
		if diff := cmp.Diff(et.out, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", et.in, diff)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := mustParse(t, testDoc)
	for _, in := range []string{`1 +`, `getpath("$.missing")`, `getpath("nopath")`} {
		if _, err := Eval(doc, in); !errors.Is(err, ErrEval) {
			t.Errorf("%s: expected eval error, got %v", in, err)
		}
	}
}

func TestEvalItem(t *testing.T) {
	doc := mustParse(t, testDoc)
	it, err := EvalItem(doc, `getpath("$.server")`)
	if err != nil {
		t.Fatal(err)
	}
	if it.Type != ir.DocumentType {
		t.Fatalf("expected document, got %s", it.Type)
	}
	if !ir.Equal(it, mustItem(t, doc, "$.server")) {
		t.Errorf("got %v", it.ToAny())
	}
	it, err = EvalItem(doc, `map(tags, upper(#))`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, it.Array()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func mustItem(t *testing.T, doc *ir.Document, p string) *ir.Item {
	t.Helper()
	it, err := doc.GetPath(p)
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func TestFilter(t *testing.T) {
	doc := mustParse(t, testDoc)
	fts := []struct {
		in   string
		keys []string
	}{
		{`true`, []string{"name", "age", "tags", "server"}},
		{`tag == "array"`, []string{"tags"}},
		{`key startsWith "a"`, []string{"age"}},
		{`tag == "kmkv" && value.port == "8080"`, []string{"server"}},
		{`value == doc.name`, []string{"name"}},
		{`tag == "" ? value : ""`, []string{"name", "age"}},
	}
	for _, ft := range fts {
		res, err := Filter(doc, ft.in)
		if err != nil {
			t.Errorf("%s: %v", ft.in, err)
			continue
		}
		if diff := cmp.Diff(ft.keys, res.Keys()); diff != "" {
			t.Errorf("%s (-want +got):\n%s", ft.in, diff)
		}
	}
}

func TestExpandString(t *testing.T) {
	env := Env{"x": "X", "stuff": "STUFF", "here": "HERE", "n": 3}
	ets := []struct {
		in, out string
	}{
		{"abc", "abc"},
		{"$[", "$["},
		{"$[x]", "X"},
		{" $[x]", " X"},
		{"$[x", "$[x"},
		{"some $[stuff] $[here] trailing", "some STUFF HERE trailing"},
		{"some $[ stuff ] $[here]", "some STUFF HERE"},
		{"$abc", "$abc"},
		{"[x]", "[x]"},
		{"$[n + 1]", "4"},
		{`$["a\]b"]`, "a]b"},
		{`$[x == "X"]`, "true"},
		{"a $[x] b $[x", "a X b $[x"},
	}
	for _, et := range ets {
		got, err := ExpandString(et.in, env, nil)
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if got != et.out {
			t.Errorf("%q: got %q, expected %q", et.in, got, et.out)
		}
	}
	if _, err := ExpandString("$[missing(]", env, nil); !errors.Is(err, ErrEval) {
		t.Errorf("expected eval error, got %v", err)
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("KMKV_EVAL_TEST", "from-env")
	dir := t.TempDir()
	fpath := filepath.Join(dir, "greeting.txt")
	if err := os.WriteFile(fpath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	in := mustParse(t, `name Alice
greeting hello $[name]
sum{script} 1 + 2
copy{script} getpath("$.server")
env{osenv} KMKV_EVAL_TEST
enc{b64enc} hi
contents{file} `+fpath+`
cmd{exec} echo $[name]
list{array} $[name], Bob
server{kmkv} {
    host $[name].example.com
}
`)
	exp := mustParse(t, `name Alice
greeting hello Alice
sum 3
copy{kmkv} {
    host Alice.example.com
}
env from-env
enc aGk=
contents hello
cmd Alice
list{array} Alice, Bob
server{kmkv} {
    host Alice.example.com
}
`)
	out, err := Expand(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(exp) {
		t.Errorf("got %v\nexpected %v", out.ToAny(), exp.ToAny())
	}
	if s, _ := in.GetString("greeting"); s != "hello $[name]" {
		t.Errorf("input modified: %q", s)
	}
}

func TestExpandErrors(t *testing.T) {
	in := mustParse(t, "a{script} 1 +\n")
	if _, err := Expand(in, nil); !errors.Is(err, ErrEval) {
		t.Errorf("expected eval error, got %v", err)
	}
	in = mustParse(t, "a{file} /nonexistent/kmkv/file\n")
	if _, err := Expand(in, nil); !errors.Is(err, ErrEval) {
		t.Errorf("expected eval error, got %v", err)
	}
}

func TestSymbols(t *testing.T) {
	for _, n := range []string{"script", "osenv", "file", "exec", "b64enc"} {
		if Lookup(n) == nil {
			t.Errorf("%s not registered", n)
		}
	}
	if err := Register(Script()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("expected %v, got %v", ErrSymbolExists, err)
	}
	if _, err := Script().Instance(ir.FromDocument(nil)); !errors.Is(err, ErrEval) {
		t.Errorf("expected eval error, got %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvEnv, "")
	env, err := LoadEnv()
	if err != nil || env != nil {
		t.Fatalf("got %v, %v", env, err)
	}
	t.Setenv(EnvEnv, "a 1\nsub{kmkv} {\n    b 2\n}\n")
	env, err = LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	exp := Env{"a": "1", "sub": map[string]any{"b": "2"}}
	if diff := cmp.Diff(exp, env); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	t.Setenv(EnvEnv, "a 1\na 2\n")
	if _, err := LoadEnv(); err == nil {
		t.Error("expected error")
	}
}

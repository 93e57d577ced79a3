package token

import (
	"errors"
	"testing"
)

type nextTest struct {
	in      string
	kw      string
	val     string
	n       int
	bracket bool
}

func TestNext(t *testing.T) {
	nts := []nextTest{
		{in: "", n: 0},
		{in: "\x00name Alice\n", n: 0},
		{in: "name Alice\n", kw: "name", val: "Alice", n: 11},
		{in: "name Alice", kw: "name", val: "Alice", n: 10},
		{in: "name    Alice  \n", kw: "name", val: "Alice", n: 16},
		{in: "name\n", kw: "name", val: "", n: 5},
		{in: "name", kw: "name", val: "", n: 4},
		{in: "name \tAlice\n", kw: "name", val: "\tAlice", n: 12},
		{in: "name Alice\n\n\nage 30\n", kw: "name", val: "Alice", n: 13},
		{in: "name a{b}c\n", kw: "name", val: "a{b}c", n: 11},
		{in: "name Alice\r\nage 30", kw: "name", val: "Alice", n: 12},
		{in: "tags{array} a, b\n", kw: "tags{array}", val: "a, b", n: 17},
		{
			in:      "text {\nline 1\nline 2\n}\n",
			kw:      "text",
			val:     "line 1\nline 2",
			n:       23,
			bracket: true,
		},
		{
			in:      "text {\n    indented\n}",
			kw:      "text",
			val:     "indented",
			n:       21,
			bracket: true,
		},
		{
			in:      "text {\n}\n",
			kw:      "text",
			val:     "",
			n:       9,
			bracket: true,
		},
		{
			in:      "text {\na } b\n}\n",
			kw:      "text",
			val:     "a } b",
			n:       15,
			bracket: true,
		},
		{
			in:      "outer{kmkv} {\n    inner {\n        x\n    }\n}\nnext 1\n",
			kw:      "outer{kmkv}",
			val:     "inner {\n        x\n    }",
			n:       44,
			bracket: true,
		},
		{
			in:      "text {\n{not a block\n}\n",
			kw:      "text",
			val:     "{not a block",
			n:       22,
			bracket: true,
		},
	}
	for _, nt := range nts {
		tok, n, err := Next([]byte(nt.in))
		if err != nil {
			t.Errorf("%q: unexpected error: %v", nt.in, err)
			continue
		}
		if n != nt.n {
			t.Errorf("%q: consumed %d, expected %d", nt.in, n, nt.n)
		}
		if n == 0 {
			continue
		}
		if string(tok.Keyword) != nt.kw {
			t.Errorf("%q: keyword %q, expected %q", nt.in, tok.Keyword, nt.kw)
		}
		if string(tok.Value) != nt.val {
			t.Errorf("%q: value %q, expected %q", nt.in, tok.Value, nt.val)
		}
		if tok.Bracket != nt.bracket {
			t.Errorf("%q: bracket %t, expected %t", nt.in, tok.Bracket, nt.bracket)
		}
	}
}

func TestNextErrors(t *testing.T) {
	ets := []struct {
		in  string
		err error
		kw  string
	}{
		{in: " name Alice\n", err: ErrEmptyKeyword},
		{in: "\nname Alice\n", err: ErrEmptyKeyword},
		{in: "bad {\nunterminated\n", err: ErrUnmatchedBracket, kw: "bad"},
		{in: "bad {}\n", err: ErrUnmatchedBracket, kw: "bad"},
		{in: "bad {\n{\n}\n", err: ErrUnmatchedBracket, kw: "bad"},
		{in: "bad {\nx }\n", err: ErrUnmatchedBracket, kw: "bad"},
	}
	for _, et := range ets {
		_, n, err := Next([]byte(et.in))
		if err == nil {
			t.Errorf("%q: expected error", et.in)
			continue
		}
		if n != 0 {
			t.Errorf("%q: consumed %d on error", et.in, n)
		}
		if !errors.Is(err, et.err) {
			t.Errorf("%q: got %v, expected %v", et.in, err, et.err)
		}
		var tErr *TokenizeErr
		if !errors.As(err, &tErr) {
			t.Errorf("%q: expected *TokenizeErr, got %T", et.in, err)
			continue
		}
		if tErr.Keyword != et.kw {
			t.Errorf("%q: error keyword %q, expected %q", et.in, tErr.Keyword, et.kw)
		}
	}
}

func TestTokenize(t *testing.T) {
	in := "\n  name Alice\nbio {\nlikes {braces}\n}\nage 30\n"
	toks, err := Tokenize([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	exp := []struct {
		kw, val string
		off     int
	}{
		{"name", "Alice", 3},
		{"bio", "likes {braces}", 14},
		{"age", "30", 37},
	}
	for i, e := range exp {
		tok := &toks[i]
		if string(tok.Keyword) != e.kw || string(tok.Value) != e.val {
			t.Errorf("token %d: got %q %q, expected %q %q", i, tok.Keyword, tok.Value, e.kw, e.val)
		}
		if tok.Offset != e.off {
			t.Errorf("token %d: offset %d, expected %d", i, tok.Offset, e.off)
		}
		if string(in[tok.ValueOffset:tok.ValueOffset+len(tok.Value)]) != e.val {
			t.Errorf("token %d: value offset %d does not address value", i, tok.ValueOffset)
		}
	}
}

func TestTokenizerErrPos(t *testing.T) {
	in := "a 1\nb 2\nbad {\nnever closed\n"
	_, err := Tokenize([]byte(in))
	var tErr *TokenizeErr
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TokenizeErr, got %v", err)
	}
	if tErr.Pos == nil {
		t.Fatal("expected position")
	}
	if line, col := tErr.Pos.LineCol(); line != 2 || col != 0 {
		t.Errorf("got line %d col %d, expected line 2 col 0", line, col)
	}
}

func TestSplitNext(t *testing.T) {
	elt, rest := SplitNext([]byte("a, b"), ',')
	if string(elt) != "a" || string(rest) != " b" {
		t.Errorf("got %q %q", elt, rest)
	}
	elt, rest = SplitNext([]byte("a"), ',')
	if string(elt) != "a" || rest != nil {
		t.Errorf("got %q %q", elt, rest)
	}
	if got := string(TrimSpace([]byte(" \t x y \r\n"))); got != "x y" {
		t.Errorf("TrimSpace got %q", got)
	}
}

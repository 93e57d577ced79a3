package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("%s: got %s", f, back)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	fts := []struct {
		path string
		f    Format
	}{
		{"a.kmkv", KmkvFormat},
		{"dir/a.JSON", JSONFormat},
		{"a.yml", YAMLFormat},
		{"a.txt", KmkvFormat},
		{"noext", KmkvFormat},
	}
	for _, ft := range fts {
		if got := FromPath(ft.path); got != ft.f {
			t.Errorf("%s: got %s, expected %s", ft.path, got, ft.f)
		}
	}
}

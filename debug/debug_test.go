package debug

import (
	"bytes"
	"testing"
)

func TestWriteAny(t *testing.T) {
	cases := []struct {
		in  any
		exp string
	}{
		{map[string]any{"a": "b"}, "{\"a\":\"b\"}\n"},
		{[]any{"x", "y"}, "[\"x\",\"y\"]\n"},
		{func() {}, ""},
	}
	for _, c := range cases {
		buf := bytes.NewBuffer(nil)
		writeAny(buf, c.in)
		if c.exp == "" {
			if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
				t.Errorf("%T: got %q", c.in, buf.String())
			}
			continue
		}
		if buf.String() != c.exp {
			t.Errorf("got %q, expected %q", buf.String(), c.exp)
		}
	}
}

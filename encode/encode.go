package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/kmkv-format/kmkv/format"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/token"
	"github.com/tidwall/pretty"
)

type EncState struct {
	depth, indent int
	pretty        bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes doc to w.  Kmkv output ends every entry with a newline.
// JSON output is a single object with no trailing newline unless pretty
// printed.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.KmkvFormat:
		return encodeDoc(doc, w, es)
	case format.JSONFormat:
		d, err := marshalJSON(doc, es)
		if err != nil {
			return err
		}
		return writeBytes(w, d)
	case format.YAMLFormat:
		d, err := marshalJSON(doc, &EncState{})
		if err != nil {
			return err
		}
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return fmt.Errorf("%w: yaml: %w", ErrEncoding, err)
		}
		return writeBytes(w, y)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

// MarshalJSON returns doc as compact JSON.
func MarshalJSON(doc *ir.Document) ([]byte, error) {
	return marshalJSON(doc, &EncState{})
}

func marshalJSON(doc *ir.Document, es *EncState) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	writeJSONObject(buf, doc)
	if !es.pretty {
		return buf.Bytes(), nil
	}
	return pretty.Pretty(buf.Bytes()), nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeBytes(w io.Writer, d []byte) error {
	_, err := w.Write(d)
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encodeDoc(doc *ir.Document, w io.Writer, es *EncState) error {
	ind := strings.Repeat(" ", es.indent*es.depth)
	for _, f := range doc.Fields() {
		if err := checkKey(f.Key, es.depth > 0); err != nil {
			return err
		}
		it := f.Item
		if err := writeString(w, ind+es.color(it.Type, FieldColor, f.Key)); err != nil {
			return err
		}
		var err error
		switch it.Type {
		case ir.NoneType:
			err = writeString(w, "\n")
		case ir.StringType:
			err = encodeString(f.Key, it, ind, w, es)
		case ir.DocumentType:
			err = encodeNested(it, ind, w, es)
		default:
			err = fmt.Errorf("%w: unknown item type %s", ErrEncoding, it.Type)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeNested(it *ir.Item, ind string, w io.Writer, es *EncState) error {
	open := es.color(ir.DocumentType, TagColor, "{"+ir.TagKmkv+"}") +
		" " + es.color(ir.DocumentType, SepColor, "{") + "\n"
	if err := writeString(w, open); err != nil {
		return err
	}
	es.depth++
	err := encodeDoc(it.Doc, w, es)
	es.depth--
	if err != nil {
		return err
	}
	return writeString(w, ind+es.color(ir.DocumentType, SepColor, "}")+"\n")
}

func encodeString(key string, it *ir.Item, ind string, w io.Writer, es *EncState) error {
	if it.Tag != "" {
		if err := checkTag(key, it.Tag); err != nil {
			return err
		}
		if err := writeString(w, es.color(ir.StringType, TagColor, "{"+it.Tag+"}")); err != nil {
			return err
		}
	}
	l, ok := chooseLayout(it.String, es.depth > 0)
	if !ok {
		return fmt.Errorf("%w: value of %q cannot be written", ErrEncoding, key)
	}
	if !l.bracket {
		return writeString(w, " "+es.color(ir.StringType, ValueColor, it.String)+l.pad+"\n")
	}
	sb := &strings.Builder{}
	sb.WriteString(" " + es.color(ir.StringType, SepColor, "{") + l.open)
	sb.WriteString(es.color(ir.StringType, BracketValueColor, it.String))
	sb.WriteString(l.pad + "\n" + ind + es.color(ir.StringType, SepColor, "}") + "\n")
	return writeString(w, sb.String())
}

// layout is a way of writing a string value.  Bracket values open with
// "{" followed by open.  pad follows the value and is trimmed off again
// on reading, so that a value ending in '{' does not open a block.
type layout struct {
	bracket bool
	open    string
	pad     string
}

var layouts = []layout{
	{},
	{pad: " "},
	{bracket: true, open: "\n"},
	{bracket: true, open: "\n", pad: " "},
	{bracket: true},
	{bracket: true, pad: " "},
}

func (l layout) entry(v string) string {
	if !l.bracket {
		return "k " + v + l.pad + "\n"
	}
	return "k {" + l.open + v + l.pad + "\n}\n"
}

// chooseLayout returns the first layout in which v reads back as itself.
// Reading drops trailing whitespace, so only the rest of v must survive.
// Leading whitespace which no layout keeps is dropped as well.  Inside a
// nested document the entry must also leave the enclosing block intact.
func chooseLayout(v string, nested bool) (layout, bool) {
	want := string(token.TrimRightSpace([]byte(v)))
	wants := []string{want}
	if trimmed := string(token.TrimLeftSpace([]byte(want))); trimmed != want {
		wants = append(wants, trimmed)
	}
	for _, want := range wants {
		for _, l := range layouts {
			if readsBack(l.entry(v), want, nested) {
				return l, true
			}
		}
	}
	return layout{}, false
}

func readsBack(entry, want string, nested bool) bool {
	tok, n, err := token.Next([]byte(entry))
	if err != nil || n != len(entry) || string(tok.Value) != want {
		return false
	}
	if !nested {
		return true
	}
	outer := "o {\n" + entry + "}"
	_, n, err = token.Next([]byte(outer))
	return err == nil && n == len(outer)
}

// checkKey rejects keys which would not read back as the same key.  Inside
// a nested document a key may not start with '}' either, as that line would
// close the enclosing block.
func checkKey(key string, nested bool) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrEncoding)
	}
	if nested && key[0] == '}' {
		return fmt.Errorf("%w: nested key %q starts with '}'", ErrEncoding, key)
	}
	if token.IsTerminator(key[0]) {
		return fmt.Errorf("%w: key %q starts with a terminator", ErrEncoding, key)
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '{' || token.IsWhitespace(c) {
			return fmt.Errorf("%w: key %q cannot be written", ErrEncoding, key)
		}
	}
	return nil
}

func checkTag(key, tag string) error {
	if tag == ir.TagKmkv {
		return fmt.Errorf("%w: string %q tagged %q", ErrEncoding, key, tag)
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if c == '}' || token.IsWhitespace(c) {
			return fmt.Errorf("%w: tag %q of %q cannot be written", ErrEncoding, tag, key)
		}
	}
	return nil
}

package encode

import (
	"bytes"

	"github.com/signadot/kmkv-format/kmkv/ir"
)

func writeJSONObject(buf *bytes.Buffer, doc *ir.Document) {
	buf.WriteByte('{')
	for i, f := range doc.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(buf, f.Key)
		buf.WriteByte(':')
		it := f.Item
		switch it.Type {
		case ir.StringType:
			if !it.IsArray() {
				writeJSONString(buf, it.String)
				break
			}
			buf.WriteByte('[')
			for j, e := range it.Array() {
				if j > 0 {
					buf.WriteByte(',')
				}
				writeJSONString(buf, e)
			}
			buf.WriteByte(']')
		case ir.DocumentType:
			writeJSONObject(buf, it.Doc)
		default:
			buf.WriteString("null")
		}
	}
	buf.WriteByte('}')
}

// writeJSONString escapes only backspace, form feed, newline, carriage
// return, tab, quote and backslash.  All other bytes are copied.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte('"')
}

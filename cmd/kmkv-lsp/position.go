package main

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"
)

// Protocol positions count columns in UTF-16 code units while documents
// and token.Pos count bytes.

// lineText returns line of content without its newline, and the byte
// offset at which it starts.  ok is false when content has fewer lines.
func lineText(content string, line int) (text string, start int, ok bool) {
	for i := 0; i < line; i++ {
		j := strings.IndexByte(content[start:], '\n')
		if j < 0 {
			return "", len(content), false
		}
		start += j + 1
	}
	text = content[start:]
	if j := strings.IndexByte(text, '\n'); j >= 0 {
		text = text[:j]
	}
	return text, start, true
}

// lineColToOffset returns the byte offset of a zero based line and UTF-16
// column.  Columns past the end of a line give the end of that line and
// lines past the end give the length of content.
func lineColToOffset(content string, line, col int) int {
	text, start, ok := lineText(content, line)
	if !ok {
		return len(content)
	}
	return start + utf16ToByte(text, col)
}

func utf16ToByte(s string, col int) int {
	units := 0
	for i, r := range s {
		if units >= col {
			return i
		}
		units += utf16.RuneLen(r)
	}
	return len(s)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// byteToUTF16 converts a byte column of text to a UTF-16 column.
func byteToUTF16(text string, col int) int {
	col = min(max(col, 0), len(text))
	return utf16Len(text[:col])
}

// charRange returns the range of the character at the byte column col of
// line.
func charRange(content string, line, col int) protocol.Range {
	text, _, _ := lineText(content, line)
	start := byteToUTF16(text, col)
	end := start + 1
	if col >= 0 && col < len(text) {
		_, size := utf8.DecodeRuneInString(text[col:])
		end = byteToUTF16(text, col+size)
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: uint32(start)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(end)},
	}
}

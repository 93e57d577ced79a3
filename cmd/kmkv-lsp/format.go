package main

import (
	"bytes"
	"context"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/format"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	return formatEdits(doc, int(params.Options.TabSize)), nil
}

// formatEdits returns a single edit replacing the whole document with its
// canonical encoding, or no edits when it is already canonical or cannot
// be encoded.
func formatEdits(doc *document, indent int) []protocol.TextEdit {
	opts := []encode.EncodeOption{encode.EncodeFormat(format.KmkvFormat)}
	if indent > 0 {
		opts = append(opts, encode.EncodeIndent(indent))
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc.doc, &buf, opts...); err != nil {
		theLog.Error("formatting", "uri", doc.uri, "error", err)
		return nil
	}
	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}

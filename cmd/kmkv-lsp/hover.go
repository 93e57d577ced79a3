package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/mergeop"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.doc == nil {
		return nil, nil
	}
	e := findEntry(doc, int(params.Position.Line))
	if e == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(e),
		},
	}, nil
}

// findEntry returns the entry whose keyword is on line, or nil.
func findEntry(doc *document, line int) *entry {
	es := entries(doc.doc)
	for i := range es {
		pos := doc.positions[es[i].item]
		if pos == nil {
			continue
		}
		if pos.Line() == line {
			return &es[i]
		}
	}
	return nil
}

func buildHoverText(e *entry) string {
	it := e.item
	parts := []string{
		fmt.Sprintf("**Path:** `%s`", e.path),
		fmt.Sprintf("**Type:** %s", getTypeInfo(it)),
	}
	if it.Tag != "" {
		tag := fmt.Sprintf("**Tag:** `%s`", it.Tag)
		if sym := mergeop.Lookup(it.Tag); sym != nil {
			kind := "match"
			if sym.IsPatch() {
				kind = "patch"
			}
			tag += fmt.Sprintf(" (%s operation)", kind)
		}
		parts = append(parts, tag)
	}
	if v := getValueInfo(it); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func getTypeInfo(it *ir.Item) string {
	if it.IsArray() {
		return "array"
	}
	return strings.ToLower(it.Type.String())
}

func getValueInfo(it *ir.Item) string {
	switch it.Type {
	case ir.StringType:
		if it.IsArray() {
			return fmt.Sprintf("array with %d elements", len(it.Array()))
		}
		if it.String != "" {
			val := it.String
			if len(val) > 50 {
				val = val[:50] + "..."
			}
			if strings.ContainsAny(val, "\n\r") {
				return fmt.Sprintf("%d lines", strings.Count(it.String, "\n")+1)
			}
			return fmt.Sprintf("`%s`", val)
		}
	case ir.DocumentType:
		return fmt.Sprintf("document with %d keys", it.Doc.Len())
	}
	return ""
}

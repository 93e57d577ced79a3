package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/eval"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/mergeop"
	"go.lsp.dev/protocol"
)

type tagInfo struct {
	name   string
	detail string
}

// knownTags lists the tags with a meaning to kmkv tools.
func knownTags() []tagInfo {
	res := []tagInfo{
		{ir.TagKmkv, "nested document"},
		{ir.TagArray, "comma separated list"},
	}
	for _, s := range mergeop.Symbols() {
		detail := "match operation"
		if s.IsPatch() {
			detail = "patch operation"
		}
		res = append(res, tagInfo{s.String(), detail})
	}
	evs := eval.Symbols()
	sort.Slice(evs, func(i, j int) bool { return evs[i].String() < evs[j].String() })
	for _, s := range evs {
		res = append(res, tagInfo{s.String(), "eval operation"})
	}
	return res
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	pos := params.Position
	partial, ok := tagPrefix(doc.content, int(pos.Line), int(pos.Character))
	if !ok {
		return nil, nil
	}
	return &protocol.CompletionList{Items: completeTag(partial)}, nil
}

// tagPrefix returns the partial tag before the cursor when the cursor is
// inside the "{tag}" suffix of a keyword.
func tagPrefix(content string, line, col int) (string, bool) {
	start := lineColToOffset(content, line, 0)
	end := lineColToOffset(content, line, col)
	kw := strings.TrimLeft(content[start:end], " \t")
	if strings.ContainsAny(kw, " \t}") {
		return "", false
	}
	i := strings.IndexByte(kw, '{')
	if i <= 0 {
		return "", false
	}
	return kw[i+1:], true
}

func completeTag(partial string) []protocol.CompletionItem {
	res := []protocol.CompletionItem{}
	for _, t := range knownTags() {
		if !strings.HasPrefix(t.name, partial) {
			continue
		}
		res = append(res, protocol.CompletionItem{
			Label:      t.name,
			Kind:       protocol.CompletionItemKindKeyword,
			Detail:     t.detail,
			InsertText: t.name[len(partial):] + "}",
		})
	}
	return res
}

package main

import (
	"context"
	"sort"
	"strings"

	"github.com/signadot/kmkv-format/kmkv/encode"
	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/mergeop"
	"go.lsp.dev/protocol"
)

// tokenTypes and tokenModifiers form the legend announced in Initialize.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierModification,
	}
)

// mapColorToSemanticTokenType maps encoder color attributes to token types.
func mapColorToSemanticTokenType(attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.TagColor:
		return protocol.SemanticTokenKeyword
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	default:
		return protocol.SemanticTokenString
	}
}

func tagModifiers(tag string) []protocol.SemanticTokenModifiers {
	sym := mergeop.Lookup(tag)
	if sym == nil {
		return nil
	}
	if sym.IsPatch() {
		return []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierModification}
	}
	return []protocol.SemanticTokenModifiers{protocol.SemanticTokenModifierDefinition}
}

type tokenInfo struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
	modifiers []protocol.SemanticTokenModifiers
}

// collectTokens lists the tokens of the keyword lines of doc.  Bracket
// value contents are not tokenized.
func collectTokens(doc *document) []tokenInfo {
	if doc.doc == nil {
		return nil
	}
	lines := strings.Split(doc.content, "\n")
	var res []tokenInfo
	// add records the token at byte column char of text.
	add := func(text string, line, char, length int, attr encode.ColorAttr, mods []protocol.SemanticTokenModifiers) {
		if length <= 0 || char >= len(text) {
			return
		}
		end := min(char+length, len(text))
		res = append(res, tokenInfo{
			line:      uint32(line),
			character: uint32(byteToUTF16(text, char)),
			length:    uint32(utf16Len(text[char:end])),
			tokenType: mapColorToSemanticTokenType(attr),
			modifiers: mods,
		})
	}
	for _, e := range entries(doc.doc) {
		pos := doc.positions[e.item]
		if pos == nil {
			continue
		}
		line, col := pos.LineCol()
		if line >= len(lines) {
			continue
		}
		text := strings.TrimRight(lines[line], "\r")
		add(text, line, col, len(e.key), encode.FieldColor, nil)
		end := col + len(e.key)
		if e.item.Tag != "" {
			add(text, line, end, 1, encode.SepColor, nil)
			add(text, line, end+1, len(e.item.Tag), encode.TagColor, tagModifiers(e.item.Tag))
			add(text, line, end+1+len(e.item.Tag), 1, encode.SepColor, nil)
			end += len(e.item.Tag) + 2
		}
		if end >= len(text) {
			continue
		}
		start := end
		for start < len(text) && text[start] == ' ' {
			start++
		}
		rest := strings.TrimRight(text[start:], " \t")
		switch {
		case rest == "":
		case rest[0] == '{':
			add(text, line, start, 1, encode.SepColor, nil)
		case e.item.Type == ir.StringType:
			add(text, line, start, len(rest), encode.ValueColor, nil)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].line != res[j].line {
			return res[i].line < res[j].line
		}
		return res[i].character < res[j].character
	})
	return res
}

// encodeTokens delta encodes tokens as the protocol requires.
func encodeTokens(tokenList []tokenInfo) []uint32 {
	typeMap := make(map[protocol.SemanticTokenTypes]uint32)
	for i, tt := range tokenTypes {
		typeMap[tt] = uint32(i)
	}
	modifierMap := make(map[protocol.SemanticTokenModifiers]uint32)
	for i, tm := range tokenModifiers {
		modifierMap[tm] = uint32(i)
	}

	tokens := []uint32{}
	var prevLine, prevChar uint32
	for _, ti := range tokenList {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		bits := uint32(0)
		for _, mod := range ti.modifiers {
			if idx, ok := modifierMap[mod]; ok {
				bits |= 1 << idx
			}
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeMap[ti.tokenType], bits)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: encodeTokens(collectTokens(doc))}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	var in []tokenInfo
	for _, ti := range collectTokens(doc) {
		if ti.line < params.Range.Start.Line || ti.line > params.Range.End.Line {
			continue
		}
		in = append(in, ti)
	}
	return &protocol.SemanticTokens{Data: encodeTokens(in)}, nil
}

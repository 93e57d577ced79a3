package main

import (
	"context"
	"sync"

	"github.com/signadot/kmkv-format/kmkv/ir"
	"github.com/signadot/kmkv-format/kmkv/parse"
	"github.com/signadot/kmkv-format/kmkv/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	doc       *ir.Document
	err       error
	positions map[*ir.Item]*token.Pos
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Item]*token.Pos)
	doc, err := parse.Parse([]byte(content), parse.ParseKmkv(), parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		doc:       doc,
		err:       err,
		positions: positions,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	d := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports the parse error of doc, if any, at the
// keyword where it occurred.
func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "kmkv",
	}
	if pos := parse.ErrPos(doc.err); pos != nil {
		line, col := pos.LineCol()
		diagnostic.Range = charRange(doc.content, line, col)
	}
	return append(diagnostics, diagnostic)
}


func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change.  A zero range replaces the whole
// document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}


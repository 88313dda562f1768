package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	iLsp "github.com/moinwiki/nowiki/internal/lsp"
)

// Server publishes directive diagnostics for open moin documents. It
// implements full-text document sync: every didOpen/didChange re-analyzes
// the whole document and republishes.
type Server struct {
	conn *jsonrpc2.Conn

	analyzer *iLsp.Analyzer

	// tracks canceled request IDs
	cancelMap sync.Map

	// tracking for method request counts
	trackRequestCount sync.Map

	opts Options
}

type Options struct {
	// MaxDiagnostics caps how many diagnostics are published per document.
	// Zero means DefaultMaxDiagnostics.
	MaxDiagnostics int
}

const DefaultMaxDiagnostics = 100

func (o *Options) Validate() error {
	if o.MaxDiagnostics < 0 {
		return fmt.Errorf("max diagnostics must not be negative, got %d", o.MaxDiagnostics)
	}
	return nil
}

func NewServer(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if opts.MaxDiagnostics == 0 {
		opts.MaxDiagnostics = DefaultMaxDiagnostics
	}

	return &Server{
		analyzer: iLsp.NewAnalyzer(),
		opts:     opts,
	}, nil
}

func (s *Server) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (result interface{}, err error) {
	if s.conn == nil {
		s.conn = conn
	}
	slog.Info("received request", "method", req.Method, "id", req.ID)
	reqCount, _ := s.trackRequestCount.LoadOrStore(req.Method, 1)
	if count, ok := reqCount.(int); ok {
		s.trackRequestCount.Store(req.Method, count+1)
	}

	if _, ok := s.cancelMap.Load(req.ID.String()); ok {
		slog.Debug("request was canceled", "id", req.ID)
		s.cancelMap.Delete(req.ID.String())
		return nil, nil
	}

	switch req.Method {
	case "initialize":
		slog.Info("initializing lsp server")

		syncKind := lsp.TDSKFull
		return lsp.InitializeResult{
			Capabilities: lsp.ServerCapabilities{
				TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
					Kind: &syncKind,
				},
			},
		}, nil

	case "initialized":
		slog.Info("server initialized")
		return nil, nil

	case "shutdown":
		slog.Info("shutting down")
		s.printDebugStats()
		return nil, nil

	case "exit":
		slog.Info("exiting")
		os.Exit(0)
		return nil, nil

	case "textDocument/didOpen":
		var params lsp.DidOpenTextDocumentParams
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			return nil, err
		}

		return nil, s.publishDiagnostics(ctx, params.TextDocument.URI, params.TextDocument.Text)

	case "textDocument/didChange":
		var params lsp.DidChangeTextDocumentParams
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			return nil, err
		}

		if len(params.ContentChanges) > 0 {
			// full sync: the last change carries the complete document
			text := params.ContentChanges[len(params.ContentChanges)-1].Text
			return nil, s.publishDiagnostics(ctx, params.TextDocument.URI, text)
		}
		return nil, nil

	case "textDocument/didSave":
		return nil, nil

	case "textDocument/didClose":
		var params lsp.DidCloseTextDocumentParams
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			return nil, err
		}

		// clear stale diagnostics for the closed document
		return nil, s.SendDiagnostics(ctx, lsp.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []lsp.Diagnostic{},
		})

	case "$/cancelRequest":
		var params lsp.CancelParams
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			return nil, err
		}
		slog.Debug("canceling request", "id", params.ID)
		s.cancelMap.Store(params.ID.String(), struct{}{})
		return nil, nil

	default:
		slog.Debug("unsupported method", "method", req.Method)
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("method not supported: %s", req.Method),
		}
	}
}

func (s *Server) publishDiagnostics(ctx context.Context, uri lsp.DocumentURI, text string) error {
	diagnostics := s.analyzer.Analyze(text)
	if len(diagnostics) > s.opts.MaxDiagnostics {
		diagnostics = diagnostics[:s.opts.MaxDiagnostics]
	}

	slog.Debug("publishing diagnostics", "uri", uri, "count", len(diagnostics))

	return s.SendDiagnostics(ctx, lsp.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (s *Server) SendDiagnostics(ctx context.Context, params lsp.PublishDiagnosticsParams) error {
	return s.conn.Notify(ctx, "textDocument/publishDiagnostics", params)
}

func (s *Server) printDebugStats() {
	s.trackRequestCount.Range(func(key, value interface{}) bool {
		msg := fmt.Sprintf("Method: %-30s Count: %d", key.(string), value.(int))
		slog.Debug(msg)
		return true
	})
}

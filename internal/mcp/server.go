package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Ranakb/ai-document-system/internal/catalog"
	"github.com/Ranakb/ai-document-system/internal/classifier"
	"github.com/Ranakb/ai-document-system/internal/config"
	"github.com/Ranakb/ai-document-system/internal/embedder"
	"github.com/Ranakb/ai-document-system/internal/pipeline"
	"github.com/Ranakb/ai-document-system/internal/retrieval"
)

const (
	// ServerName is the MCP server name
	ServerName = "ai-document-system"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp        *server.MCPServer
	classifier *classifier.Engine
	engine     *retrieval.Engine
	catalog    *catalog.Catalog
	cfg        config.Config
}

// NewServer creates a new MCP server instance. The retrieval index is
// loaded from disk when a previous run saved one.
func NewServer(ctx context.Context, cfg config.Config) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.CatalogPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}

	cat, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}

	emb, err := embedder.NewFromEnv()
	if err != nil {
		_ = cat.Close()
		return nil, fmt.Errorf("failed to initialize embedder: %w", err)
	}

	cls, err := classifier.New(ctx, emb)
	if err != nil {
		_ = cat.Close()
		return nil, fmt.Errorf("failed to initialize classifier: %w", err)
	}

	engine, err := retrieval.New(emb, cfg.Retrieval(false))
	if err != nil {
		_ = cat.Close()
		return nil, fmt.Errorf("failed to initialize retrieval engine: %w", err)
	}
	if err := engine.LoadIndex(); err != nil && !errors.Is(err, retrieval.ErrNoIndex) {
		_ = cat.Close()
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:        mcpServer,
		classifier: cls,
		engine:     engine,
		catalog:    cat,
		cfg:        cfg,
	}
	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.catalog.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(classifyDocumentTool(), s.handleClassifyDocument)
	s.mcp.AddTool(indexDocumentsTool(), s.handleIndexDocuments)
	s.mcp.AddTool(searchDocumentsTool(), s.handleSearchDocuments)
	s.mcp.AddTool(getStatsTool(), s.handleGetStats)
	s.mcp.AddTool(getReportTool(), s.handleGetReport)
}

// newPipeline builds the processing pipeline used by index_documents.
func (s *Server) newPipeline() *pipeline.Pipeline {
	return pipeline.New(s.classifier, s.engine,
		pipeline.WithCatalog(s.catalog),
		pipeline.WithWorkers(s.cfg.Workers))
}

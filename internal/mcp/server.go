// Package mcp exposes the extraction pipeline as a Model Context
// Protocol server so AI assistants can extract documents on demand.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docstract"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Extractor is the slice of the extraction service the server needs.
type Extractor interface {
	ExtractBytes(ctx context.Context, data []byte, mimeType string) (*docstract.Document, error)
	ExtractFile(ctx context.Context, path string) (*docstract.Document, error)
}

// Server is the MCP server for docstract.
type Server struct {
	extractor Extractor
	server    *mcp.Server
}

// NewServer creates a new MCP server backed by the given extractor.
func NewServer(extractor Extractor) (*Server, error) {
	if extractor == nil {
		return nil, errors.New("extractor is required")
	}

	impl := &mcp.Implementation{
		Name:    "docstract",
		Version: Version,
	}

	s := &Server{
		extractor: extractor,
		server:    mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docstract"
)

// ExtractInput is the input schema for the extract tool.
type ExtractInput struct {
	Path     string `json:"path,omitempty" jsonschema:"path of a file to extract"`
	Content  string `json:"content,omitempty" jsonschema:"raw text content to extract instead of a file"`
	MIMEType string `json:"mime_type,omitempty" jsonschema:"MIME type hint; detected from content when omitted"`
}

// ExtractOutput is the output schema for the extract tool.
type ExtractOutput struct {
	DocumentID string        `json:"document_id"`
	Title      string        `json:"title,omitempty"`
	MIMEType   string        `json:"mime_type"`
	Content    string        `json:"content"`
	Chunks     []ChunkOutput `json:"chunks,omitempty"`
}

// ChunkOutput represents a single chunk of the extracted document.
type ChunkOutput struct {
	Position int    `json:"position"`
	Content  string `json:"content"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract",
		Description: "Extract structured text content from a file or raw bytes",
	}, s.handleExtract)
}

// handleExtract handles the extract tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	if input.Path == "" && input.Content == "" {
		return nil, ExtractOutput{}, errors.New("either path or content is required")
	}

	result, err := s.extract(ctx, input)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	output := ExtractOutput{
		DocumentID: result.ID,
		Title:      result.Title,
		MIMEType:   result.MIMEType,
		Content:    result.Content,
		Chunks:     make([]ChunkOutput, len(result.Chunks)),
	}
	for i := range result.Chunks {
		output.Chunks[i] = ChunkOutput{
			Position: result.Chunks[i].Position,
			Content:  result.Chunks[i].Content,
		}
	}

	return nil, output, nil
}

func (s *Server) extract(ctx context.Context, input ExtractInput) (*docstract.Document, error) {
	if input.Path != "" {
		return s.extractor.ExtractFile(ctx, input.Path)
	}
	return s.extractor.ExtractBytes(ctx, []byte(input.Content), input.MIMEType)
}

// Package plaintext extracts text-family documents by passing their
// content through unchanged. It is the lowest-priority built-in: register
// more specific extractors before it to take over individual types.
package plaintext

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docstract"
)

// Ensure Extractor implements the interface.
var _ docstract.DocumentExtractor = (*Extractor)(nil)

// Extractor handles plain text and other textual formats.
type Extractor struct{}

// New creates a plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/*",
		"application/json",
		"application/xml",
		"application/x-yaml",
		"application/toml",
	}
}

// Extract passes the content through as-is, deriving a title from the
// first non-empty line.
func (e *Extractor) Extract(_ context.Context, data []byte, mimeType string) (*docstract.Document, error) {
	if data == nil {
		return nil, docstract.ErrInvalidInput
	}

	content := string(data)

	return &docstract.Document{
		ID:       uuid.New().String(),
		Title:    firstLine(content),
		Content:  content,
		MIMEType: mimeType,
		Metadata: map[string]any{
			"extractor": "plaintext",
		},
	}, nil
}

// firstLine returns the first non-empty line, trimmed and bounded, as a
// best-effort title.
func firstLine(content string) string {
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Markdown-style heading markers don't belong in a title.
		line = strings.TrimLeft(line, "# ")
		if len(line) > 200 {
			line = line[:200]
		}
		return line
	}
	return ""
}

func init() {
	// Self-register into the default registry, database/sql driver
	// style. Importers that want a clean slate call ClearDocumentExtractors.
	if err := docstract.RegisterDocumentExtractor("plaintext", New()); err != nil {
		panic(err)
	}
}

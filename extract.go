package docstract

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/docstract/mimetype"
)

// ExtractBytes extracts a document from raw bytes. An empty mimeType means
// the content is sniffed first. The extractor is resolved from the default
// registry; no registered extractor for the type yields ErrNoExtractor.
func ExtractBytes(ctx context.Context, data []byte, mimeType string) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrInvalidInput
	}
	if mimeType == "" {
		mimeType = mimetype.DetectMIMEType(data)
	}

	extractor, _, ok := ExtractorForMIME(mimeType)
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoExtractor, mimeType)
	}

	doc, err := extractor.Extract(ctx, data, mimeType)
	if err != nil {
		return nil, err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.MIMEType == "" {
		doc.MIMEType = mimeType
	}
	return doc, nil
}

// ExtractFile extracts a document from a file on disk. The MIME type is
// detected from content with extension fallback, and the document URI is
// set to the path.
func ExtractFile(ctx context.Context, path string) (*Document, error) {
	mimeType, err := mimetype.DetectMIMETypeFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("detecting type of %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := ExtractBytes(ctx, data, mimeType)
	if err != nil {
		return nil, err
	}

	doc.URI = path
	return doc, nil
}

// Package services contains the application services that drive the
// extraction pipeline.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/docstract"
	"github.com/custodia-labs/docstract/config"
	"github.com/custodia-labs/docstract/internal/logger"
	"github.com/custodia-labs/docstract/mimetype"
	"github.com/custodia-labs/docstract/postprocessors/chunker"
)

// ResultCache stores extraction results keyed by content hash.
type ResultCache interface {
	Get(ctx context.Context, contentHash string) (*docstract.Document, bool, error)
	Put(ctx context.Context, contentHash string, doc *docstract.Document) error
}

// ExtractionService runs the full extraction pipeline: MIME detection,
// extractor dispatch, validation, post-processing, and an optional
// result cache.
type ExtractionService struct {
	cfg   *config.ExtractionConfig
	cache ResultCache
}

// ExtractionOption configures the service.
type ExtractionOption func(*ExtractionService)

// WithCache attaches a result cache.
func WithCache(cache ResultCache) ExtractionOption {
	return func(s *ExtractionService) { s.cache = cache }
}

// NewExtractionService creates the service. The configured chunking
// parameters are applied by re-registering the chunker post-processor,
// overwriting the default-parameter one registered on import.
func NewExtractionService(cfg *config.ExtractionConfig, opts ...ExtractionOption) *ExtractionService {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &ExtractionService{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if err := docstract.RegisterPostProcessor("chunker", chunker.FromConfig(cfg.Chunking)); err != nil {
		logger.Warn("registering configured chunker: %v", err)
	}

	return s
}

// ExtractBytes extracts a document from raw bytes. An empty mimeType
// triggers content sniffing.
func (s *ExtractionService) ExtractBytes(ctx context.Context, data []byte, mimeType string) (*docstract.Document, error) {
	if len(data) == 0 {
		return nil, docstract.ErrInvalidInput
	}
	if mimeType == "" {
		mimeType = mimetype.DetectMIMEType(data)
	}

	hash := contentHash(data)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, hash)
		if err != nil {
			logger.Warn("cache lookup failed: %v", err)
		} else if ok {
			logger.Debug("cache hit for %s (%s)", hash[:12], mimeType)
			return cached, nil
		}
	}

	extractor, name, ok := docstract.ExtractorForMIME(mimeType)
	if !ok {
		return nil, fmt.Errorf("%w for %q", docstract.ErrNoExtractor, mimeType)
	}
	defer logger.Stage("extract " + mimeType + " via " + name)()

	doc, err := extractor.Extract(ctx, data, mimeType)
	if err != nil {
		return nil, fmt.Errorf("extractor %s: %w", name, err)
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.MIMEType == "" {
		doc.MIMEType = mimeType
	}

	if s.cfg.Validation.Enabled {
		if err := s.validate(ctx, doc); err != nil {
			return nil, err
		}
	}

	doc, err = s.postProcess(ctx, doc)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, hash, doc); err != nil {
			logger.Warn("cache store failed: %v", err)
		}
	}

	return doc, nil
}

// ExtractFile extracts a document from a file on disk.
func (s *ExtractionService) ExtractFile(ctx context.Context, path string) (*docstract.Document, error) {
	mimeType, err := mimetype.DetectMIMETypeFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("detecting type of %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, err := s.ExtractBytes(ctx, data, mimeType)
	if err != nil {
		return nil, err
	}

	doc.URI = path
	return doc, nil
}

// validate runs every registered validator in registration order and
// stops at the first failure.
func (s *ExtractionService) validate(ctx context.Context, doc *docstract.Document) error {
	for _, entry := range docstract.Validators().Entries() {
		if err := entry.Handler.Validate(ctx, doc); err != nil {
			return fmt.Errorf("validator %s: %w", entry.Name, err)
		}
	}
	return nil
}

// postProcess chains every registered post-processor in registration
// order, feeding each one the previous output.
func (s *ExtractionService) postProcess(ctx context.Context, doc *docstract.Document) (*docstract.Document, error) {
	for _, entry := range docstract.PostProcessors().Entries() {
		out, err := entry.Handler.Process(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("post-processor %s: %w", entry.Name, err)
		}
		doc = out
	}
	return doc, nil
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Package chunker provides a fixed-size text chunking post-processor.
package chunker

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/docstract"
	"github.com/custodia-labs/docstract/config"
)

// DefaultMaxChars is the default number of characters per chunk.
const DefaultMaxChars = 1000

// DefaultMaxOverlap is the default number of overlapping characters.
const DefaultMaxOverlap = 200

// Ensure Processor implements the interface.
var _ docstract.PostProcessor = (*Processor)(nil)

// Processor splits document content into fixed-size chunks with overlap
// and attaches them to the document.
type Processor struct {
	maxChars   int
	maxOverlap int
}

// Option configures the chunker.
type Option func(*Processor)

// WithMaxChars sets the chunk size in characters.
func WithMaxChars(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxChars = n
		}
	}
}

// WithMaxOverlap sets the overlap between adjacent chunks in characters.
func WithMaxOverlap(n int) Option {
	return func(p *Processor) {
		if n >= 0 {
			p.maxOverlap = n
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		maxChars:   DefaultMaxChars,
		maxOverlap: DefaultMaxOverlap,
	}
	for _, opt := range opts {
		opt(p)
	}

	// Overlap must leave forward progress.
	if p.maxOverlap >= p.maxChars {
		p.maxOverlap = p.maxChars / 4
	}
	return p
}

// FromConfig creates a chunker from the chunking configuration section.
func FromConfig(cfg config.ChunkingConfig) *Processor {
	return New(WithMaxChars(cfg.MaxChars), WithMaxOverlap(cfg.MaxOverlap))
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into chunks. Existing chunks are
// replaced; empty content produces no chunks.
func (p *Processor) Process(_ context.Context, doc *docstract.Document) (*docstract.Document, error) {
	if doc == nil {
		return nil, docstract.ErrInvalidInput
	}
	if doc.Content == "" {
		doc.Chunks = nil
		return doc, nil
	}

	content := doc.Content
	step := p.maxChars - p.maxOverlap

	chunks := make([]docstract.Chunk, 0, len(content)/step+1)
	position := 0

	for start := 0; start < len(content); start += step {
		begin := runeStart(content, start)
		if begin >= len(content) {
			break
		}
		end := runeStart(content, min(begin+p.maxChars, len(content)))

		chunks = append(chunks, docstract.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Content:    content[begin:end],
			Position:   position,
		})
		position++

		if end == len(content) {
			break
		}
	}

	doc.Chunks = chunks
	return doc, nil
}

// runeStart advances i to the nearest rune boundary at or after it, so
// chunk edges never split a multi-byte rune. The forward direction keeps
// adjacent chunks contiguous even with zero overlap.
func runeStart(s string, i int) int {
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}

func init() {
	if err := docstract.RegisterPostProcessor("chunker", New()); err != nil {
		panic(err)
	}
}

// Package tesseract provides an OCR backend that shells out to the
// tesseract binary. The binary must be on PATH; concurrent invocations
// are bounded so batch extraction cannot fork-bomb the host.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/custodia-labs/docstract"
	"github.com/custodia-labs/docstract/config"
)

// DefaultLanguage is the tesseract language model used when none is set.
const DefaultLanguage = "eng"

// Ensure Backend implements the interface.
var _ docstract.OCRBackend = (*Backend)(nil)

// Backend runs the tesseract CLI over image bytes.
type Backend struct {
	binary   string
	language string
	sem      chan struct{}
}

// Option configures the backend.
type Option func(*Backend)

// WithBinary overrides the tesseract executable path.
func WithBinary(path string) Option {
	return func(b *Backend) {
		if path != "" {
			b.binary = path
		}
	}
}

// WithLanguage sets the tesseract language model, e.g. "eng" or "deu+eng".
func WithLanguage(lang string) Option {
	return func(b *Backend) {
		if lang != "" {
			b.language = lang
		}
	}
}

// WithMaxConcurrent bounds the number of simultaneous tesseract processes.
func WithMaxConcurrent(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.sem = make(chan struct{}, n)
		}
	}
}

// New creates a tesseract backend. Without options it uses the "eng"
// model and allows NumCPU/2 concurrent processes, at least one.
func New(opts ...Option) *Backend {
	b := &Backend{
		binary:   "tesseract",
		language: DefaultLanguage,
		sem:      make(chan struct{}, max(runtime.NumCPU()/2, 1)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromConfig creates a backend from the ocr configuration section.
func FromConfig(cfg config.OCRConfig) *Backend {
	return New(WithLanguage(cfg.Language), WithMaxConcurrent(cfg.MaxConcurrent))
}

// Available reports whether the tesseract binary can be found.
func (b *Backend) Available() bool {
	_, err := exec.LookPath(b.binary)
	return err == nil
}

// ProcessImage runs tesseract over the image bytes and returns the
// recognized text. The call blocks while the process slot is taken.
func (b *Backend) ProcessImage(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", docstract.ErrInvalidInput
	}

	select {
	case b.sem <- struct{}{}:
		defer func() { <-b.sem }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	dir, err := os.MkdirTemp("", "docstract-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create ocr workdir: %w", err)
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input")
	if err := os.WriteFile(input, image, 0o600); err != nil {
		return "", fmt.Errorf("write ocr input: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, b.binary, b.args(input)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("tesseract: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// args builds the tesseract invocation: read input, write to stdout,
// with the configured language model.
func (b *Backend) args(input string) []string {
	return []string{input, "stdout", "-l", b.language}
}

func init() {
	if err := docstract.RegisterOCRBackend("tesseract", New()); err != nil {
		panic(err)
	}
}

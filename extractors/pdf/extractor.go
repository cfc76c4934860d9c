// Package pdf extracts text from PDF documents. It reads page content
// streams through pdfcpu and decodes the text-showing operators directly,
// which keeps extraction pure Go. Scanned PDFs without a text layer come
// back empty here; the quality validator flags them for the OCR path.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/docstract"
)

// Ensure Extractor implements the interface.
var _ docstract.DocumentExtractor = (*Extractor)(nil)

// Extractor handles application/pdf documents.
type Extractor struct{}

// New creates a PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract parses the PDF and concatenates per-page text. The first
// non-empty line becomes the title.
func (e *Extractor) Extract(_ context.Context, data []byte, mimeType string) (*docstract.Document, error) {
	if len(data) == 0 {
		return nil, docstract.ErrInvalidInput
	}

	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("reading pdf: %w", err)
	}

	var all strings.Builder
	var title string

	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		pageText := pageContentText(pdfCtx, pageNr)
		if pageText == "" {
			continue
		}

		if title == "" {
			title = firstLine(pageText)
		}

		if all.Len() > 0 {
			all.WriteByte('\n')
		}
		all.WriteString(pageText)
	}

	return &docstract.Document{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  all.String(),
		MIMEType: mimeType,
		Metadata: map[string]any{
			"extractor":  "pdf",
			"page_count": pdfCtx.PageCount,
		},
	}, nil
}

// pageContentText extracts the text of a single page from its content
// stream. Unreadable pages degrade to empty rather than failing the whole
// document.
func pageContentText(pdfCtx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return ""
	}
	return decodeContentStream(stream)
}

// decodeContentStream walks the text-showing operators (Tj, TJ, ') of a
// decoded content stream and rebuilds reading order line by line.
func decodeContentStream(stream []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeStringLiterals(&sb, line, false)

		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			writeStringLiterals(&sb, line, true)

		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}

		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return normalizeWhitespace(sb.String())
}

// writeStringLiterals appends every parenthesised string literal found on
// the operator line, decoding PDF escapes.
func writeStringLiterals(sb *strings.Builder, line []byte, newline bool) {
	for {
		open := bytes.IndexByte(line, '(')
		if open < 0 {
			return
		}
		line = line[open+1:]

		end := closingParen(line)
		if end < 0 {
			return
		}

		text := decodeEscapes(line[:end])
		if text != "" {
			if newline {
				sb.WriteByte('\n')
			}
			sb.WriteString(text)
		}
		line = line[end+1:]
	}
}

// closingParen finds the matching unescaped ')' in a string literal.
func closingParen(s []byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ')':
			return i
		}
	}
	return -1
}

// decodeEscapes handles the PDF string escape sequences, including octal
// character codes.
func decodeEscapes(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// normalizeWhitespace collapses runs of whitespace into single spaces
// while keeping line breaks.
func normalizeWhitespace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			prevSpace = true
		case r == ' ' || r == '\t' || r == '\r':
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		default:
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}

// firstLine returns the first non-empty line, bounded to a sane title
// length.
func firstLine(text string) string {
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 200 {
			line = line[:200]
		}
		return line
	}
	return ""
}

func init() {
	if err := docstract.RegisterDocumentExtractor("pdf", New()); err != nil {
		panic(err)
	}
}

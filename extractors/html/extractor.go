// Package html extracts HTML documents by converting their body to
// markdown, which preserves headings, lists and tables as readable text.
package html

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/google/uuid"
	xhtml "golang.org/x/net/html"

	"github.com/custodia-labs/docstract"
)

// Ensure Extractor implements the interface.
var _ docstract.DocumentExtractor = (*Extractor)(nil)

// Extractor converts HTML to markdown text.
type Extractor struct {
	conv *converter.Converter
}

// New creates an HTML extractor.
func New() *Extractor {
	return &Extractor{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Extract converts the markup to markdown and pulls the title from the
// document head.
func (e *Extractor) Extract(_ context.Context, data []byte, mimeType string) (*docstract.Document, error) {
	if data == nil {
		return nil, docstract.ErrInvalidInput
	}

	markdown, err := e.conv.ConvertString(string(data))
	if err != nil {
		return nil, fmt.Errorf("converting html: %w", err)
	}

	return &docstract.Document{
		ID:       uuid.New().String(),
		Title:    findTitle(data),
		Content:  strings.TrimSpace(markdown),
		MIMEType: mimeType,
		Metadata: map[string]any{
			"extractor": "html",
		},
	}, nil
}

// findTitle returns the text of the first <title> element, if any. The
// tolerant parser never fails on real-world markup, so parse errors just
// mean no title.
func findTitle(data []byte) string {
	root, err := xhtml.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var walk func(n *xhtml.Node) string
	walk = func(n *xhtml.Node) string {
		if n.Type == xhtml.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == xhtml.TextNode {
					sb.WriteString(c.Data)
				}
			}
			return strings.TrimSpace(sb.String())
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if title := walk(c); title != "" {
				return title
			}
		}
		return ""
	}
	return walk(root)
}

func init() {
	if err := docstract.RegisterDocumentExtractor("html", New()); err != nil {
		panic(err)
	}
}

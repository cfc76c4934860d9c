// Package docx extracts text from Word documents. A docx file is a zip
// archive; the text lives in word/document.xml and the title, when the
// author set one, in docProps/core.xml.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docstract"
)

// Ensure Extractor implements the interface.
var _ docstract.DocumentExtractor = (*Extractor)(nil)

// Extractor handles Word (OOXML) documents.
type Extractor struct{}

// New creates a docx extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Extract unzips the archive and flattens the document body to plain
// text, one line per paragraph.
func (e *Extractor) Extract(_ context.Context, data []byte, mimeType string) (*docstract.Document, error) {
	if len(data) == 0 {
		return nil, docstract.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx archive: %w", docstract.ErrInvalidInput)
	}

	content, err := documentText(reader)
	if err != nil {
		return nil, err
	}

	return &docstract.Document{
		ID:       uuid.New().String(),
		Title:    documentTitle(reader),
		Content:  content,
		MIMEType: mimeType,
		Metadata: map[string]any{
			"extractor": "docx",
		},
	}, nil
}

// documentText extracts text from word/document.xml. An archive without
// one is a valid but empty document.
func documentText(reader *zip.Reader) (string, error) {
	raw, ok, err := readArchiveFile(reader, "word/document.xml")
	if err != nil || !ok {
		return "", err
	}
	return parseDocumentXML(raw), nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts text content from the document XML.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// documentTitle returns the title from docProps/core.xml, if set.
func documentTitle(reader *zip.Reader) string {
	raw, ok, err := readArchiveFile(reader, "docProps/core.xml")
	if err != nil || !ok {
		return ""
	}

	var core coreXML
	if err := xml.Unmarshal(raw, &core); err != nil {
		return ""
	}
	return strings.TrimSpace(core.Title)
}

// readArchiveFile reads a single named file from the archive. ok reports
// whether the file exists.
func readArchiveFile(reader *zip.Reader, name string) ([]byte, bool, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, false, fmt.Errorf("opening %s: %w", name, err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, false, fmt.Errorf("reading %s: %w", name, err)
		}
		return content, true, nil
	}
	return nil, false, nil
}

func init() {
	if err := docstract.RegisterDocumentExtractor("docx", New()); err != nil {
		panic(err)
	}
}

package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstract"
)

func TestSupportedMIMETypes(t *testing.T) {
	e := New()
	mimes := e.SupportedMIMETypes()

	assert.Contains(t, mimes, "text/*")
	assert.Contains(t, mimes, "application/json")
}

func TestExtract(t *testing.T) {
	e := New()

	doc, err := e.Extract(context.Background(), []byte("First line\nsecond line"), "text/plain")
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "First line", doc.Title)
	assert.Equal(t, "First line\nsecond line", doc.Content)
	assert.Equal(t, "text/plain", doc.MIMEType)
}

func TestExtract_NilInput(t *testing.T) {
	e := New()

	_, err := e.Extract(context.Background(), nil, "text/plain")
	assert.ErrorIs(t, err, docstract.ErrInvalidInput)
}

func TestExtract_EmptyContent(t *testing.T) {
	e := New()

	doc, err := e.Extract(context.Background(), []byte{}, "text/plain")
	require.NoError(t, err)
	assert.Empty(t, doc.Content)
	assert.Empty(t, doc.Title)
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "Title\nbody", "Title"},
		{"leading blank lines", "\n\n  \nTitle", "Title"},
		{"markdown heading", "# Title\nbody", "Title"},
		{"empty", "", ""},
		{"whitespace only", "  \n\t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstLine(tt.content))
		})
	}
}

func TestSelfRegistration(t *testing.T) {
	// Importing the package registers the extractor; dispatch must find
	// it for any text type unless something cleared the registry.
	if _, _, ok := docstract.ExtractorForMIME("text/plain"); !ok {
		// Another test may have cleared the default registry; re-register
		// and verify the wiring works.
		require.NoError(t, docstract.RegisterDocumentExtractor("plaintext", New()))
		_, name, ok := docstract.ExtractorForMIME("text/plain")
		require.True(t, ok)
		assert.Equal(t, "plaintext", name)
	}
}

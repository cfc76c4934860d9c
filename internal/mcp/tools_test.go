package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstract"
)

type fakeExtractorService struct {
	doc *docstract.Document
	err error

	gotPath string
	gotMIME string
}

func (f *fakeExtractorService) ExtractBytes(_ context.Context, data []byte, mimeType string) (*docstract.Document, error) {
	f.gotMIME = mimeType
	if f.err != nil {
		return nil, f.err
	}
	if f.doc != nil {
		return f.doc, nil
	}
	return &docstract.Document{ID: "bytes-doc", Content: string(data)}, nil
}

func (f *fakeExtractorService) ExtractFile(_ context.Context, path string) (*docstract.Document, error) {
	f.gotPath = path
	if f.err != nil {
		return nil, f.err
	}
	return &docstract.Document{ID: "file-doc", URI: path}, nil
}

func TestNewServer_RequiresExtractor(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)
}

func TestHandleExtract_FromPath(t *testing.T) {
	fake := &fakeExtractorService{}
	s, err := NewServer(fake)
	require.NoError(t, err)

	_, out, err := s.handleExtract(context.Background(), nil, ExtractInput{Path: "/tmp/a.txt"})
	require.NoError(t, err)

	assert.Equal(t, "file-doc", out.DocumentID)
	assert.Equal(t, "/tmp/a.txt", fake.gotPath)
}

func TestHandleExtract_FromContent(t *testing.T) {
	fake := &fakeExtractorService{}
	s, err := NewServer(fake)
	require.NoError(t, err)

	_, out, err := s.handleExtract(context.Background(), nil, ExtractInput{
		Content:  "inline text",
		MIMEType: "text/plain",
	})
	require.NoError(t, err)

	assert.Equal(t, "bytes-doc", out.DocumentID)
	assert.Equal(t, "inline text", out.Content)
	assert.Equal(t, "text/plain", fake.gotMIME)
}

func TestHandleExtract_IncludesChunks(t *testing.T) {
	fake := &fakeExtractorService{
		doc: &docstract.Document{
			ID:      "chunked",
			Content: "ab",
			Chunks: []docstract.Chunk{
				{Position: 0, Content: "a"},
				{Position: 1, Content: "b"},
			},
		},
	}
	s, err := NewServer(fake)
	require.NoError(t, err)

	_, out, err := s.handleExtract(context.Background(), nil, ExtractInput{Content: "ab"})
	require.NoError(t, err)

	require.Len(t, out.Chunks, 2)
	assert.Equal(t, "a", out.Chunks[0].Content)
	assert.Equal(t, 1, out.Chunks[1].Position)
}

func TestHandleExtract_EmptyInput(t *testing.T) {
	s, err := NewServer(&fakeExtractorService{})
	require.NoError(t, err)

	_, _, err = s.handleExtract(context.Background(), nil, ExtractInput{})
	assert.Error(t, err)
}

func TestHandleExtract_PropagatesErrors(t *testing.T) {
	wantErr := errors.New("extraction failed")
	s, err := NewServer(&fakeExtractorService{err: wantErr})
	require.NoError(t, err)

	_, _, err = s.handleExtract(context.Background(), nil, ExtractInput{Content: "x"})
	assert.ErrorIs(t, err, wantErr)
}

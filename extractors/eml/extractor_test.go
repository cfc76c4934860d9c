package eml

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstract"
)

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{"message/rfc822"}, New().SupportedMIMETypes())
}

func TestExtract_PlainMessage(t *testing.T) {
	raw := strings.Join([]string{
		"From: alice@example.com",
		"To: bob@example.com",
		"Subject: Meeting notes",
		"Date: Mon, 02 Jan 2006 15:04:05 -0700",
		"",
		"Here are the notes from today.",
	}, "\r\n")

	doc, err := New().Extract(context.Background(), []byte(raw), "message/rfc822")
	require.NoError(t, err)

	assert.Equal(t, "Meeting notes", doc.Title)
	assert.Contains(t, doc.Content, "From: alice@example.com")
	assert.Contains(t, doc.Content, "Subject: Meeting notes")
	assert.Contains(t, doc.Content, "Here are the notes from today.")
	assert.Equal(t, "eml", doc.Metadata["extractor"])
	assert.Equal(t, "alice@example.com", doc.Metadata["from"])
}

func TestExtract_EncodedSubject(t *testing.T) {
	raw := strings.Join([]string{
		"From: alice@example.com",
		"Subject: =?UTF-8?Q?Caf=C3=A9_budget?=",
		"",
		"body",
	}, "\r\n")

	doc, err := New().Extract(context.Background(), []byte(raw), "message/rfc822")
	require.NoError(t, err)
	assert.Equal(t, "Café budget", doc.Title)
}

func TestExtract_MultipartPrefersPlainText(t *testing.T) {
	raw := strings.Join([]string{
		"From: alice@example.com",
		"Subject: Multipart",
		`Content-Type: multipart/alternative; boundary="BOUNDARY"`,
		"",
		"--BOUNDARY",
		"Content-Type: text/plain",
		"",
		"plain version",
		"--BOUNDARY",
		"Content-Type: text/html",
		"",
		"<p>html version</p>",
		"--BOUNDARY--",
	}, "\r\n")

	doc, err := New().Extract(context.Background(), []byte(raw), "message/rfc822")
	require.NoError(t, err)

	assert.Contains(t, doc.Content, "plain version")
	assert.NotContains(t, doc.Content, "html version")
}

func TestExtract_HTMLOnlyBodyStripped(t *testing.T) {
	raw := strings.Join([]string{
		"From: alice@example.com",
		"Subject: HTML",
		"Content-Type: text/html",
		"",
		"<html><body><p>Rendered text</p></body></html>",
	}, "\r\n")

	doc, err := New().Extract(context.Background(), []byte(raw), "message/rfc822")
	require.NoError(t, err)

	assert.Contains(t, doc.Content, "Rendered text")
	assert.NotContains(t, doc.Content, "<p>")
}

func TestExtract_NotAMessage(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("no headers here"), "message/rfc822")
	assert.ErrorIs(t, err, docstract.ErrInvalidInput)
}

func TestExtract_EmptyInput(t *testing.T) {
	_, err := New().Extract(context.Background(), nil, "message/rfc822")
	assert.ErrorIs(t, err, docstract.ErrInvalidInput)
}

func TestStripHTMLTags(t *testing.T) {
	assert.Equal(t, "a\nb", stripHTMLTags("<div>a</div>\n<div>b</div>"))
	assert.Equal(t, "plain", stripHTMLTags("plain"))
}

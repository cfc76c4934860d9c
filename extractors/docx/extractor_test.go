package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstract"
)

const wordMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// buildDocx creates a minimal valid docx archive in memory.
func buildDocx(documentXML, coreXML string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, _ := w.Create("[Content_Types].xml")
	contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))

	if documentXML != "" {
		doc, _ := w.Create("word/document.xml")
		doc.Write([]byte(documentXML))
	}

	if coreXML != "" {
		core, _ := w.Create("docProps/core.xml")
		core.Write([]byte(coreXML))
	}

	w.Close()
	return buf.Bytes()
}

func TestSupportedMIMETypes(t *testing.T) {
	assert.Equal(t, []string{wordMIME}, New().SupportedMIMETypes())
}

func TestExtract_Success(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Hello World</w:t></w:r></w:p>
</w:body>
</w:document>`

	coreXML := `<?xml version="1.0" encoding="UTF-8"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>Quarterly Report</dc:title>
</cp:coreProperties>`

	doc, err := New().Extract(context.Background(), buildDocx(docXML, coreXML), wordMIME)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Quarterly Report", doc.Title)
	assert.Contains(t, doc.Content, "Hello World")
	assert.Equal(t, wordMIME, doc.MIMEType)
	assert.Equal(t, "docx", doc.Metadata["extractor"])
}

func TestExtract_MultipleParagraphsAndRuns(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p>
<w:r><w:t>Hello </w:t></w:r>
<w:r><w:t>World</w:t></w:r>
</w:p>
<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>
</w:body>
</w:document>`

	doc, err := New().Extract(context.Background(), buildDocx(docXML, ""), wordMIME)
	require.NoError(t, err)

	assert.Equal(t, "Hello World\nSecond paragraph", doc.Content)
}

func TestExtract_NoTitle(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>Content</w:t></w:r></w:p></w:body>
</w:document>`

	doc, err := New().Extract(context.Background(), buildDocx(docXML, ""), wordMIME)
	require.NoError(t, err)
	assert.Empty(t, doc.Title)
}

func TestExtract_EmptyBody(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
</w:body>
</w:document>`

	doc, err := New().Extract(context.Background(), buildDocx(docXML, ""), wordMIME)
	require.NoError(t, err)
	assert.Empty(t, doc.Content)
}

func TestExtract_InvalidZip(t *testing.T) {
	_, err := New().Extract(context.Background(), []byte("not a zip file"), wordMIME)
	assert.ErrorIs(t, err, docstract.ErrInvalidInput)
}

func TestExtract_EmptyInput(t *testing.T) {
	_, err := New().Extract(context.Background(), nil, wordMIME)
	assert.ErrorIs(t, err, docstract.ErrInvalidInput)
}

func TestExtract_DispatchableFromRegistry(t *testing.T) {
	// Registered on import; registering again is a harmless overwrite.
	require.NoError(t, docstract.RegisterDocumentExtractor("docx", New()))

	_, name, ok := docstract.ExtractorForMIME(wordMIME)
	require.True(t, ok)
	assert.Equal(t, "docx", name)
}

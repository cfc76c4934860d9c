package docstract

// Document is the canonical result of extracting one input. The Content
// field holds the full text; Chunks is populated by post-processors.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location of the input, when extracted from a
	// file. Empty for byte-slice extraction.
	URI string

	// Title is the human-readable title, best-effort per format.
	Title string

	// Content is the full extracted text.
	Content string

	// MIMEType is the detected MIME type of the input.
	MIMEType string

	// Metadata contains format-specific key-value pairs (page counts,
	// extraction quality, source language, ...).
	Metadata map[string]any

	// Chunks are the searchable units produced by the post-processing
	// pipeline. Nil until a chunking post-processor has run.
	Chunks []Chunk
}

// Chunk is a bounded slice of a document's content.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links back to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Metadata contains chunk-specific key-value pairs.
	Metadata map[string]any
}

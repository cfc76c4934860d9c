package docstract

import "context"

// DocumentExtractor turns raw bytes of a supported format into a Document.
// Implementations advertise the MIME types they handle; dispatch happens
// through ExtractorForMIME.
type DocumentExtractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	// Entries are exact types or a type wildcard such as "text/*".
	SupportedMIMETypes() []string

	// Extract parses the input and returns the extracted document.
	Extract(ctx context.Context, data []byte, mimeType string) (*Document, error)
}

// OCRBackend recognises text in an image.
type OCRBackend interface {
	// ProcessImage runs recognition over the image bytes and returns the
	// recognised text.
	ProcessImage(ctx context.Context, image []byte) (string, error)
}

// Validator inspects an extracted document and rejects unusable results.
// A nil return means the document passed; a non-nil error carries the
// diagnostics for the failure.
type Validator interface {
	Validate(ctx context.Context, doc *Document) error
}

// PostProcessor transforms an extracted document, for example by chunking
// its content. Processors run in registration order and each receives the
// output of the previous one.
type PostProcessor interface {
	// Name identifies the processor in logs and configuration.
	Name() string

	// Process returns the transformed document. Implementations may
	// mutate and return the input document.
	Process(ctx context.Context, doc *Document) (*Document, error)
}

package docstract

import "errors"

// Toolkit-level errors. Infrastructure errors (file system, parsing) are
// wrapped where they occur; these sentinels cover the dispatch seam.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoExtractor indicates no registered document extractor claims
	// the detected MIME type.
	ErrNoExtractor = errors.New("no document extractor for MIME type")
)

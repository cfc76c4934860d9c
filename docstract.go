// Package docstract is the extensibility substrate of the docstract
// document-extraction toolkit. It defines the closed set of capability
// interfaces (document extractors, OCR backends, validators and
// post-processors), the process-wide default registries that hold their
// implementations, and MIME-based extractor dispatch.
//
// Format-specific logic lives in the extractors, ocr, validators and
// postprocessors subpackages. Each built-in registers itself into the
// default registries on import:
//
//	import (
//		_ "github.com/custodia-labs/docstract/extractors/plaintext"
//		_ "github.com/custodia-labs/docstract/extractors/pdf"
//	)
//
// Registries are safe for concurrent use. Registering a handler under an
// existing name overwrites the previous entry, which keeps hot-reloading
// a plugin a single idempotent call.
package docstract

import (
	"strings"

	"github.com/custodia-labs/docstract/registry"
)

// Default process-wide registries, one per capability kind. They share no
// state; tests and embedded pipelines that need isolation can construct
// their own instances with registry.New.
var (
	documentExtractors = registry.New[DocumentExtractor]()
	ocrBackends        = registry.New[OCRBackend]()
	validators         = registry.New[Validator]()
	postProcessors     = registry.New[PostProcessor]()
)

// RegisterDocumentExtractor adds a document extractor to the default
// registry. An existing entry with the same name is overwritten.
func RegisterDocumentExtractor(name string, e DocumentExtractor) error {
	return documentExtractors.Register(name, e)
}

// UnregisterDocumentExtractor removes a document extractor by name.
// Unregistering an unknown name is a no-op.
func UnregisterDocumentExtractor(name string) {
	documentExtractors.Unregister(name)
}

// ListDocumentExtractors returns the names of all registered document
// extractors in registration order.
func ListDocumentExtractors() []string {
	return documentExtractors.List()
}

// ClearDocumentExtractors removes all document extractors, built-ins included.
func ClearDocumentExtractors() {
	documentExtractors.Clear()
}

// RegisterOCRBackend adds an OCR backend to the default registry.
func RegisterOCRBackend(name string, b OCRBackend) error {
	return ocrBackends.Register(name, b)
}

// UnregisterOCRBackend removes an OCR backend by name.
func UnregisterOCRBackend(name string) {
	ocrBackends.Unregister(name)
}

// ListOCRBackends returns the names of all registered OCR backends.
func ListOCRBackends() []string {
	return ocrBackends.List()
}

// ClearOCRBackends removes all OCR backends.
func ClearOCRBackends() {
	ocrBackends.Clear()
}

// RegisterValidator adds a validator to the default registry.
func RegisterValidator(name string, v Validator) error {
	return validators.Register(name, v)
}

// UnregisterValidator removes a validator by name.
func UnregisterValidator(name string) {
	validators.Unregister(name)
}

// ListValidators returns the names of all registered validators.
func ListValidators() []string {
	return validators.List()
}

// ClearValidators removes all validators.
func ClearValidators() {
	validators.Clear()
}

// RegisterPostProcessor adds a post-processor to the default registry.
func RegisterPostProcessor(name string, p PostProcessor) error {
	return postProcessors.Register(name, p)
}

// UnregisterPostProcessor removes a post-processor by name.
func UnregisterPostProcessor(name string) {
	postProcessors.Unregister(name)
}

// ListPostProcessors returns the names of all registered post-processors.
func ListPostProcessors() []string {
	return postProcessors.List()
}

// ClearPostProcessors removes all post-processors.
func ClearPostProcessors() {
	postProcessors.Clear()
}

// DocumentExtractors returns the default document extractor registry.
func DocumentExtractors() *registry.Registry[DocumentExtractor] {
	return documentExtractors
}

// OCRBackends returns the default OCR backend registry.
func OCRBackends() *registry.Registry[OCRBackend] {
	return ocrBackends
}

// Validators returns the default validator registry.
func Validators() *registry.Registry[Validator] {
	return validators
}

// PostProcessors returns the default post-processor registry.
func PostProcessors() *registry.Registry[PostProcessor] {
	return postProcessors
}

// ExtractorForMIME resolves the document extractor responsible for a MIME
// type. Extractors are consulted in registration order and the first match
// wins, so overlapping claims resolve deterministically. The second return
// value is the registered name of the winning extractor.
func ExtractorForMIME(mimeType string) (DocumentExtractor, string, bool) {
	for _, entry := range documentExtractors.Entries() {
		for _, claimed := range entry.Handler.SupportedMIMETypes() {
			if mimeMatches(claimed, mimeType) {
				return entry.Handler, entry.Name, true
			}
		}
	}
	return nil, "", false
}

// mimeMatches reports whether a claimed MIME pattern covers the given type.
// Patterns are either exact ("application/pdf") or a type wildcard ("text/*").
func mimeMatches(pattern, mimeType string) bool {
	if pattern == mimeType {
		return true
	}
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return strings.HasPrefix(mimeType, prefix+"/")
	}
	return false
}

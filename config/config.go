// Package config defines the ExtractionConfig entity consumed by the
// extraction pipeline, its system defaults, and the discovery and merge
// rules for the docstract.toml configuration file.
package config

import "runtime"

// FileName is the recognised configuration file name for discovery.
const FileName = "docstract.toml"

// ExtractionConfig is the merged configuration for an extraction run.
// Every section has system defaults; values from a configuration file are
// overlaid field by field, so partial files are always valid. Unknown
// sections and fields are ignored for forward compatibility.
type ExtractionConfig struct {
	Chunking          ChunkingConfig          `toml:"chunking"`
	LanguageDetection LanguageDetectionConfig `toml:"language_detection"`
	OCR               OCRConfig               `toml:"ocr"`
	Validation        ValidationConfig        `toml:"validation"`
	Cache             CacheConfig             `toml:"cache"`
}

// ChunkingConfig controls the chunking post-processor.
type ChunkingConfig struct {
	// MaxChars is the maximum number of characters per chunk.
	MaxChars int `toml:"max_chars"`

	// MaxOverlap is the number of characters shared between adjacent
	// chunks.
	MaxOverlap int `toml:"max_overlap"`
}

// LanguageDetectionConfig controls source-language detection.
type LanguageDetectionConfig struct {
	Enabled bool `toml:"enabled"`
}

// OCRConfig selects and bounds the OCR backend.
type OCRConfig struct {
	// Backend is the registered name of the OCR backend to use.
	Backend string `toml:"backend"`

	// Language is the recognition language passed to the backend.
	Language string `toml:"language"`

	// MaxConcurrent bounds the number of concurrent OCR processes.
	MaxConcurrent int `toml:"max_concurrent"`
}

// ValidationConfig toggles the validator pipeline.
type ValidationConfig struct {
	Enabled bool `toml:"enabled"`
}

// CacheConfig controls the extraction result cache.
type CacheConfig struct {
	Enabled bool `toml:"enabled"`

	// Directory is where the cache database lives. Empty means the
	// user cache directory.
	Directory string `toml:"directory"`
}

// Default returns the system-defined configuration. The OCR concurrency
// default is half the CPU count, which leaves headroom for the OCR
// engine's own threading.
func Default() *ExtractionConfig {
	return &ExtractionConfig{
		Chunking: ChunkingConfig{
			MaxChars:   1000,
			MaxOverlap: 200,
		},
		LanguageDetection: LanguageDetectionConfig{
			Enabled: false,
		},
		OCR: OCRConfig{
			Backend:       "tesseract",
			Language:      "eng",
			MaxConcurrent: max(runtime.NumCPU()/2, 1),
		},
		Validation: ValidationConfig{
			Enabled: true,
		},
		Cache: CacheConfig{
			Enabled: false,
		},
	}
}

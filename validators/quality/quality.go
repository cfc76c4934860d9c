// Package quality validates that extracted text is usable: non-empty,
// mostly printable, and made of word-like tokens. It catches the typical
// failure mode of text-layer extraction from scanned or damaged inputs,
// where the output is garbage glyphs rather than an error.
package quality

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/custodia-labs/docstract"
)

// Default acceptance thresholds.
const (
	DefaultMinPrintableRatio = 0.85
	DefaultMinWordlikeRatio  = 0.50
)

// Ensure Validator implements the interface.
var _ docstract.Validator = (*Validator)(nil)

// Error carries the diagnostics of a failed quality check.
type Error struct {
	Reason         string
	PrintableRatio float64
	WordlikeRatio  float64
}

func (e *Error) Error() string {
	return fmt.Sprintf("quality check failed: %s (printable=%.2f wordlike=%.2f)",
		e.Reason, e.PrintableRatio, e.WordlikeRatio)
}

// Validator checks extraction quality against configurable thresholds.
type Validator struct {
	minPrintable float64
	minWordlike  float64
}

// Option configures the validator.
type Option func(*Validator)

// WithMinPrintableRatio sets the minimum ratio of printable characters.
func WithMinPrintableRatio(r float64) Option {
	return func(v *Validator) { v.minPrintable = r }
}

// WithMinWordlikeRatio sets the minimum ratio of word-like tokens.
func WithMinWordlikeRatio(r float64) Option {
	return func(v *Validator) { v.minWordlike = r }
}

// New creates a quality validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		minPrintable: DefaultMinPrintableRatio,
		minWordlike:  DefaultMinWordlikeRatio,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate passes documents with usable text and fails the rest with a
// diagnostics-carrying *Error.
func (v *Validator) Validate(_ context.Context, doc *docstract.Document) error {
	if doc == nil {
		return docstract.ErrInvalidInput
	}

	if strings.TrimSpace(doc.Content) == "" {
		return &Error{Reason: "no text content extracted"}
	}

	printable := printableRatio(doc.Content)
	wordlike := wordlikeRatio(doc.Content)

	if printable < v.minPrintable {
		return &Error{
			Reason:         "content is mostly non-printable",
			PrintableRatio: printable,
			WordlikeRatio:  wordlike,
		}
	}
	if wordlike < v.minWordlike {
		return &Error{
			Reason:         "content tokens do not look like words",
			PrintableRatio: printable,
			WordlikeRatio:  wordlike,
		}
	}
	return nil
}

// printableRatio returns the ratio of printable characters in text.
// Private Use Area glyphs, the replacement character and stray control
// characters count as garbage.
func printableRatio(text string) float64 {
	total := 0
	printable := 0
	for _, r := range text {
		total++
		if isGarbageRune(r) {
			continue
		}
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	if total == 0 {
		return 1.0
	}
	return float64(printable) / float64(total)
}

func isGarbageRune(r rune) bool {
	if r >= 0xE000 && r <= 0xF8FF {
		return true
	}
	if r == 0xFFFD {
		return true
	}
	if r < 0x0020 && r != '\n' && r != '\r' && r != '\t' {
		return true
	}
	return false
}

// wordlikeRatio returns the ratio of tokens with a plausible word length
// (2 to 15 runes) to all tokens.
func wordlikeRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	wordlike := 0
	for _, f := range fields {
		n := len([]rune(f))
		if n >= 2 && n <= 15 {
			wordlike++
		}
	}
	return float64(wordlike) / float64(len(fields))
}

func init() {
	if err := docstract.RegisterValidator("quality", New()); err != nil {
		panic(err)
	}
}

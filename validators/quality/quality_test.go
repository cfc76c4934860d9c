package quality

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docstract"
)

func TestValidate_GoodText(t *testing.T) {
	v := New()
	doc := &docstract.Document{Content: "The quick brown fox jumps over the lazy dog."}

	assert.NoError(t, v.Validate(context.Background(), doc))
}

func TestValidate_EmptyContent(t *testing.T) {
	v := New()

	err := v.Validate(context.Background(), &docstract.Document{Content: "  \n\t"})
	require.Error(t, err)

	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "no text content extracted", qerr.Reason)
}

func TestValidate_GarbageGlyphs(t *testing.T) {
	v := New()
	// Private Use Area glyphs, as produced by broken font mappings.
	doc := &docstract.Document{Content: strings.Repeat(" ", 50)}

	err := v.Validate(context.Background(), doc)
	require.Error(t, err)

	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Less(t, qerr.PrintableRatio, DefaultMinPrintableRatio)
}

func TestValidate_NonWordTokens(t *testing.T) {
	v := New()
	// Printable but implausibly long tokens.
	doc := &docstract.Document{Content: strings.Repeat("x", 400)}

	err := v.Validate(context.Background(), doc)
	require.Error(t, err)

	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "content tokens do not look like words", qerr.Reason)
}

func TestValidate_NilDocument(t *testing.T) {
	err := New().Validate(context.Background(), nil)
	assert.ErrorIs(t, err, docstract.ErrInvalidInput)
}

func TestValidate_CustomThresholds(t *testing.T) {
	// With thresholds at zero everything non-empty passes.
	v := New(WithMinPrintableRatio(0), WithMinWordlikeRatio(0))
	doc := &docstract.Document{Content: strings.Repeat("zzzzzzzzzzzzzzzzzzzzzz ", 5)}

	assert.NoError(t, v.Validate(context.Background(), doc))
}

func TestWordlikeRatio(t *testing.T) {
	assert.InDelta(t, 1.0, wordlikeRatio("these are all words"), 0.001)
	assert.InDelta(t, 0.0, wordlikeRatio("x y z"), 0.001)
	assert.Zero(t, wordlikeRatio(""))
}

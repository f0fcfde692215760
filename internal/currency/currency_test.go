package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "£", Symbol("GBP"))
	assert.Equal(t, "₦", Symbol("NGN"))
	assert.Equal(t, "KSh", Symbol("KES"))

	// unknown codes come back verbatim
	assert.Equal(t, "XYZ", Symbol("XYZ"))
	// missing code falls back to the default symbol
	assert.Equal(t, DefaultSymbol, Symbol(""))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("GBP"))
	assert.True(t, Known("JPY"))
	assert.False(t, Known("gbp"))
	assert.False(t, Known("XYZ"))
	assert.False(t, Known(""))
}

func TestChoices(t *testing.T) {
	choices := Choices()
	require.NotEmpty(t, choices)

	for i := 1; i < len(choices); i++ {
		assert.Less(t, choices[i-1].Code, choices[i].Code)
	}

	var hasDefault bool
	for _, ch := range choices {
		if ch.Code == DefaultCode {
			hasDefault = true
		}
		assert.True(t, Known(ch.Code))
	}
	assert.True(t, hasDefault)
}

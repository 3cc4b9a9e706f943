package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownTokenErrorMessage(t *testing.T) {
	err := &UnknownTokenError{line: 5, column: 2, Residual: "@foo"}
	assert.Equal(t, 5, err.Line())
	assert.Equal(t, 2, err.Column())
	assert.Contains(t, err.Error(), "line 5")
	assert.Contains(t, err.Error(), `"@foo"`)
}

func TestSuggestKeywordFindsCloseFragment(t *testing.T) {
	// "#rst:" is a subsequence of "#.rst:" one edit away, and further
	// from every other known fragment.
	assert.Equal(t, "#.rst:", suggestKeyword("#rst:"))
}

func TestSuggestKeywordNoCloseMatch(t *testing.T) {
	assert.Equal(t, "", suggestKeyword("xyzxyzxyzxyzxyzxyz"))
}

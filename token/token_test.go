package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	assert.Equal(t, "3:7", p.String())
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "Word", Word.String())
	assert.Equal(t, "RST", RST.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestRawKindStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "BeginDoubleQuoted", RawBeginDoubleQuoted.String())
	assert.Equal(t, "RawKind(-1)", RawKind(-1).String())
}

func TestIsWordClass(t *testing.T) {
	for _, k := range []Kind{Word, Number, Deref, QuotedLiteral, UnquotedLiteral} {
		assert.True(t, k.IsWordClass(), "%s should be word-class", k)
	}
	for _, k := range []Kind{LeftParen, RightParen, Newline, Comment, RST} {
		assert.False(t, k.IsWordClass(), "%s should not be word-class", k)
	}
}

func TestIsQuotePartial(t *testing.T) {
	for _, k := range []RawKind{RawBeginDoubleQuoted, RawEndDoubleQuoted, RawBeginSingleQuoted, RawEndSingleQuoted} {
		assert.True(t, k.IsQuotePartial())
	}
	assert.False(t, RawWord.IsQuotePartial())
}

func TestTokenAndRawTokenPositioned(t *testing.T) {
	tok := Token{Kind: Word, Content: "foo", Position: Position{Line: 2, Column: 5}}
	assert.Equal(t, 2, tok.Line())
	assert.Equal(t, 5, tok.Column())

	raw := RawToken{Kind: RawWord, Content: "foo", Position: Position{Line: 2, Column: 5}}
	assert.Equal(t, 2, raw.Line())
	assert.Equal(t, 5, raw.Column())
}

func TestTokenStringIncludesContentAndPosition(t *testing.T) {
	tok := Token{Kind: Word, Content: "foo", Position: Position{Line: 1, Column: 1}}
	assert.Equal(t, `Word("foo")@1:1`, tok.String())
}

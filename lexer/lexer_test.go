package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmake-tools/cmakeast/token"
)

func kinds(toks []token.RawToken) []token.RawKind {
	out := make([]token.RawKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanSimpleCall(t *testing.T) {
	toks, err := Scan("message(\"hi\")\n")
	require.NoError(t, err)
	assert.Equal(t, []token.RawKind{
		token.RawWord,
		token.RawLeftParen,
		token.RawQuotedLiteral,
		token.RawRightParen,
		token.RawNewline,
	}, kinds(toks))
	assert.Equal(t, "message", toks[0].Content)
	assert.Equal(t, `"hi"`, toks[2].Content)
}

func TestScanNumberAndNegative(t *testing.T) {
	toks, err := Scan("set(X -1)\n")
	require.NoError(t, err)
	var numbers []string
	for _, tk := range toks {
		if tk.Kind == token.RawNumber {
			numbers = append(numbers, tk.Content)
		}
	}
	assert.Equal(t, []string{"-1"}, numbers)
}

func TestScanVariableDereference(t *testing.T) {
	toks, err := Scan("message(${FOO})\n")
	require.NoError(t, err)
	assert.Equal(t, token.RawDeref, toks[2].Kind)
	assert.Equal(t, "${FOO}", toks[2].Content)
}

func TestScanWordInsideNestedParens(t *testing.T) {
	// The scanner only sees boundaries: '(' before and ')' after an
	// identifier make it a Word. Relabeling nested content as a literal
	// is the compressor's job.
	toks, err := Scan("f((ABC))\n")
	require.NoError(t, err)
	assert.Equal(t, []token.RawKind{
		token.RawWord,
		token.RawLeftParen,
		token.RawLeftParen,
		token.RawWord,
		token.RawRightParen,
		token.RawRightParen,
		token.RawNewline,
	}, kinds(toks))
}

func TestScanUnterminatedQuoteProducesBeginMarker(t *testing.T) {
	toks, err := Scan("set(X \"unterminated\n")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(toks), 2)
	// The begin marker runs to end of line; the trailing newline is its
	// own token after it.
	assert.Equal(t, token.RawBeginDoubleQuoted, toks[len(toks)-2].Kind)
	assert.Equal(t, token.RawNewline, toks[len(toks)-1].Kind)
}

func TestScanRSTMarkers(t *testing.T) {
	toks, err := Scan("#.rst:\n# text\nfoo()\n")
	require.NoError(t, err)
	assert.Equal(t, token.RawBeginRSTComment, toks[0].Kind)
}

func TestScanInlineRSTMarkers(t *testing.T) {
	toks, err := Scan("#[[.rst:\nsome text\n#]]\n")
	require.NoError(t, err)
	assert.Equal(t, token.RawBeginInlineRST, toks[0].Kind)
	last := toks[len(toks)-2] // before trailing newline
	assert.Equal(t, token.RawEndInlineRST, last.Kind)
}

func TestScanFragmentStartsAtGivenLine(t *testing.T) {
	toks, err := Scan("")
	require.NoError(t, err)
	assert.Empty(t, toks)

	frag, err := ScanFragment("bar)", 3)
	require.NoError(t, err)
	require.Len(t, frag, 2)
	assert.Equal(t, 3, frag[0].Position.Line)
	assert.Equal(t, 1, frag[0].Position.Column)
}

func TestScanMultipleLinesTracksLineNumbers(t *testing.T) {
	toks, err := Scan("foo()\nbar()\n")
	require.NoError(t, err)
	var barWord token.RawToken
	for _, tk := range toks {
		if tk.Kind == token.RawWord && tk.Content == "bar" {
			barWord = tk
		}
	}
	assert.Equal(t, 2, barWord.Position.Line)
}

package cmakeast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmake-tools/cmakeast/ast"
	"github.com/cmake-tools/cmakeast/token"
)

func TestTokenizeProducesDurableTokens(t *testing.T) {
	toks, err := Tokenize("foo(bar)\n")
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.Word, toks[0].Kind)
	assert.Equal(t, "foo", toks[0].Content)
	assert.Equal(t, token.Newline, toks[4].Kind)
}

func TestTokenizePropagatesSyntaxErrors(t *testing.T) {
	_, err := Tokenize("f(\n")
	assert.Error(t, err)
}

func TestParseRetokenizesWhenTokensNil(t *testing.T) {
	tree, err := Parse("message(hi)\n", nil)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	call, ok := tree.Statements[0].(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "message", call.Name)
}

func TestParseSkipsRetokenizingWhenTokensGiven(t *testing.T) {
	toks, err := Tokenize("message(hi)\n")
	require.NoError(t, err)

	tree, err := Parse("this text is irrelevant once tokens are supplied", toks)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	call := tree.Statements[0].(*ast.FunctionCall)
	assert.Equal(t, "message", call.Name)
}

func TestParseEndToEndIfElseifElse(t *testing.T) {
	tree, err := Parse(`if(A)
message(one)
elseif(B)
message(two)
else()
message(three)
endif()
`, nil)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	block, ok := tree.Statements[0].(*ast.IfBlock)
	require.True(t, ok)
	assert.Len(t, block.ElseIfs, 1)
	assert.NotNil(t, block.ElseStmnt)
	assert.NotNil(t, block.Footer)
}

func TestParseEndToEndMultilineString(t *testing.T) {
	tree, err := Parse("message(\"line one\nline two\")\n", nil)
	require.NoError(t, err)
	call := tree.Statements[0].(*ast.FunctionCall)
	require.Len(t, call.Arguments, 1)
	assert.Equal(t, "\"line one\nline two\"", call.Arguments[0].Contents)
}

func TestParseEndToEndRSTThenCode(t *testing.T) {
	tree, err := Parse("#.rst:\n# doc line\nfunction_call()\n", nil)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)
	call := tree.Statements[0].(*ast.FunctionCall)
	assert.Equal(t, "function_call", call.Name)
}

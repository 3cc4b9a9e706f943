package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmake-tools/cmakeast/token"
)

func TestWordTypeOfClassifiesEveryWordClassKind(t *testing.T) {
	cases := []struct {
		kind token.Kind
		want WordType
	}{
		{token.QuotedLiteral, String},
		{token.Number, Number},
		{token.Deref, VariableDeref},
		{token.Word, Variable},
		{token.UnquotedLiteral, CompoundLiteral},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, WordTypeOf(c.kind))
	}
}

func TestWordTypeOfPanicsOnNonWordClassKind(t *testing.T) {
	assert.Panics(t, func() { WordTypeOf(token.LeftParen) })
}

func TestWordTypeStringNames(t *testing.T) {
	assert.Equal(t, "String", String.String())
	assert.Equal(t, "Number", Number.String())
	assert.Equal(t, "VariableDereference", VariableDeref.String())
	assert.Equal(t, "Variable", Variable.String())
	assert.Equal(t, "CompoundLiteral", CompoundLiteral.String())
}

func TestNodePositionAccessors(t *testing.T) {
	pos := token.Position{Line: 3, Column: 5}
	w := &Word{Pos: pos}
	assert.Equal(t, pos, w.Position())

	call := &FunctionCall{Pos: pos}
	assert.Equal(t, pos, call.Position())

	top := &ToplevelBody{}
	assert.Equal(t, token.Position{Line: 1, Column: 1}, top.Position())
}

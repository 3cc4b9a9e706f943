package synerr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndPositioned(t *testing.T) {
	err := New(4, 2, "expected ')'")
	assert.Equal(t, 4, err.Line())
	assert.Equal(t, 2, err.Column())
	assert.Equal(t, "syntax error: expected ')'", err.Error())
}

func TestErrorWithSuggestion(t *testing.T) {
	err := New(1, 1, "unrecognized keyword")
	err.Suggestion = "endif"
	assert.Equal(t, `syntax error: unrecognized keyword (did you mean "endif"?)`, err.Error())
}

func TestErrorWithSnippet(t *testing.T) {
	err := New(2, 3, "expected '('")
	err.Source = "foo()\nbar baz\n"
	rendered := err.Error()
	assert.True(t, strings.Contains(rendered, "2:3"))
	assert.True(t, strings.Contains(rendered, "bar baz"))
	assert.True(t, strings.Contains(rendered, "^"))
}

func TestSnippetOutOfRangeLineOmitted(t *testing.T) {
	err := New(99, 1, "expected '('")
	err.Source = "only one line\n"
	assert.Equal(t, "syntax error: expected '('", err.Error())
}

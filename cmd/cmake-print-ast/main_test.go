package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmake-tools/cmakeast"
	"github.com/cmake-tools/cmakeast/internal/cache"
)

func TestParseCachedMissThenHit(t *testing.T) {
	c := cache.New("")
	text := "message(hi)\n"

	tree, err := parseCached(text, c)
	require.NoError(t, err)
	require.Len(t, tree.Statements, 1)

	digest := cache.Digest(text)
	_, hit, err := c.Get(digest)
	require.NoError(t, err)
	assert.True(t, hit, "tokenizing a miss must populate the cache")

	tree2, err := parseCached(text, c)
	require.NoError(t, err)
	require.Len(t, tree2.Statements, 1)
}

func TestParseCachedPropagatesSyntaxErrors(t *testing.T) {
	c := cache.New("")
	_, err := parseCached("f(\n", c)
	assert.Error(t, err)
}

func TestPrintTreeOneLinePerNode(t *testing.T) {
	tree, err := cmakeast.Parse("foo(bar)\n", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	printTree(&buf, tree)

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	// ToplevelBody, FunctionCall(foo), Word(bar)
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "ToplevelBody")
	assert.Contains(t, string(lines[1]), "foo")
	assert.Contains(t, string(lines[2]), "bar")
}

func TestReadFileMissingReturnsExitError(t *testing.T) {
	_, err := readFile(filepath.Join(t.TempDir(), "nope.cmake"))
	require.Error(t, err)
	ee, ok := err.(*exitError)
	require.True(t, ok)
	assert.Equal(t, 2, ee.code)
}

func TestReadFileReadsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CMakeLists.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo()\n"), 0o644))

	text, err := readFile(path)
	require.NoError(t, err)
	assert.Equal(t, "foo()\n", text)
}

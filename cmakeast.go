// Package cmakeast turns CMake source text into a token stream or a
// parsed tree. It composes the first three pipeline stages: lexer
// (scan), compress (fuse), parser (build). Each stage, and the fourth,
// visitor (walk), is usable on its own via its own package, but most
// callers only need these two entry points.
package cmakeast

import (
	"github.com/cmake-tools/cmakeast/ast"
	"github.com/cmake-tools/cmakeast/compress"
	"github.com/cmake-tools/cmakeast/lexer"
	"github.com/cmake-tools/cmakeast/parser"
	"github.com/cmake-tools/cmakeast/token"
)

// Tokenize scans and compresses text into the durable token stream the
// parser consumes.
func Tokenize(text string) ([]token.Token, error) {
	raws, err := lexer.Scan(text)
	if err != nil {
		return nil, err
	}
	return compress.Compress(raws)
}

// Parse builds a tree from text. If toks is non-nil it is parsed
// directly, skipping scanning and compression; otherwise text is
// tokenized first.
func Parse(text string, toks []token.Token) (*ast.ToplevelBody, error) {
	if toks == nil {
		var err error
		toks, err = Tokenize(text)
		if err != nil {
			return nil, err
		}
	}
	return parser.Parse(toks)
}

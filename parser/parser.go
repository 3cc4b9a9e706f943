// Package parser implements stage 3 of the CMake parsing pipeline: a
// recursive-descent builder that turns a durable token stream into an
// ast.ToplevelBody.
//
// The grammar has no tokens of its own beyond "word followed by left
// paren is a call" -- every control construct (function, macro,
// foreach, while, if) is a function call whose name the parser
// recognizes and hands to a dedicated header+body collector.
package parser

import (
	"github.com/cmake-tools/cmakeast/ast"
	"github.com/cmake-tools/cmakeast/token"
)

// Parse builds a tree from a durable token stream.
func Parse(toks []token.Token) (*ast.ToplevelBody, error) {
	p := &parser{toks: toks}
	_, body, err := p.collect(0, nil)
	if err != nil {
		return nil, err
	}
	return &ast.ToplevelBody{Statements: body.statements}, nil
}

type parser struct {
	toks []token.Token
}

// collected is the result of one collect() sweep: both the nested
// statements it found and the bare argument words, with the caller
// picking whichever it needed.
type collected struct {
	statements []ast.Node
	arguments  []*ast.Word
}

// terminator reports whether scanning should stop before consuming
// p.toks[index].
type terminator func(p *parser, index int) bool

// collect is the single worker that both the toplevel file and every
// header-body construct drive: it walks forward from index, treating
// "word immediately followed by '('" as a nested call and every other
// word-class token as a bare argument, until term fires or (if term is
// non-nil) the tokens run out first -- which is a syntax error, since
// every caller that passes a terminator is looking for a specific
// structural token that must exist.
func (p *parser) collect(index int, term terminator) (int, collected, error) {
	var out collected

	for index < len(p.toks) {
		if term != nil && term(p, index) {
			return index, out, nil
		}

		switch {
		case p.toks[index].Kind == token.Word && index+1 < len(p.toks) && p.toks[index+1].Kind == token.LeftParen:
			next, stmt, err := p.handleFunctionCall(index)
			if err != nil {
				return 0, collected{}, err
			}
			out.statements = append(out.statements, stmt)
			index = next

		case p.toks[index].Kind.IsWordClass():
			out.arguments = append(out.arguments, &ast.Word{
				Type:     ast.WordTypeOf(p.toks[index].Kind),
				Contents: p.toks[index].Content,
				Pos:      p.toks[index].Position,
				Index:    index,
			})
		}

		index++
	}

	if term != nil {
		return 0, collected{}, p.eofError(index, "expected a closing token before end of input")
	}
	return index, out, nil
}

// parseCallHeader collects a call's name and argument list, stopping at
// (and leaving the cursor on) its closing right paren.
func (p *parser) parseCallHeader(index int) (int, *ast.FunctionCall, error) {
	name := p.toks[index]
	next, body, err := p.collect(index+2, rightParenTerm)
	if err != nil {
		return 0, nil, err
	}
	return next, &ast.FunctionCall{
		Name:      name.Content,
		Arguments: body.arguments,
		Pos:       name.Position,
		Index:     index,
	}, nil
}

func rightParenTerm(p *parser, index int) bool {
	return p.toks[index].Kind == token.RightParen
}

// handleFunctionCall parses a call's header, then dispatches to the
// construct-specific handler for its name, if any.
func (p *parser) handleFunctionCall(index int) (int, ast.Node, error) {
	next, call, err := p.parseCallHeader(index)
	if err != nil {
		return 0, nil, err
	}

	switch call.Name {
	case "function":
		return p.headerBody(next, call, isEndFunction, func(h, f *ast.FunctionCall, b ast.Body) ast.Node {
			return &ast.FunctionDefinition{Header: h, Body: b, Footer: f, Pos: h.Pos, Index: h.Index}
		})
	case "macro":
		return p.headerBody(next, call, isEndMacro, func(h, f *ast.FunctionCall, b ast.Body) ast.Node {
			return &ast.MacroDefinition{Header: h, Body: b, Footer: f, Pos: h.Pos, Index: h.Index}
		})
	case "foreach":
		return p.headerBody(next, call, isEndForeach, func(h, f *ast.FunctionCall, b ast.Body) ast.Node {
			return &ast.ForeachStatement{Header: h, Body: b, Footer: f, Pos: h.Pos, Index: h.Index}
		})
	case "while":
		return p.headerBody(next, call, isEndWhile, func(h, f *ast.FunctionCall, b ast.Body) ast.Node {
			return &ast.WhileStatement{Header: h, Body: b, Footer: f, Pos: h.Pos, Index: h.Index}
		})
	case "if":
		return p.handleIfBlock(next, call)
	default:
		return next, call, nil
	}
}

// collectBody collects a construct's body up to (not including)
// whichever token satisfies term, without consuming or parsing
// whatever comes after it. Used both by headerBody (which goes on to
// parse a real footer call) and by the if-block state machine (whose
// sub-statements don't carry a footer of their own -- only the
// IfBlock they belong to does).
func (p *parser) collectBody(bodyStart int, term terminator) (int, ast.Body, error) {
	next, body, err := p.collect(bodyStart, term)
	if err != nil {
		return 0, ast.Body{}, err
	}
	return next, ast.Body{Statements: body.statements}, nil
}

// headerBody collects a construct's body up to its terminating
// keyword, parses that keyword as a footer FunctionCall (e.g.
// "endforeach()"), and returns the index of its closing paren. bodyStart is
// the index of the header call's own closing paren -- the body
// collector walks over it harmlessly (a right paren is neither a call
// start nor a word-class token) before reaching real statements.
func (p *parser) headerBody(bodyStart int, header *ast.FunctionCall, isEnd func(content string) bool, build func(header, footer *ast.FunctionCall, body ast.Body) ast.Node) (int, ast.Node, error) {
	next, body, err := p.collectBody(bodyStart, blockTerm(isEnd))
	if err != nil {
		return 0, nil, err
	}

	// footerNext lands on the footer call's own closing paren, matching
	// the convention collect() relies on: the caller's index++ after
	// dispatching a statement is what steps past it.
	footerNext, footer, err := p.parseCallHeader(next)
	if err != nil {
		return 0, nil, err
	}

	return footerNext, build(header, footer, body), nil
}

// blockTerm builds a terminator that fires on a word matching isEnd
// immediately followed by '(' -- the shape every block-closing keyword
// must have.
func blockTerm(isEnd func(content string) bool) terminator {
	return func(p *parser, index int) bool {
		return isEnd(p.toks[index].Content) && index+1 < len(p.toks) && p.toks[index+1].Kind == token.LeftParen
	}
}

func isEndFunction(content string) bool { return content == "endfunction" }
func isEndMacro(content string) bool    { return content == "endmacro" }
func isEndForeach(content string) bool  { return content == "endforeach" }
func isEndWhile(content string) bool    { return content == "endwhile" }

func isIfBlockTerminator(content string) bool {
	return content == "endif" || content == "else" || content == "elseif"
}

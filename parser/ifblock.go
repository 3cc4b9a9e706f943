package parser

import "github.com/cmake-tools/cmakeast/ast"

// handleIfBlock parses the if(...) clause, then repeatedly inspects
// whichever keyword terminated the most recent body (endif, else, or
// elseif): endif ends the block, else/elseif are parsed as their own
// header call and their body collected in turn. Nothing stops an
// elseif from being accepted after an else already has been: CMake
// itself doesn't validate that ordering at parse time, and this parser
// preserves that permissiveness rather than rejecting it.
//
// The terminator keyword is parsed exactly once: collectBody's
// terminator predicate stops with the cursor sitting on that keyword's
// own token, so there's no need to re-scan backward for it.
func (p *parser) handleIfBlock(next int, call *ast.FunctionCall) (int, ast.Node, error) {
	term := blockTerm(isIfBlockTerminator)

	cursor, ifBody, err := p.collectBody(next, term)
	if err != nil {
		return 0, nil, err
	}
	ifStmnt := &ast.IfStatement{Header: call, Body: ifBody, Pos: call.Pos, Index: call.Index}

	var elseIfs []*ast.ElseIfStatement
	var elseStmnt *ast.ElseStatement

	for {
		switch p.toks[cursor].Content {
		case "endif":
			footerNext, footer, err := p.parseCallHeader(cursor)
			if err != nil {
				return 0, nil, err
			}
			return footerNext, &ast.IfBlock{
				IfStmnt:   ifStmnt,
				ElseIfs:   elseIfs,
				ElseStmnt: elseStmnt,
				Footer:    footer,
				Pos:       ifStmnt.Pos,
				Index:     ifStmnt.Index,
			}, nil

		case "elseif":
			headerNext, header, err := p.parseCallHeader(cursor)
			if err != nil {
				return 0, nil, err
			}
			bodyNext, body, err := p.collectBody(headerNext, term)
			if err != nil {
				return 0, nil, err
			}
			elseIfs = append(elseIfs, &ast.ElseIfStatement{Header: header, Body: body, Pos: header.Pos, Index: header.Index})
			cursor = bodyNext

		case "else":
			headerNext, header, err := p.parseCallHeader(cursor)
			if err != nil {
				return 0, nil, err
			}
			bodyNext, body, err := p.collectBody(headerNext, term)
			if err != nil {
				return 0, nil, err
			}
			elseStmnt = &ast.ElseStatement{Header: header, Body: body, Pos: header.Pos, Index: header.Index}
			cursor = bodyNext

		default:
			return 0, nil, p.eofError(cursor, "malformed if-block: expected elseif, else, or endif")
		}
	}
}

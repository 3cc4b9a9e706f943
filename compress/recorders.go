package compress

import (
	"strings"

	"github.com/cmake-tools/cmakeast/lexer"
	"github.com/cmake-tools/cmakeast/synerr"
	"github.com/cmake-tools/cmakeast/token"
)

// consumeCommentedLine fuses a bare '#' token together with every other
// raw token on the same source line into a single durable Comment.
func consumeCommentedLine(work []token.RawToken, start int) (int, []token.RawToken, []token.RawToken, error) {
	line := work[start].Position.Line
	var b strings.Builder
	j := start
	for j < len(work) && work[j].Position.Line == line {
		b.WriteString(work[j].Content)
		j++
	}
	fused := token.RawToken{Kind: token.RawComment, Content: b.String(), Position: work[start].Position}
	return j, []token.RawToken{fused}, nil, nil
}

// consumeRSTCommentBlock fuses a "#.rst:" marker and every following
// comment-shaped line into one RST token per source line. A line
// continues the block when, ignoring leading whitespace, it is either
// blank or begins with a bare '#'; the first line that doesn't ends the
// block without being consumed.
func consumeRSTCommentBlock(work []token.RawToken, start int) (int, []token.RawToken, []token.RawToken, error) {
	cur := &rstGroup{line: work[start].Position.Line, col: work[start].Position.Column}
	cur.content.WriteString(work[start].Content)
	groups := []*rstGroup{cur}

	j := start + 1
	for j < len(work) {
		t := work[j]
		if t.Position.Line == cur.line {
			cur.content.WriteString(t.Content)
			j++
			continue
		}
		if !lineContinuesRST(work, j) {
			break
		}
		cur = &rstGroup{line: t.Position.Line, col: t.Position.Column}
		cur.content.WriteString(t.Content)
		groups = append(groups, cur)
		j++
	}

	return j, finishGroups(groups), nil, nil
}

// lineContinuesRST reports whether the source line starting at work[j]
// is blank or begins (after any leading whitespace) with a bare '#'.
func lineContinuesRST(work []token.RawToken, j int) bool {
	line := work[j].Position.Line
	for k := j; k < len(work) && work[k].Position.Line == line; k++ {
		switch work[k].Kind {
		case token.RawWhitespace, token.RawNewline:
			continue
		case token.RawComment:
			return true
		default:
			return false
		}
	}
	return true
}

// consumeInlineRST fuses a "#[[.rst:" marker through its matching "#]]"
// terminator (inclusive) into one RST token per source line covered.
func consumeInlineRST(work []token.RawToken, start int) (int, []token.RawToken, []token.RawToken, error) {
	cur := &rstGroup{line: work[start].Position.Line, col: work[start].Position.Column}
	cur.content.WriteString(work[start].Content)
	groups := []*rstGroup{cur}

	j := start + 1
	for j < len(work) {
		t := work[j]
		if t.Position.Line != cur.line {
			cur = &rstGroup{line: t.Position.Line, col: t.Position.Column}
			groups = append(groups, cur)
		}
		cur.content.WriteString(t.Content)
		j++
		if t.Kind == token.RawEndInlineRST {
			break
		}
	}

	return j, finishGroups(groups), nil, nil
}

// rstGroup accumulates one source line's worth of tokens for the RST
// recorders before they're fused into a single RawRST token.
type rstGroup struct {
	line, col int
	content   strings.Builder
}

func finishGroups(groups []*rstGroup) []token.RawToken {
	fused := make([]token.RawToken, len(groups))
	for i, g := range groups {
		fused[i] = token.RawToken{
			Kind:     token.RawRST,
			Content:  g.content.String(),
			Position: token.Position{Line: g.line, Column: g.col},
		}
	}
	return fused
}

// consumeMultilineString fuses a begin-quote marker through its
// matching end-quote marker (same flavor) into one durable
// QuotedLiteral, byte-concatenating everything in between regardless of
// kind. If, while active, another begin-quote of the same flavor
// appears, its first byte is treated as the closing quote and the
// remainder of that token is rescanned and carried back into the stream
// for ordinary processing.
func consumeMultilineString(work []token.RawToken, start int) (int, []token.RawToken, []token.RawToken, error) {
	quote := byte('"')
	endKind := token.RawEndDoubleQuoted
	beginKind := token.RawBeginDoubleQuoted
	if work[start].Kind == token.RawBeginSingleQuoted {
		quote = '\''
		endKind = token.RawEndSingleQuoted
		beginKind = token.RawBeginSingleQuoted
	}

	var b strings.Builder
	b.WriteString(work[start].Content)

	j := start + 1
	for j < len(work) {
		t := work[j]
		switch t.Kind {
		case endKind:
			b.WriteString(t.Content)
			fused := token.RawToken{Kind: token.RawQuotedLiteral, Content: b.String(), Position: work[start].Position}
			return j + 1, []token.RawToken{fused}, nil, nil

		case beginKind:
			b.WriteByte(quote)
			fused := token.RawToken{Kind: token.RawQuotedLiteral, Content: b.String(), Position: work[start].Position}

			var carry []token.RawToken
			if remainder := t.Content[1:]; remainder != "" {
				rescanned, err := lexer.ScanFragment(remainder, t.Position.Line)
				if err != nil {
					return 0, nil, nil, err
				}
				carry = make([]token.RawToken, len(rescanned))
				for i, rt := range rescanned {
					carry[i] = token.RawToken{
						Kind:    rt.Kind,
						Content: rt.Content,
						Position: token.Position{
							Line:   t.Position.Line,
							Column: t.Position.Column + rt.Position.Column,
						},
					}
				}
			}
			return j + 1, []token.RawToken{fused}, carry, nil

		default:
			b.WriteString(t.Content)
			j++
		}
	}

	return 0, nil, nil, synerr.New(work[start].Position.Line, work[start].Position.Column, "unterminated quoted string")
}

// Package compress implements stage 2 of the CMake parsing pipeline: it
// turns the scanner's flat raw-token stream into the fused, durable token
// stream the parser consumes.
//
// It runs as a single left-to-right pass over the tokens. A small
// registry of "recorders" splice ranges of raw tokens into one durable
// token when active; when none is active, two edge-case handlers
// rewrite stray tokens in place.
package compress

import (
	"fmt"

	"github.com/cmake-tools/cmakeast/synerr"
	"github.com/cmake-tools/cmakeast/token"
)

// recorder is a small state machine that, once its start predicate
// matches the token at a given cursor, consumes a run of raw tokens and
// replaces them with their fused durable form.
type recorder struct {
	name  string
	start func(t token.RawToken) bool
	// consume is called with the recorder's own start index. It returns:
	//   through - the index one past the last raw token this recorder
	//             claims from the incoming stream,
	//   final   - the durable-kind replacement token(s),
	//   carry   - raw tokens that must still be scanned normally (only
	//             ever populated by the MultilineString edge case),
	//   err     - a *synerr.SyntaxError on structural failure.
	consume func(work []token.RawToken, start int) (through int, final []token.RawToken, carry []token.RawToken, err error)
}

// registry is consulted in order: inline RST, RST comment block,
// commented line, multi-line string. The start predicates are mutually
// exclusive by raw kind, so order only matters for readability here,
// not correctness. Stray end-quote markers are not a recorder concern:
// they're rewritten in place by applyEdgeCases.
var registry = []recorder{
	{name: "InlineRST", start: func(t token.RawToken) bool { return t.Kind == token.RawBeginInlineRST }, consume: consumeInlineRST},
	{name: "RSTCommentBlock", start: func(t token.RawToken) bool { return t.Kind == token.RawBeginRSTComment }, consume: consumeRSTCommentBlock},
	{name: "CommentedLine", start: func(t token.RawToken) bool { return t.Kind == token.RawComment }, consume: consumeCommentedLine},
	{name: "MultilineString", start: func(t token.RawToken) bool {
		return t.Kind == token.RawBeginDoubleQuoted || t.Kind == token.RawBeginSingleQuoted
	}, consume: consumeMultilineString},
}

func matchStart(t token.RawToken) (recorder, bool) {
	for _, r := range registry {
		if r.start(t) {
			return r, true
		}
	}
	return recorder{}, false
}

// Compress fuses a raw token stream into the durable tokens the parser
// consumes, dropping whitespace along the way. Newlines are kept.
func Compress(raws []token.RawToken) ([]token.Token, error) {
	work := append([]token.RawToken(nil), raws...)

	parenDepth := 0
	var lastPos token.Position
	i := 0
	for i < len(work) {
		lastPos = work[i].Position

		if r, ok := matchStart(work[i]); ok {
			through, final, carry, err := r.consume(work, i)
			if err != nil {
				return nil, err
			}
			replacement := make([]token.RawToken, 0, len(final)+len(carry))
			replacement = append(replacement, final...)
			replacement = append(replacement, carry...)
			work = spliceRaw(work, i, through, replacement)
			i += len(final)
			continue
		}

		applyEdgeCases(work, i, &parenDepth)
		i++
	}

	if parenDepth != 0 {
		return nil, synerr.New(lastPos.Line, lastPos.Column, "unbalanced parentheses at end of input")
	}

	return narrow(work)
}

// spliceRaw replaces work[start:through) with replacement.
func spliceRaw(work []token.RawToken, start, through int, replacement []token.RawToken) []token.RawToken {
	out := make([]token.RawToken, 0, len(work)-(through-start)+len(replacement))
	out = append(out, work[:start]...)
	out = append(out, replacement...)
	out = append(out, work[through:]...)
	return out
}

// narrow drops whitespace and maps every surviving raw kind onto its
// durable Kind; Newline tokens are kept (inert for the parser, but
// useful to consumers correlating output with source lines). Any
// partial quote/RST marker reaching here means a recorder failed to
// claim it -- an internal invariant violation, not a user-input error.
func narrow(work []token.RawToken) ([]token.Token, error) {
	out := make([]token.Token, 0, len(work))
	for _, t := range work {
		kind, ok := narrowKind(t.Kind)
		if !ok {
			continue
		}
		if kind < 0 {
			return nil, fmt.Errorf("compress: internal error: unconsumed raw kind %s at %s", t.Kind, t.Position)
		}
		out = append(out, token.Token{Kind: kind, Content: t.Content, Position: t.Position})
	}
	return out, nil
}

// narrowKind maps a raw kind to its durable Kind. ok is false only for
// whitespace (silently dropped); kind is -1 for any raw kind that
// should never survive to this point.
func narrowKind(k token.RawKind) (token.Kind, bool) {
	switch k {
	case token.RawWhitespace:
		return 0, false
	case token.RawNewline:
		return token.Newline, true
	case token.RawLeftParen:
		return token.LeftParen, true
	case token.RawRightParen:
		return token.RightParen, true
	case token.RawWord:
		return token.Word, true
	case token.RawNumber:
		return token.Number, true
	case token.RawDeref:
		return token.Deref, true
	case token.RawQuotedLiteral:
		return token.QuotedLiteral, true
	case token.RawUnquotedLiteral:
		return token.UnquotedLiteral, true
	case token.RawComment:
		return token.Comment, true
	case token.RawRST:
		return token.RST, true
	default:
		return -1, true
	}
}

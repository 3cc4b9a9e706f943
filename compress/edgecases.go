package compress

import "github.com/cmake-tools/cmakeast/token"

// applyEdgeCases runs the StrayNestedParen and StrayEndQuoted rewrites
// against work[i] when no recorder is active.
//
// parenDepth persists across the whole stream: a '(' increments depth
// and is then checked, a ')' is checked and then decrements depth --
// the check uses "depth including the paren just seen", so only the
// outermost open/close pair of a call's own argument list stays
// structural. Nested parens, and every Word, Number or Deref seen while
// depth is above one, are relabeled UnquotedLiteral, so f ( ( ABC ) )
// yields three literal arguments: "(", "ABC" and ")".
//
// An end-quote marker seen here (no MultilineString recorder claimed
// it) was a false positive -- the quote byte is argument data, not the
// close of a string -- so the token is relabeled in place, content
// untouched.
func applyEdgeCases(work []token.RawToken, i int, parenDepth *int) {
	switch work[i].Kind {
	case token.RawLeftParen:
		*parenDepth++
		if *parenDepth > 1 {
			work[i].Kind = token.RawUnquotedLiteral
		}
	case token.RawRightParen:
		if *parenDepth > 1 {
			work[i].Kind = token.RawUnquotedLiteral
		}
		*parenDepth--
	case token.RawEndDoubleQuoted, token.RawEndSingleQuoted:
		work[i].Kind = token.RawUnquotedLiteral
	case token.RawWord, token.RawNumber, token.RawDeref:
		if *parenDepth > 1 {
			work[i].Kind = token.RawUnquotedLiteral
		}
	}
}

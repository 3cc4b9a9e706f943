// Package lexer implements stage 1 of the CMake parsing pipeline: a
// line-by-line, priority-ordered scanner that turns source text into a
// flat, ordered sequence of raw tokens. See token.RawKind for the kinds
// it can emit.
//
// The scanner holds no state between lines: every line is tokenized
// independently by repeatedly trying the rule list, in order, against
// whatever of the line remains unconsumed.
package lexer

import (
	"strings"

	"github.com/cmake-tools/cmakeast/token"
)

// Scan tokenizes text into an ordered sequence of raw tokens. It fails
// with an *UnknownTokenError if any line contains a substring no rule
// matches.
func Scan(text string) ([]token.RawToken, error) {
	var out []token.RawToken

	line := 1
	start := 0
	for start <= len(text) {
		end := start
		for end < len(text) && text[end] != '\n' {
			end++
		}
		if end < len(text) {
			end++ // include the trailing \n in this line's slice
		}
		lineText := text[start:end]

		toks, err := scanLine(lineText, line)
		if err != nil {
			return nil, err
		}
		out = append(out, toks...)

		if end >= len(text) {
			break
		}
		start = end
		line++
	}

	return out, nil
}

// ScanFragment tokenizes a single already-isolated fragment of source
// (no trailing newline implied) as if it were the remainder of a line
// numbered line. The compressor's MultilineString recorder uses this to
// rescan the tail of a token that turned out to both close and reopen a
// quoted string on the same character.
func ScanFragment(fragment string, line int) ([]token.RawToken, error) {
	return scanLine(fragment, line)
}

// scanLine tokenizes a single line (its trailing '\n', if any, is
// included in lineText) starting at column 1.
func scanLine(lineText string, line int) ([]token.RawToken, error) {
	var out []token.RawToken
	pos := 0
	col := 1

	for pos < len(lineText) {
		kind, n, ok := matchRule(lineText, pos)
		if !ok {
			return nil, &UnknownTokenError{
				line:     line,
				column:   col,
				Residual: lineText[pos:],
			}
		}

		out = append(out, token.RawToken{
			Kind:     kind,
			Content:  lineText[pos : pos+n],
			Position: token.Position{Line: line, Column: col},
		})

		pos += n
		col += n
	}

	return out, nil
}

// matchRule tries every scanning rule, in priority order, against
// lineText starting at pos. It returns the kind and byte length of the
// first rule that matches.
func matchRule(lineText string, pos int) (token.RawKind, int, bool) {
	if n, ok := matchQuotedLiteral(lineText, pos); ok {
		return token.RawQuotedLiteral, n, true
	}
	if n, ok := matchNumber(lineText, pos); ok {
		return token.RawNumber, n, true
	}
	if lineText[pos] == '(' {
		return token.RawLeftParen, 1, true
	}
	if lineText[pos] == ')' {
		return token.RawRightParen, 1, true
	}
	if n, ok := matchWord(lineText, pos); ok {
		return token.RawWord, n, true
	}
	if n, ok := matchDeref(lineText, pos); ok {
		return token.RawDeref, n, true
	}
	if lineText[pos] == '\n' {
		return token.RawNewline, 1, true
	}
	if n, ok := matchWhitespaceRun(lineText, pos); ok {
		return token.RawWhitespace, n, true
	}
	if n, ok := matchBeginQuoted(lineText, pos, '"'); ok {
		return token.RawBeginDoubleQuoted, n, true
	}
	if n, ok := matchBeginQuoted(lineText, pos, '\''); ok {
		return token.RawBeginSingleQuoted, n, true
	}
	if n, ok := matchEndQuoted(lineText, pos, '"'); ok {
		return token.RawEndDoubleQuoted, n, true
	}
	if n, ok := matchEndQuoted(lineText, pos, '\''); ok {
		return token.RawEndSingleQuoted, n, true
	}
	if n, ok := matchBeginRSTComment(lineText, pos); ok {
		return token.RawBeginRSTComment, n, true
	}
	if n, ok := matchBeginInlineRST(lineText, pos); ok {
		return token.RawBeginInlineRST, n, true
	}
	if n, ok := matchEndInlineRST(lineText, pos); ok {
		return token.RawEndInlineRST, n, true
	}
	if lineText[pos] == '#' {
		return token.RawComment, 1, true
	}
	if n, ok := matchUnquotedLiteral(lineText, pos); ok {
		return token.RawUnquotedLiteral, n, true
	}
	return token.RawIllegal, 0, false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// isBoundaryByte reports whether b is whitespace (including newline) --
// the class used by most "followed by" assertions below.
func isBoundaryByte(b byte) bool {
	return isSpaceByte(b) || b == '\n'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigitByte(b)
}

// precededByBoundary reports whether pos is at the start of the line or
// immediately preceded by whitespace or '('.
func precededByBoundary(lineText string, pos int) bool {
	if pos == 0 {
		return true
	}
	prev := lineText[pos-1]
	return isBoundaryByte(prev) || prev == '('
}

// followedByParenBoundary reports whether the byte at pos (the first
// byte after a candidate match) is end-of-line, whitespace, '(', or
// ')'. '(' has to be allowed here or else the universal "name(args)"
// calling convention, with no space before the paren, would never
// classify as a Word.
func followedByParenBoundary(lineText string, pos int) bool {
	if pos >= len(lineText) {
		return true
	}
	b := lineText[pos]
	return isBoundaryByte(b) || b == ')' || b == '('
}

func matchQuotedLiteral(lineText string, pos int) (int, bool) {
	if !precededByBoundary(lineText, pos) {
		return 0, false
	}
	if pos >= len(lineText) {
		return 0, false
	}
	quote := lineText[pos]
	if quote != '"' && quote != '\'' {
		return 0, false
	}

	i := pos + 1
	for i < len(lineText) {
		if lineText[i] == '\\' && i+1 < len(lineText) {
			i += 2
			continue
		}
		if lineText[i] == quote {
			end := i + 1
			if followedByParenBoundary(lineText, end) {
				return end - pos, true
			}
			return 0, false
		}
		if lineText[i] == '\n' {
			return 0, false
		}
		i++
	}
	return 0, false
}

func matchNumber(lineText string, pos int) (int, bool) {
	if !precededByBoundary(lineText, pos) {
		return 0, false
	}
	i := pos
	if i < len(lineText) && lineText[i] == '-' {
		i++
	}
	start := i
	for i < len(lineText) && isDigitByte(lineText[i]) {
		i++
	}
	if i == start {
		return 0, false
	}
	if followedByParenBoundary(lineText, i) {
		return i - pos, true
	}
	return 0, false
}

func matchWord(lineText string, pos int) (int, bool) {
	if !precededByBoundary(lineText, pos) {
		return 0, false
	}
	if pos >= len(lineText) || !isIdentStart(lineText[pos]) {
		return 0, false
	}
	i := pos + 1
	for i < len(lineText) && isIdentPart(lineText[i]) {
		i++
	}
	if followedByParenBoundary(lineText, i) {
		return i - pos, true
	}
	return 0, false
}

func matchDeref(lineText string, pos int) (int, bool) {
	if !precededByBoundary(lineText, pos) {
		return 0, false
	}
	if !strings.HasPrefix(lineText[pos:], "${") {
		return 0, false
	}
	i := pos + 2
	if i >= len(lineText) || !isIdentStart(lineText[i]) {
		return 0, false
	}
	i++
	for i < len(lineText) && isIdentPart(lineText[i]) {
		i++
	}
	if i >= len(lineText) || lineText[i] != '}' {
		return 0, false
	}
	i++
	if followedByParenBoundary(lineText, i) {
		return i - pos, true
	}
	return 0, false
}

func matchWhitespaceRun(lineText string, pos int) (int, bool) {
	if pos >= len(lineText) || !isSpaceByte(lineText[pos]) {
		return 0, false
	}
	i := pos
	for i < len(lineText) && isSpaceByte(lineText[i]) {
		i++
	}
	return i - pos, true
}

func matchBeginQuoted(lineText string, pos int, quote byte) (int, bool) {
	if !precededByBoundary(lineText, pos) {
		return 0, false
	}
	if pos >= len(lineText) || lineText[pos] != quote {
		return 0, false
	}
	// Runs to end of line (minus a trailing newline) without stopping at
	// a closing quote. A string that closes on this line before a valid
	// boundary has already been taken by matchQuotedLiteral, which is
	// tried first.
	i := pos + 1
	for i < len(lineText) {
		if lineText[i] == '\n' {
			break
		}
		if lineText[i] == '\\' && i+1 < len(lineText) && lineText[i+1] != '\n' {
			i += 2
			continue
		}
		i++
	}
	return i - pos, true
}

func matchEndQuoted(lineText string, pos int, quote byte) (int, bool) {
	runEnd := pos
	for runEnd < len(lineText) && !isBoundaryByte(lineText[runEnd]) {
		runEnd++
	}
	if runEnd == pos {
		return 0, false
	}
	for i := runEnd - 1; i >= pos; i-- {
		if lineText[i] != quote {
			continue
		}
		if i > pos && lineText[i-1] == '\\' {
			continue
		}
		if followedByParenBoundary(lineText, i+1) {
			return i + 1 - pos, true
		}
	}
	return 0, false
}

func matchBeginRSTComment(lineText string, pos int) (int, bool) {
	rest := stripTrailingNewline(lineText[pos:])
	if rest == "#.rst:" {
		return len(rest), true
	}
	return 0, false
}

func matchBeginInlineRST(lineText string, pos int) (int, bool) {
	rest := stripTrailingNewline(lineText[pos:])
	if !strings.HasPrefix(rest, "#") {
		return 0, false
	}
	i := 1
	if i >= len(rest) || rest[i] != '[' {
		return 0, false
	}
	i++
	for i < len(rest) && rest[i] == '=' {
		i++
	}
	if !strings.HasPrefix(rest[i:], "[.rst:") {
		return 0, false
	}
	i += len("[.rst:")
	if i == len(rest) {
		return len(rest), true
	}
	return 0, false
}

func matchEndInlineRST(lineText string, pos int) (int, bool) {
	rest := stripTrailingNewline(lineText[pos:])
	if !strings.HasPrefix(rest, "#]") {
		return 0, false
	}
	i := 2
	for i < len(rest) && rest[i] == '=' {
		i++
	}
	if i < len(rest) && rest[i] == ']' && i+1 == len(rest) {
		return len(rest), true
	}
	return 0, false
}

func stripTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

func matchUnquotedLiteral(lineText string, pos int) (int, bool) {
	i := pos
	for i < len(lineText) && !isBoundaryByte(lineText[i]) && lineText[i] != '(' && lineText[i] != ')' {
		i++
	}
	if i == pos {
		return 0, false
	}
	return i - pos, true
}

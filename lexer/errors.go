package lexer

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// UnknownTokenError is raised when a line contains a substring no
// scanning rule matches.
type UnknownTokenError struct {
	line     int
	column   int
	Residual string
}

func (e *UnknownTokenError) Error() string {
	msg := fmt.Sprintf("cmakeast: unknown token at line %d: %q", e.line, e.Residual)
	if s := suggestKeyword(e.Residual); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return msg
}

// Line and Column report the error's position, with the same accessors
// as synerr.SyntaxError.
func (e *UnknownTokenError) Line() int   { return e.line }
func (e *UnknownTokenError) Column() int { return e.column }

// knownFragments is the small, fixed vocabulary of multi-character
// lexical fragments a scribbled-over token is most likely a typo of.
// Used only to make UnknownTokenError actionable; it never changes
// what is or isn't accepted.
var knownFragments = []string{
	"#.rst:", "#[[.rst:", "#]]", "${", "\"", "'",
}

// suggestKeyword returns the closest known fragment to the offending
// residual text, if any is close enough to be worth suggesting.
func suggestKeyword(residual string) string {
	head := residual
	if len(head) > 12 {
		head = head[:12]
	}
	best := ""
	bestRank := -1
	for _, k := range knownFragments {
		rank := fuzzy.RankMatchNormalizedFold(head, k)
		if rank < 0 {
			continue
		}
		if bestRank == -1 || rank < bestRank {
			bestRank = rank
			best = k
		}
	}
	return best
}

package parser

import (
	"github.com/cmake-tools/cmakeast/synerr"
	"github.com/cmake-tools/cmakeast/token"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// blockKeywords is the fixed vocabulary eofError suggests against when
// a parse fails near something that looks like a misspelled block
// keyword.
var blockKeywords = []string{
	"if", "elseif", "else", "endif",
	"function", "endfunction",
	"macro", "endmacro",
	"foreach", "endforeach",
	"while", "endwhile",
}

// eofError builds a *synerr.SyntaxError anchored at index (or at the
// last token, if index has run off the end), with a fuzzy-matched
// keyword suggestion when the nearby content is close to one of
// blockKeywords.
func (p *parser) eofError(index int, message string) error {
	line, col := p.positionAt(index)
	err := synerr.New(line, col, message)
	err.Suggestion = p.suggestKeyword(index)
	return err
}

func (p *parser) positionAt(index int) (int, int) {
	if index >= 0 && index < len(p.toks) {
		pos := p.toks[index].Position
		return pos.Line, pos.Column
	}
	if len(p.toks) > 0 {
		last := p.toks[len(p.toks)-1].Position
		return last.Line, last.Column
	}
	return 1, 1
}

func (p *parser) suggestKeyword(index int) string {
	if index < 0 || index >= len(p.toks) {
		return ""
	}
	t := p.toks[index]
	if t.Kind != token.Word {
		return ""
	}

	best := ""
	bestRank := -1
	for _, k := range blockKeywords {
		rank := fuzzy.RankMatchNormalizedFold(t.Content, k)
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

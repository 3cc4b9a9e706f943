// Package ast defines the tree shape the parser builds: a toplevel
// body of statements, where a statement is a function call possibly
// carrying a header-body pair (function/macro definitions, foreach,
// while, if-blocks), and where every call argument is a Word.
package ast

import "github.com/cmake-tools/cmakeast/token"

// WordType classifies an argument word by the kind of token it came
// from. Naming matches the domain's own vocabulary for these, not the
// underlying token.Kind names, since a single token.Kind can map to a
// different word type than its name might suggest (a bareword
// identifier, token.Kind Word, is classified Variable here, since
// that's what a bareword argument conventionally names).
type WordType int

const (
	String WordType = iota
	Number
	VariableDeref
	Variable
	CompoundLiteral
)

func (w WordType) String() string {
	switch w {
	case String:
		return "String"
	case Number:
		return "Number"
	case VariableDeref:
		return "VariableDereference"
	case Variable:
		return "Variable"
	case CompoundLiteral:
		return "CompoundLiteral"
	default:
		return "Unknown"
	}
}

// WordTypeOf classifies a durable token kind into its WordType. It
// panics if given a kind that can never stand in argument position;
// callers are expected to have already filtered with Kind.IsWordClass.
func WordTypeOf(k token.Kind) WordType {
	switch k {
	case token.QuotedLiteral:
		return String
	case token.Number:
		return Number
	case token.Deref:
		return VariableDeref
	case token.Word:
		return Variable
	case token.UnquotedLiteral:
		return CompoundLiteral
	default:
		panic("ast: token kind " + k.String() + " cannot become a Word")
	}
}

// Node is any tree element the visitor can walk.
type Node interface {
	// Position returns the node's anchor in the source text.
	Position() token.Position
}

// Word is a single call argument.
type Word struct {
	Type     WordType
	Contents string
	Pos      token.Position
	// Index is the word's position in the compressed token stream.
	Index int
}

func (w *Word) Position() token.Position { return w.Pos }

// FunctionCall is a bare call: a name followed by a parenthesized
// argument list. Every control-flow construct starts life as one of
// these before the parser disambiguates it by name.
type FunctionCall struct {
	Name      string
	Arguments []*Word
	Pos       token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (f *FunctionCall) Position() token.Position { return f.Pos }

// Body is an ordered sequence of statements (the contents of a
// toplevel file, or of a header/body construct).
type Body struct {
	Statements []Node
}

// FunctionDefinition is a function(...)...endfunction() block. Footer
// is the endfunction(...) call that closes it.
type FunctionDefinition struct {
	Header *FunctionCall
	Body   Body
	Footer *FunctionCall
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *FunctionDefinition) Position() token.Position { return n.Pos }

// MacroDefinition is a macro(...)...endmacro() block. Footer is the
// endmacro(...) call that closes it.
type MacroDefinition struct {
	Header *FunctionCall
	Body   Body
	Footer *FunctionCall
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *MacroDefinition) Position() token.Position { return n.Pos }

// ForeachStatement is a foreach(...)...endforeach() block. Footer is
// the endforeach(...) call that closes it.
type ForeachStatement struct {
	Header *FunctionCall
	Body   Body
	Footer *FunctionCall
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *ForeachStatement) Position() token.Position { return n.Pos }

// WhileStatement is a while(...)...endwhile() block. Footer is the
// endwhile(...) call that closes it.
type WhileStatement struct {
	Header *FunctionCall
	Body   Body
	Footer *FunctionCall
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *WhileStatement) Position() token.Position { return n.Pos }

// IfStatement is the if(...) clause of an if-block, with the body up
// to (not including) the next elseif/else/endif.
type IfStatement struct {
	Header *FunctionCall
	Body   Body
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *IfStatement) Position() token.Position { return n.Pos }

// ElseIfStatement is one elseif(...) clause of an if-block.
type ElseIfStatement struct {
	Header *FunctionCall
	Body   Body
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *ElseIfStatement) Position() token.Position { return n.Pos }

// ElseStatement is the optional else() clause of an if-block.
type ElseStatement struct {
	Header *FunctionCall
	Body   Body
	Pos    token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *ElseStatement) Position() token.Position { return n.Pos }

// IfBlock ties together an if-statement, zero or more elseif clauses,
// and an optional else clause, up to and including the endif(...)
// call that closes it.
type IfBlock struct {
	IfStmnt   *IfStatement
	ElseIfs   []*ElseIfStatement
	ElseStmnt *ElseStatement // nil if the block has no else clause
	Footer    *FunctionCall
	Pos       token.Position
	// Index is the node's starting position in the compressed token
	// stream it was parsed from.
	Index int
}

func (n *IfBlock) Position() token.Position { return n.Pos }

// ToplevelBody is the root of a parsed file.
type ToplevelBody struct {
	Statements []Node
}

func (n *ToplevelBody) Position() token.Position { return token.Position{Line: 1, Column: 1} }

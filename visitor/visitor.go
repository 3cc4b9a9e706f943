// Package visitor implements stage 4 of the pipeline: a depth-first,
// pre-order walk over a parsed tree with one optional callback per
// node kind.
//
// Depth is threaded as an explicit parameter through the recursive
// calls, never stashed in shared state, so sibling subtrees cannot
// observe each other's depth updates.
package visitor

import "github.com/cmake-tools/cmakeast/ast"

// Callbacks holds one optional handler per node kind the walk can
// visit. A nil handler is simply skipped.
type Callbacks struct {
	Toplevel     func(name string, node ast.Node, depth int)
	WhileStmnt   func(name string, node ast.Node, depth int)
	Foreach      func(name string, node ast.Node, depth int)
	FunctionDef  func(name string, node ast.Node, depth int)
	MacroDef     func(name string, node ast.Node, depth int)
	IfBlock      func(name string, node ast.Node, depth int)
	IfStmnt      func(name string, node ast.Node, depth int)
	ElseifStmnt  func(name string, node ast.Node, depth int)
	ElseStmnt    func(name string, node ast.Node, depth int)
	FunctionCall func(name string, node ast.Node, depth int)
	Word         func(name string, node ast.Node, depth int)
}

// Recurse walks node and its descendants depth-first, invoking the
// matching Callbacks field for each node kind it recognizes.
func Recurse(node ast.Node, cb Callbacks) {
	recurse(node, cb, 0)
}

func recurse(node ast.Node, cb Callbacks, depth int) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *ast.ToplevelBody:
		invoke(cb.Toplevel, "ToplevelBody", node, depth)
		recurseAll(n.Statements, cb, depth+1)

	case *ast.WhileStatement:
		invoke(cb.WhileStmnt, "WhileStatement", node, depth)
		recurse(n.Header, cb, depth+1)
		recurse(n.Footer, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.ForeachStatement:
		invoke(cb.Foreach, "ForeachStatement", node, depth)
		recurse(n.Header, cb, depth+1)
		recurse(n.Footer, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.FunctionDefinition:
		invoke(cb.FunctionDef, "FunctionDefinition", node, depth)
		recurse(n.Header, cb, depth+1)
		recurse(n.Footer, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.MacroDefinition:
		invoke(cb.MacroDef, "MacroDefinition", node, depth)
		recurse(n.Header, cb, depth+1)
		recurse(n.Footer, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.IfBlock:
		invoke(cb.IfBlock, "IfBlock", node, depth)
		recurse(n.IfStmnt, cb, depth+1)
		if n.ElseStmnt != nil {
			recurse(n.ElseStmnt, cb, depth+1)
		}
		recurse(n.Footer, cb, depth+1)
		for _, e := range n.ElseIfs {
			recurse(e, cb, depth+1)
		}

	case *ast.IfStatement:
		invoke(cb.IfStmnt, "IfStatement", node, depth)
		recurse(n.Header, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.ElseIfStatement:
		invoke(cb.ElseifStmnt, "ElseIfStatement", node, depth)
		recurse(n.Header, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.ElseStatement:
		invoke(cb.ElseStmnt, "ElseStatement", node, depth)
		recurse(n.Header, cb, depth+1)
		recurseAll(n.Body.Statements, cb, depth+1)

	case *ast.FunctionCall:
		invoke(cb.FunctionCall, "FunctionCall", node, depth)
		for _, a := range n.Arguments {
			recurse(a, cb, depth+1)
		}

	case *ast.Word:
		invoke(cb.Word, "Word", node, depth)
	}
}

func recurseAll(statements []ast.Node, cb Callbacks, depth int) {
	for _, s := range statements {
		recurse(s, cb, depth)
	}
}

func invoke(fn func(string, ast.Node, int), name string, node ast.Node, depth int) {
	if fn != nil {
		fn(name, node, depth)
	}
}

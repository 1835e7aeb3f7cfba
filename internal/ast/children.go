package ast

import (
	"fmt"

	"swc/internal/source"
	"swc/internal/token"
)

// Children returns the direct children of n in source order.
// Tokens have none. An unknown node type is a programming error.
func Children(n Node) []Node {
	switch n := n.(type) {
	case token.Token:
		return nil
	case *CompilationUnit:
		out := make([]Node, 0, len(n.Statements)+2)
		out = append(out, n.Namespace)
		for _, st := range n.Statements {
			out = append(out, st)
		}
		return append(out, n.EOF)
	case *NamespaceDirective:
		out := []Node{n.Keyword}
		out = append(out, n.Name.WithSeparators()...)
		return append(out, n.Semicolon)
	case *Statement:
		return []Node{n.Expr, n.Semicolon}
	case *LiteralExpr:
		return []Node{n.Token}
	case *DeclarationExpr:
		out := n.Type.WithSeparators()
		return append(out, n.Name, n.Equals, n.Value)
	case *UsingExpr:
		out := []Node{n.Keyword}
		return append(out, n.Name.WithSeparators()...)
	case *UnaryExpr:
		return []Node{n.Op, n.Operand}
	case *BinaryExpr:
		return []Node{n.Left, n.Op, n.Right}
	default:
		panic(fmt.Sprintf("ast: unhandled node type %T", n))
	}
}

// Span covers n from the start of its first child to the end of its last.
func Span(n Node) source.Span {
	if tok, ok := n.(token.Token); ok {
		return tok.Span()
	}
	kids := Children(n)
	if len(kids) == 0 {
		return source.Span{}
	}
	first := kids[0].Span()
	last := kids[len(kids)-1].Span()
	return source.FromBounds(first.Start, last.End())
}

// KindName names n for printing: the token kind for leaves, the node type
// otherwise.
func KindName(n Node) string {
	switch n := n.(type) {
	case token.Token:
		return n.Kind.String()
	case *CompilationUnit:
		return "CompilationUnit"
	case *NamespaceDirective:
		return "NamespaceDirective"
	case *Statement:
		return "Statement"
	case *LiteralExpr:
		return "LiteralExpr"
	case *DeclarationExpr:
		return "DeclarationExpr"
	case *UsingExpr:
		return "UsingExpr"
	case *UnaryExpr:
		return "UnaryExpr"
	case *BinaryExpr:
		return "BinaryExpr"
	default:
		panic(fmt.Sprintf("ast: unhandled node type %T", n))
	}
}

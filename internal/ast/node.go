package ast

import (
	"swc/internal/source"
	"swc/internal/token"
)

// Node is anything that can appear in a syntax tree: the node types of this
// package and token.Token leaves.
type Node interface {
	Span() source.Span
}

// Expr is the closed set of expression nodes.
type Expr interface {
	Node
	exprNode()
}

var _ Node = token.Token{}

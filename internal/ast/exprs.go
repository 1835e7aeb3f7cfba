package ast

import (
	"swc/internal/source"
	"swc/internal/token"
)

// LiteralExpr wraps a bool, string or number token.
// Value is bool, string or int32; nil for the recovery literal whose token is
// missing.
type LiteralExpr struct {
	Token token.Token
	Value any
}

// DeclarationExpr is `var name = value`. Type holds either the single `var`
// keyword or a dotted type name.
type DeclarationExpr struct {
	Type   SeparatedList[token.Token]
	Name   token.Token
	Equals token.Token
	Value  Expr
}

// UsingExpr is `using a.b`.
type UsingExpr struct {
	Keyword token.Token
	Name    SeparatedList[token.Token]
}

type UnaryExpr struct {
	Op      token.Token
	Operand Expr
}

type BinaryExpr struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (n *LiteralExpr) Span() source.Span     { return Span(n) }
func (n *DeclarationExpr) Span() source.Span { return Span(n) }
func (n *UsingExpr) Span() source.Span       { return Span(n) }
func (n *UnaryExpr) Span() source.Span       { return Span(n) }
func (n *BinaryExpr) Span() source.Span      { return Span(n) }

func (*LiteralExpr) exprNode()     {}
func (*DeclarationExpr) exprNode() {}
func (*UsingExpr) exprNode()       {}
func (*UnaryExpr) exprNode()       {}
func (*BinaryExpr) exprNode()      {}

package ast

import (
	"swc/internal/source"
	"swc/internal/token"
)

// CompilationUnit is the root of every tree.
type CompilationUnit struct {
	Namespace  *NamespaceDirective
	Statements []*Statement
	EOF        token.Token
}

func (n *CompilationUnit) Span() source.Span { return Span(n) }

// NamespaceDirective is `namespace a.b.c;`.
type NamespaceDirective struct {
	Keyword   token.Token
	Name      SeparatedList[token.Token]
	Semicolon token.Token
}

func (n *NamespaceDirective) Span() source.Span { return Span(n) }

// Statement is an expression terminated by `;`.
type Statement struct {
	Expr      Expr
	Semicolon token.Token
}

func (n *Statement) Span() source.Span { return Span(n) }

package parser

import (
	"swc/internal/ast"
	"swc/internal/token"
)

// parseNamespaceDirective parses `namespace a.b.c ;`.
func (p *Parser) parseNamespaceDirective() *ast.NamespaceDirective {
	kw := p.expect(token.KwNamespace)
	name := p.parseDottedName(false)
	semi := p.expect(token.Semicolon)
	return &ast.NamespaceDirective{Keyword: kw, Name: name, Semicolon: semi}
}

// parseDottedName parses one or more identifiers joined by `.`.
// With allowVar a lone `var` keyword stands in for the whole name.
func (p *Parser) parseDottedName(allowVar bool) ast.SeparatedList[token.Token] {
	if allowVar && p.at(token.KwVar) {
		return ast.NewSeparatedList([]token.Token{p.advance()}, nil)
	}

	items := []token.Token{p.expect(token.Ident)}
	var seps []token.Token
	for p.at(token.Dot) {
		seps = append(seps, p.advance())
		items = append(items, p.expect(token.Ident))
	}
	return ast.NewSeparatedList(items, seps)
}

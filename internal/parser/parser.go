package parser

import (
	"swc/internal/ast"
	"swc/internal/diag"
	"swc/internal/lexer"
	"swc/internal/source"
	"swc/internal/token"
)

// Parser: состояние парсера на один файл.
// current всегда значимый токен (не Whitespace); peek заполняется лениво.
type Parser struct {
	lx       *lexer.Lexer // поток токенов
	current  token.Token
	peek     *token.Token
	bag      *diag.Bag // общий с лексером
	consumed int       // сколько токенов съедено; нужен, чтобы цикл statements всегда продвигался
}

// New binds a parser to lx and primes the first significant token.
func New(lx *lexer.Lexer) *Parser {
	p := &Parser{
		lx:  lx,
		bag: lx.Diagnostics(),
	}
	p.current = p.nextSignificant()
	return p
}

// ParseText is the one-shot entry point: lex and parse text.
func ParseText(text *source.Text) (*ast.CompilationUnit, *diag.Bag) {
	p := New(lexer.New(text))
	unit := p.ParseCompilationUnit()
	return unit, p.Diagnostics()
}

// Diagnostics returns the bag holding both lexical and syntax diagnostics.
func (p *Parser) Diagnostics() *diag.Bag {
	return p.bag
}

// ParseCompilationUnit parses `namespace-directive statement* EOF`.
func (p *Parser) ParseCompilationUnit() *ast.CompilationUnit {
	ns := p.parseNamespaceDirective()

	statements := make([]*ast.Statement, 0)
	for !p.at(token.EOF) {
		before := p.consumed
		statements = append(statements, p.parseStatement())
		if p.consumed == before {
			// ни одного токена не съедено: пропускаем мешающий токен
			p.advance()
		}
	}

	eof := p.expect(token.EOF)
	return &ast.CompilationUnit{
		Namespace:  ns,
		Statements: statements,
		EOF:        eof,
	}
}

// parseStatement parses `expression ;`.
func (p *Parser) parseStatement() *ast.Statement {
	expr := p.parseExpression(0, false)
	semi := p.expect(token.Semicolon)
	return &ast.Statement{Expr: expr, Semicolon: semi}
}

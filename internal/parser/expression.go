package parser

import (
	"swc/internal/ast"
	"swc/internal/token"
)

// parseExpression: precedence climbing.
// parentPrec is the binding power of the operator on the left; rightAssoc
// lets an operator of exactly that power nest to the right.
func (p *Parser) parseExpression(parentPrec int, rightAssoc bool) ast.Expr {
	var left ast.Expr

	if prec := token.UnaryPrecedence(p.current.Kind); prec != 0 {
		op := p.advance()
		operand := p.parseExpression(prec, false)
		left = &ast.UnaryExpr{Op: op, Operand: operand}
	} else {
		left = p.parsePrimary()
	}

	for {
		prec := token.BinaryPrecedence(p.current.Kind)
		if prec == 0 {
			break
		}
		if rightAssoc {
			if prec < parentPrec {
				break
			}
		} else if prec <= parentPrec {
			break
		}

		op := p.advance()
		right := p.parseExpression(prec, token.IsRightAssociative(op.Kind))
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}

	return left
}

// parsePrimary выбирает продукцию по current; всё неизвестное превращается
// в литерал с отсутствующим Bad-токеном и диагностикой.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.current.Kind {
	case token.KwTrue, token.KwFalse:
		return p.parseBool()
	case token.StringLit, token.NumberLit:
		return p.parseLiteral()
	case token.KwVar:
		return p.parseDeclaration()
	case token.KwUsing:
		return p.parseUsing()
	default:
		p.bag.ReportExpectedExpression(p.current.Span(), p.current.Kind)
		return &ast.LiteralExpr{Token: token.NewMissing(token.Bad, p.current.Pos)}
	}
}

func (p *Parser) parseBool() *ast.LiteralExpr {
	tok := p.advance()
	return &ast.LiteralExpr{Token: tok, Value: tok.Kind == token.KwTrue}
}

func (p *Parser) parseLiteral() *ast.LiteralExpr {
	tok := p.advance()
	return &ast.LiteralExpr{Token: tok, Value: tok.Value}
}

// parseDeclaration parses `var name = value`.
func (p *Parser) parseDeclaration() *ast.DeclarationExpr {
	typ := p.parseDottedName(true)
	name := p.expect(token.Ident)
	eq := p.expect(token.Assign)
	value := p.parseExpression(0, false)
	return &ast.DeclarationExpr{Type: typ, Name: name, Equals: eq, Value: value}
}

// parseUsing parses `using a.b`.
func (p *Parser) parseUsing() *ast.UsingExpr {
	kw := p.expect(token.KwUsing)
	name := p.parseDottedName(false)
	return &ast.UsingExpr{Keyword: kw, Name: name}
}

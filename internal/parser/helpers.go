package parser

import (
	"swc/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.current.Kind == k
}

// nextSignificant тянет из лексера следующий токен, пропуская Whitespace.
func (p *Parser) nextSignificant() token.Token {
	for {
		tok := p.lx.Lex()
		if tok.Kind != token.Whitespace {
			return tok
		}
	}
}

// advance: съедает current и возвращает его; новым current становится
// буферизованный peek, если он есть, иначе следующий значимый токен.
func (p *Parser) advance() token.Token {
	tok := p.current
	if p.peek != nil {
		p.current = *p.peek
		p.peek = nil
	} else {
		p.current = p.nextSignificant()
	}
	p.consumed++
	return tok
}

// peekToken returns the significant token after current without consuming
// anything.
func (p *Parser) peekToken() token.Token {
	if p.peek == nil {
		tok := p.nextSignificant()
		p.peek = &tok
	}
	return *p.peek
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем
// отсутствующий токен нулевой ширины на позиции current, не съедая current.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.bag.ReportUnexpectedToken(p.current.Span(), p.current.Kind, k)
	return token.NewMissing(k, p.current.Pos)
}

package lexer

import (
	"swc/internal/token"
)

// scanOperatorOrPunct handles fixed single-character tokens, the six
// maybe-double families and, as a last resort, bad characters.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	ch := lx.cursor.Bump()
	switch ch {
	case '.':
		return lx.emit(token.Dot, start, nil)
	case ';':
		return lx.emit(token.Semicolon, start, nil)
	case '+':
		return lx.emit(token.Plus, start, nil)
	case '-':
		return lx.emit(token.Minus, start, nil)
	case '*':
		return lx.emit(token.Star, start, nil)
	case '/':
		return lx.emit(token.Slash, start, nil)
	case '(':
		return lx.emit(token.LParen, start, nil)
	case ')':
		return lx.emit(token.RParen, start, nil)
	case '{':
		return lx.emit(token.LBrace, start, nil)
	case '}':
		return lx.emit(token.RBrace, start, nil)
	case ':':
		return lx.emit(token.Colon, start, nil)
	case ',':
		return lx.emit(token.Comma, start, nil)
	case '~':
		return lx.emit(token.Tilde, start, nil)
	case '^':
		return lx.emit(token.Caret, start, nil)

	// & && | || = == ! != < <= > >=
	case '&':
		return lx.maybeDouble(start, '&', token.Amp, token.AndAnd)
	case '|':
		return lx.maybeDouble(start, '|', token.Pipe, token.OrOr)
	case '=':
		return lx.maybeDouble(start, '=', token.Assign, token.EqEq)
	case '!':
		return lx.maybeDouble(start, '=', token.Bang, token.BangEq)
	case '<':
		return lx.maybeDouble(start, '=', token.Lt, token.LtEq)
	case '>':
		return lx.maybeDouble(start, '=', token.Gt, token.GtEq)

	default:
		// неизвестный символ: один символ вперёд, чтобы всегда продвигаться
		lx.bag.ReportBadCharacter(int(start), ch)
		return lx.emit(token.Bad, start, nil)
	}
}

// maybeDouble is called with the first character already consumed; when the
// next one is pair it is consumed too and the doubled kind is produced.
func (lx *Lexer) maybeDouble(start Mark, pair rune, single, double token.Kind) token.Token {
	if lx.cursor.Eat(pair) {
		return lx.emit(double, start, nil)
	}
	return lx.emit(single, start, nil)
}

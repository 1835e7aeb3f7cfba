package lexer

import (
	"swc/internal/token"
)

// scanIdentOrKeyword сканирует серию букв и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.text.Slice(lx.cursor.SpanFrom(start))
	return lx.emit(token.LookupKeyword(text), start, nil)
}

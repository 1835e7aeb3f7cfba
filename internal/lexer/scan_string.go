package lexer

import (
	"strings"

	"swc/internal/source"
	"swc/internal/token"
)

// scanString reads "..." where a doubled quote "" stands for a literal quote.
// A raw line break or EOF before the closing quote is reported against the
// opening quote; the partial value is still emitted.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var value strings.Builder
	for {
		if lx.cursor.EOF() || isLineBreak(lx.cursor.Peek()) {
			lx.bag.ReportUnterminatedString(source.NewSpan(int(start), 1))
			break
		}
		ch := lx.cursor.Bump()
		if ch == '"' {
			if lx.cursor.Eat('"') {
				// "" это экранированная кавычка
				value.WriteRune('"')
				continue
			}
			break
		}
		value.WriteRune(ch)
	}

	return lx.emit(token.StringLit, start, value.String())
}

package lexer

import (
	"swc/internal/token"
)

// scanWhitespace съедает максимальную серию пробельных символов.
// The parser drops these tokens, but they keep the token stream lossless.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start, nil)
}

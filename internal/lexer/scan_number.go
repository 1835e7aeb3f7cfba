package lexer

import (
	"strconv"

	"fortio.org/safecast"

	"swc/internal/token"
)

// scanNumber reads a run of ASCII digits as a 32-bit signed integer.
// A run that does not fit is reported but still becomes a NumberLit so the
// parser keeps going; its value is then 0.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text.Slice(sp)

	value, ok := parseInt32(text)
	if !ok {
		lx.bag.ReportInvalidNumber(sp, text)
	}
	return lx.emit(token.NumberLit, start, value)
}

func parseInt32(text string) (int32, bool) {
	wide, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	v, err := safecast.Conv[int32](wide)
	if err != nil {
		return 0, false
	}
	return v, true
}

package lexer

import (
	"swc/internal/source"
)

// Cursor представляет собой позицию в тексте
type Cursor struct {
	Text *source.Text
	Off  int
}

// NewCursor creates a new cursor at the start of text.
func NewCursor(text *source.Text) Cursor {
	return Cursor{Text: text}
}

// EOF проверяет, достигнут ли конец текста
func (c *Cursor) EOF() bool {
	return c.Off >= c.Text.Len()
}

// Peek читает текущий символ, если есть, иначе возвращает 0
func (c *Cursor) Peek() rune {
	return c.PeekAt(0)
}

// PeekAt reads the character offset positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(offset int) rune {
	idx := c.Off + offset
	if idx < 0 || idx >= c.Text.Len() {
		return 0
	}
	return c.Text.At(idx)
}

// Bump перемещает курсор на один символ вперед и возвращает прочитанный символ
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.Text.At(c.Off)
	c.Off++
	return r
}

// Eat consumes the next character if it matches r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Text.At(c.Off) == r {
		c.Off++
		return true
	}
	return false
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark int

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.FromBounds(int(m), c.Off)
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = int(m)
}

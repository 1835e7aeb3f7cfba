package source

import (
	"fmt"
)

// LineCol represents a human-readable position in a source text.
type LineCol struct {
	Line int // 1-based
	Col  int // 1-based
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Text is an immutable sequence of decoded characters with a display name.
// Positions everywhere in the front end are indices into this sequence.
type Text struct {
	name    string
	chars   []rune
	lineIdx []int // позиции всех '\n'
}

// FromString decodes s into a Text. The name is used only for display.
func FromString(s, name string) *Text {
	chars := []rune(s)
	return &Text{
		name:    name,
		chars:   chars,
		lineIdx: buildLineIndex(chars),
	}
}

// Name returns the display name given at construction.
func (t *Text) Name() string {
	return t.name
}

// Len returns the number of characters.
func (t *Text) Len() int {
	return len(t.chars)
}

// At returns the character at index i. Callers must keep 0 <= i < Len().
func (t *Text) At(i int) rune {
	if i < 0 || i >= len(t.chars) {
		panic(fmt.Sprintf("source: index %d out of range [0, %d)", i, len(t.chars)))
	}
	return t.chars[i]
}

// Slice returns the characters covered by span as a string.
// The span is clamped to the text bounds.
func (t *Text) Slice(span Span) string {
	start, end := span.Start, span.End()
	if start < 0 {
		start = 0
	}
	if end > len(t.chars) {
		end = len(t.chars)
	}
	if start >= end {
		return ""
	}
	return string(t.chars[start:end])
}

func (t *Text) String() string {
	return string(t.chars)
}

// LineCol converts a character position into a 1-based line and column.
func (t *Text) LineCol(pos int) LineCol {
	return toLineCol(t.lineIdx, pos)
}

// LineCount returns the number of lines; an empty text has one empty line.
func (t *Text) LineCount() int {
	return len(t.lineIdx) + 1
}

// Line returns the text of the 1-based line n without its terminator.
// Out-of-range lines yield an empty string.
func (t *Text) Line(n int) string {
	if n < 1 || n > t.LineCount() {
		return ""
	}
	start := 0
	if n > 1 {
		start = t.lineIdx[n-2] + 1
	}
	end := len(t.chars)
	if n-1 < len(t.lineIdx) {
		end = t.lineIdx[n-1]
	}
	if end > start && t.chars[end-1] == '\r' {
		end--
	}
	return string(t.chars[start:end])
}

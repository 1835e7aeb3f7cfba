package source

import (
	"fmt"
)

// Span is a half-open range [Start, Start+Length) of character positions in a Text.
type Span struct {
	Start  int
	Length int
}

// NewSpan returns a span of length characters starting at start.
func NewSpan(start, length int) Span {
	return Span{Start: start, Length: length}
}

// FromBounds builds a span from inclusive start and exclusive end positions.
func FromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

// End returns the exclusive end position.
func (s Span) End() int {
	return s.Start + s.Length
}

func (s Span) Empty() bool {
	return s.Length == 0
}

// Contains reports whether pos lies inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End()
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}

// Cover returns the smallest span that includes both s and other.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End()
	if other.Start < start {
		start = other.Start
	}
	if other.End() > end {
		end = other.End()
	}
	return FromBounds(start, end)
}

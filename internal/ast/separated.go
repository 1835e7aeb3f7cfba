package ast

import (
	"iter"

	"swc/internal/token"
)

// SeparatedList is a sequence of elements with a separator token between
// each adjacent pair, e.g. the identifiers and dots of `a.b.c`.
type SeparatedList[T Node] struct {
	items []T
	seps  []token.Token
}

// NewSeparatedList builds a list from elements and len(items)-1 separators.
func NewSeparatedList[T Node](items []T, seps []token.Token) SeparatedList[T] {
	if len(items) > 0 && len(seps) != len(items)-1 {
		panic("ast: separated list needs exactly one separator between elements")
	}
	return SeparatedList[T]{items: items, seps: seps}
}

// Len returns the number of elements, not counting separators.
func (l SeparatedList[T]) Len() int { return len(l.items) }

func (l SeparatedList[T]) At(i int) T { return l.items[i] }

// Separator returns the separator that follows element i.
func (l SeparatedList[T]) Separator(i int) token.Token { return l.seps[i] }

// WithSeparators returns elements and separators in source order.
func (l SeparatedList[T]) WithSeparators() []Node {
	out := make([]Node, 0, len(l.items)+len(l.seps))
	for i, it := range l.items {
		if i > 0 {
			out = append(out, l.seps[i-1])
		}
		out = append(out, it)
	}
	return out
}

// All iterates over the elements with their index.
func (l SeparatedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, it := range l.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

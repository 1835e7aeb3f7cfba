package ast

import (
	"iter"

	"swc/internal/token"
)

// Walk visits n and its descendants depth-first, in source order, passing
// each node's depth (0 for n). Returning false from fn skips the subtree.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range Children(n) {
		walk(c, depth+1, fn)
	}
}

// Tokens yields every token leaf under n in source order, missing tokens
// included.
func Tokens(n Node) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		stop := false
		Walk(n, func(c Node, _ int) bool {
			if stop {
				return false
			}
			if tok, ok := c.(token.Token); ok {
				if !yield(tok) {
					stop = true
				}
				return false
			}
			return true
		})
	}
}

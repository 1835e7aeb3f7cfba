// Package testkit holds structural checks shared by tests and fuzz targets.
package testkit

import (
	"fmt"
	"strings"

	"swc/internal/ast"
	"swc/internal/source"
	"swc/internal/token"
)

// CheckSpans verifies the span invariants of a parsed tree against its text:
//  1. every span lies within [0, text.Len()]
//  2. the children of a node are ordered and do not overlap
//  3. a present token's text equals the source it covers
//  4. a missing token is zero-width and has no text
//
// It returns the first violation found.
func CheckSpans(root ast.Node, text *source.Text) error {
	if root == nil || text == nil {
		return fmt.Errorf("nil tree or text")
	}
	var err error
	ast.Walk(root, func(n ast.Node, _ int) bool {
		if err != nil {
			return false
		}
		err = checkNode(n, text)
		return err == nil
	})
	return err
}

func checkNode(n ast.Node, text *source.Text) error {
	sp := n.Span()
	if sp.Start < 0 || sp.Length < 0 || sp.End() > text.Len() {
		return fmt.Errorf("%s span %v is outside text of length %d", ast.KindName(n), sp, text.Len())
	}

	if tok, ok := n.(token.Token); ok {
		return checkToken(tok, text)
	}

	prevEnd := sp.Start
	for i, c := range ast.Children(n) {
		csp := c.Span()
		if csp.Start < prevEnd {
			return fmt.Errorf("%s child %d (%s) at %v starts before previous end %d",
				ast.KindName(n), i, ast.KindName(c), csp, prevEnd)
		}
		if csp.End() > sp.End() {
			return fmt.Errorf("%s child %d (%s) at %v ends after parent span %v",
				ast.KindName(n), i, ast.KindName(c), csp, sp)
		}
		prevEnd = csp.End()
	}
	return nil
}

func checkToken(tok token.Token, text *source.Text) error {
	if tok.IsMissing() {
		if tok.Span().Length != 0 || tok.Text != "" {
			return fmt.Errorf("missing %s token at %d has text %q", tok.Kind, tok.Pos, tok.Text)
		}
		return nil
	}
	if got := text.Slice(tok.Span()); got != tok.Text {
		return fmt.Errorf("%s token at %v: text %q, source %q", tok.Kind, tok.Span(), tok.Text, got)
	}
	return nil
}

// CheckRoundTrip verifies that a raw token stream (trivia included)
// concatenates back to the text and that positions are contiguous.
func CheckRoundTrip(tokens []token.Token, text *source.Text) error {
	var b strings.Builder
	pos := 0
	for i, tok := range tokens {
		if tok.Pos != pos {
			return fmt.Errorf("token %d (%s) at %d, want %d", i, tok.Kind, tok.Pos, pos)
		}
		b.WriteString(tok.Text)
		pos = tok.Span().End()
	}
	if got := b.String(); got != text.String() {
		return fmt.Errorf("round trip mismatch: got %q, want %q", got, text.String())
	}
	return nil
}

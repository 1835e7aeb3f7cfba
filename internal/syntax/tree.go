// Package syntax is the entry point for turning source text into a tree.
package syntax

import (
	"swc/internal/ast"
	"swc/internal/diag"
	"swc/internal/lexer"
	"swc/internal/parser"
	"swc/internal/source"
	"swc/internal/token"
)

// Tree is the result of parsing one text. It is immutable once returned.
type Tree struct {
	text  *source.Text
	root  *ast.CompilationUnit
	diags []diag.Diagnostic
}

// Parse lexes and parses text. It never fails: defects are reported through
// Diagnostics and the tree is always complete.
func Parse(text *source.Text) *Tree {
	root, bag := parser.ParseText(text)
	return &Tree{text: text, root: root, diags: bag.Items()}
}

// ParseString is Parse over an in-memory string named name.
func ParseString(s, name string) *Tree {
	return Parse(source.FromString(s, name))
}

func (t *Tree) Text() *source.Text { return t.text }

func (t *Tree) Root() *ast.CompilationUnit { return t.root }

// Diagnostics returns lexical and syntax diagnostics in detection order.
// The slice is a copy.
func (t *Tree) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(t.diags))
	copy(out, t.diags)
	return out
}

// Tokens lexes all of text, whitespace and the final EOF included.
func Tokens(text *source.Text) ([]token.Token, []diag.Diagnostic) {
	lx := lexer.New(text)
	tokens := make([]token.Token, 0, text.Len()/2+1)
	for {
		tok := lx.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, lx.Diagnostics().Items()
}

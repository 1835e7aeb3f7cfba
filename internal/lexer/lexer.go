package lexer

import (
	"swc/internal/diag"
	"swc/internal/source"
	"swc/internal/token"
)

// Lexer pulls one token at a time out of a source.Text.
// It owns the diagnostic bag that the parser later extends.
type Lexer struct {
	text   *source.Text
	cursor Cursor
	bag    *diag.Bag
}

func New(text *source.Text) *Lexer {
	return &Lexer{
		text:   text,
		cursor: NewCursor(text),
		bag:    diag.NewBag(),
	}
}

// Diagnostics returns the bag shared by the lexer and its parser.
func (lx *Lexer) Diagnostics() *diag.Bag {
	return lx.bag
}

// Text returns the source being lexed.
func (lx *Lexer) Text() *source.Text {
	return lx.text
}

// Lex возвращает ровно один токен за вызов, включая Whitespace.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Lex() token.Token {
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Pos:  lx.cursor.Off,
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		return lx.scanString()
	case isDec(ch):
		return lx.scanNumber()
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isSpace(ch):
		return lx.scanWhitespace()
	default:
		// операторы, пунктуация и всё остальное
		return lx.scanOperatorOrPunct()
	}
}

// emit builds a token of kind k covering [start, cursor).
// Kinds with a canonical spelling take it from the token table.
func (lx *Lexer) emit(k token.Kind, start Mark, value any) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text, ok := token.Text(k)
	if !ok {
		text = lx.text.Slice(sp)
	}
	return token.Token{Kind: k, Pos: sp.Start, Text: text, Value: value}
}

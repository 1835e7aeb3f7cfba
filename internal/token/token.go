package token

import (
	"unicode/utf8"

	"swc/internal/source"
)

// Token is a leaf of the syntax tree: a kind, a start position, the literal
// text and an optional decoded value (int32 for numbers, string for strings).
type Token struct {
	Kind    Kind
	Pos     int
	Text    string
	Value   any
	Missing bool // synthesised by the parser, not present in the source
}

// NewMissing returns a zero-width placeholder of kind k at pos.
func NewMissing(k Kind, pos int) Token {
	return Token{Kind: k, Pos: pos, Missing: true}
}

// Span covers the token text; missing tokens are zero-width.
func (t Token) Span() source.Span {
	if t.Missing {
		return source.NewSpan(t.Pos, 0)
	}
	return source.NewSpan(t.Pos, utf8.RuneCountInString(t.Text))
}

// IsMissing reports whether the parser inserted this token during recovery.
func (t Token) IsMissing() bool { return t.Missing }

// IsLiteral reports whether the token is a number or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

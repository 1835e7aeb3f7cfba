package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Bad marks a character the lexer could not classify.
	Bad Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Whitespace is a maximal run of whitespace characters.
	Whitespace

	// NumberLit represents a decimal integer literal.
	NumberLit
	// StringLit represents a double-quoted string literal.
	StringLit
	// Ident represents an identifier token.
	Ident

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Bang      // !
	Assign    // =
	Tilde     // ~
	Caret     // ^
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Amp       // &
	AndAnd    // &&
	Pipe      // |
	OrOr      // ||
	EqEq      // ==
	BangEq    // !=
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Colon     // :
	Comma     // ,
	Dot       // .
	Semicolon // ;

	KwBreak     // break
	KwContinue  // continue
	KwDo        // do
	KwElse      // else
	KwFalse     // false
	KwFor       // for
	KwFunction  // function
	KwIf        // if
	KwLet       // let
	KwNamespace // namespace
	KwReturn    // return
	KwTrue      // true
	KwUsing     // using
	KwVar       // var
	KwWhile     // while

	kindCount
)

var kindNames = [...]string{
	Bad:         "Bad",
	EOF:         "EOF",
	Whitespace:  "Whitespace",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	Ident:       "Ident",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Bang:        "Bang",
	Assign:      "Assign",
	Tilde:       "Tilde",
	Caret:       "Caret",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Amp:         "Amp",
	AndAnd:      "AndAnd",
	Pipe:        "Pipe",
	OrOr:        "OrOr",
	EqEq:        "EqEq",
	BangEq:      "BangEq",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Colon:       "Colon",
	Comma:       "Comma",
	Dot:         "Dot",
	Semicolon:   "Semicolon",
	KwBreak:     "KwBreak",
	KwContinue:  "KwContinue",
	KwDo:        "KwDo",
	KwElse:      "KwElse",
	KwFalse:     "KwFalse",
	KwFor:       "KwFor",
	KwFunction:  "KwFunction",
	KwIf:        "KwIf",
	KwLet:       "KwLet",
	KwNamespace: "KwNamespace",
	KwReturn:    "KwReturn",
	KwTrue:      "KwTrue",
	KwUsing:     "KwUsing",
	KwVar:       "KwVar",
	KwWhile:     "KwWhile",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwBreak && k <= KwWhile
}

// IsPunctOrOp reports whether k is an operator or punctuation.
func (k Kind) IsPunctOrOp() bool {
	return k >= Plus && k <= Semicolon
}

// IsLiteral reports whether k is a number or string literal.
func (k Kind) IsLiteral() bool {
	return k == NumberLit || k == StringLit
}

// IsTrivia reports whether tokens of this kind are skipped by the parser.
func (k Kind) IsTrivia() bool {
	return k == Whitespace
}

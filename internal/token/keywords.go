package token

// texts is the canonical spelling of every fixed-text kind; empty means the
// text of the kind comes from the source.
var texts = [kindCount]string{
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Bang:      "!",
	Assign:    "=",
	Tilde:     "~",
	Caret:     "^",
	Lt:        "<",
	LtEq:      "<=",
	Gt:        ">",
	GtEq:      ">=",
	Amp:       "&",
	AndAnd:    "&&",
	Pipe:      "|",
	OrOr:      "||",
	EqEq:      "==",
	BangEq:    "!=",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Colon:     ":",
	Comma:     ",",
	Dot:       ".",
	Semicolon: ";",

	KwBreak:     "break",
	KwContinue:  "continue",
	KwDo:        "do",
	KwElse:      "else",
	KwFalse:     "false",
	KwFor:       "for",
	KwFunction:  "function",
	KwIf:        "if",
	KwLet:       "let",
	KwNamespace: "namespace",
	KwReturn:    "return",
	KwTrue:      "true",
	KwUsing:     "using",
	KwVar:       "var",
	KwWhile:     "while",
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, KwWhile-KwBreak+1)
	for k := KwBreak; k <= KwWhile; k++ {
		m[texts[k]] = k
	}
	return m
}()

// Text returns the canonical spelling of k, if it has one.
func Text(k Kind) (string, bool) {
	if k >= kindCount || texts[k] == "" {
		return "", false
	}
	return texts[k], true
}

// LookupKeyword returns the keyword kind spelled by ident, or Ident.
// Keywords are case-sensitive.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}

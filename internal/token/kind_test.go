package token_test

import (
	"testing"

	"swc/internal/token"
)

func TestCanonicalText(t *testing.T) {
	cases := map[token.Kind]string{
		token.Plus: "+", token.Minus: "-", token.Star: "*", token.Slash: "/",
		token.Bang: "!", token.Assign: "=", token.Tilde: "~", token.Caret: "^",
		token.Lt: "<", token.LtEq: "<=", token.Gt: ">", token.GtEq: ">=",
		token.Amp: "&", token.AndAnd: "&&", token.Pipe: "|", token.OrOr: "||",
		token.EqEq: "==", token.BangEq: "!=",
		token.LParen: "(", token.RParen: ")", token.LBrace: "{", token.RBrace: "}",
		token.Colon: ":", token.Comma: ",", token.Dot: ".", token.Semicolon: ";",
		token.KwNamespace: "namespace", token.KwUsing: "using",
	}
	for k, want := range cases {
		got, ok := token.Text(k)
		if !ok || got != want {
			t.Fatalf("Text(%v) = %q, %v; want %q", k, got, ok, want)
		}
	}
}

func TestSourceKindsHaveNoCanonicalText(t *testing.T) {
	for _, k := range []token.Kind{token.Bad, token.EOF, token.Whitespace, token.NumberLit, token.StringLit, token.Ident} {
		if text, ok := token.Text(k); ok {
			t.Fatalf("Text(%v) = %q, want none", k, text)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !token.Plus.IsPunctOrOp() || !token.Semicolon.IsPunctOrOp() {
		t.Fatalf("operators must be punct/op")
	}
	if token.Ident.IsPunctOrOp() || token.KwIf.IsPunctOrOp() {
		t.Fatalf("ident/keyword must NOT be punct/op")
	}
	if !token.KwBreak.IsKeyword() || !token.KwWhile.IsKeyword() || token.Ident.IsKeyword() {
		t.Fatalf("keyword range is wrong")
	}
	if !token.NumberLit.IsLiteral() || !token.StringLit.IsLiteral() || token.KwTrue.IsLiteral() {
		t.Fatalf("literal classification is wrong")
	}
	if !token.Whitespace.IsTrivia() || token.EOF.IsTrivia() {
		t.Fatalf("trivia classification is wrong")
	}
}

func TestKindString(t *testing.T) {
	if token.Semicolon.String() != "Semicolon" {
		t.Fatalf("String() = %q", token.Semicolon.String())
	}
	if token.KwNamespace.String() != "KwNamespace" {
		t.Fatalf("String() = %q", token.KwNamespace.String())
	}
	if got := token.Kind(250).String(); got != "Kind(?)" {
		t.Fatalf("String() of unknown kind = %q", got)
	}
}

func TestTokenSpan(t *testing.T) {
	tok := token.Token{Kind: token.StringLit, Pos: 4, Text: `"ñ"`}
	if sp := tok.Span(); sp.Start != 4 || sp.Length != 3 {
		t.Fatalf("Span() = %v, want 4..7", sp)
	}

	missing := token.NewMissing(token.Semicolon, 9)
	if !missing.IsMissing() || missing.Text != "" {
		t.Fatalf("NewMissing must produce a text-less token: %+v", missing)
	}
	if sp := missing.Span(); sp.Start != 9 || sp.Length != 0 {
		t.Fatalf("missing Span() = %v, want 9..9", sp)
	}
}

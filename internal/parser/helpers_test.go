package parser

import (
	"testing"

	"swc/internal/diag"
	"swc/internal/token"
)

func TestExpectMissingTokenContract(t *testing.T) {
	p := newTestParser("  42")
	before := p.current

	tok := p.expect(token.Semicolon)
	if !tok.Missing || tok.Text != "" {
		t.Errorf("token = %+v, want missing", tok)
	}
	if tok.Kind != token.Semicolon {
		t.Errorf("kind = %v", tok.Kind)
	}
	if tok.Span().Length != 0 || tok.Pos != before.Pos {
		t.Errorf("span = %v, want zero-width at %d", tok.Span(), before.Pos)
	}
	if p.current != before {
		t.Errorf("current changed: %+v", p.current)
	}
	items := p.Diagnostics().Items()
	if len(items) != 1 || items[0].Code != diag.SynUnexpectedToken {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(p.Diagnostics()))
	}
	if items[0].Span != before.Span() {
		t.Errorf("diagnostic span = %v, want %v", items[0].Span, before.Span())
	}
}

func TestExpectConsumesOnMatch(t *testing.T) {
	p := newTestParser("; x")
	tok := p.expect(token.Semicolon)
	if tok.Missing || tok.Pos != 0 {
		t.Errorf("token = %+v", tok)
	}
	if p.current.Kind != token.Ident {
		t.Errorf("current = %v, want Ident", p.current.Kind)
	}
	if p.Diagnostics().Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diagnosticsSummary(p.Diagnostics()))
	}
}

func TestAdvanceSkipsWhitespace(t *testing.T) {
	p := newTestParser(" a \n b ")
	var got []string
	for !p.at(token.EOF) {
		got = append(got, p.advance().Text)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("tokens = %q", got)
	}
	if p.consumed != 2 {
		t.Errorf("consumed = %d", p.consumed)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	p := newTestParser("a  b c")
	if p.current.Text != "a" {
		t.Fatalf("current = %q", p.current.Text)
	}
	if pk := p.peekToken(); pk.Text != "b" {
		t.Errorf("peek = %q, want b", pk.Text)
	}
	if pk := p.peekToken(); pk.Text != "b" {
		t.Errorf("second peek = %q, want b", pk.Text)
	}
	if p.current.Text != "a" {
		t.Errorf("current after peek = %q", p.current.Text)
	}

	if tok := p.advance(); tok.Text != "a" {
		t.Errorf("advance() = %q, want a", tok.Text)
	}
	if p.current.Text != "b" || p.peek != nil {
		t.Errorf("current = %q, peek buffered = %v", p.current.Text, p.peek != nil)
	}
	p.advance()
	if p.current.Text != "c" {
		t.Errorf("current = %q, want c", p.current.Text)
	}
}

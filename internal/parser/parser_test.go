package parser

import (
	"testing"

	"swc/internal/ast"
	"swc/internal/diag"
	"swc/internal/token"
)

func TestStatements(t *testing.T) {
	unit, bag := parseTestInput(t, "namespace demo;\nvar x = 1;\nusing a.b;\n1 + 2 * 3;\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	want := []string{"(decl var x 1)", "(using a.b)", "(1 + (2 * 3))"}
	if len(unit.Statements) != len(want) {
		t.Fatalf("got %d statements, want %d", len(unit.Statements), len(want))
	}
	for i, st := range unit.Statements {
		if got := sexpr(st.Expr); got != want[i] {
			t.Errorf("statement %d = %s, want %s", i, got, want[i])
		}
		if st.Semicolon.Missing {
			t.Errorf("statement %d lost its semicolon", i)
		}
	}
}

func TestRecoveryEmptyStatement(t *testing.T) {
	unit, bag := parseTestInput(t, "namespace a; ;")
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynExpectExpression {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	if items[0].Message != "Unexpected token <Semicolon>, expected <Expression>." {
		t.Errorf("message = %q", items[0].Message)
	}
	lit, ok := unit.Statements[0].Expr.(*ast.LiteralExpr)
	if !ok || !lit.Token.Missing || lit.Token.Kind != token.Bad {
		t.Errorf("expected recovery literal, got %#v", unit.Statements[0].Expr)
	}
	if lit.Value != nil {
		t.Errorf("recovery literal value = %v", lit.Value)
	}
}

func TestRecoveryMissingSemicolonBetweenStatements(t *testing.T) {
	unit, bag := parseTestInput(t, "namespace a; 1 2;")
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %s", diagnosticsSummary(bag))
	}
	if len(unit.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(unit.Statements))
	}
	if !unit.Statements[0].Semicolon.Missing {
		t.Error("first semicolon should be missing")
	}
}

func TestRecoverySkipsStuckToken(t *testing.T) {
	unit, bag := parseTestInput(t, "namespace a; )")
	if bag.Len() != 2 {
		t.Fatalf("want 2 diagnostics, got %s", diagnosticsSummary(bag))
	}
	if len(unit.Statements) != 1 {
		t.Errorf("got %d statements, want 1", len(unit.Statements))
	}
	if unit.EOF.Missing {
		t.Error("EOF should be reached")
	}
}

func TestRecoveryBadCharacter(t *testing.T) {
	unit, bag := parseTestInput(t, "namespace a; 1 @ 2;")
	items := bag.Items()
	if len(items) != 4 {
		t.Fatalf("want 4 diagnostics, got %s", diagnosticsSummary(bag))
	}
	wantCodes := []diag.Code{
		diag.LexBadCharacter,
		diag.SynUnexpectedToken,
		diag.SynExpectExpression,
		diag.SynUnexpectedToken,
	}
	for i, d := range items {
		if d.Code != wantCodes[i] {
			t.Errorf("diagnostic %d code = %v, want %v", i, d.Code, wantCodes[i])
		}
	}
	if len(unit.Statements) != 3 {
		t.Errorf("got %d statements, want 3", len(unit.Statements))
	}
}

func TestRecoveryMissingFinalSemicolon(t *testing.T) {
	unit, bag := parseTestInput(t, "namespace a; 1 + 2")
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %s", diagnosticsSummary(bag))
	}
	st := unit.Statements[0]
	if !st.Semicolon.Missing || st.Semicolon.Pos != 18 {
		t.Errorf("semicolon = %+v", st.Semicolon)
	}
	if got := sexpr(st.Expr); got != "(1 + 2)" {
		t.Errorf("expr = %s", got)
	}
}

func TestLexerDiagnosticsShareBag(t *testing.T) {
	_, bag := parseTestInput(t, "namespace a; 99999999999;")
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexInvalidNumber {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestParseAlwaysTerminates(t *testing.T) {
	inputs := []string{
		"", ";;;;", ")))", "namespace", "namespace .", "var", "using", "using .",
		"namespace a; var", "namespace a; = = =", "namespace a; \"open", "{}{}",
		"namespace a; 1 +", "namespace a; - - -", "if while for",
	}
	for _, in := range inputs {
		unit, _ := parseTestInput(t, in)
		if unit == nil || unit.EOF.Kind != token.EOF {
			t.Errorf("%q: no EOF token in tree", in)
		}
	}
}

package parser

import (
	"fmt"
	"strings"
	"testing"

	"swc/internal/ast"
	"swc/internal/diag"
	"swc/internal/lexer"
	"swc/internal/source"
	"swc/internal/token"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func newTestParser(input string) *Parser {
	return New(lexer.New(source.FromString(input, "test.sw")))
}

// parseTestInput разбирает вход целиком
func parseTestInput(t *testing.T, input string) (*ast.CompilationUnit, *diag.Bag) {
	t.Helper()
	return ParseText(source.FromString(input, "test.sw"))
}

// parseExprTestInput оборачивает выражение в `namespace t; ...;` и требует
// отсутствия диагностик.
func parseExprTestInput(t *testing.T, expr string) ast.Expr {
	t.Helper()
	unit, bag := parseTestInput(t, "namespace t; "+expr+";")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", expr, diagnosticsSummary(bag))
	}
	if len(unit.Statements) != 1 {
		t.Fatalf("%q: got %d statements, want 1", expr, len(unit.Statements))
	}
	return unit.Statements[0].Expr
}

// sexpr печатает выражение в виде скобочной записи, напр. (1 + (2 * 3))
func sexpr(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.LiteralExpr:
		if e.Token.Missing {
			return "<missing>"
		}
		return e.Token.Text
	case *ast.UnaryExpr:
		return "(" + e.Op.Text + sexpr(e.Operand) + ")"
	case *ast.BinaryExpr:
		return "(" + sexpr(e.Left) + " " + e.Op.Text + " " + sexpr(e.Right) + ")"
	case *ast.DeclarationExpr:
		return "(decl " + dotted(e.Type) + " " + e.Name.Text + " " + sexpr(e.Value) + ")"
	case *ast.UsingExpr:
		return "(using " + dotted(e.Name) + ")"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func dotted(l ast.SeparatedList[token.Token]) string {
	parts := make([]string, 0, l.Len())
	for _, tok := range l.All() {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, ".")
}

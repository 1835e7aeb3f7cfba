package diag

import (
	"fmt"
	"slices"

	"swc/internal/source"
	"swc/internal/token"
)

// Bag is an append-only, ordered log of diagnostics.
// Insertion order is detection order; there is no deduplication.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

// Add appends d.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a copy of the diagnostics in detection order.
func (b *Bag) Items() []Diagnostic {
	return slices.Clone(b.items)
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// ReportBadCharacter records a character the lexer could not classify.
func (b *Bag) ReportBadCharacter(pos int, ch rune) {
	b.report(LexBadCharacter, source.NewSpan(pos, 1), fmt.Sprintf("Bad character input: '%c'.", ch))
}

// ReportUnterminatedString records a string literal without a closing quote.
// The span is expected to cover the opening quote.
func (b *Bag) ReportUnterminatedString(span source.Span) {
	b.report(LexUnterminatedString, span, "Unterminated string literal.")
}

// ReportInvalidNumber records a digit run that does not fit a 32-bit integer.
func (b *Bag) ReportInvalidNumber(span source.Span, text string) {
	b.report(LexInvalidNumber, span, fmt.Sprintf("The number '%s' isn't valid.", text))
}

// ReportUnexpectedToken records a token of the wrong kind where expected was required.
func (b *Bag) ReportUnexpectedToken(span source.Span, actual, expected token.Kind) {
	b.report(SynUnexpectedToken, span, fmt.Sprintf("Unexpected token <%s>, expected <%s>.", actual, expected))
}

// ReportExpectedExpression records a token that cannot start an expression.
func (b *Bag) ReportExpectedExpression(span source.Span, actual token.Kind) {
	b.report(SynExpectExpression, span, fmt.Sprintf("Unexpected token <%s>, expected <Expression>.", actual))
}

func (b *Bag) report(code Code, span source.Span, msg string) {
	b.Add(NewError(code, span, msg))
}

// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// # Data model
//
// Diagnostic is the central record: a Severity, a stable Code, the Span of
// the source it points at, and a short human-oriented Message. Diagnostics are
// values; once appended to a Bag they are never modified.
//
// # Emitting diagnostics
//
// Producers never format messages themselves. They call one of the typed Bag
// factories (ReportBadCharacter, ReportUnterminatedString, ReportInvalidNumber,
// ReportUnexpectedToken, ReportExpectedExpression), which own the message
// templates. The lexer owns the Bag and the parser appends to the same one, so
// Items() is always in detection order.
//
// # Scope
//
// Package diag does not perform any formatting beyond Diagnostic.String, and
// no IO. Rendering lives in internal/diagfmt.
package diag

package diag

import (
	"fmt"

	"swc/internal/source"
)

// Diagnostic is a recorded defect that did not interrupt parsing.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Span     source.Span
	Message  string
}

func New(sev Severity, code Code, span source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Span:     span,
		Message:  msg,
	}
}

func NewError(code Code, span source.Span, msg string) Diagnostic {
	return New(SevError, code, span, msg)
}

// String renders the diagnostic as "(start..end) message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("(%s) %s", d.Span, d.Message)
}

package driver

import (
	"context"
	"strconv"

	"swc/internal/diag"
	"swc/internal/source"
	"swc/internal/syntax"
	"swc/internal/token"
	"swc/internal/trace"
)

type TokenizeResult struct {
	Text        *source.Text
	Tokens      []token.Token
	Diagnostics []diag.Diagnostic
}

// Tokenize loads path and lexes all of it.
func (d *Driver) Tokenize(ctx context.Context, path string) (*TokenizeResult, error) {
	text, err := d.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.TokenizeText(ctx, text), nil
}

// TokenizeText lexes an already loaded text.
func (d *Driver) TokenizeText(ctx context.Context, text *source.Text) *TokenizeResult {
	_, span := trace.Begin(ctx, trace.ScopePhase, "lex")
	stop := d.Timer.Start("lex")
	tokens, diags := syntax.Tokens(text)
	stop()
	span.WithExtra("file", text.Name()).WithExtra("tokens", strconv.Itoa(len(tokens))).End("")

	return &TokenizeResult{Text: text, Tokens: tokens, Diagnostics: diags}
}

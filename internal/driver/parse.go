package driver

import (
	"context"
	"strconv"

	"swc/internal/source"
	"swc/internal/syntax"
	"swc/internal/trace"
)

// Parse loads path and parses it.
func (d *Driver) Parse(ctx context.Context, path string) (*syntax.Tree, error) {
	text, err := d.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.ParseText(ctx, text), nil
}

// ParseText parses an already loaded text. Lexing happens on demand inside
// the parser, so it is part of this phase.
func (d *Driver) ParseText(ctx context.Context, text *source.Text) *syntax.Tree {
	_, span := trace.Begin(ctx, trace.ScopePhase, "parse")
	stop := d.Timer.Start("parse")
	tree := syntax.Parse(text)
	stop()
	span.WithExtra("file", text.Name()).
		WithExtra("diagnostics", strconv.Itoa(len(tree.Diagnostics()))).
		End("")
	return tree
}

package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"swc/internal/source"
	"swc/internal/token"
)

type TokenOutput struct {
	Kind    string `json:"kind" msgpack:"kind"`
	Text    string `json:"text,omitempty" msgpack:"text,omitempty"`
	Value   any    `json:"value,omitempty" msgpack:"value,omitempty"`
	Start   int    `json:"start" msgpack:"start"`
	End     int    `json:"end" msgpack:"end"`
	Missing bool   `json:"missing,omitempty" msgpack:"missing,omitempty"`
}

func buildTokenOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		sp := tok.Span()
		out = append(out, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Value:   tok.Value,
			Start:   sp.Start,
			End:     sp.End(),
			Missing: tok.Missing,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, text *source.Text) error {
	for i, tok := range tokens {
		sp := tok.Span()
		line := fmt.Sprintf("%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		if text != nil {
			line += fmt.Sprintf(" at %s-%s", text.LineCol(sp.Start), text.LineCol(sp.End()))
		} else {
			line += " at " + sp.String()
		}
		if tok.Value != nil {
			line += fmt.Sprintf(" value=%s", formatValue(tok.Value))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokenOutput(tokens))
}

// FormatTokensMsgpack writes the same records as FormatTokensJSON in
// MessagePack, as a single array.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(buildTokenOutput(tokens))
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}

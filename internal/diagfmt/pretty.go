package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"swc/internal/diag"
	"swc/internal/source"
)

type palette struct {
	sev    *color.Color
	code   *color.Color
	gutter *color.Color
	caret  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev:    color.New(color.FgRed, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.sev, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	ERROR[SYN2001]: Unexpected token <EOF>, expected <Semicolon>.
//	  --> demo.sw:1:16
//	   |
//	 1 | namespace a.b.c
//	   |                ^
func Pretty(w io.Writer, r Report, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	name := displayName(r.Text, opts.BaseDir)

	for _, d := range limit(r.Diagnostics, opts.Max) {
		if err := prettyOne(w, r.Text, name, d, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, text *source.Text, name string, d diag.Diagnostic, pal palette) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s %s\n",
		pal.sev.Sprint(d.Severity.String()),
		pal.code.Sprintf("[%s]:", d.Code.ID()),
		d.Message)

	if text == nil {
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	start := text.LineCol(d.Span.Start)
	loc := start.String()
	if name != "" {
		loc = name + ":" + loc
	}

	lineNo := strconv.Itoa(start.Line)
	pad := strings.Repeat(" ", len(lineNo))
	fmt.Fprintf(&sb, "%s %s %s\n", pad, pal.gutter.Sprint("-->"), loc)
	fmt.Fprintf(&sb, "%s %s\n", pad, pal.gutter.Sprint("|"))

	line := []rune(text.Line(start.Line))
	fmt.Fprintf(&sb, "%s %s %s\n", pal.gutter.Sprint(lineNo), pal.gutter.Sprint("|"), string(line))

	col := min(start.Col-1, len(line))
	// подчёркивание не выходит за конец строки
	end := min(col+d.Span.Length, len(line))
	fmt.Fprintf(&sb, "%s %s %s%s\n\n", pad, pal.gutter.Sprint("|"),
		caretPadding(line[:col]),
		pal.caret.Sprint(strings.Repeat("^", underlineWidth(line[col:end]))))

	_, err := io.WriteString(w, sb.String())
	return err
}

// caretPadding повторяет табы из строки, остальное заменяет пробелами
// по ширине символа в терминале.
func caretPadding(prefix []rune) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteRune('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func underlineWidth(covered []rune) int {
	return max(runewidth.StringWidth(string(covered)), 1)
}

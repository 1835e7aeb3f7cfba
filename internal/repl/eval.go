// Package repl implements `swc repl`: each input line is parsed as a
// complete compilation unit and answered with its tree and diagnostics.
package repl

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"swc/internal/diagfmt"
	"swc/internal/syntax"
)

// Options control rendering of each answer.
type Options struct {
	Color     bool
	ShowSpans bool
	// Name labels the text of every line; "<repl>" when empty.
	Name string
}

func (o Options) name() string {
	if o.Name == "" {
		return "<repl>"
	}
	return o.Name
}

// quitCommands end a session.
var quitCommands = map[string]bool{":q": true, ":quit": true, ":exit": true}

// IsQuit reports whether line asks to leave the REPL.
func IsQuit(line string) bool {
	return quitCommands[strings.TrimSpace(line)]
}

// Eval parses line and renders the tree followed by one red line per
// diagnostic in "(start..end) message" form.
func Eval(line string, opts Options) string {
	tree := syntax.ParseString(line, opts.name())

	var b strings.Builder
	// запись в strings.Builder не возвращает ошибок
	_ = diagfmt.WriteTree(&b, tree.Root(), diagfmt.TreeOpts{Color: opts.Color, ShowSpans: opts.ShowSpans})

	red := color.New(color.FgRed)
	if opts.Color {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	for _, d := range tree.Diagnostics() {
		fmt.Fprintln(&b, red.Sprint(d.String()))
	}
	return strings.TrimRight(b.String(), "\n")
}

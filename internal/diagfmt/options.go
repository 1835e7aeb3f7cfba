package diagfmt

import (
	"swc/internal/diag"
	"swc/internal/source"
)

// Report is one source text together with the diagnostics found in it.
type Report struct {
	Text        *source.Text
	Diagnostics []diag.Diagnostic
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	BaseDir string // пути выводятся относительно BaseDir, если он задан
	Max     int    // обрезка вывода, 0 - без ограничений
}

// ShortOpts configures the one-line-per-diagnostic format.
type ShortOpts struct {
	BaseDir string
	Max     int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	BaseDir          string
	Max              int // на файл
}

// TreeOpts configures the syntax tree printer.
type TreeOpts struct {
	Color     bool
	ShowSpans bool
}

func limit(diags []diag.Diagnostic, maxItems int) []diag.Diagnostic {
	if maxItems > 0 && maxItems < len(diags) {
		return diags[:maxItems]
	}
	return diags
}

func displayName(text *source.Text, baseDir string) string {
	if text == nil || text.Name() == "" {
		return ""
	}
	return source.DisplayPath(text.Name(), baseDir)
}

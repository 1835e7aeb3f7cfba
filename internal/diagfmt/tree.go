package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"swc/internal/ast"
	"swc/internal/token"
)

type treePalette struct {
	node   *color.Color
	token  *color.Color
	marker *color.Color
}

func newTreePalette(enabled bool) treePalette {
	p := treePalette{
		node:   color.New(color.FgCyan),
		token:  color.New(color.FgBlue),
		marker: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.node, p.token, p.marker} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// WriteTree печатает дерево с маркерами ├── / └──, обходя ast.Children.
// Токены печатаются как вид и, если есть, значение.
func WriteTree(w io.Writer, root ast.Node, opts TreeOpts) error {
	pal := newTreePalette(opts.Color)
	var sb strings.Builder
	writeNode(&sb, root, "", "", opts, pal)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeNode(sb *strings.Builder, n ast.Node, marker, indent string, opts TreeOpts, pal treePalette) {
	sb.WriteString(pal.marker.Sprint(marker))
	sb.WriteString(nodeLabel(n, opts, pal))
	sb.WriteByte('\n')

	kids := ast.Children(n)
	for i, c := range kids {
		last := i == len(kids)-1
		childMarker, childIndent := "├── ", "│   "
		if last {
			childMarker, childIndent = "└── ", "    "
		}
		writeNode(sb, c, indent+childMarker, indent+childIndent, opts, pal)
	}
}

func nodeLabel(n ast.Node, opts TreeOpts, pal treePalette) string {
	var label string
	if tok, ok := n.(token.Token); ok {
		label = pal.token.Sprint(tok.Kind.String())
		if tok.Value != nil {
			label += " " + formatValue(tok.Value)
		}
		if tok.Missing {
			label += pal.marker.Sprint(" (missing)")
		}
	} else {
		label = pal.node.Sprint(ast.KindName(n))
	}
	if opts.ShowSpans {
		label += pal.marker.Sprint(fmt.Sprintf(" [%s]", n.Span()))
	}
	return label
}

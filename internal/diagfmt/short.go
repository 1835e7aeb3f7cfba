package diagfmt

import (
	"fmt"
	"io"
)

// Short prints one diagnostic per line: `<path>: (<span>) <message>`.
// The path prefix is dropped for unnamed texts.
func Short(w io.Writer, r Report, opts ShortOpts) error {
	name := displayName(r.Text, opts.BaseDir)
	for _, d := range limit(r.Diagnostics, opts.Max) {
		var err error
		if name != "" {
			_, err = fmt.Fprintf(w, "%s: %s\n", name, d)
		} else {
			_, err = fmt.Fprintln(w, d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

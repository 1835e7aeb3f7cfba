package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// RunPlain is the line loop used when input is not a terminal. It stops at
// end of input, on a quit command or when ctx is cancelled.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if IsQuit(line) {
			return nil
		}
		if _, err := fmt.Fprintln(out, Eval(line, opts)); err != nil {
			return err
		}
	}
	return sc.Err()
}

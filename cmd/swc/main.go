package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"swc/internal/version"
)

// errDiagnosticsFound makes the process exit with status 1 without printing
// anything more; the diagnostics already are the message.
var errDiagnosticsFound = errors.New("diagnostics found")

// app carries state shared by the commands of one invocation.
type app struct {
	stdin    io.Reader
	settings *settings
	cleanups []func()
}

func (a *app) onExit(fn func()) {
	a.cleanups = append(a.cleanups, fn)
}

func (a *app) close() {
	// в обратном порядке, как defer
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "swc",
		Short:         "Selawik compiler front end",
		Long:          `swc tokenizes and parses Selawik source files and reports their diagnostics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file (0 = all)")
	pf.StringP("chdir", "C", "", "run as if started in this directory")
	pf.String("trace", "", "write a trace to this path (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpu-profile", "", "write a CPU profile to this path")
	pf.String("mem-profile", "", "write a heap profile to this path on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this path")

	root.AddCommand(
		newTokenizeCmd(a),
		newParseCmd(a),
		newDiagCmd(a),
		newReplCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup resolves settings and starts tracing and profiling for the command
// about to run.
func (a *app) setup(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	a.settings = s

	if err := setupTracing(cmd, a); err != nil {
		return err
	}
	if err := setupProfiling(cmd, a); err != nil {
		return err
	}
	if s.timings {
		a.onExit(func() {
			fmt.Fprint(cmd.ErrOrStderr(), s.driver.Timer.Summary())
		})
	}
	return nil
}

// execute runs swc with args and returns the process exit status.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.close()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDiagnosticsFound):
		return 1
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}

// main runs the CLI and exits with status 1 on any error or diagnostic.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// isTerminal проверяет, является ли поток терминалом
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

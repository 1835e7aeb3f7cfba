package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swc/internal/repl"
)

func newReplCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively and print their trees",
		Long: `Each line is parsed as a compilation unit; its syntax tree and diagnostics
are printed. :q, :quit or end of input leave the REPL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, a)
		},
	}
	cmd.Flags().Bool("spans", false, "annotate tree nodes with their spans")
	cmd.Flags().String("ui", "auto", "interactive line editor (auto|on|off)")
	return cmd
}

func runRepl(cmd *cobra.Command, a *app) error {
	s := a.settings
	showSpans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return fmt.Errorf("failed to get spans flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readSwitch("ui", uiFlag)
	if err != nil {
		return err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	opts := repl.Options{Color: s.color.enabled(out), ShowSpans: showSpans}
	if mode.enabled(in) && mode.enabled(out) {
		return repl.RunInteractive(cmd.Context(), in, out, opts)
	}
	return repl.RunPlain(cmd.Context(), in, out, opts)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swc/internal/diagfmt"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.sw",
		Short: "Parse a Selawik source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, a.settings, args[0])
		},
	}
	cmd.Flags().Bool("tree", true, "print the syntax tree")
	cmd.Flags().Bool("spans", false, "annotate tree nodes with their spans")
	return cmd
}

func runParse(cmd *cobra.Command, s *settings, path string) error {
	showTree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return fmt.Errorf("failed to get tree flag: %w", err)
	}
	showSpans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return fmt.Errorf("failed to get spans flag: %w", err)
	}

	tree, err := s.driver.Parse(cmd.Context(), s.path(path))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if showTree {
		opts := diagfmt.TreeOpts{Color: s.color.enabled(out), ShowSpans: showSpans}
		if err := diagfmt.WriteTree(out, tree.Root(), opts); err != nil {
			return err
		}
	}

	diags := tree.Diagnostics()
	if len(diags) > 0 {
		report := diagfmt.Report{Text: tree.Text(), Diagnostics: diags}
		return diagfmt.Pretty(cmd.ErrOrStderr(), report, diagfmt.PrettyOpts{
			Color:   s.color.enabled(cmd.ErrOrStderr()),
			BaseDir: s.dir,
			Max:     s.maxDiagnostics,
		})
	}
	if !showTree && !s.quiet {
		fmt.Fprintln(out, "ok")
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swc/internal/diagfmt"
)

func newTokenizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.sw",
		Short: "Tokenize a Selawik source file",
		Long:  `Tokenize breaks a Selawik source file down into its tokens, whitespace included`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd, a.settings, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, s *settings, path string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(format)
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	result, err := s.driver.Tokenize(cmd.Context(), s.path(path))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if len(result.Diagnostics) > 0 {
		report := diagfmt.Report{Text: result.Text, Diagnostics: result.Diagnostics}
		opts := diagfmt.PrettyOpts{
			Color:   s.color.enabled(cmd.ErrOrStderr()),
			BaseDir: s.dir,
			Max:     s.maxDiagnostics,
		}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), report, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(out, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(out, result.Tokens, result.Text)
	}
}

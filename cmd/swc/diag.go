package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"swc/internal/diagfmt"
	"swc/internal/driver"
	"swc/internal/ui"
)

func newDiagCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] [file.sw|directory]...",
		Short: "Report diagnostics for Selawik sources",
		Long: `Run the lexer and parser over files or every *.sw file below the given
directories. Without arguments the [build].sources of swc.toml are checked.
The exit status is 1 when any diagnostic is produced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiag(cmd, a.settings, args)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (short|pretty|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("progress", "auto", "show a progress view on stderr (auto|on|off)")
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	return cmd
}

func runDiag(cmd *cobra.Command, s *settings, args []string) error {
	format, err := s.diagFormat(cmd)
	if err != nil {
		return err
	}
	switch format {
	case "short", "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 0 {
		return fmt.Errorf("--jobs must be >= 0, got %d", jobs)
	}
	progressFlag, err := cmd.Flags().GetString("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	progress, err := readSwitch("progress", progressFlag)
	if err != nil {
		return err
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	paths, err := s.sourceArgs(args)
	if err != nil {
		return err
	}
	d := s.driver
	d.Jobs = jobs
	files, err := d.ListSources(paths)
	if err != nil {
		return err
	}

	var results []driver.FileResult
	if len(files) > 1 && !s.quiet && progress.enabled(cmd.ErrOrStderr()) {
		results, err = parseWithProgress(cmd.Context(), d, files, cmd.ErrOrStderr())
	} else {
		results, err = d.ParseAll(cmd.Context(), files)
	}
	if err != nil {
		return err
	}

	baseDir := s.dir
	if fullPath {
		baseDir = ""
	}
	failed, err := writeDiagnostics(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, format, s, baseDir)
	if err != nil {
		return err
	}
	if !s.quiet && format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d files checked, %d with problems\n", len(results), failed)
	}
	if failed > 0 {
		return errDiagnosticsFound
	}
	return nil
}

// sourceArgs returns the paths to check: the arguments, or the manifest
// sources when there are none.
func (s *settings) sourceArgs(args []string) ([]string, error) {
	if len(args) > 0 {
		paths := make([]string, len(args))
		for i, p := range args {
			paths[i] = s.path(p)
		}
		return paths, nil
	}
	if s.manifest == nil {
		return nil, fmt.Errorf("no paths given and no swc.toml found from %s", s.dir)
	}
	return s.manifest.SourcePaths(), nil
}

// writeDiagnostics renders every result and returns how many files had a
// diagnostic or could not be read.
func writeDiagnostics(out, errOut io.Writer, results []driver.FileResult, format string, s *settings, baseDir string) (int, error) {
	failed := 0
	reports := make([]diagfmt.Report, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(errOut, "%s: %v\n", r.Path, r.Err)
			continue
		}
		diags := r.Tree.Diagnostics()
		if len(diags) > 0 {
			failed++
		}
		reports = append(reports, diagfmt.Report{Text: r.Tree.Text(), Diagnostics: diags})
	}

	switch format {
	case "json":
		return failed, diagfmt.JSON(out, reports, diagfmt.JSONOpts{
			IncludePositions: true,
			BaseDir:          baseDir,
			Max:              s.maxDiagnostics,
		})
	case "short":
		for _, r := range reports {
			if err := diagfmt.Short(out, r, diagfmt.ShortOpts{BaseDir: baseDir, Max: s.maxDiagnostics}); err != nil {
				return failed, err
			}
		}
	default:
		opts := diagfmt.PrettyOpts{Color: s.color.enabled(out), BaseDir: baseDir, Max: s.maxDiagnostics}
		for _, r := range reports {
			if err := diagfmt.Pretty(out, r, opts); err != nil {
				return failed, err
			}
		}
	}
	return failed, nil
}

type parseOutcome struct {
	results []driver.FileResult
	err     error
}

// parseWithProgress runs ParseAll while a progress view renders to w.
func parseWithProgress(ctx context.Context, d *driver.Driver, files []string, w io.Writer) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	d.Progress = func(ev driver.Event) { events <- ev }
	defer func() { d.Progress = nil }()

	go func() {
		res, err := d.ParseAll(ctx, files)
		outcomeCh <- parseOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("diag", files, events)
	program := tea.NewProgram(model, tea.WithOutput(w), tea.WithInput(nil), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// если UI закрылся раньше, воркеры не должны блокироваться на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil && ctx.Err() == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"swc/internal/syntax"
	"swc/internal/trace"
)

// FileResult is the outcome for one file of ParseAll. Exactly one of Tree
// and Err is set.
type FileResult struct {
	Path string
	Tree *syntax.Tree
	Err  error
}

// ListSources expands paths into source files. Directories contribute every
// *.sw file below them in lexical order; files are taken as given.
// Duplicates are dropped, keeping the first occurrence.
func (d *Driver) ListSources(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, root := range paths {
		info, err := d.Fs.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		var found []string
		err = afero.Walk(d.Fs, root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && strings.HasSuffix(fi.Name(), SourceExt) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
		slices.Sort(found)
		for _, p := range found {
			add(p)
		}
	}
	return out, nil
}

// ParseAll parses files in parallel, at most Jobs at a time. Results keep
// the order of files. A file that cannot be read gets its error in the
// result; only cancellation of ctx aborts the run.
func (d *Driver) ParseAll(ctx context.Context, files []string) ([]FileResult, error) {
	ctx, span := trace.Begin(ctx, trace.ScopeDriver, "parse-all")
	defer span.End(fmt.Sprintf("%d files", len(files)))

	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(d.jobs(), len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс i уникален для горутины, мьютекс не нужен
			results[i].Path = path
			d.notify(Event{File: path, Stage: StageRead})
			text, err := d.Load(gctx, path)
			if err != nil {
				trace.Error(gctx, "read", err)
				results[i].Err = err
				d.notify(Event{File: path, Stage: StageError, Err: err})
				return nil
			}
			d.notify(Event{File: path, Stage: StageParse})
			tree := d.ParseText(gctx, text)
			results[i].Tree = tree
			d.notify(Event{File: path, Stage: StageDone, Diagnostics: len(tree.Diagnostics())})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ParseDir lists and parses every source under dir.
func (d *Driver) ParseDir(ctx context.Context, dir string) ([]FileResult, error) {
	files, err := d.ListSources([]string{dir})
	if err != nil {
		return nil, err
	}
	return d.ParseAll(ctx, files)
}

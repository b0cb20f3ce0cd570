package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	m "upshift.dev/pkg/upshift/internal/model"
	"upshift.dev/pkg/upshift/internal/syntax"
)

// LoadFailure records a file that could not be read or parsed.
type LoadFailure struct {
	Path m.Path
	Err  error
}

// TSFileAdapter turns TypeScript files into structural trees so the domain
// layer can focus on rewrite rules.
type TSFileAdapter interface {
	// Parse builds a tree for the provided filename/source pair.
	Parse(filename m.Path, src []byte) (*syntax.SourceTree, error)

	// LoadAll reads and parses paths through fsys. Trees come back in the
	// order of paths; files that fail are reported instead of aborting the
	// load. The error is only set when ctx is cancelled.
	LoadAll(ctx context.Context, fsys SourceFSAdapter, paths []m.Path) ([]*syntax.SourceTree, []LoadFailure, error)
}

// LocalTSFileAdapter provides a concrete TSFileAdapter backed by the syntax package.
type LocalTSFileAdapter struct {
	workers int
}

// NewLocalTSFileAdapter constructs a LocalTSFileAdapter. A non-positive
// workers value uses one worker per CPU.
func NewLocalTSFileAdapter(workers int) *LocalTSFileAdapter {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &LocalTSFileAdapter{workers: workers}
}

// Parse builds a tree for filename.
func (a *LocalTSFileAdapter) Parse(filename m.Path, src []byte) (*syntax.SourceTree, error) {
	return syntax.Parse(string(filename), src)
}

// LoadAll parses files concurrently. Parsing is read-only; results are stored
// by index so the returned order never depends on scheduling.
func (a *LocalTSFileAdapter) LoadAll(ctx context.Context, fsys SourceFSAdapter, paths []m.Path) ([]*syntax.SourceTree, []LoadFailure, error) {
	trees := make([]*syntax.SourceTree, len(paths))
	failures := make([]error, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.workers)

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			src, err := fsys.ReadFile(path)
			if err != nil {
				failures[i] = fmt.Errorf("read: %w", err)
				return nil
			}

			tree, err := a.Parse(path, src)
			if err != nil {
				failures[i] = err
				return nil
			}

			trees[i] = tree

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	loaded := make([]*syntax.SourceTree, 0, len(paths))

	var failed []LoadFailure

	for i, tree := range trees {
		if failures[i] != nil {
			slog.Warn("Failed to load source tree", "path", paths[i], "error", failures[i])
			failed = append(failed, LoadFailure{Path: paths[i], Err: failures[i]})

			continue
		}

		loaded = append(loaded, tree)
	}

	return loaded, failed, nil
}

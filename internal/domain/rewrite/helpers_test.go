package rewrite

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"upshift.dev/pkg/upshift/internal/adapter"
	m "upshift.dev/pkg/upshift/internal/model"
	"upshift.dev/pkg/upshift/internal/syntax"
)

type fixture struct {
	t    *testing.T
	root string
	ws   *Workspace
}

// newFixture writes files below a temporary root and loads every .ts file
// as a source tree.
func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()

	root := t.TempDir()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)

	var trees []*syntax.SourceTree

	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(files[name]), 0o644))

		if strings.HasSuffix(name, ".ts") {
			tree, err := syntax.Parse(path, []byte(files[name]))
			require.NoError(t, err)

			trees = append(trees, tree)
		}
	}

	return &fixture{
		t:    t,
		root: root,
		ws:   NewWorkspace(m.Path(root), adapter.NewLocalSourceFSAdapter(), trees),
	}
}

func (f *fixture) path(name string) m.Path {
	return m.Path(filepath.Join(f.root, filepath.FromSlash(name)))
}

func (f *fixture) source(name string) string {
	f.t.Helper()

	tree := f.ws.Tree(f.path(name))
	require.NotNil(f.t, tree, name)

	return string(tree.Source())
}

func (f *fixture) disk(name string) string {
	f.t.Helper()

	data, err := os.ReadFile(string(f.path(name)))
	require.NoError(f.t, err)

	return string(data)
}

func (f *fixture) apply(rule Rule) Outcome {
	f.t.Helper()

	out, err := rule.Apply(f.ws)
	require.NoError(f.t, err)

	return out
}

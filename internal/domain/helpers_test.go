package domain_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/domain"
	m "upshift.dev/pkg/upshift/internal/model"
)

const fixtureDir = "../../examples/angular15"

// copyFixture copies the sample project into a fresh temporary directory.
func copyFixture(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	err := filepath.WalkDir(fixtureDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}

		target := filepath.Join(root, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(target, data, 0o644)
	})
	require.NoError(t, err)

	return root
}

func readFile(t *testing.T, root, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	require.NoError(t, err)

	return string(data)
}

func writeFile(t *testing.T, root, name, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// snapshot returns the content of every file below root keyed by relative path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	files := map[string]string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		files[filepath.ToSlash(rel)] = string(data)

		return nil
	})
	require.NoError(t, err)

	return files
}

func migrationContext(root string, files adapter.SourceFSAdapter, preview bool) domain.MigrationContext {
	return domain.MigrationContext{
		Root:    m.Path(root),
		Preview: preview,
		Include: domain.DefaultInclude,
		Exclude: domain.DefaultExclude,
		Files:   files,
	}
}

func changeKeys(changes []m.Change) []string {
	keys := make([]string, len(changes))
	for i, change := range changes {
		keys[i] = string(change.File) + ": " + change.Description
	}

	return keys
}

func warningMessages(warnings []m.Warning) []string {
	messages := make([]string, len(warnings))
	for i, warning := range warnings {
		messages[i] = string(warning.File) + ": " + warning.Message
	}

	return messages
}

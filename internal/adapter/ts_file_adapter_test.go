package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "upshift.dev/pkg/upshift/internal/model"
)

func TestLocalTSFileAdapter_Parse(t *testing.T) {
	adapter := NewLocalTSFileAdapter(1)

	tree, err := adapter.Parse("app.ts", []byte("import { Component } from '@angular/core';\n"))
	require.NoError(t, err)
	require.Len(t, tree.Imports(), 1)
	assert.Equal(t, "@angular/core", tree.Imports()[0].Module)

	_, err = adapter.Parse("broken.ts", []byte("function f() {\n"))
	assert.Error(t, err)
}

func TestLocalTSFileAdapter_LoadAll(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.ts":      "export const a = 1;\n",
		"b.ts":      "export class B {\n",
		"c.spec.ts": "describe('c', () => {});\n",
	}

	for name, content := range files {
		writeTestFile(t, filepath.Join(root, name), content)
	}

	paths := []m.Path{
		m.Path(filepath.Join(root, "a.ts")),
		m.Path(filepath.Join(root, "b.ts")),
		m.Path(filepath.Join(root, "missing.ts")),
		m.Path(filepath.Join(root, "c.spec.ts")),
	}

	t.Run("keeps order and reports failures", func(t *testing.T) {
		adapter := NewLocalTSFileAdapter(0)

		trees, failures, err := adapter.LoadAll(context.Background(), NewLocalSourceFSAdapter(), paths)
		require.NoError(t, err)

		require.Len(t, trees, 2)
		assert.Equal(t, string(paths[0]), trees[0].Path())
		assert.Equal(t, string(paths[3]), trees[1].Path())

		require.Len(t, failures, 2)
		assert.Equal(t, paths[1], failures[0].Path)
		assert.Equal(t, paths[2], failures[1].Path)
		assert.True(t, IsNotExist(failures[1].Err))
	})

	t.Run("reads through an overlay", func(t *testing.T) {
		overlay := NewOverlaySourceFSAdapter(NewLocalSourceFSAdapter())
		require.NoError(t, overlay.WriteFile(paths[1], []byte("export class B {}\n"), 0o644))

		trees, failures, err := NewLocalTSFileAdapter(2).LoadAll(context.Background(), overlay, paths[:2])
		require.NoError(t, err)
		assert.Empty(t, failures)
		assert.Len(t, trees, 2)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewLocalTSFileAdapter(1).LoadAll(ctx, NewLocalSourceFSAdapter(), paths)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

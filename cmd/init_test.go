package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"upshift.dev/pkg/upshift/internal/domain"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := chdirTemp(t)
	isolateLog(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Wrote upshift.yaml")

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var cfg fileConfig
	require.NoError(t, yaml.Unmarshal(contents, &cfg))

	assert.Equal(t, currentConfigVersion, cfg.Version)
	assert.Equal(t, domain.DefaultInclude, cfg.Paths.Include)
	assert.Equal(t, "markdown", cfg.Report.Format)
	assert.Equal(t, defaultLogFilename, cfg.Log.Filename)
	assert.Contains(t, string(contents), "dry_run: false")
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)
	isolateLog(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	require.Error(t, cmd.Execute())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

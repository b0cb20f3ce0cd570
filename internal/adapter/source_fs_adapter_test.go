package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "upshift.dev/pkg/upshift/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.ts"), "export const main = 1;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.ts"), "export const child = 1;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.ts")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "main.ts")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.ts"), "export const main = 1;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.ts")
		writeTestFile(t, child, "export const child = 1;\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.ts")
	content := "import { enableProdMode } from '@angular/core';\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	if _, err := adapter.ReadFile(m.Path(filepath.Join(root, "missing.ts"))); !IsNotExist(err) {
		t.Fatalf("ReadFile() error = %v, want not-exist", err)
	}
}

func TestLocalSourceFSAdapter_Glob(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	for _, dir := range []string{"src", "src/app", "node_modules", "node_modules/lib", ".angular"} {
		mustMkdir(t, filepath.Join(root, filepath.FromSlash(dir)))
	}

	for _, file := range []string{
		"src/main.ts",
		"src/app/app.component.ts",
		"src/app/app.component.spec.ts",
		"src/app/app.component.html",
		"node_modules/lib/index.ts",
		".angular/cache.ts",
	} {
		writeTestFile(t, filepath.Join(root, filepath.FromSlash(file)), "")
	}

	t.Run("include and exclude", func(t *testing.T) {
		got, err := adapter.Glob(m.Path(root), []string{"**/*.ts"}, []string{"**/*.spec.ts"})
		if err != nil {
			t.Fatalf("Glob() error = %v", err)
		}

		want := []m.Path{
			m.Path(filepath.Join(root, "src", "app", "app.component.ts")),
			m.Path(filepath.Join(root, "src", "main.ts")),
		}

		if len(got) != len(want) {
			t.Fatalf("Glob() = %v, want %v", got, want)
		}

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Glob()[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		if _, err := adapter.Glob(m.Path(root), []string{"src/[a-"}, nil); err == nil {
			t.Fatalf("Glob() expected error for invalid pattern")
		}
	})
}

func TestMatchAny(t *testing.T) {
	cases := []struct {
		rel  string
		want bool
	}{
		{"src/app/app.component.ts", true},
		{"src/main.ts", true},
		{"src/app/app.component.html", false},
		{filepath.Join("src", "app", "x.ts"), true},
	}

	for _, tc := range cases {
		if got := MatchAny([]string{"src/**/*.ts"}, tc.rel); got != tc.want {
			t.Fatalf("MatchAny(%q) = %v, want %v", tc.rel, got, tc.want)
		}
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.ts")
	writeTestFile(t, path, "export {};\n")

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	projectDir := filepath.Join(root, "project")
	mustMkdir(t, projectDir)
	writeTestFile(t, filepath.Join(projectDir, ManifestFileName), "{}\n")

	subDir := filepath.Join(projectDir, "src", "app")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	t.Run("from a nested file", func(t *testing.T) {
		got, err := adapter.FindProjectRoot(m.Path(filepath.Join(subDir, "app.component.ts")))
		if err != nil {
			t.Fatalf("FindProjectRoot() error = %v", err)
		}

		if got != m.Path(projectDir) {
			t.Fatalf("FindProjectRoot() = %s, want %s", got, projectDir)
		}
	})

	t.Run("from the root itself", func(t *testing.T) {
		got, err := adapter.FindProjectRoot(m.Path(projectDir))
		if err != nil {
			t.Fatalf("FindProjectRoot() error = %v", err)
		}

		if got != m.Path(projectDir) {
			t.Fatalf("FindProjectRoot() = %s, want %s", got, projectDir)
		}
	})
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/sub/dir/file.ts")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "file.ts") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "file.ts"))
	}

	joined := adapter.JoinPath("/tmp", "project", "sub", "file.ts")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "file.ts") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "sub", "file.ts"))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

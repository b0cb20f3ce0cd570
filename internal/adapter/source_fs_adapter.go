// Package adapter contains the infrastructure adapters of the upshift CLI:
// filesystem access, source tree loading, configuration documents and
// report storage.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	m "upshift.dev/pkg/upshift/internal/model"
)

// ManifestFileName is the package manifest looked up in project roots.
const ManifestFileName = "package.json"

// ErrNoProjectRoot is returned when no manifest is found above a path.
var ErrNoProjectRoot = errors.New("no project root found")

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and rewriting user projects. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Glob returns the files below root whose slash-separated relative path
	// matches one of include and none of exclude, sorted.
	Glob(root m.Path, include, exclude []string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindProjectRoot searches for package.json walking up the directory tree.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// skippedDirs are never descended into while globbing.
var skippedDirs = map[string]struct{}{
	".git":         {},
	".angular":     {},
	"node_modules": {},
}

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Glob matches files below root against doublestar include/exclude patterns.
func (a *LocalSourceFSAdapter) Glob(root m.Path, include, exclude []string) ([]m.Path, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	rootStr := string(root)

	var matches []m.Path

	err := a.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if _, skip := skippedDirs[info.Name()]; skip && path != rootStr {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		if MatchAny(include, rel) && !MatchAny(exclude, rel) {
			matches = append(matches, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })

	return matches, nil
}

// MatchAny reports whether the relative path rel matches one of patterns.
// Patterns use doublestar syntax over slash-separated paths.
func MatchAny(patterns []string, rel string) bool {
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindProjectRoot searches for package.json walking up the directory tree,
// starting at startPath itself when it is a directory.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := string(startPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		manifestPath := filepath.Join(dir, ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s not found in any parent directory of %s", ErrNoProjectRoot, ManifestFileName, startPath)
		}

		dir = parent
	}
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsNotExist reports whether err says a file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

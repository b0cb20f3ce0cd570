// Package rewrite implements the structural rewrite primitives applied by
// migration steps, and the Workspace holding the files a step works on.
package rewrite

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
	"upshift.dev/pkg/upshift/internal/adapter"
	m "upshift.dev/pkg/upshift/internal/model"
	"upshift.dev/pkg/upshift/internal/syntax"
)

const defaultFileMode os.FileMode = 0o644

// TextFile is an auxiliary file edited only through text substitutions.
type TextFile struct {
	Path     m.Path
	Original []byte
	Content  []byte
}

// Modified reports whether the content changed.
func (f *TextFile) Modified() bool {
	return !bytes.Equal(f.Original, f.Content)
}

// Workspace owns the files a step reads and mutates: the parsed source
// trees, auxiliary text files loaded on demand and configuration documents.
// Nothing reaches the filesystem before Commit.
type Workspace struct {
	root   m.Path
	fs     adapter.SourceFSAdapter
	trees  []*syntax.SourceTree
	byPath map[m.Path]*syntax.SourceTree
	texts  map[m.Path]*TextFile
	docs   []*adapter.ConfigDocument
}

// NewWorkspace creates a workspace rooted at root over the given trees.
func NewWorkspace(root m.Path, fsys adapter.SourceFSAdapter, trees []*syntax.SourceTree) *Workspace {
	ws := &Workspace{
		root:   root,
		fs:     fsys,
		trees:  trees,
		byPath: make(map[m.Path]*syntax.SourceTree, len(trees)),
		texts:  make(map[m.Path]*TextFile),
	}

	for _, tree := range trees {
		ws.byPath[m.Path(tree.Path())] = tree
	}

	return ws
}

// Root returns the project root.
func (w *Workspace) Root() m.Path {
	return w.root
}

// Trees returns the source trees in load order.
func (w *Workspace) Trees() []*syntax.SourceTree {
	return w.trees
}

// Tree returns the tree loaded from path, or nil.
func (w *Workspace) Tree(path m.Path) *syntax.SourceTree {
	return w.byPath[path]
}

// AddDocument registers a configuration document so it is committed with
// the rest of the workspace.
func (w *Workspace) AddDocument(doc *adapter.ConfigDocument) {
	w.docs = append(w.docs, doc)
}

// Documents returns the registered configuration documents.
func (w *Workspace) Documents() []*adapter.ConfigDocument {
	return w.docs
}

// Rel returns path relative to the project root with forward slashes, as
// used in reports.
func (w *Workspace) Rel(path m.Path) m.Path {
	rel, err := w.fs.RelPath(w.root, path)
	if err != nil {
		return path
	}

	return m.Path(filepath.ToSlash(string(rel)))
}

// MatchFiles returns the project files matching one of globs. Globs are
// relative to the project root.
func (w *Workspace) MatchFiles(globs []string) ([]m.Path, error) {
	return w.fs.Glob(w.root, globs, nil)
}

// Text returns the auxiliary file at path, reading it on first use.
func (w *Workspace) Text(path m.Path) (*TextFile, error) {
	if file, ok := w.texts[path]; ok {
		return file, nil
	}

	content, err := w.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	file := &TextFile{Path: path, Original: content, Content: append([]byte(nil), content...)}
	w.texts[path] = file

	return file, nil
}

type pendingFile struct {
	path     m.Path
	original []byte
	content  []byte
	commit   func()
}

func (w *Workspace) pending() []pendingFile {
	var files []pendingFile

	for _, doc := range w.docs {
		if doc.Modified() {
			files = append(files, pendingFile{doc.Path(), doc.Original(), doc.Bytes(), doc.MarkCommitted})
		}
	}

	for _, tree := range w.trees {
		if tree.Modified() {
			files = append(files, pendingFile{m.Path(tree.Path()), tree.Original(), tree.Source(), tree.MarkCommitted})
		}
	}

	paths := make([]m.Path, 0, len(w.texts))
	for path := range w.texts {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	for _, path := range paths {
		file := w.texts[path]
		if file.Modified() {
			files = append(files, pendingFile{path, file.Original, file.Content, func() {
				file.Original = append([]byte(nil), file.Content...)
			}})
		}
	}

	return files
}

// Modified returns the relative paths of every file with pending changes.
func (w *Workspace) Modified() []m.Path {
	var paths []m.Path

	for _, file := range w.pending() {
		paths = append(paths, w.Rel(file.path))
	}

	return paths
}

// Diffs returns a unified diff for every file with pending changes.
func (w *Workspace) Diffs() []m.FileDiff {
	var diffs []m.FileDiff

	for _, file := range w.pending() {
		rel := w.Rel(file.path)

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(file.original)),
			B:        difflib.SplitLines(string(file.content)),
			FromFile: "a/" + string(rel),
			ToFile:   "b/" + string(rel),
			Context:  3,
		})
		if err != nil {
			slog.Error("Failed to compute diff", "path", file.path, "error", err)
			continue
		}

		diffs = append(diffs, m.FileDiff{File: rel, Diff: diff})
	}

	return diffs
}

// Commit writes every modified file through the workspace filesystem and
// returns the relative paths written.
func (w *Workspace) Commit() ([]m.Path, error) {
	var written []m.Path

	for _, file := range w.pending() {
		mode := defaultFileMode
		if info, err := w.fs.FileInfo(file.path); err == nil {
			mode = info.Mode().Perm()
		}

		if err := w.fs.WriteFile(file.path, file.content, mode); err != nil {
			slog.Error("Failed to write file", "path", file.path, "error", err)
			return written, fmt.Errorf("write %s: %w", file.path, err)
		}

		file.commit()

		written = append(written, w.Rel(file.path))
		slog.Debug("Committed file", "path", file.path)
	}

	return written, nil
}

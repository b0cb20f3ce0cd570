package adapter

import (
	"os"
	"sort"
	"sync"

	m "upshift.dev/pkg/upshift/internal/model"
)

// OverlaySourceFSAdapter is a SourceFSAdapter that keeps writes in memory.
// Reads see the buffered content first and fall back to the wrapped adapter,
// so a preview run observes its own earlier writes without touching disk.
type OverlaySourceFSAdapter struct {
	SourceFSAdapter

	mu     sync.RWMutex
	writes map[m.Path][]byte
}

// NewOverlaySourceFSAdapter wraps base with an in-memory write layer.
func NewOverlaySourceFSAdapter(base SourceFSAdapter) *OverlaySourceFSAdapter {
	return &OverlaySourceFSAdapter{
		SourceFSAdapter: base,
		writes:          make(map[m.Path][]byte),
	}
}

// ReadFile returns the buffered content of path, or reads it from the base.
func (a *OverlaySourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	a.mu.RLock()
	content, ok := a.writes[path]
	a.mu.RUnlock()

	if ok {
		return append([]byte(nil), content...), nil
	}

	return a.SourceFSAdapter.ReadFile(path)
}

// WriteFile buffers content for path. The permissions are ignored.
func (a *OverlaySourceFSAdapter) WriteFile(path m.Path, content []byte, _ os.FileMode) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.writes[path] = append([]byte(nil), content...)

	return nil
}

// Written returns the paths buffered so far, sorted.
func (a *OverlaySourceFSAdapter) Written() []m.Path {
	a.mu.RLock()
	defer a.mu.RUnlock()

	paths := make([]m.Path, 0, len(a.writes))
	for path := range a.writes {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

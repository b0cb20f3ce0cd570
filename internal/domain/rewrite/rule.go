package rewrite

import (
	"fmt"

	m "upshift.dev/pkg/upshift/internal/model"
	"upshift.dev/pkg/upshift/internal/syntax"
)

// Rule is one value-configured rewrite or detection scan. Apply never fails
// because its pattern is absent; an error means an edit could not be applied.
type Rule interface {
	Describe() string
	Apply(ws *Workspace) (Outcome, error)
}

// Outcome collects what a rule did and what it left for a human.
type Outcome struct {
	Changes  []m.Change
	Warnings []m.Warning
}

// Merge appends other to o.
func (o *Outcome) Merge(other Outcome) {
	o.Changes = append(o.Changes, other.Changes...)
	o.Warnings = append(o.Warnings, other.Warnings...)
}

// Empty reports whether the outcome holds no records.
func (o Outcome) Empty() bool {
	return len(o.Changes) == 0 && len(o.Warnings) == 0
}

func (o *Outcome) change(file m.Path, description, before, after string) {
	o.Changes = append(o.Changes, m.Change{
		File:        file,
		Description: description,
		Before:      before,
		After:       after,
	})
}

func (o *Outcome) warn(file m.Path, format string, args ...any) {
	o.Warnings = append(o.Warnings, m.Warning{
		File:    file,
		Message: fmt.Sprintf(format, args...),
	})
}

func pathOf(tree *syntax.SourceTree) m.Path {
	return m.Path(tree.Path())
}

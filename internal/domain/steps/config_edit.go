package steps

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"upshift.dev/pkg/upshift/internal/adapter"
	m "upshift.dev/pkg/upshift/internal/model"
)

// ConfigEdit is a key-path patch of the build configuration document.
// Path segments may be "*" to match every member of an object.
type ConfigEdit interface {
	Describe() string
	Apply(doc *adapter.ConfigDocument) ([]m.Change, error)
}

// ReplaceValue replaces the string Old with New wherever Path resolves to
// that string or to an array containing it. When the array already holds
// New, the Old entry is removed instead.
type ReplaceValue struct {
	Path []string
	Old  string
	New  string
}

func (e ReplaceValue) Describe() string {
	return fmt.Sprintf("replace %q with %q at %s", e.Old, e.New, strings.Join(e.Path, "."))
}

func (e ReplaceValue) Apply(doc *adapter.ConfigDocument) ([]m.Change, error) {
	var changes []m.Change

	for _, path := range doc.Expand(e.Path...) {
		value := doc.Get(path)

		switch {
		case value.Type == gjson.String && value.String() == e.Old:
			if err := doc.Set(path, e.New); err != nil {
				return changes, err
			}
		case value.IsArray():
			changed, err := e.replaceElement(doc, path, value)
			if err != nil {
				return changes, err
			}

			if !changed {
				continue
			}
		default:
			continue
		}

		changes = append(changes, m.Change{
			Description: fmt.Sprintf("%s: replaced %s", path, e.Old),
			Before:      e.Old,
			After:       e.New,
		})
	}

	return changes, nil
}

func (e ReplaceValue) replaceElement(doc *adapter.ConfigDocument, path string, array gjson.Result) (bool, error) {
	index, hasNew := -1, false

	for i, el := range array.Array() {
		switch el.String() {
		case e.Old:
			if index < 0 {
				index = i
			}
		case e.New:
			hasNew = true
		}
	}

	if index < 0 {
		return false, nil
	}

	elemPath := fmt.Sprintf("%s.%d", path, index)
	if hasNew {
		return true, doc.Delete(elemPath)
	}

	return true, doc.Set(elemPath, e.New)
}

// RenameKey renames the member From to To in every object Path resolves to.
type RenameKey struct {
	Path []string
	From string
	To   string
}

func (e RenameKey) Describe() string {
	return fmt.Sprintf("rename %s to %s at %s", e.From, e.To, strings.Join(e.Path, "."))
}

func (e RenameKey) Apply(doc *adapter.ConfigDocument) ([]m.Change, error) {
	var changes []m.Change

	for _, path := range doc.Expand(e.Path...) {
		renamed, err := doc.RenameKey(path, e.From, e.To)
		if err != nil {
			return changes, err
		}

		if renamed {
			changes = append(changes, m.Change{
				Description: fmt.Sprintf("%s: renamed %s to %s", path, e.From, e.To),
				Before:      e.From,
				After:       e.To,
			})
		}
	}

	return changes, nil
}

package rewrite

import (
	"fmt"
	"regexp"
	"strings"

	m "upshift.dev/pkg/upshift/internal/model"
	"upshift.dev/pkg/upshift/internal/syntax"
)

// Replacement is one regular expression substitution.
type Replacement struct {
	Pattern     *regexp.Regexp
	With        string
	Description string
}

// TextPatternReplace applies Replacements, in order, to every file matching
// Globs. Tracked source files go through their tree so they must stay
// parsable; other files are edited as plain text.
type TextPatternReplace struct {
	Globs        []string
	Replacements []Replacement
}

func (r TextPatternReplace) Describe() string {
	return fmt.Sprintf("text substitutions in %s", strings.Join(r.Globs, ", "))
}

func (r TextPatternReplace) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	paths, err := ws.MatchFiles(r.Globs)
	if err != nil {
		return out, fmt.Errorf("match %v: %w", r.Globs, err)
	}

	for _, path := range paths {
		file := ws.Rel(path)

		if tree := ws.Tree(path); tree != nil {
			content := tree.Source()

			updated, changes := r.replace(file, content)
			if len(changes) == 0 {
				continue
			}

			if err := tree.Apply(syntax.Replace(syntax.Span{Start: 0, End: len(content)}, string(updated))); err != nil {
				return out, fmt.Errorf("substitute in %s: %w", path, err)
			}

			out.Changes = append(out.Changes, changes...)

			continue
		}

		text, err := ws.Text(path)
		if err != nil {
			return out, err
		}

		updated, changes := r.replace(file, text.Content)
		text.Content = updated
		out.Changes = append(out.Changes, changes...)
	}

	return out, nil
}

func (r TextPatternReplace) replace(file m.Path, content []byte) ([]byte, []m.Change) {
	var changes []m.Change

	for _, rep := range r.Replacements {
		match := rep.Pattern.Find(content)
		if match == nil {
			continue
		}

		before := string(match)
		content = rep.Pattern.ReplaceAll(content, []byte(rep.With))

		changes = append(changes, m.Change{
			File:        file,
			Description: rep.Description,
			Before:      before,
			After:       rep.Pattern.ReplaceAllString(before, rep.With),
		})
	}

	return content, changes
}

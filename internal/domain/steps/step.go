// Package steps holds the migration step type and the catalogue of steps,
// one per major version boundary.
package steps

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/mod/semver"
	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/domain/rewrite"
	m "upshift.dev/pkg/upshift/internal/model"
)

// Step is one version boundary: the manifest patches, the build
// configuration patches and the source rules that carry a project from
// From to To. Steps are values; nothing in a Step changes after the
// catalogue is built.
type Step struct {
	From        m.Version
	To          m.Version
	Name        string
	Description string
	Manifest    []DependencyBump
	BuildConfig []ConfigEdit
	Rules       []rewrite.Rule
}

// Info returns the step descriptor used in results.
func (s Step) Info() m.StepInfo {
	return m.StepInfo{From: s.From, To: s.To, Name: s.Name, Description: s.Description}
}

// dependencySections are the package.json objects holding version ranges.
var dependencySections = []string{"dependencies", "devDependencies"}

// DependencyBump sets the version range of a package. A Name ending in
// "/*" matches every package of that scope. Only packages already listed
// are touched.
type DependencyBump struct {
	Name    string
	Version string
}

// Matches reports whether pkg is covered by the bump.
func (b DependencyBump) Matches(pkg string) bool {
	if prefix, ok := strings.CutSuffix(b.Name, "*"); ok {
		return strings.HasPrefix(pkg, prefix)
	}

	return pkg == b.Name
}

// outdated reports whether range should be replaced by the bump version.
// Ranges already at or above the bump are left alone.
func (b DependencyBump) outdated(current string) bool {
	if current == b.Version {
		return false
	}

	have, want := canonicalRange(current), canonicalRange(b.Version)
	if semver.IsValid(have) && semver.IsValid(want) {
		return semver.Compare(have, want) < 0
	}

	return true
}

// canonicalRange turns the lower bound of a range such as "^16.0.0" or
// "~0.13.0" into a semver string ("v16.0.0").
func canonicalRange(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}

	return "v" + strings.TrimLeft(fields[0], "^~=<>v")
}

// Apply rewrites the matching entries of doc that are older than the bump.
func (b DependencyBump) Apply(doc *adapter.ConfigDocument) ([]m.Change, error) {
	var changes []m.Change

	for _, section := range dependencySections {
		deps := doc.Get(adapter.KeyPath(section))
		if !deps.IsObject() {
			continue
		}

		current := map[string]string{}

		deps.ForEach(func(key, value gjson.Result) bool {
			if b.Matches(key.String()) && b.outdated(value.String()) {
				current[key.String()] = value.String()
			}

			return true
		})

		names := make([]string, 0, len(current))
		for name := range current {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			if err := doc.Set(adapter.KeyPath(section, name), b.Version); err != nil {
				return changes, err
			}

			changes = append(changes, m.Change{
				Description: fmt.Sprintf("%s: bumped %s", section, name),
				Before:      current[name],
				After:       b.Version,
			})
		}
	}

	return changes, nil
}

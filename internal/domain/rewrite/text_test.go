package rewrite

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneRule() TextPatternReplace {
	return TextPatternReplace{
		Globs: []string{"src/**/*.ts", "*.js"},
		Replacements: []Replacement{
			{
				Pattern:     regexp.MustCompile(`(['"])zone\.js/dist/zone-testing(['"])`),
				With:        "${1}zone.js/testing${2}",
				Description: "use the zone.js/testing entry point",
			},
			{
				Pattern:     regexp.MustCompile(`(['"])zone\.js/dist/zone(['"])`),
				With:        "${1}zone.js${2}",
				Description: "use the zone.js entry point",
			},
		},
	}
}

func TestTextPatternReplace_Apply(t *testing.T) {
	f := newFixture(t, map[string]string{
		"src/polyfills.ts": "import 'zone.js/dist/zone';\n",
		"src/test.ts":      "import \"zone.js/dist/zone-testing\";\nimport { getTestBed } from '@angular/core/testing';\n",
		"karma.conf.js":    "require('zone.js/dist/zone');\n",
		"README.md":        "zone.js/dist/zone\n",
	})

	out := f.apply(zoneRule())

	assert.Equal(t, "import 'zone.js';\n", f.source("src/polyfills.ts"))
	assert.Equal(t, "import \"zone.js/testing\";\nimport { getTestBed } from '@angular/core/testing';\n", f.source("src/test.ts"))
	require.Len(t, out.Changes, 3)

	for _, change := range out.Changes {
		assert.NotEqual(t, change.Before, change.After)
	}

	assert.Equal(t, "require('zone.js/dist/zone');\n", f.disk("karma.conf.js"), "nothing written before commit")

	written, err := f.ws.Commit()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"karma.conf.js", "src/polyfills.ts", "src/test.ts"}, pathStrings(written))
	assert.Equal(t, "require('zone.js');\n", f.disk("karma.conf.js"))
	assert.Equal(t, "zone.js/dist/zone\n", f.disk("README.md"))

	again := f.apply(zoneRule())
	assert.True(t, again.Empty())
}

func TestTextPatternReplace_InvalidGlob(t *testing.T) {
	f := newFixture(t, map[string]string{"a.ts": "const a = 1;\n"})

	_, err := TextPatternReplace{Globs: []string{"[a-"}}.Apply(f.ws)

	assert.Error(t, err)
}

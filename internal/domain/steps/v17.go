package steps

import (
	"regexp"

	"upshift.dev/pkg/upshift/internal/domain/rewrite"
)

func angular17() Step {
	return Step{
		From:        16,
		To:          17,
		Name:        "Angular 17",
		Description: "zone.js deep imports are replaced by package entry points and serve targets use buildTarget.",
		Manifest: frameworkBumps("^17.0.0",
			DependencyBump{Name: "typescript", Version: "~5.2.2"},
			DependencyBump{Name: "zone.js", Version: "~0.14.2"},
		),
		BuildConfig: []ConfigEdit{
			ReplaceValue{Path: polyfillPaths(), Old: "zone.js/dist/zone", New: "zone.js"},
			ReplaceValue{Path: polyfillPaths(), Old: "zone.js/dist/zone-testing", New: "zone.js/testing"},
			RenameKey{Path: targetOptions, From: "browserTarget", To: "buildTarget"},
			RenameKey{Path: targetConfigurations, From: "browserTarget", To: "buildTarget"},
		},
		Rules: []rewrite.Rule{
			rewrite.TextPatternReplace{
				Globs: []string{"src/**/*.ts"},
				Replacements: []rewrite.Replacement{
					{
						Pattern:     regexp.MustCompile(`(['"])zone\.js/dist/zone-testing(?:\.js)?(['"])`),
						With:        "${1}zone.js/testing${2}",
						Description: "import zone.js/testing instead of zone.js/dist/zone-testing",
					},
					{
						Pattern:     regexp.MustCompile(`(['"])zone\.js/dist/zone(?:\.js)?(['"])`),
						With:        "${1}zone.js${2}",
						Description: "import zone.js instead of zone.js/dist/zone",
					},
				},
			},
			rewrite.DropBinding{
				Module: "@angular/router/testing",
				Symbol: "setupTestingRouter",
				Hint:   "Configure the router with RouterModule.forRoot() or provideRouter() in the testing module.",
			},
			rewrite.DetectImport{
				Module:  platformBrowser,
				Symbol:  "withNoDomReuse",
				Message: "withNoDomReuse was removed; hydration is enabled only through provideClientHydration().",
			},
			rewrite.DetectPattern{
				Pattern: regexp.MustCompile(`\bmalformedUriErrorHandler\b`),
				Message: "the malformedUriErrorHandler router option moved to a custom UrlSerializer.parse().",
			},
		},
	}
}

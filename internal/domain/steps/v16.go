package steps

import (
	"regexp"

	"upshift.dev/pkg/upshift/internal/domain/rewrite"
)

const platformBrowser = "@angular/platform-browser"

func angular16() Step {
	return Step{
		From:        15,
		To:          16,
		Name:        "Angular 16",
		Description: "Transfer state moves to @angular/core and component factories are no longer needed.",
		Manifest: frameworkBumps("^16.0.0",
			DependencyBump{Name: "typescript", Version: "~5.0.4"},
			DependencyBump{Name: "zone.js", Version: "~0.13.0"},
		),
		Rules: []rewrite.Rule{
			rewrite.RemoveFromMetadataArray{
				Decorators: moduleDecorators,
				Properties: []string{"imports"},
				Symbol:     "BrowserTransferStateModule",
			},
			rewrite.DropBinding{
				Module: platformBrowser,
				Symbol: "BrowserTransferStateModule",
				Hint:   "TransferState is injectable without importing a module.",
			},
			rewrite.RelocateBinding{Symbol: "TransferState", From: platformBrowser, To: "@angular/core"},
			rewrite.RelocateBinding{Symbol: "makeStateKey", From: platformBrowser, To: "@angular/core"},
			rewrite.RelocateBinding{Symbol: "StateKey", From: platformBrowser, To: "@angular/core"},
			rewrite.InlineFactoryCall{Outer: "createComponent", Inner: "resolveComponentFactory"},
			rewrite.RemoveTypedConstructorParameter{Type: "ComponentFactoryResolver"},
			rewrite.RemoveTypedField{Type: "ComponentFactoryResolver"},
			rewrite.DropBinding{
				Module: "@angular/core",
				Symbol: "ComponentFactoryResolver",
				Hint:   "Pass the component class to ViewContainerRef.createComponent().",
			},
			rewrite.DetectImport{
				Module:  "@angular/core",
				Symbol:  "ReflectiveInjector",
				Message: "ReflectiveInjector was removed; use Injector.create().",
			},
			rewrite.DetectMetadataProperty{
				Decorators: append([]string{"Component"}, moduleDecorators...),
				Property:   "entryComponents",
				Message:    "entryComponents is no longer used; remove it.",
			},
			rewrite.DetectMetadataProperty{
				Decorators: []string{"Component"},
				Property:   "moduleId",
				Message:    "moduleId is no longer used; remove it.",
			},
			rewrite.DetectPattern{
				Pattern: regexp.MustCompile(`\brelativeLinkResolution\b`),
				Message: "the relativeLinkResolution router option was removed; delete it.",
			},
		},
	}
}

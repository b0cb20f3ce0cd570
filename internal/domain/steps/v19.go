package steps

import (
	"upshift.dev/pkg/upshift/internal/domain/rewrite"
)

func angular19() Step {
	return Step{
		From:        18,
		To:          19,
		Name:        "Angular 19",
		Description: "Declarations become standalone by default, so module-declared ones are marked standalone: false.",
		Manifest: frameworkBumps("^19.0.0",
			DependencyBump{Name: "typescript", Version: "~5.6.0"},
			DependencyBump{Name: "zone.js", Version: "~0.15.0"},
		),
		Rules: []rewrite.Rule{
			rewrite.InsertMetadataProperty{
				Decorators: componentDecorators,
				Property:   "standalone",
				Literal:    "false",
				Position:   rewrite.PositionLast,
			},
			rewrite.RenameBinding{Module: "@angular/core", From: "ExperimentalPendingTasks", To: "PendingTasks"},
			rewrite.RemoveStaticMethodCall{Type: "BrowserModule", Method: "withServerTransition"},
			rewrite.DetectImport{
				Module:  "@angular/core",
				Symbol:  "effect",
				Message: "effects now run during change detection; check effects that relied on the previous timing.",
			},
			rewrite.DetectMethodCall{
				Method:  "flushEffects",
				Message: "TestBed.flushEffects() is deprecated; use TestBed.tick().",
			},
		},
	}
}

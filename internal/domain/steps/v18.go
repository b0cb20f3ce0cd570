package steps

import (
	"upshift.dev/pkg/upshift/internal/domain/rewrite"
)

const commonHTTP = "@angular/common/http"

func angular18() Step {
	return Step{
		From:        17,
		To:          18,
		Name:        "Angular 18",
		Description: "The async test helper becomes waitForAsync and HttpClientModule is replaced by provideHttpClient().",
		Manifest: frameworkBumps("^18.0.0",
			DependencyBump{Name: "typescript", Version: "~5.4.0"},
		),
		Rules: []rewrite.Rule{
			rewrite.RenameBinding{Module: "@angular/core/testing", From: "async", To: "waitForAsync"},
			rewrite.RemoveFromMetadataArray{
				Decorators: moduleDecorators,
				Properties: []string{"imports"},
				Symbol:     "HttpClientModule",
			},
			rewrite.DropBinding{
				Module: commonHTTP,
				Symbol: "HttpClientModule",
				Hint:   "Add provideHttpClient(withInterceptorsFromDi()) to the providers of the affected module.",
			},
			rewrite.DetectImport{
				Module:  commonHTTP + "/testing",
				Symbol:  "HttpClientTestingModule",
				Message: "HttpClientTestingModule is deprecated; use provideHttpClient() with provideHttpClientTesting().",
			},
			rewrite.DetectImport{
				Module:  "@angular/common",
				Symbol:  "isPlatformWorkerUi",
				Message: "isPlatformWorkerUi was removed together with the web worker platform.",
			},
		},
	}
}

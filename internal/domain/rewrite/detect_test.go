package rewrite

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detectSource = `import { HttpClientModule } from '@angular/common/http';
import { RouterModule } from '@angular/router';

@NgModule({
  imports: [RouterModule.forRoot(routes, { relativeLinkResolution: 'legacy' })],
  entryComponents: [DialogComponent],
})
export class AppModule {
  constructor(router: Router) {
    router.getCurrentNavigation();
  }
}
`

func TestDetectors(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want []string
	}{
		{
			name: "method call",
			rule: DetectMethodCall{Method: "getCurrentNavigation", Message: "use currentNavigation signal"},
			want: []string{"line 10: .getCurrentNavigation(): use currentNavigation signal"},
		},
		{
			name: "import of a symbol",
			rule: DetectImport{Module: "@angular/common/http", Symbol: "HttpClientModule", Message: "use provideHttpClient()"},
			want: []string{"line 1: use provideHttpClient()"},
		},
		{
			name: "import of an absent symbol",
			rule: DetectImport{Module: "@angular/router", Symbol: "Router", Message: "x"},
		},
		{
			name: "metadata property",
			rule: DetectMetadataProperty{Decorators: []string{"NgModule"}, Property: "entryComponents", Message: "remove it"},
			want: []string{"line 6: entryComponents of AppModule: remove it"},
		},
		{
			name: "pattern",
			rule: DetectPattern{Pattern: regexp.MustCompile(`relativeLinkResolution`), Message: "option removed"},
			want: []string{"line 5: option removed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, map[string]string{"src/app.module.ts": detectSource})

			out := f.apply(tt.rule)

			assert.Empty(t, out.Changes)
			require.Len(t, out.Warnings, len(tt.want))

			for i, msg := range tt.want {
				assert.Equal(t, msg, out.Warnings[i].Message)
				assert.Equal(t, "src/app.module.ts", string(out.Warnings[i].File))
			}

			assert.Empty(t, f.ws.Modified())
			assert.NotEmpty(t, tt.rule.Describe())
		})
	}
}

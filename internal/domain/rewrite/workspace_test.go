package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"upshift.dev/pkg/upshift/internal/adapter"
	m "upshift.dev/pkg/upshift/internal/model"
)

func pathStrings(paths []m.Path) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = string(p)
	}

	return out
}

func TestWorkspace_DiffsAndCommit(t *testing.T) {
	f := newFixture(t, map[string]string{
		"package.json": `{"dependencies": {"@angular/core": "^15.2.0"}}`,
		"src/a.ts":     "import { async } from '@angular/core/testing';\n",
	})

	doc, err := adapter.ParseConfigDocument(f.path("package.json"), []byte(f.disk("package.json")))
	require.NoError(t, err)
	f.ws.AddDocument(doc)

	require.NoError(t, doc.Set(adapter.KeyPath("dependencies", "@angular/core"), "^16.0.0"))
	f.apply(RenameBinding{Module: "@angular/core/testing", From: "async", To: "waitForAsync"})

	assert.Equal(t, []string{"package.json", "src/a.ts"}, pathStrings(f.ws.Modified()))

	diffs := f.ws.Diffs()
	require.Len(t, diffs, 2)
	assert.Equal(t, "src/a.ts", string(diffs[1].File))
	assert.Contains(t, diffs[1].Diff, "--- a/src/a.ts")
	assert.Contains(t, diffs[1].Diff, "+import { waitForAsync } from '@angular/core/testing';")
	assert.Contains(t, diffs[1].Diff, "-import { async } from '@angular/core/testing';")

	written, err := f.ws.Commit()
	require.NoError(t, err)
	assert.Equal(t, []string{"package.json", "src/a.ts"}, pathStrings(written))
	assert.Equal(t, "import { waitForAsync } from '@angular/core/testing';\n", f.disk("src/a.ts"))
	assert.Contains(t, f.disk("package.json"), `"^16.0.0"`)

	assert.Empty(t, f.ws.Modified())
	assert.Empty(t, f.ws.Diffs())
}

func TestWorkspace_CommitThroughOverlay(t *testing.T) {
	f := newFixture(t, map[string]string{"src/a.ts": "import { async } from '@angular/core/testing';\n"})

	overlay := adapter.NewOverlaySourceFSAdapter(adapter.NewLocalSourceFSAdapter())
	ws := NewWorkspace(m.Path(f.root), overlay, f.ws.Trees())

	_, err := RenameBinding{Module: "@angular/core/testing", From: "async", To: "waitForAsync"}.Apply(ws)
	require.NoError(t, err)

	_, err = ws.Commit()
	require.NoError(t, err)

	assert.Equal(t, "import { async } from '@angular/core/testing';\n", f.disk("src/a.ts"))

	content, err := overlay.ReadFile(f.path("src/a.ts"))
	require.NoError(t, err)
	assert.Equal(t, "import { waitForAsync } from '@angular/core/testing';\n", string(content))
	assert.Equal(t, []m.Path{f.path("src/a.ts")}, overlay.Written())
}

// Every rule must leave a project without the targeted patterns untouched.
func TestRules_NoOpOnCleanProject(t *testing.T) {
	clean := `import { Component, inject } from '@angular/core';
import { HttpClient } from '@angular/common/http';

@Component({ selector: 'app-root', standalone: true, template: '' })
export class AppComponent {
  private http = inject(HttpClient);

  constructor(private readonly title: Title) {}
}
`

	rules := []Rule{
		RenameBinding{Module: "@angular/core/testing", From: "async", To: "waitForAsync"},
		RelocateBinding{Symbol: "TransferState", From: "@angular/platform-browser", To: "@angular/core"},
		DropBinding{Module: "@angular/core", Symbol: "ComponentFactoryResolver"},
		RemoveFromMetadataArray{Decorators: []string{"NgModule"}, Properties: []string{"imports"}, Symbol: "HttpClientModule"},
		InsertMetadataProperty{Decorators: []string{"Component"}, Property: "standalone", Literal: "false"},
		RemoveTypedConstructorParameter{Type: "ComponentFactoryResolver"},
		RemoveTypedField{Type: "ComponentFactoryResolver"},
		InlineFactoryCall{Outer: "createComponent", Inner: "resolveComponentFactory"},
		RemoveStaticMethodCall{Type: "BrowserModule", Method: "withServerTransition"},
		zoneRule(),
	}

	f := newFixture(t, map[string]string{"src/app.component.ts": clean})

	for _, rule := range rules {
		out := f.apply(rule)
		assert.True(t, out.Empty(), rule.Describe())
	}

	assert.Empty(t, f.ws.Modified())
	assert.Equal(t, clean, f.source("src/app.component.ts"))
}

func TestWorkspace_Text(t *testing.T) {
	f := newFixture(t, map[string]string{"notes.txt": "hello\n"})

	file, err := f.ws.Text(f.path("notes.txt"))
	require.NoError(t, err)
	assert.False(t, file.Modified())

	same, err := f.ws.Text(f.path("notes.txt"))
	require.NoError(t, err)
	assert.Same(t, file, same)

	_, err = f.ws.Text(f.path("missing.txt"))
	assert.Error(t, err)

	assert.Nil(t, f.ws.Tree(f.path("notes.txt")))
}

package domain

import (
	"context"
	"fmt"
	"log/slog"

	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/domain/rewrite"
	"upshift.dev/pkg/upshift/internal/domain/steps"
	m "upshift.dev/pkg/upshift/internal/model"
)

// BuildConfigFileName is the workspace configuration patched by steps.
const BuildConfigFileName = "angular.json"

// MigrationContext carries the settings of one run to every step.
type MigrationContext struct {
	Root         m.Path
	Preview      bool
	SkipManifest bool
	Include      []string
	Exclude      []string
	// Files is the filesystem view of the run. In preview mode it buffers
	// writes in memory so later steps read what earlier steps produced.
	Files  adapter.SourceFSAdapter
	Logger *slog.Logger
}

func (mc MigrationContext) logger() *slog.Logger {
	if mc.Logger != nil {
		return mc.Logger
	}

	return slog.Default()
}

// Orchestrator runs a single migration step against a project.
type Orchestrator interface {
	// RunStep never returns an error: failures, including panics raised by
	// a rule, are recorded in the step result.
	RunStep(ctx context.Context, mc MigrationContext, step steps.Step) m.StepResult
}

type orchestrator struct {
	adapter.TSFileAdapter
}

// NewOrchestrator constructs an Orchestrator loading sources with tsAdapter.
func NewOrchestrator(tsAdapter adapter.TSFileAdapter) Orchestrator {
	return &orchestrator{TSFileAdapter: tsAdapter}
}

func (o *orchestrator) RunStep(ctx context.Context, mc MigrationContext, step steps.Step) (result m.StepResult) {
	info := step.Info()
	logger := mc.logger().With("step", info.Label())

	result = m.StepResult{Step: info, Changes: []m.Change{}, Warnings: []m.Warning{}}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Step panicked", "panic", r)
			result.Errors = append(result.Errors, m.StepError{Step: info.Label(), Message: fmt.Sprintf("panic: %v", r)})
		}
	}()

	logger.Info("Running step", "name", info.Name)

	ws, err := o.loadWorkspace(ctx, mc, &result)
	if err != nil {
		logger.Error("Failed to load workspace", "error", err)
		result.Errors = append(result.Errors, m.StepError{Step: info.Label(), Message: err.Error()})

		return result
	}

	if err := o.apply(mc, step, ws, &result); err != nil {
		logger.Error("Failed to apply step", "error", err)
		result.Errors = append(result.Errors, m.StepError{Step: info.Label(), Message: err.Error()})
	}

	if mc.Preview {
		result.Diffs = ws.Diffs()
	}

	written, err := ws.Commit()
	if err != nil {
		logger.Error("Failed to commit step", "error", err)
		result.Errors = append(result.Errors, m.StepError{Step: info.Label(), Message: err.Error()})
	}

	logger.Info("Step finished",
		"changes", len(result.Changes),
		"warnings", len(result.Warnings),
		"errors", len(result.Errors),
		"files", len(written),
		"preview", mc.Preview,
	)

	return result
}

// loadWorkspace reads the configuration documents and parses the sources
// selected by the include/exclude globs. Unparsable sources become warnings.
func (o *orchestrator) loadWorkspace(ctx context.Context, mc MigrationContext, result *m.StepResult) (*rewrite.Workspace, error) {
	paths, err := mc.Files.Glob(mc.Root, mc.Include, mc.Exclude)
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}

	trees, failures, err := o.LoadAll(ctx, mc.Files, paths)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}

	ws := rewrite.NewWorkspace(mc.Root, mc.Files, trees)

	for _, failure := range failures {
		result.Warnings = append(result.Warnings, m.Warning{
			File:    ws.Rel(failure.Path),
			Message: fmt.Sprintf("skipped, file could not be parsed: %v", failure.Err),
		})
	}

	for _, name := range []string{adapter.ManifestFileName, BuildConfigFileName} {
		doc, err := readDocument(mc.Files, mc.Files.JoinPath(string(mc.Root), name))
		if err != nil {
			return nil, err
		}

		if doc != nil {
			ws.AddDocument(doc)
		}
	}

	return ws, nil
}

func (o *orchestrator) apply(mc MigrationContext, step steps.Step, ws *rewrite.Workspace, result *m.StepResult) error {
	for _, doc := range ws.Documents() {
		file := ws.Rel(doc.Path())

		var (
			changes []m.Change
			err     error
		)

		switch string(file) {
		case adapter.ManifestFileName:
			if mc.SkipManifest {
				continue
			}

			changes, err = patchManifest(doc, step.Manifest)
		case BuildConfigFileName:
			changes, err = patchBuildConfig(doc, step.BuildConfig)
		}

		for _, change := range changes {
			change.File = file
			result.Changes = append(result.Changes, change)
		}

		if err != nil {
			return fmt.Errorf("patch %s: %w", file, err)
		}
	}

	for _, rule := range step.Rules {
		out, err := applyRule(rule, ws)

		result.Changes = append(result.Changes, out.Changes...)
		result.Warnings = append(result.Warnings, out.Warnings...)

		if err != nil {
			return fmt.Errorf("%s: %w", rule.Describe(), err)
		}

		mc.logger().Debug("Applied rule", "rule", rule.Describe(), "changes", len(out.Changes), "warnings", len(out.Warnings))
	}

	return nil
}

// applyRule runs rule, turning a panic into an error so the edits of the
// rules before it are still committed.
func applyRule(rule rewrite.Rule, ws *rewrite.Workspace) (out rewrite.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return rule.Apply(ws)
}

func patchManifest(doc *adapter.ConfigDocument, bumps []steps.DependencyBump) ([]m.Change, error) {
	var changes []m.Change

	for _, bump := range bumps {
		got, err := bump.Apply(doc)
		changes = append(changes, got...)

		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

func patchBuildConfig(doc *adapter.ConfigDocument, edits []steps.ConfigEdit) ([]m.Change, error) {
	var changes []m.Change

	for _, edit := range edits {
		got, err := edit.Apply(doc)
		changes = append(changes, got...)

		if err != nil {
			return changes, fmt.Errorf("%s: %w", edit.Describe(), err)
		}
	}

	return changes, nil
}

// readDocument loads a configuration document, returning nil when the file
// does not exist.
func readDocument(fsys adapter.SourceFSAdapter, path m.Path) (*adapter.ConfigDocument, error) {
	data, err := fsys.ReadFile(path)
	if adapter.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return adapter.ParseConfigDocument(path, data)
}

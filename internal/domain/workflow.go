package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"upshift.dev/pkg/upshift/internal/adapter"
	"upshift.dev/pkg/upshift/internal/controller"
	"upshift.dev/pkg/upshift/internal/domain/steps"
	m "upshift.dev/pkg/upshift/internal/model"
)

// Source selection applied to every run.
var (
	DefaultInclude = []string{"src/**/*.ts"}
	DefaultExclude = []string{"**/node_modules/**", "**/dist/**", "**/*.d.ts"}
)

// MigrateArgs contains the arguments of a migration run.
type MigrateArgs struct {
	Project m.Path
	// From overrides the version detected from the manifest when positive.
	From m.Version
	// To defaults to the newest catalogued version when zero.
	To           m.Version
	Preview      bool
	SkipManifest bool
	Include      []string
	Exclude      []string
	// Output is the report directory; the project root when empty.
	Output       m.Path
	ReportFormat adapter.ReportFormat
}

// ListArgs restricts the listed catalogue to a version range. Zero bounds
// are open.
type ListArgs struct {
	From m.Version
	To   m.Version
}

// ViewArgs contains the arguments for rendering a saved report.
type ViewArgs struct {
	Path m.Path
}

// Workflow defines the use cases of the CLI.
type Workflow interface {
	Migrate(ctx context.Context, args MigrateArgs) (m.RunResult, error)
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Orchestrator
	catalogue []steps.Step
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	catalogue []steps.Step,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Orchestrator:    orchestrator,
		catalogue:       catalogue,
	}
}

func (w *workflow) Migrate(ctx context.Context, args MigrateArgs) (m.RunResult, error) {
	root, manifest, err := w.resolveProject(args.Project)
	if err != nil {
		return m.RunResult{}, err
	}

	current, target, err := w.versionRange(args, manifest)
	if err != nil {
		return m.RunResult{}, err
	}

	selected, warnings := SelectSteps(w.catalogue, current, target)

	slog.Info("Starting migration",
		"root", root,
		"from", current,
		"to", target,
		"steps", len(selected),
		"preview", args.Preview,
	)

	run := m.RunResult{From: current, To: target, Preview: args.Preview, Steps: []m.StepResult{}, Warnings: warnings}

	if err := w.Start(ctx, controller.WithMigrateMode(args.Preview)); err != nil {
		return run, fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	plan := m.Plan{Current: current, Target: target, Steps: Infos(selected)}
	if err := w.DisplayPlan(ctx, plan, warnings); err != nil {
		return run, fmt.Errorf("display plan: %w", err)
	}

	mc := w.migrationContext(root, args)

	var interrupted error

	for _, step := range selected {
		if err := ctx.Err(); err != nil {
			slog.Warn("Migration interrupted", "before", step.Info().Label(), "error", err)
			interrupted = err

			break
		}

		w.DisplayStepStarted(ctx, step.Info())

		result := w.RunStep(ctx, mc, step)
		run.Add(result)

		w.DisplayStepResult(ctx, result)
	}

	var reportPath m.Path

	if len(selected) > 0 {
		reportPath, err = w.SaveReport(w.reportDir(root, args.Output), reportFormat(args.ReportFormat), run)
		if err != nil {
			slog.Error("Failed to save report", "error", err)
			return run, fmt.Errorf("save report: %w", err)
		}
	}

	if err := w.DisplaySummary(ctx, run, reportPath); err != nil && interrupted == nil {
		return run, fmt.Errorf("display summary: %w", err)
	}

	w.Wait(ctx)

	if interrupted != nil {
		return run, interrupted
	}

	if run.Failed() {
		return run, ErrMigrationIncomplete
	}

	return run, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if args.From < 0 || args.To < 0 {
		return fmt.Errorf("%w: versions must be positive", ErrInvalidVersion)
	}

	selected := w.catalogue

	var warnings []m.Warning

	if args.From != 0 || args.To != 0 {
		from, to := args.From, args.To
		if from == 0 {
			from = w.oldest()
		}

		if to == 0 {
			to = w.newest()
		}

		selected, warnings = SelectSteps(w.catalogue, from, to)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	return w.DisplayCatalogue(ctx, Infos(selected), warnings)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	run, err := w.LoadReport(args.Path)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	for _, step := range run.Steps {
		w.DisplayStepResult(ctx, step)
	}

	if err := w.DisplaySummary(ctx, run, args.Path); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// resolveProject locates the project root above project and parses its manifest.
func (w *workflow) resolveProject(project m.Path) (m.Path, *adapter.ConfigDocument, error) {
	if project == "" {
		project = "."
	}

	info, err := w.FileInfo(project)
	if err != nil || !info.IsDir() {
		return "", nil, fmt.Errorf("%w: %s", ErrProjectNotFound, project)
	}

	root, err := w.FindProjectRoot(project)
	if err != nil {
		if errors.Is(err, adapter.ErrNoProjectRoot) {
			return "", nil, fmt.Errorf("%w: %w", ErrManifestNotFound, err)
		}

		return "", nil, fmt.Errorf("find project root: %w", err)
	}

	path := w.JoinPath(string(root), adapter.ManifestFileName)

	data, err := w.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrManifestNotFound, err)
	}

	manifest, err := adapter.ParseConfigDocument(path, data)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrVersionUndetectable, err)
	}

	return root, manifest, nil
}

func (w *workflow) versionRange(args MigrateArgs, manifest *adapter.ConfigDocument) (m.Version, m.Version, error) {
	if args.From < 0 || args.To < 0 {
		return 0, 0, fmt.Errorf("%w: versions must be positive", ErrInvalidVersion)
	}

	current := args.From
	if current == 0 {
		detected, err := DetectVersion(manifest)
		if err != nil {
			return 0, 0, err
		}

		current = detected
	}

	target := args.To
	if target == 0 {
		target = w.newest()
	}

	return current, target, nil
}

func (w *workflow) migrationContext(root m.Path, args MigrateArgs) MigrationContext {
	files := w.SourceFSAdapter
	if args.Preview {
		files = adapter.NewOverlaySourceFSAdapter(w.SourceFSAdapter)
	}

	include := args.Include
	if len(include) == 0 {
		include = DefaultInclude
	}

	exclude := append(append([]string{}, DefaultExclude...), args.Exclude...)

	return MigrationContext{
		Root:         root,
		Preview:      args.Preview,
		SkipManifest: args.SkipManifest,
		Include:      include,
		Exclude:      exclude,
		Files:        files,
		Logger:       slog.Default(),
	}
}

func (w *workflow) reportDir(root, output m.Path) m.Path {
	if output == "" {
		return root
	}

	return output
}

func (w *workflow) oldest() m.Version {
	var oldest m.Version

	for i, step := range w.catalogue {
		if i == 0 || step.From < oldest {
			oldest = step.From
		}
	}

	return oldest
}

func (w *workflow) newest() m.Version {
	var newest m.Version

	for _, step := range w.catalogue {
		if step.To > newest {
			newest = step.To
		}
	}

	return newest
}

func reportFormat(format adapter.ReportFormat) adapter.ReportFormat {
	if format == "" {
		return adapter.ReportMarkdown
	}

	return format
}

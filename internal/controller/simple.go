package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "upshift.dev/pkg/upshift/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd     *cobra.Command
	preview bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.preview = newStartConfig(options).preview

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayPlan prints the selected steps and any selection warnings.
func (s *SimpleUI) DisplayPlan(ctx context.Context, plan m.Plan, warnings []m.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := "Migrating"
	if s.preview {
		mode = "Previewing migration"
	}

	s.printf("%s from %d to %d (%d step(s))\n", mode, plan.Current, plan.Target, len(plan.Steps))

	for _, warning := range warnings {
		s.printf("warning: %s\n", formatWarning(warning))
	}

	return nil
}

// DisplayStepStarted announces a step.
func (s *SimpleUI) DisplayStepStarted(ctx context.Context, step m.StepInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running step %s: %s\n", step.Label(), step.Name)
}

// DisplayStepResult prints the changes, warnings and errors of a step.
func (s *SimpleUI) DisplayStepResult(ctx context.Context, result m.StepResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Completed step %s -> %s\n", result.Step.Label(), stepStatus(result))

	for _, change := range result.Changes {
		s.printf("  ~ %s: %s\n", change.File, change.Description)
	}

	for _, warning := range result.Warnings {
		s.printf("  ! %s\n", formatWarning(warning))
	}

	for _, stepErr := range result.Errors {
		s.printf("  x %s\n", stepErr.Message)
	}
}

// DisplaySummary prints the per-step totals and the report location.
func (s *SimpleUI) DisplaySummary(ctx context.Context, run m.RunResult, reportPath m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(run.Steps) == 0 {
		s.printf("Nothing to migrate: project is at version %d\n", run.From)
	} else {
		s.printf("\n%s", renderSummaryTable(run))
	}

	if reportPath != "" {
		s.printf("Report written to %s\n", reportPath)
	}

	if run.Preview {
		s.printf("Preview only: no files were modified\n")
	}

	return nil
}

// DisplayCatalogue prints the available migration steps.
func (s *SimpleUI) DisplayCatalogue(ctx context.Context, steps []m.StepInfo, warnings []m.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, warning := range warnings {
		s.printf("warning: %s\n", formatWarning(warning))
	}

	s.printf("\n%s", renderCatalogueTable(steps))

	return nil
}

func renderSummaryTable(run m.RunResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Changes", "Warnings", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, step := range run.Steps {
		table.Append([]string{
			step.Step.Label(),
			fmt.Sprintf("%d", len(step.Changes)),
			fmt.Sprintf("%d", len(step.Warnings)),
			fmt.Sprintf("%d", len(step.Errors)),
		})
	}

	changes, warnings, errs := run.Totals()
	table.SetFooter([]string{
		fmt.Sprintf("Total Steps %d", len(run.Steps)),
		fmt.Sprintf("%d", changes),
		fmt.Sprintf("%d", warnings),
		fmt.Sprintf("%d", errs),
	})

	table.Render()

	return tableBuffer.String()
}

func renderCatalogueTable(steps []m.StepInfo) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Name", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, step := range steps {
		table.Append([]string{step.Label(), step.Name, step.Description})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(steps)), "", ""})
	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatWarning(warning m.Warning) string {
	if warning.File == "" {
		return warning.Message
	}

	return fmt.Sprintf("%s: %s", warning.File, warning.Message)
}

func stepStatus(result m.StepResult) string {
	switch {
	case result.Failed():
		return failedStatusLabel
	case len(result.Warnings) > 0:
		return warningsStatusLabel
	default:
		return okStatusLabel
	}
}

const (
	okStatusLabel       = "ok"
	warningsStatusLabel = "needs review"
	failedStatusLabel   = "failed"
)

package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "upshift.dev/pkg/upshift/internal/model"
)

const defaultWidth = 80

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	reviewStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	preview bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in migrate mode. The other modes
// render statically and start nothing.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.preview = cfg.preview

	if cfg.mode != ModeMigrate || p.program != nil {
		return nil
	}

	model := newMigrationModel(cfg.preview, p.width())
	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithInput(nil), tea.WithContext(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Debug("TUI program stopped", "error", err)
		}
	}()

	p.program = program
	p.done = done

	return nil
}

// Close stops the progress program if it is still running.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the progress program has rendered its final frame.
func (p *TUI) Wait(ctx context.Context) {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayPlan shows the selected steps.
func (p *TUI) DisplayPlan(ctx context.Context, plan m.Plan, warnings []m.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !p.send(planMsg{plan: plan, warnings: warnings}) {
		model := newMigrationModel(p.preview, p.width())
		model.applyPlan(plan, warnings)
		_, err := fmt.Fprint(p.output, model.View())

		return err
	}

	return nil
}

// DisplayStepStarted marks a step as running.
func (p *TUI) DisplayStepStarted(ctx context.Context, step m.StepInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	p.send(stepStartedMsg(step))
}

// DisplayStepResult records the outcome of a step.
func (p *TUI) DisplayStepResult(ctx context.Context, result m.StepResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if p.send(stepResultMsg(result)) {
		return
	}

	var b strings.Builder

	model := newMigrationModel(p.preview, p.width())
	model.renderRow(&b, stepRow{info: result.Step, state: stepFinished, result: result})
	_, _ = fmt.Fprint(p.output, b.String())
}

// DisplaySummary renders the run totals and ends the progress program.
func (p *TUI) DisplaySummary(ctx context.Context, run m.RunResult, reportPath m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.send(summaryMsg{run: run, reportPath: reportPath}) {
		return nil
	}

	var b strings.Builder

	renderSummary(&b, run, reportPath)
	_, err := fmt.Fprint(p.output, b.String())

	return err
}

// DisplayCatalogue prints the migration steps as a styled list.
func (p *TUI) DisplayCatalogue(ctx context.Context, steps []m.StepInfo, warnings []m.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(p.output, catalogueView(steps, warnings, p.width()))

	return err
}

func (p *TUI) send(msg tea.Msg) bool {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

func (p *TUI) width() int {
	if f, ok := p.output.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}

	return defaultWidth
}

type planMsg struct {
	plan     m.Plan
	warnings []m.Warning
}

type stepStartedMsg m.StepInfo

type stepResultMsg m.StepResult

type summaryMsg struct {
	run        m.RunResult
	reportPath m.Path
}

type stepState int

const (
	stepQueued stepState = iota
	stepRunning
	stepFinished
)

type stepRow struct {
	info   m.StepInfo
	state  stepState
	result m.StepResult
}

// migrationModel is the Bubble Tea model rendering the progress of a run.
type migrationModel struct {
	spinner  spinner.Model
	preview  bool
	plan     m.Plan
	warnings []m.Warning
	rows     []stepRow
	index    map[string]int
	summary  *summaryMsg
	width    int
	done     bool
}

func newMigrationModel(preview bool, width int) migrationModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = runningStyle

	return migrationModel{
		spinner: sp,
		preview: preview,
		index:   map[string]int{},
		width:   width,
	}
}

func (mm migrationModel) Init() tea.Cmd {
	return mm.spinner.Tick
}

func (mm migrationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planMsg:
		mm.applyPlan(msg.plan, msg.warnings)
		return mm, nil

	case stepStartedMsg:
		row := mm.row(m.StepInfo(msg))
		mm.rows[row].state = stepRunning

		return mm, nil

	case stepResultMsg:
		result := m.StepResult(msg)
		row := mm.row(result.Step)
		mm.rows[row].state = stepFinished
		mm.rows[row].result = result

		return mm, nil

	case summaryMsg:
		mm.summary = &msg
		mm.done = true

		return mm, tea.Quit

	case spinner.TickMsg:
		if mm.done {
			return mm, nil
		}

		var cmd tea.Cmd
		mm.spinner, cmd = mm.spinner.Update(msg)

		return mm, cmd

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			mm.width = msg.Width
		}

		return mm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			mm.done = true
			return mm, tea.Quit
		}
	}

	return mm, nil
}

func (mm *migrationModel) applyPlan(plan m.Plan, warnings []m.Warning) {
	mm.plan = plan
	mm.warnings = warnings
	mm.rows = make([]stepRow, 0, len(plan.Steps))
	mm.index = make(map[string]int, len(plan.Steps))

	for _, info := range plan.Steps {
		mm.index[info.Label()] = len(mm.rows)
		mm.rows = append(mm.rows, stepRow{info: info})
	}
}

// row returns the index of the row for info, appending one for steps
// that were not part of the plan.
func (mm *migrationModel) row(info m.StepInfo) int {
	if i, ok := mm.index[info.Label()]; ok {
		return i
	}

	if mm.index == nil {
		mm.index = map[string]int{}
	}

	mm.index[info.Label()] = len(mm.rows)
	mm.rows = append(mm.rows, stepRow{info: info})

	return len(mm.rows) - 1
}

func (mm migrationModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("upshift: Angular %d → %d", mm.plan.Current, mm.plan.Target)
	if mm.preview {
		header += " (preview)"
	}

	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	for _, warning := range mm.warnings {
		fmt.Fprintf(&b, "  %s %s\n", reviewStyle.Render("!"), formatWarning(warning))
	}

	if len(mm.warnings) > 0 {
		b.WriteString("\n")
	}

	for _, row := range mm.rows {
		mm.renderRow(&b, row)
	}

	if mm.summary != nil {
		b.WriteString("\n")
		renderSummary(&b, mm.summary.run, mm.summary.reportPath)
	}

	return b.String()
}

func (mm migrationModel) renderRow(b *strings.Builder, row stepRow) {
	name := truncate(row.info.Name, mm.width-24)

	switch row.state {
	case stepQueued:
		fmt.Fprintf(b, "  %s %s %s\n", faintStyle.Render("·"), row.info.Label(), faintStyle.Render(name))
	case stepRunning:
		fmt.Fprintf(b, "  %s %s %s\n", mm.spinner.View(), row.info.Label(), name)
	case stepFinished:
		result := row.result
		fmt.Fprintf(b, "  %s %s %s %s\n",
			statusStyle(result).Render(statusMark(result)),
			row.info.Label(),
			name,
			faintStyle.Render(fmt.Sprintf("%d change(s), %d warning(s)", len(result.Changes), len(result.Warnings))),
		)

		for _, warning := range result.Warnings {
			fmt.Fprintf(b, "      %s %s\n", reviewStyle.Render("!"), truncate(formatWarning(warning), mm.width-8))
		}

		for _, stepErr := range result.Errors {
			fmt.Fprintf(b, "      %s %s\n", failedStyle.Render("x"), stepErr.Message)
		}
	}
}

func renderSummary(b *strings.Builder, run m.RunResult, reportPath m.Path) {
	changes, warnings, errs := run.Totals()

	if len(run.Steps) == 0 {
		fmt.Fprintf(b, "  Nothing to migrate: project is at version %d\n", run.From)
	} else {
		style := okStyle
		if errs > 0 {
			style = failedStyle
		}

		b.WriteString(style.Render(fmt.Sprintf("  %d step(s): %d change(s), %d warning(s), %d error(s)",
			len(run.Steps), changes, warnings, errs)))
		b.WriteString("\n")
	}

	if reportPath != "" {
		fmt.Fprintf(b, "  Report: %s\n", reportPath)
	}

	if run.Preview {
		b.WriteString(faintStyle.Render("  Preview only: no files were modified"))
		b.WriteString("\n")
	}
}

func catalogueView(steps []m.StepInfo, warnings []m.Warning, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("upshift: migration steps"))
	b.WriteString("\n\n")

	for _, warning := range warnings {
		fmt.Fprintf(&b, "  %s %s\n", reviewStyle.Render("!"), formatWarning(warning))
	}

	if len(steps) == 0 {
		b.WriteString("  No migration steps selected\n")
		return b.String()
	}

	for _, step := range steps {
		fmt.Fprintf(&b, "  %s %s\n", runningStyle.Render(step.Label()), step.Name)

		if step.Description != "" {
			fmt.Fprintf(&b, "        %s\n", faintStyle.Render(truncate(step.Description, width-8)))
		}
	}

	fmt.Fprintf(&b, "\n  Total: %d step(s)\n", len(steps))

	return b.String()
}

func statusStyle(result m.StepResult) lipgloss.Style {
	switch stepStatus(result) {
	case failedStatusLabel:
		return failedStyle
	case warningsStatusLabel:
		return reviewStyle
	default:
		return okStyle
	}
}

func statusMark(result m.StepResult) string {
	switch stepStatus(result) {
	case failedStatusLabel:
		return "x"
	case warningsStatusLabel:
		return "!"
	default:
		return "✓"
	}
}

func truncate(value string, width int) string {
	if width <= 3 || lipgloss.Width(value) <= width {
		return value
	}

	runes := []rune(value)
	if len(runes) > width-3 {
		runes = runes[:width-3]
	}

	return string(runes) + "..."
}

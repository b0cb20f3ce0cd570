// Package controller provides output adapters for displaying migration progress and results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "upshift.dev/pkg/upshift/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMigrate StartMode = iota
	ModeList
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode    StartMode
	preview bool
}

// WithMigrateMode sets the UI to migration mode.
func WithMigrateMode(preview bool) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMigrate
		c.preview = preview
	}
}

// WithListMode sets the UI to catalogue listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithViewMode sets the UI to render a saved report.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMigrate}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for reporting a migration run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish rendering
	DisplayPlan(ctx context.Context, plan m.Plan, warnings []m.Warning) error
	DisplayStepStarted(ctx context.Context, step m.StepInfo)
	DisplayStepResult(ctx context.Context, result m.StepResult)
	DisplaySummary(ctx context.Context, run m.RunResult, reportPath m.Path) error
	DisplayCatalogue(ctx context.Context, steps []m.StepInfo, warnings []m.Warning) error
}

// NewUI returns the interactive TUI when tty is set and the plain text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

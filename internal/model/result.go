package model

// Change records an edit actually applied (or, in preview mode, that would be applied).
type Change struct {
	File        Path   `json:"file" yaml:"file"`
	Description string `json:"description" yaml:"description"`
	Before      string `json:"before,omitempty" yaml:"before,omitempty"`
	After       string `json:"after,omitempty" yaml:"after,omitempty"`
}

// Warning records a detected pattern that needs a human decision.
type Warning struct {
	File    Path   `json:"file,omitempty" yaml:"file,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// StepError records a step that could not complete.
type StepError struct {
	Step    string `json:"step" yaml:"step"`
	Message string `json:"message" yaml:"message"`
}

// FileDiff holds the unified diff of a file modified by a step.
type FileDiff struct {
	File Path   `json:"file" yaml:"file"`
	Diff string `json:"diff" yaml:"diff"`
}

// StepResult is the outcome of running one migration step.
type StepResult struct {
	Step     StepInfo    `json:"step" yaml:"step"`
	Changes  []Change    `json:"changes" yaml:"changes"`
	Warnings []Warning   `json:"warnings" yaml:"warnings"`
	Errors   []StepError `json:"errors,omitempty" yaml:"errors,omitempty"`
	Diffs    []FileDiff  `json:"diffs,omitempty" yaml:"diffs,omitempty"`
}

// Failed reports whether the step recorded any error.
func (r StepResult) Failed() bool {
	return len(r.Errors) > 0
}

// RunResult aggregates the step results of one pipeline run.
type RunResult struct {
	From     Version      `json:"from" yaml:"from"`
	To       Version      `json:"to" yaml:"to"`
	Preview  bool         `json:"preview" yaml:"preview"`
	Steps    []StepResult `json:"steps" yaml:"steps"`
	Warnings []Warning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Add appends a step result to the run.
func (r *RunResult) Add(step StepResult) {
	r.Steps = append(r.Steps, step)
}

// Totals returns the number of changes, warnings and errors across all steps.
// Run-level warnings are included in the warning count.
func (r RunResult) Totals() (changes, warnings, errs int) {
	warnings = len(r.Warnings)

	for _, step := range r.Steps {
		changes += len(step.Changes)
		warnings += len(step.Warnings)
		errs += len(step.Errors)
	}

	return changes, warnings, errs
}

// Failed reports whether any step recorded an error.
func (r RunResult) Failed() bool {
	for _, step := range r.Steps {
		if step.Failed() {
			return true
		}
	}

	return false
}

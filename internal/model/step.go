package model

import "fmt"

// StepInfo describes one migration step without its rule set.
type StepInfo struct {
	From        Version `json:"from" yaml:"from"`
	To          Version `json:"to" yaml:"to"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Label renders the step range, e.g. "15→16".
func (s StepInfo) Label() string {
	return fmt.Sprintf("%d→%d", s.From, s.To)
}

// Plan is the ordered set of steps selected for a run.
type Plan struct {
	Current Version
	Target  Version
	Steps   []StepInfo
}

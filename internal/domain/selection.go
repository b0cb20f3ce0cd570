package domain

import (
	"fmt"

	"upshift.dev/pkg/upshift/internal/domain/steps"
	m "upshift.dev/pkg/upshift/internal/model"
)

// SelectSteps returns the steps of catalogue whose range lies within
// [current, target], in ascending order. Nothing is selected when current
// is at or past target. Warnings report an empty selection and any version
// range the selected chain does not cover.
func SelectSteps(catalogue []steps.Step, current, target m.Version) ([]steps.Step, []m.Warning) {
	if current >= target {
		return nil, nil
	}

	var selected []steps.Step

	for _, step := range catalogue {
		if step.From >= current && step.To <= target {
			selected = append(selected, step)
		}
	}

	if len(selected) == 0 {
		return nil, []m.Warning{{
			Message: fmt.Sprintf("no migration step covers %d→%d; nothing to do", current, target),
		}}
	}

	var warnings []m.Warning

	expected := current

	for _, step := range selected {
		if step.From != expected {
			warnings = append(warnings, gapWarning(expected, step.From))
		}

		expected = step.To
	}

	if expected != target {
		warnings = append(warnings, gapWarning(expected, target))
	}

	return selected, warnings
}

func gapWarning(from, to m.Version) m.Warning {
	return m.Warning{
		Message: fmt.Sprintf("no migration step covers %d→%d; apply those changes manually", from, to),
	}
}

// Infos returns the descriptors of steps.
func Infos(selected []steps.Step) []m.StepInfo {
	infos := make([]m.StepInfo, len(selected))
	for i, step := range selected {
		infos[i] = step.Info()
	}

	return infos
}

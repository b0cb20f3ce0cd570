package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"upshift.dev/pkg/upshift/internal/domain/steps"
	m "upshift.dev/pkg/upshift/internal/model"
)

func labels(selected []steps.Step) []string {
	out := make([]string, len(selected))
	for i, step := range selected {
		out[i] = step.Info().Label()
	}

	return out
}

func TestSelectSteps(t *testing.T) {
	catalogue := steps.Catalogue()

	t.Run("full chain", func(t *testing.T) {
		selected, warnings := SelectSteps(catalogue, 15, 19)

		assert.Equal(t, []string{"15→16", "16→17", "17→18", "18→19"}, labels(selected))
		assert.Empty(t, warnings)
	})

	t.Run("single step", func(t *testing.T) {
		selected, warnings := SelectSteps(catalogue, 17, 18)

		assert.Equal(t, []string{"17→18"}, labels(selected))
		assert.Empty(t, warnings)
	})

	t.Run("source at or past target", func(t *testing.T) {
		for _, tc := range []struct{ current, target m.Version }{{19, 19}, {19, 17}} {
			selected, warnings := SelectSteps(catalogue, tc.current, tc.target)

			assert.Empty(t, selected)
			assert.Empty(t, warnings)
		}
	})

	t.Run("no step matches", func(t *testing.T) {
		selected, warnings := SelectSteps(catalogue, 19, 21)

		assert.Empty(t, selected)
		assert.Equal(t, []m.Warning{{Message: "no migration step covers 19→21; nothing to do"}}, warnings)
	})

	t.Run("target beyond catalogue", func(t *testing.T) {
		selected, warnings := SelectSteps(catalogue, 18, 20)

		assert.Equal(t, []string{"18→19"}, labels(selected))
		assert.Equal(t, []m.Warning{{Message: "no migration step covers 19→20; apply those changes manually"}}, warnings)
	})

	t.Run("current before catalogue", func(t *testing.T) {
		selected, warnings := SelectSteps(catalogue, 14, 16)

		assert.Equal(t, []string{"15→16"}, labels(selected))
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Message, "14→15")
	})

	t.Run("gap inside the chain", func(t *testing.T) {
		gappy := []steps.Step{catalogue[0], catalogue[2]}

		selected, warnings := SelectSteps(gappy, 15, 18)

		assert.Equal(t, []string{"15→16", "17→18"}, labels(selected))
		assert.Equal(t, []m.Warning{{Message: "no migration step covers 16→17; apply those changes manually"}}, warnings)
	})
}

func TestInfos(t *testing.T) {
	infos := Infos(steps.Catalogue()[:2])

	assert.Len(t, infos, 2)
	assert.Equal(t, "Angular 16", infos[0].Name)
	assert.Equal(t, m.Version(17), infos[1].To)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"upshift.dev/pkg/upshift/internal/adapter"
	m "upshift.dev/pkg/upshift/internal/model"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		spec string
		want m.Version
	}{
		{"^15.2.0", 15},
		{"~16.1.3", 16},
		{"17.0.0", 17},
		{">=17.0.0 <18", 17},
		{"15.x", 15},
		{"v18.2.1", 18},
		{"19", 19},
		{"  ^16.0.0-rc.1 ", 16},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseVersion(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, spec := range []string{"", "latest", "^", "workspace:*"} {
		_, err := ParseVersion(spec)
		assert.ErrorIs(t, err, ErrInvalidVersion, spec)
	}
}

func TestDetectVersion(t *testing.T) {
	parse := func(t *testing.T, content string) *adapter.ConfigDocument {
		t.Helper()

		doc, err := adapter.ParseConfigDocument("package.json", []byte(content))
		require.NoError(t, err)

		return doc
	}

	t.Run("dependencies", func(t *testing.T) {
		got, err := DetectVersion(parse(t, `{"dependencies":{"@angular/core":"^15.2.0"}}`))
		require.NoError(t, err)
		assert.Equal(t, m.Version(15), got)
	})

	t.Run("devDependencies", func(t *testing.T) {
		got, err := DetectVersion(parse(t, `{"devDependencies":{"@angular/core":"~17.3.0"}}`))
		require.NoError(t, err)
		assert.Equal(t, m.Version(17), got)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := DetectVersion(parse(t, `{"dependencies":{"react":"^18.0.0"}}`))
		assert.ErrorIs(t, err, ErrVersionUndetectable)
	})

	t.Run("unparsable", func(t *testing.T) {
		_, err := DetectVersion(parse(t, `{"dependencies":{"@angular/core":"next"}}`))
		assert.ErrorIs(t, err, ErrVersionUndetectable)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})
}

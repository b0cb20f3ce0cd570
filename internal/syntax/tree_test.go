package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *SourceTree {
	t.Helper()

	tree, err := Parse("test.ts", []byte(src))
	require.NoError(t, err)

	return tree
}

func TestParse_Unbalanced(t *testing.T) {
	for name, src := range map[string]string{
		"unclosed":   "class A {",
		"unexpected": "a)",
		"mismatched": "f(a]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse("broken.ts", []byte(src))
			assert.ErrorIs(t, err, ErrUnbalanced)
		})
	}
}

func TestSourceTree_Apply(t *testing.T) {
	t.Run("rewrites buffer and structure", func(t *testing.T) {
		tree := mustParse(t, "const a = 1;\n")

		require.NoError(t, tree.Apply(Replace(Span{Start: 10, End: 11}, "2")))

		assert.Equal(t, "const a = 2;\n", string(tree.Source()))
		assert.Equal(t, "const a = 1;\n", string(tree.Original()))
		assert.True(t, tree.Modified())
		assert.Equal(t, "2", tree.Tokens()[3].Text)

		tree.MarkCommitted()
		assert.False(t, tree.Modified())
	})

	t.Run("no edits", func(t *testing.T) {
		tree := mustParse(t, "x;")

		require.NoError(t, tree.Apply())
		assert.False(t, tree.Modified())
	})

	t.Run("conflict leaves tree untouched", func(t *testing.T) {
		tree := mustParse(t, "const a = 1;")

		err := tree.Apply(Replace(Span{Start: 0, End: 5}, "let"), Delete(Span{Start: 4, End: 7}))
		require.ErrorIs(t, err, ErrEditConflict)
		assert.False(t, tree.Modified())
	})

	t.Run("unparsable result is rejected", func(t *testing.T) {
		tree := mustParse(t, "f();")

		err := tree.Apply(Insert(0, "{"))
		require.ErrorIs(t, err, ErrUnbalanced)
		assert.Equal(t, "f();", string(tree.Source()))
	})
}

func TestSourceTree_Line(t *testing.T) {
	tree := mustParse(t, "a;\nb;\nc;")

	assert.Equal(t, 1, tree.Line(0))
	assert.Equal(t, 2, tree.Line(3))
	assert.Equal(t, 3, tree.Line(100))
}

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEdits(t *testing.T) {
	src := []byte("abcdef")

	t.Run("applies edits regardless of order", func(t *testing.T) {
		out, err := applyEdits(src, []Edit{
			Replace(Span{Start: 0, End: 1}, "X"),
			Insert(3, "-"),
			Delete(Span{Start: 4, End: 6}),
		})
		require.NoError(t, err)

		assert.Equal(t, "Xbc-d", string(out))
		assert.Equal(t, "abcdef", string(src))
	})

	t.Run("rejects overlapping edits", func(t *testing.T) {
		_, err := applyEdits(src, []Edit{
			Replace(Span{Start: 0, End: 3}, "X"),
			Replace(Span{Start: 2, End: 4}, "Y"),
		})
		assert.ErrorIs(t, err, ErrEditConflict)
	})

	t.Run("adjacent edits do not conflict", func(t *testing.T) {
		out, err := applyEdits(src, []Edit{
			Replace(Span{Start: 0, End: 2}, "X"),
			Replace(Span{Start: 2, End: 4}, "Y"),
		})
		require.NoError(t, err)
		assert.Equal(t, "XYef", string(out))
	})

	t.Run("guard text mismatch", func(t *testing.T) {
		_, err := applyEdits(src, []Edit{{Span: Span{Start: 0, End: 1}, NewText: "X", OldText: "z"}})
		assert.ErrorIs(t, err, ErrEditGuard)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := applyEdits(src, []Edit{Delete(Span{Start: 4, End: 10})})
		assert.ErrorIs(t, err, ErrEditOutOfRange)
	})
}

func TestListItemRemoval(t *testing.T) {
	src := "[A, B, C]"
	inner := Span{Start: 1, End: 8}
	items := []Span{{Start: 1, End: 2}, {Start: 4, End: 5}, {Start: 7, End: 8}}

	remove := func(span Span) string {
		return src[:span.Start] + src[span.End:]
	}

	assert.Equal(t, "[B, C]", remove(ListItemRemoval(inner, items, 0)))
	assert.Equal(t, "[A, C]", remove(ListItemRemoval(inner, items, 1)))
	assert.Equal(t, "[A, B]", remove(ListItemRemoval(inner, items, 2)))
	assert.Equal(t, Span{Start: 1, End: 2}, ListItemRemoval(Span{Start: 1, End: 2}, items[:1], 0))
}

func TestLineRemoval(t *testing.T) {
	t.Run("whole line", func(t *testing.T) {
		src := []byte("a\n  b;\nc\n")
		span := LineRemoval(src, Span{Start: 4, End: 6})

		assert.Equal(t, Span{Start: 2, End: 7}, span)
		assert.Equal(t, "a\nc\n", string(src[:span.Start])+string(src[span.End:]))
	})

	t.Run("shared line", func(t *testing.T) {
		src := []byte("a b;")
		assert.Equal(t, Span{Start: 2, End: 4}, LineRemoval(src, Span{Start: 2, End: 4}))
	})
}

func TestIndentation(t *testing.T) {
	assert.Equal(t, "  ", Indentation([]byte("a\n  b"), 4))
	assert.Equal(t, "", Indentation([]byte("a\n  b"), 0))
}

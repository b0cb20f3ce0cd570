package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}

	return kinds
}

func textsOf(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}

	return texts
}

func TestLex(t *testing.T) {
	t.Run("import statement", func(t *testing.T) {
		tokens, err := Lex([]byte(`import { A } from '@x/y';`))
		require.NoError(t, err)

		assert.Equal(t, []string{"import", "{", "A", "}", "from", "'@x/y'", ";"}, textsOf(tokens))
		assert.Equal(t, String, tokens[5].Kind)
		assert.Equal(t, Span{Start: 18, End: 24}, tokens[5].Span())
	})

	t.Run("drops comments", func(t *testing.T) {
		tokens, err := Lex([]byte("// line\n/* block\n */x"))
		require.NoError(t, err)

		require.Len(t, tokens, 1)
		assert.Equal(t, "x", tokens[0].Text)
	})

	t.Run("template with nested expression", func(t *testing.T) {
		tokens, err := Lex([]byte("const a = `x${ {b: '}'}.b }y`;"))
		require.NoError(t, err)

		assert.Equal(t, []Kind{Ident, Ident, Punct, Template, Punct}, kindsOf(tokens))
		assert.Equal(t, "`x${ {b: '}'}.b }y`", tokens[3].Text)
	})

	t.Run("division and regular expression", func(t *testing.T) {
		tokens, err := Lex([]byte("a = b / c; r = /ab+c/g.test(s)"))
		require.NoError(t, err)

		assert.Equal(t, Punct, tokens[3].Kind)
		assert.Equal(t, "/", tokens[3].Text)
		assert.Equal(t, Regex, tokens[8].Kind)
		assert.Equal(t, "/ab+c/g", tokens[8].Text)
	})

	t.Run("regular expression after a block", func(t *testing.T) {
		tokens, err := Lex([]byte("if (a) {} /x{/.test(s)"))
		require.NoError(t, err)

		assert.Equal(t, Regex, tokens[6].Kind)
		assert.Equal(t, "/x{/", tokens[6].Text)

		_, err = Parse("a.ts", []byte("if (a) {} /x{/.test(s)"))
		assert.NoError(t, err)
	})

	t.Run("division after an object literal", func(t *testing.T) {
		tokens, err := Lex([]byte("n = {} / 2 / k"))
		require.NoError(t, err)

		assert.Equal(t, []string{"n", "=", "{", "}", "/", "2", "/", "k"}, textsOf(tokens))
		assert.Equal(t, Punct, tokens[4].Kind)
	})

	t.Run("optional chaining and conditional", func(t *testing.T) {
		tokens, err := Lex([]byte("a?.b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "?.", "b"}, textsOf(tokens))

		tokens, err = Lex([]byte("a?.5:1"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "?", ".5", ":", "1"}, textsOf(tokens))
	})

	t.Run("angle brackets are single tokens", func(t *testing.T) {
		tokens, err := Lex([]byte("Map<string, Array<number>>"))
		require.NoError(t, err)

		assert.Equal(t, []string{"Map", "<", "string", ",", "Array", "<", "number", ">", ">"}, textsOf(tokens))
	})

	t.Run("private names and numbers", func(t *testing.T) {
		tokens, err := Lex([]byte("this.#count = 1e-7;"))
		require.NoError(t, err)

		assert.Equal(t, []string{"this", ".", "#count", "=", "1e-7", ";"}, textsOf(tokens))
	})

	t.Run("byte order mark", func(t *testing.T) {
		tokens, err := Lex([]byte("\xEF\xBB\xBFx"))
		require.NoError(t, err)

		require.Len(t, tokens, 1)
		assert.Equal(t, 3, tokens[0].Start)
	})
}

func TestLexAll_Substitutions(t *testing.T) {
	tokens, embedded, err := lexAll([]byte("const a = `x${ f(b) }y${`in${c}`}`;"))
	require.NoError(t, err)

	assert.Equal(t, []Kind{Ident, Ident, Punct, Template, Punct}, kindsOf(tokens))
	require.Len(t, embedded, 3)
	assert.Equal(t, []string{"f", "(", "b", ")"}, textsOf(embedded[0]))
	assert.Equal(t, []string{"c"}, textsOf(embedded[1]))
	assert.Equal(t, []Kind{Template}, kindsOf(embedded[2]))
}

func TestLex_Unterminated(t *testing.T) {
	cases := map[string]string{
		"string":   "const a = 'abc",
		"newline":  "const a = 'abc\n'",
		"template": "const a = `abc",
		"comment":  "/* never closed",
		"regex":    "x = /abc",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Lex([]byte(src))
			assert.ErrorIs(t, err, ErrUnterminated)
		})
	}
}

package syntax

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrUnbalanced is returned when brackets do not pair up.
var ErrUnbalanced = errors.New("unbalanced brackets")

var closers = map[string]string{"(": ")", "[": "]", "{": "}"}

// SourceTree is the in-memory structural view of one source file. It owns
// its buffer: edits are applied in place and the structure is re-derived,
// while the bytes last persisted are kept for change detection.
type SourceTree struct {
	path     string
	original []byte
	src      []byte

	tokens   []Token
	embedded []tokenSeq // one per template substitution
	match    []int      // index of the matching bracket token, -1 otherwise
	imports  []*ImportDecl
	classes  []*ClassDecl
}

// Parse builds a SourceTree for src. It fails when the file cannot be
// tokenised or its brackets do not balance.
func Parse(path string, src []byte) (*SourceTree, error) {
	tree := &SourceTree{
		path:     path,
		original: append([]byte(nil), src...),
	}

	if err := tree.reset(append([]byte(nil), src...)); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return tree, nil
}

func (t *SourceTree) reset(src []byte) error {
	tokens, embedded, err := lexAll(src)
	if err != nil {
		return err
	}

	match, err := matchBrackets(tokens)
	if err != nil {
		return err
	}

	seqs := make([]tokenSeq, 0, len(embedded))
	for _, group := range embedded {
		groupMatch, err := matchBrackets(group)
		if err != nil {
			return err
		}

		seqs = append(seqs, tokenSeq{toks: group, match: groupMatch})
	}

	t.src = src
	t.tokens = tokens
	t.embedded = seqs
	t.match = match
	t.imports = t.parseImports()
	t.classes = t.parseClasses()

	return nil
}

func matchBrackets(tokens []Token) ([]int, error) {
	match := make([]int, len(tokens))
	stack := make([]int, 0, 16)

	for i, tok := range tokens {
		match[i] = -1

		if tok.Kind != Punct {
			continue
		}

		switch tok.Text {
		case "(", "[", "{":
			stack = append(stack, i)
		case ")", "]", "}":
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrUnbalanced, tok.Text, tok.Start)
			}

			open := stack[len(stack)-1]
			if closers[tokens[open].Text] != tok.Text {
				return nil, fmt.Errorf("%w: %q at offset %d closes %q at offset %d",
					ErrUnbalanced, tok.Text, tok.Start, tokens[open].Text, tokens[open].Start)
			}

			stack = stack[:len(stack)-1]
			match[open] = i
			match[i] = open
		}
	}

	if len(stack) > 0 {
		open := tokens[stack[len(stack)-1]]
		return nil, fmt.Errorf("%w: %q at offset %d is never closed", ErrUnbalanced, open.Text, open.Start)
	}

	return match, nil
}

// Path returns the file path the tree was loaded from.
func (t *SourceTree) Path() string {
	return t.path
}

// Source returns the current buffer. Callers must not modify it.
func (t *SourceTree) Source() []byte {
	return t.src
}

// Original returns the content as last loaded or committed.
func (t *SourceTree) Original() []byte {
	return t.original
}

// Modified reports whether the buffer differs from the last committed content.
func (t *SourceTree) Modified() bool {
	return !bytes.Equal(t.src, t.original)
}

// MarkCommitted records the current buffer as persisted.
func (t *SourceTree) MarkCommitted() {
	t.original = append([]byte(nil), t.src...)
}

// Tokens returns the token stream of the current buffer.
func (t *SourceTree) Tokens() []Token {
	return t.tokens
}

// Imports returns the import declarations in source order.
func (t *SourceTree) Imports() []*ImportDecl {
	return t.imports
}

// Classes returns the class declarations in source order.
func (t *SourceTree) Classes() []*ClassDecl {
	return t.classes
}

// Text returns the source covered by span.
func (t *SourceTree) Text(span Span) string {
	return string(t.src[span.Start:span.End])
}

// Line returns the 1-based line number of offset.
func (t *SourceTree) Line(offset int) int {
	if offset > len(t.src) {
		offset = len(t.src)
	}

	return bytes.Count(t.src[:offset], []byte{'\n'}) + 1
}

// Apply applies edits to the buffer and re-derives the structure. On failure
// the tree is left untouched.
func (t *SourceTree) Apply(edits ...Edit) error {
	if len(edits) == 0 {
		return nil
	}

	out, err := applyEdits(t.src, edits)
	if err != nil {
		return fmt.Errorf("edit %s: %w", t.path, err)
	}

	if err := t.reset(out); err != nil {
		return fmt.Errorf("edit %s produced unparsable output: %w", t.path, err)
	}

	return nil
}

// Match returns the index of the bracket token paired with token i, or -1.
func (t *SourceTree) Match(i int) int {
	if i < 0 || i >= len(t.match) {
		return -1
	}

	return t.match[i]
}

func (t *SourceTree) tok(i int) Token {
	if i < 0 || i >= len(t.tokens) {
		return Token{Kind: EOF, Start: len(t.src), End: len(t.src)}
	}

	return t.tokens[i]
}

// spanOf covers tokens [from, to] inclusive.
func (t *SourceTree) spanOf(from, to int) Span {
	return Span{Start: t.tokens[from].Start, End: t.tokens[to].End}
}

// splitTopLevel splits tokens in (openIdx, closeIdx) on commas that are not nested
// in brackets, or in angle brackets when generics is set (type positions).
// Each part is [start, end] inclusive; empty parts (trailing commas) are
// omitted.
func (t *SourceTree) splitTopLevel(openIdx, closeIdx int, generics bool) [][2]int {
	var parts [][2]int

	start := openIdx + 1
	angle := 0

	for i := openIdx + 1; i < closeIdx; i++ {
		tok := t.tokens[i]

		if m := t.match[i]; m > i {
			i = m
			continue
		}

		switch {
		case generics && tok.IsPunct("<"):
			angle++
		case tok.IsPunct(">") && angle > 0:
			angle--
		case tok.IsPunct(",") && angle == 0:
			if i > start {
				parts = append(parts, [2]int{start, i - 1})
			}

			start = i + 1
		}
	}

	if closeIdx > start {
		parts = append(parts, [2]int{start, closeIdx - 1})
	}

	return parts
}

// newlineBetween reports whether a line break separates tokens i and j.
func (t *SourceTree) newlineBetween(i, j int) bool {
	return bytes.IndexByte(t.src[t.tokens[i].End:t.tokens[j].Start], '\n') >= 0
}

// Package syntax provides a structural, editable view of TypeScript source
// files: a token stream plus the import declarations and decorated classes
// derived from it. Trees are mutated through byte-span edits and re-derived
// after every edit batch, so consumers always observe the latest state.
package syntax

import "fmt"

// Kind classifies a token.
type Kind uint8

// Token kinds.
const (
	EOF Kind = iota
	Ident
	String
	Template
	Number
	Punct
	Regex
)

var kindNames = [...]string{
	EOF:      "eof",
	Ident:    "ident",
	String:   "string",
	Template: "template",
	Number:   "number",
	Punct:    "punct",
	Regex:    "regex",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", k)
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}

	if other.End > s.End {
		s.End = other.End
	}

	return s
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Token is a lexical token with its byte span in the source.
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

// Span returns the byte span of the token.
func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

// IsPunct reports whether the token is the given punctuation.
func (t Token) IsPunct(text string) bool {
	return t.Kind == Punct && t.Text == text
}

// IsIdent reports whether the token is the given identifier or keyword.
func (t Token) IsIdent(text string) bool {
	return t.Kind == Ident && t.Text == text
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Start)
}

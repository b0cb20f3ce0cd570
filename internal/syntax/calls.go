package syntax

import "sort"

// CallSite is a property-access call "receiver.Method(args)".
type CallSite struct {
	Receiver     string // source text before the dot, may be empty
	ReceiverSpan Span
	Method       string
	MethodSpan   Span
	Args         []Span
	Parens       Span // "( ... )" inclusive
	Span         Span // receiver through the closing paren
}

// declKeywords introduce a new binding of the identifier that follows them.
var declKeywords = map[string]struct{}{
	"class": {}, "function": {}, "interface": {}, "enum": {}, "type": {},
	"const": {}, "let": {}, "var": {}, "namespace": {},
}

// stopKeywords never form part of a call receiver.
var stopKeywords = map[string]struct{}{
	"return": {}, "if": {}, "while": {}, "for": {}, "switch": {}, "typeof": {},
	"await": {}, "new": {}, "yield": {}, "throw": {}, "case": {}, "else": {},
	"in": {}, "of": {}, "instanceof": {}, "void": {}, "delete": {}, "export": {},
	"default": {},
}

// MethodCalls returns every call of the form "x.method(...)" or
// "x?.method(...)" in source order.
func (t *SourceTree) MethodCalls(method string) []*CallSite {
	var calls []*CallSite

	for i, tok := range t.tokens {
		if tok.Kind != Ident || tok.Text != method {
			continue
		}

		dot := t.tok(i - 1)
		if !dot.IsPunct(".") && !dot.IsPunct("?.") {
			continue
		}

		if !t.tok(i + 1).IsPunct("(") {
			continue
		}

		calls = append(calls, t.callAt(i))
	}

	return calls
}

func (t *SourceTree) callAt(i int) *CallSite {
	open := i + 1
	closeIdx := t.match[open]
	start := t.receiverStart(i - 1)

	call := &CallSite{
		Method:     t.tokens[i].Text,
		MethodSpan: t.tokens[i].Span(),
		Parens:     t.spanOf(open, closeIdx),
		Span:       Span{Start: t.tokens[i].Start, End: t.tokens[closeIdx].End},
	}

	if start < i-1 {
		call.ReceiverSpan = t.spanOf(start, i-2)
		call.Receiver = t.Text(call.ReceiverSpan)
		call.Span.Start = call.ReceiverSpan.Start
	}

	for _, part := range t.splitTopLevel(open, closeIdx, false) {
		call.Args = append(call.Args, t.spanOf(part[0], part[1]))
	}

	return call
}

// receiverStart walks back from the dot at index dot over an access chain
// such as "this.a.b", "f(x).g" or "a[0]!" and returns the index of its first
// token, or dot when there is no receiver.
func (t *SourceTree) receiverStart(dot int) int {
	start := dot
	k := dot - 1

	if t.tok(k).IsPunct("!") {
		k--
	}

	for k >= 0 {
		tok := t.tokens[k]

		switch {
		case tok.IsPunct(")") || tok.IsPunct("]"):
			start = t.match[k]
			k = start - 1

			if prev := t.tok(k); (prev.Kind == Ident && !isModifier(stopKeywords, prev.Text)) ||
				prev.IsPunct(")") || prev.IsPunct("]") {
				continue
			}

			return start
		case tok.Kind == Ident && !isModifier(stopKeywords, tok.Text):
			start = k
			k--
		case tok.Kind == String || tok.Kind == Template:
			return k
		default:
			return start
		}

		prev := t.tok(k)
		if prev.IsPunct("!") {
			k--
			prev = t.tok(k)
		}

		if !prev.IsPunct(".") && !prev.IsPunct("?.") {
			return start
		}

		k--
	}

	return start
}

// Reference is an unqualified use of an identifier. Shorthand marks a
// "{ name }" object property and Export a "export { name }" clause entry,
// where the name is also the key or exported name.
type Reference struct {
	Span      Span
	Shorthand bool
	Export    bool
}

// IdentifierRefs returns the spans of every unqualified reference to name:
// property accesses, object literal keys, import declarations and new
// declarations of the same name are excluded.
func (t *SourceTree) IdentifierRefs(name string) []Span {
	refs := t.References(name)
	spans := make([]Span, len(refs))

	for i, ref := range refs {
		spans[i] = ref.Span
	}

	return spans
}

// References is IdentifierRefs with the context of each use, including
// uses inside template substitutions, in source order.
func (t *SourceTree) References(name string) []Reference {
	refs := tokenSeq{toks: t.tokens, match: t.match}.references(name, t.inImport)
	for _, seq := range t.embedded {
		refs = append(refs, seq.references(name, nil)...)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Span.Start < refs[j].Span.Start })

	return refs
}

// tokenSeq is a run of tokens with its bracket pairs.
type tokenSeq struct {
	toks  []Token
	match []int
}

func (s tokenSeq) at(i int) Token {
	if i < 0 || i >= len(s.toks) {
		return Token{Kind: EOF}
	}

	return s.toks[i]
}

func (s tokenSeq) pair(i int) int {
	if i < 0 || i >= len(s.match) {
		return -1
	}

	return s.match[i]
}

func (s tokenSeq) references(name string, inImport func(offset int) bool) []Reference {
	var refs []Reference

	for i, tok := range s.toks {
		if tok.Kind != Ident || tok.Text != name {
			continue
		}

		prev, next := s.at(i-1), s.at(i+1)
		listed := (prev.IsPunct("{") || prev.IsPunct(",")) && s.enclosingBrace(i) >= 0

		switch {
		case prev.IsPunct(".") || prev.IsPunct("?."):
			continue
		case listed && next.IsPunct(":"):
			continue
		case prev.Kind == Ident && isModifier(declKeywords, prev.Text):
			continue
		case inImport != nil && inImport(tok.Start):
			continue
		case tok.Text == "async" && s.asyncModifier(i):
			continue
		}

		ref := Reference{Span: tok.Span()}

		if listed && (next.IsPunct(",") || next.IsPunct("}") || next.IsPunct("=")) {
			brace := s.enclosingBrace(i)

			if s.at(brace - 1).IsIdent("export") {
				// "export { name } from '...'" names another module's binding
				if s.at(s.pair(brace) + 1).IsIdent("from") {
					continue
				}

				ref.Export = true
			} else {
				ref.Shorthand = true
			}
		}

		refs = append(refs, ref)
	}

	return refs
}

// operatorWords may follow an expression operand.
var operatorWords = map[string]struct{}{
	"as": {}, "of": {}, "in": {}, "instanceof": {}, "satisfies": {},
}

// asyncModifier reports whether the async token at i marks an async
// function, arrow function or method rather than naming a value.
func (s tokenSeq) asyncModifier(i int) bool {
	next := s.at(i + 1)

	switch {
	case next.Kind == Ident:
		return !isModifier(operatorWords, next.Text)
	case next.IsPunct("("):
		closeIdx := s.pair(i + 1)
		return closeIdx >= 0 && s.at(closeIdx+1).IsPunct("=>")
	}

	return false
}

// enclosingBrace returns the index of the '{' that token i sits directly
// inside, where "name:" is a key rather than a label or a type annotation
// inside a parameter list, or -1.
func (s tokenSeq) enclosingBrace(i int) int {
	depth := 0

	for k := i - 1; k >= 0; k-- {
		tok := s.toks[k]
		if tok.Kind != Punct {
			continue
		}

		switch tok.Text {
		case ")", "]", "}":
			depth++
		case "(", "[":
			if depth == 0 {
				return -1
			}

			depth--
		case "{":
			if depth == 0 {
				return k
			}

			depth--
		}
	}

	return -1
}

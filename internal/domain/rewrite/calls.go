package rewrite

import (
	"fmt"

	"upshift.dev/pkg/upshift/internal/syntax"
)

// InlineFactoryCall rewrites x.Outer(y.Inner(C), ...) to x.Outer(C, ...).
// Inner calls left in any other shape are reported for manual review.
type InlineFactoryCall struct {
	Outer string
	Inner string
}

func (r InlineFactoryCall) Describe() string {
	return fmt.Sprintf("pass %s() arguments directly to %s()", r.Inner, r.Outer)
}

func (r InlineFactoryCall) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		file := ws.Rel(pathOf(tree))

		for {
			outer, inner := r.findNested(tree)
			if outer == nil {
				break
			}

			before := tree.Text(outer.Args[0])
			arg := tree.Text(inner.Args[0])

			if err := tree.Apply(syntax.Replace(outer.Args[0], arg)); err != nil {
				return out, fmt.Errorf("inline %s in %s: %w", r.Inner, tree.Path(), err)
			}

			out.change(file, fmt.Sprintf("passed %s directly to .%s()", arg, r.Outer), before, arg)
		}

		for _, call := range tree.MethodCalls(r.Inner) {
			out.warn(file, "line %d: %s is not passed directly to .%s(); pass the class itself instead",
				tree.Line(call.Span.Start), tree.Text(call.Span), r.Outer)
		}
	}

	return out, nil
}

func (r InlineFactoryCall) findNested(tree *syntax.SourceTree) (*syntax.CallSite, *syntax.CallSite) {
	inners := tree.MethodCalls(r.Inner)

	for _, outer := range tree.MethodCalls(r.Outer) {
		if len(outer.Args) == 0 {
			continue
		}

		for _, inner := range inners {
			if inner.Span == outer.Args[0] && len(inner.Args) == 1 {
				return outer, inner
			}
		}
	}

	return nil, nil
}

// RemoveStaticMethodCall rewrites Type.Method(...) to Type.
type RemoveStaticMethodCall struct {
	Type   string
	Method string
}

func (r RemoveStaticMethodCall) Describe() string {
	return fmt.Sprintf("replace %s.%s(...) with %s", r.Type, r.Method, r.Type)
}

func (r RemoveStaticMethodCall) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for {
			call := r.find(tree)
			if call == nil {
				break
			}

			before := tree.Text(call.Span)

			if err := tree.Apply(syntax.Replace(call.Span, r.Type)); err != nil {
				return out, fmt.Errorf("replace %s.%s in %s: %w", r.Type, r.Method, tree.Path(), err)
			}

			out.change(ws.Rel(pathOf(tree)), fmt.Sprintf("replaced %s.%s(...) with %s", r.Type, r.Method, r.Type), before, r.Type)
		}
	}

	return out, nil
}

func (r RemoveStaticMethodCall) find(tree *syntax.SourceTree) *syntax.CallSite {
	for _, call := range tree.MethodCalls(r.Method) {
		if call.Receiver == r.Type {
			return call
		}
	}

	return nil
}

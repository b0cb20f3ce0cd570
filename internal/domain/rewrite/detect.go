package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// DetectMethodCall reports every .Method(...) call without changing it.
type DetectMethodCall struct {
	Method  string
	Message string
}

func (r DetectMethodCall) Describe() string {
	return fmt.Sprintf("report .%s() calls", r.Method)
}

func (r DetectMethodCall) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for _, call := range tree.MethodCalls(r.Method) {
			out.warn(ws.Rel(pathOf(tree)), "line %d: .%s(): %s", tree.Line(call.MethodSpan.Start), r.Method, r.Message)
		}
	}

	return out, nil
}

// DetectImport reports files importing Symbol from Module, or anything from
// Module when Symbol is empty.
type DetectImport struct {
	Module  string
	Symbol  string
	Message string
}

func (r DetectImport) Describe() string {
	if r.Symbol == "" {
		return fmt.Sprintf("report imports from %s", r.Module)
	}

	return fmt.Sprintf("report %s imports from %s", r.Symbol, r.Module)
}

func (r DetectImport) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for _, decl := range tree.ImportsFrom(r.Module) {
			if r.Symbol != "" && decl.Find(r.Symbol) == nil {
				continue
			}

			out.warn(ws.Rel(pathOf(tree)), "line %d: %s", tree.Line(decl.Span.Start), r.Message)
		}
	}

	return out, nil
}

// DetectMetadataProperty reports decorator metadata still using Property.
type DetectMetadataProperty struct {
	Decorators []string
	Property   string
	Message    string
}

func (r DetectMetadataProperty) Describe() string {
	return fmt.Sprintf("report %s in %s metadata", r.Property, strings.Join(r.Decorators, "/"))
}

func (r DetectMetadataProperty) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for _, class := range tree.Classes() {
			for _, dec := range metadataDecorators(class, r.Decorators) {
				prop := dec.Literal.Find(r.Property)
				if prop == nil {
					continue
				}

				out.warn(ws.Rel(pathOf(tree)), "line %d: %s of %s: %s", tree.Line(prop.Span.Start), r.Property, class.Name, r.Message)
			}
		}
	}

	return out, nil
}

// DetectPattern reports every match of Pattern in the source trees.
type DetectPattern struct {
	Pattern *regexp.Regexp
	Message string
}

func (r DetectPattern) Describe() string {
	return fmt.Sprintf("report matches of %s", r.Pattern)
}

func (r DetectPattern) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for _, loc := range r.Pattern.FindAllIndex(tree.Source(), -1) {
			out.warn(ws.Rel(pathOf(tree)), "line %d: %s", tree.Line(loc[0]), r.Message)
		}
	}

	return out, nil
}

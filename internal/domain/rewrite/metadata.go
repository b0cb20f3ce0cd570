package rewrite

import (
	"bytes"
	"fmt"
	"strings"

	"upshift.dev/pkg/upshift/internal/syntax"
)

// RemoveFromMetadataArray deletes the bare identifier Symbol from the array
// properties named in Properties of the decorators named in Decorators.
type RemoveFromMetadataArray struct {
	Decorators []string
	Properties []string
	Symbol     string
}

func (r RemoveFromMetadataArray) Describe() string {
	return fmt.Sprintf("remove %s from %s metadata", r.Symbol, strings.Join(r.Decorators, "/"))
}

func (r RemoveFromMetadataArray) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for {
			class, dec, prop, idx := r.find(tree)
			if prop == nil {
				break
			}

			span := syntax.ListItemRemoval(prop.Array.Inner, prop.Array.Items(), idx)
			if err := tree.Apply(syntax.Delete(span)); err != nil {
				return out, fmt.Errorf("remove %s in %s: %w", r.Symbol, tree.Path(), err)
			}

			out.change(ws.Rel(pathOf(tree)),
				fmt.Sprintf("removed %s from @%s %s of %s", r.Symbol, dec.Name, prop.Key, class.Name),
				r.Symbol, "")
		}
	}

	return out, nil
}

func (r RemoveFromMetadataArray) find(tree *syntax.SourceTree) (*syntax.ClassDecl, *syntax.Decorator, *syntax.Property, int) {
	for _, class := range tree.Classes() {
		for _, dec := range metadataDecorators(class, r.Decorators) {
			for _, key := range r.Properties {
				prop := dec.Literal.Find(key)
				if prop == nil || prop.Array == nil {
					continue
				}

				for i, el := range prop.Array.Elements {
					if el.Ident && el.Text == r.Symbol {
						return class, dec, prop, i
					}
				}
			}
		}
	}

	return nil, nil, nil, 0
}

// Position selects where InsertMetadataProperty places the new property.
type Position int

const (
	PositionLast Position = iota
	PositionFirst
)

// InsertMetadataProperty adds "Property: Literal" to every metadata literal
// of the named decorators that does not already have Property.
type InsertMetadataProperty struct {
	Decorators []string
	Property   string
	Literal    string
	Position   Position
}

func (r InsertMetadataProperty) Describe() string {
	return fmt.Sprintf("add %s: %s to %s metadata", r.Property, r.Literal, strings.Join(r.Decorators, "/"))
}

func (r InsertMetadataProperty) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	text := r.Property + ": " + r.Literal

	for _, tree := range ws.Trees() {
		file := ws.Rel(pathOf(tree))

		var edits []syntax.Edit

		var names []string

		for _, class := range tree.Classes() {
			for _, dec := range metadataDecorators(class, r.Decorators) {
				if dec.Literal.Find(r.Property) != nil {
					continue
				}

				edit, ok := insertProperty(tree, dec.Literal, text, r.Position)
				if !ok {
					out.warn(file, "line %d: could not add %s to @%s of %s; add it manually",
						tree.Line(dec.Span.Start), text, dec.Name, class.Name)

					continue
				}

				edits = append(edits, edit)
				names = append(names, class.Name)
			}
		}

		if len(edits) == 0 {
			continue
		}

		if err := tree.Apply(edits...); err != nil {
			return out, fmt.Errorf("add %s in %s: %w", r.Property, tree.Path(), err)
		}

		for _, name := range names {
			out.change(file, fmt.Sprintf("added %s to %s", text, name), "", text)
		}
	}

	return out, nil
}

func insertProperty(tree *syntax.SourceTree, lit *syntax.ObjectLiteral, text string, pos Position) (syntax.Edit, bool) {
	src := tree.Source()
	props := lit.Properties

	if len(props) == 0 {
		// spreads and other entries the parser does not model
		if strings.TrimSpace(tree.Text(lit.Inner)) != "" {
			return syntax.Edit{}, false
		}

		return syntax.Replace(lit.Span, "{ "+text+" }"), true
	}

	first, last := props[0], props[len(props)-1]
	multiline := bytes.IndexByte(src[lit.Span.Start:first.Span.Start], '\n') >= 0

	switch {
	case pos == PositionFirst && multiline:
		return syntax.Insert(first.Span.Start, text+",\n"+syntax.Indentation(src, first.Span.Start)), true
	case pos == PositionFirst:
		return syntax.Insert(first.Span.Start, text+", "), true
	case multiline:
		return syntax.Insert(last.Span.End, ",\n"+syntax.Indentation(src, last.Span.Start)+text), true
	default:
		return syntax.Insert(last.Span.End, ", "+text), true
	}
}

func metadataDecorators(class *syntax.ClassDecl, names []string) []*syntax.Decorator {
	var decs []*syntax.Decorator

	for _, name := range names {
		if dec := class.Decorator(name); dec != nil && dec.Literal != nil {
			decs = append(decs, dec)
		}
	}

	return decs
}

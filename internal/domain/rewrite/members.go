package rewrite

import (
	"fmt"

	"upshift.dev/pkg/upshift/internal/syntax"
)

// RemoveTypedConstructorParameter deletes constructor parameters declared
// with type Type.
type RemoveTypedConstructorParameter struct {
	Type string
}

func (r RemoveTypedConstructorParameter) Describe() string {
	return fmt.Sprintf("remove constructor parameters of type %s", r.Type)
}

func (r RemoveTypedConstructorParameter) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		file := ws.Rel(pathOf(tree))

		for {
			class, idx := r.find(tree)
			if class == nil {
				break
			}

			ctor := class.Constructor
			param := ctor.Params[idx]
			inner := syntax.Span{Start: ctor.Parens.Start + 1, End: ctor.Parens.End - 1}
			before := tree.Text(param.Span)

			if err := tree.Apply(syntax.Delete(syntax.ListItemRemoval(inner, ctor.ParamItems(), idx))); err != nil {
				return out, fmt.Errorf("remove parameter %s in %s: %w", param.Name, tree.Path(), err)
			}

			out.change(file, fmt.Sprintf("removed constructor parameter %s from %s", param.Name, class.Name), before, "")
			out.warn(file, "%s: removed constructor parameter %s: %s; update remaining uses of %s",
				class.Name, param.Name, r.Type, param.Name)
		}
	}

	return out, nil
}

func (r RemoveTypedConstructorParameter) find(tree *syntax.SourceTree) (*syntax.ClassDecl, int) {
	for _, class := range tree.Classes() {
		if class.Constructor == nil {
			continue
		}

		for i, param := range class.Constructor.Params {
			if param.TypeName == r.Type {
				return class, i
			}
		}
	}

	return nil, 0
}

// RemoveTypedField deletes class fields declared with type Type.
type RemoveTypedField struct {
	Type string
}

func (r RemoveTypedField) Describe() string {
	return fmt.Sprintf("remove fields of type %s", r.Type)
}

func (r RemoveTypedField) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		file := ws.Rel(pathOf(tree))

		for {
			class, field := r.find(tree)
			if field == nil {
				break
			}

			before := tree.Text(field.Span)

			if err := tree.Apply(syntax.Delete(syntax.LineRemoval(tree.Source(), field.Span))); err != nil {
				return out, fmt.Errorf("remove field %s in %s: %w", field.Name, tree.Path(), err)
			}

			out.change(file, fmt.Sprintf("removed field %s from %s", field.Name, class.Name), before, "")
			out.warn(file, "%s: removed field %s: %s; update remaining uses of this.%s",
				class.Name, field.Name, r.Type, field.Name)
		}
	}

	return out, nil
}

func (r RemoveTypedField) find(tree *syntax.SourceTree) (*syntax.ClassDecl, *syntax.Field) {
	for _, class := range tree.Classes() {
		for _, field := range class.Fields {
			if field.TypeName == r.Type {
				return class, field
			}
		}
	}

	return nil, nil
}

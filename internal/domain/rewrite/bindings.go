package rewrite

import (
	"bytes"
	"fmt"

	"upshift.dev/pkg/upshift/internal/syntax"
)

// RenameBinding renames the symbol From imported from Module to To, together
// with every reference to its local name. Aliased imports only have the
// imported name renamed.
type RenameBinding struct {
	Module string
	From   string
	To     string
}

func (r RenameBinding) Describe() string {
	return fmt.Sprintf("rename %s to %s (%s)", r.From, r.To, r.Module)
}

func (r RenameBinding) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	if r.From == r.To {
		return out, nil
	}

	for _, tree := range ws.Trees() {
		refs := 0

		for {
			decl, spec := tree.FindImport(r.Module, r.From)
			if spec == nil {
				break
			}

			var edits []syntax.Edit

			newLocal := r.To
			if _, existing := tree.FindImport(r.Module, r.To); existing != nil {
				newLocal = existing.Local
				edits = append(edits, removeBinding(tree, decl, spec))
			} else {
				edits = append(edits, syntax.Replace(spec.NameSpan, r.To))
			}

			if !spec.Aliased() {
				for _, ref := range tree.References(spec.Local) {
					edits = append(edits, syntax.Replace(ref.Span, renamedRef(ref, spec.Local, newLocal)))
					refs++
				}
			}

			if err := tree.Apply(edits...); err != nil {
				return out, fmt.Errorf("rename %s in %s: %w", r.From, tree.Path(), err)
			}

			out.change(ws.Rel(pathOf(tree)),
				fmt.Sprintf("renamed %s to %s, %d reference(s) updated", r.From, r.To, refs),
				r.From, r.To)
		}
	}

	return out, nil
}

// renamedRef keeps the property or exported name of a shorthand use.
func renamedRef(ref syntax.Reference, old, renamed string) string {
	switch {
	case ref.Shorthand:
		return old + ": " + renamed
	case ref.Export:
		return renamed + " as " + old
	}

	return renamed
}

// RelocateBinding moves the import of Symbol from module From to module To,
// merging into an existing import of To when there is one. Alias and
// type-only markers are preserved.
type RelocateBinding struct {
	Symbol string
	From   string
	To     string
}

func (r RelocateBinding) Describe() string {
	return fmt.Sprintf("move %s import from %s to %s", r.Symbol, r.From, r.To)
}

func (r RelocateBinding) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	if r.From == r.To {
		return out, nil
	}

	for _, tree := range ws.Trees() {
		for {
			decl, spec := tree.FindImport(r.From, r.Symbol)
			if spec == nil {
				break
			}

			specText := tree.Text(spec.Span)

			if err := tree.Apply(r.edits(tree, decl, spec)...); err != nil {
				return out, fmt.Errorf("move %s in %s: %w", r.Symbol, tree.Path(), err)
			}

			out.change(ws.Rel(pathOf(tree)),
				fmt.Sprintf("moved %s import from %s to %s", r.Symbol, r.From, r.To),
				fmt.Sprintf("import { %s } from '%s'", specText, r.From),
				fmt.Sprintf("import { %s } from '%s'", specText, r.To))
		}
	}

	return out, nil
}

func (r RelocateBinding) edits(tree *syntax.SourceTree, decl *syntax.ImportDecl, spec *syntax.ImportSpecifier) []syntax.Edit {
	text := tree.Text(spec.Span)
	target := mergeTarget(tree, r.To, decl.TypeOnly)

	if target != nil && decl.TypeOnly && !target.TypeOnly && !spec.TypeOnly {
		text = "type " + text
	}

	switch {
	case target != nil && target.Find(r.Symbol) != nil:
		return []syntax.Edit{removeBinding(tree, decl, spec)}
	case target != nil && !target.Braces.Empty():
		return []syntax.Edit{removeBinding(tree, decl, spec), insertSpecifier(tree, target, text)}
	case target != nil:
		return []syntax.Edit{
			removeBinding(tree, decl, spec),
			syntax.Insert(target.Default.Span.End, ", { "+text+" }"),
		}
	case decl.BindingCount() == 1:
		return []syntax.Edit{syntax.Replace(decl.Span, importStatement(text, r.To, decl.Quote, decl.TypeOnly))}
	default:
		return []syntax.Edit{
			removeBinding(tree, decl, spec),
			syntax.Insert(decl.Span.End, "\n"+importStatement(text, r.To, decl.Quote, decl.TypeOnly)),
		}
	}
}

// mergeTarget returns an import of module that can take another named
// binding: one with a named clause or a lone default binding. Type-only
// declarations only accept type-only bindings.
func mergeTarget(tree *syntax.SourceTree, module string, typeOnly bool) *syntax.ImportDecl {
	for _, decl := range tree.ImportsFrom(module) {
		if decl.TypeOnly && !typeOnly {
			continue
		}

		if decl.Namespace != nil || decl.SideEffect() {
			continue
		}

		if !decl.Braces.Empty() || decl.Default != nil {
			return decl
		}
	}

	return nil
}

// DropBinding removes an import binding whose symbol no longer exists and
// asks for manual migration of the remaining references.
type DropBinding struct {
	Module string
	Symbol string
	Hint   string
}

func (r DropBinding) Describe() string {
	return fmt.Sprintf("remove %s import (%s)", r.Symbol, r.Module)
}

func (r DropBinding) Apply(ws *Workspace) (Outcome, error) {
	var out Outcome

	for _, tree := range ws.Trees() {
		for {
			decl, spec := tree.FindImport(r.Module, r.Symbol)
			if spec == nil {
				break
			}

			local := spec.Local

			if err := tree.Apply(removeBinding(tree, decl, spec)); err != nil {
				return out, fmt.Errorf("remove %s in %s: %w", r.Symbol, tree.Path(), err)
			}

			file := ws.Rel(pathOf(tree))
			refs := len(tree.IdentifierRefs(local))

			out.change(file, fmt.Sprintf("removed %s import from %s", r.Symbol, r.Module), r.Symbol, "")

			if refs > 0 {
				out.warn(file, "%s no longer exists in %s; %d reference(s) to %s remain. %s", r.Symbol, r.Module, refs, local, r.Hint)
			} else {
				out.warn(file, "%s no longer exists in %s. %s", r.Symbol, r.Module, r.Hint)
			}
		}
	}

	return out, nil
}

// removeBinding returns the edit deleting spec from decl. The whole
// statement goes when spec is its only binding.
func removeBinding(tree *syntax.SourceTree, decl *syntax.ImportDecl, spec *syntax.ImportSpecifier) syntax.Edit {
	switch {
	case decl.BindingCount() == 1:
		return syntax.Delete(syntax.LineRemoval(tree.Source(), decl.Span))
	case len(decl.Named) == 1 && decl.Default != nil:
		return syntax.Delete(syntax.Span{Start: decl.Default.Span.End, End: decl.Braces.End})
	}

	items := make([]syntax.Span, len(decl.Named))
	idx := 0

	for i, named := range decl.Named {
		items[i] = named.Span
		if named == spec {
			idx = i
		}
	}

	return syntax.Delete(syntax.ListItemRemoval(braceInner(decl), items, idx))
}

// insertSpecifier adds text to the named clause of decl, keeping its
// single or multi-line layout.
func insertSpecifier(tree *syntax.SourceTree, decl *syntax.ImportDecl, text string) syntax.Edit {
	if len(decl.Named) == 0 {
		return syntax.Replace(decl.Braces, "{ "+text+" }")
	}

	src := tree.Source()
	last := decl.Named[len(decl.Named)-1]

	if bytes.IndexByte(src[decl.Braces.Start:last.Span.Start], '\n') >= 0 {
		return syntax.Insert(last.Span.End, ",\n"+syntax.Indentation(src, last.Span.Start)+text)
	}

	return syntax.Insert(last.Span.End, ", "+text)
}

func importStatement(spec, module string, quote byte, typeOnly bool) string {
	keyword := "import "
	if typeOnly {
		keyword = "import type "
	}

	if quote == 0 {
		quote = '\''
	}

	return fmt.Sprintf("%s{ %s } from %c%s%c;", keyword, spec, quote, module, quote)
}

func braceInner(decl *syntax.ImportDecl) syntax.Span {
	return syntax.Span{Start: decl.Braces.Start + 1, End: decl.Braces.End - 1}
}

package syntax

import "strings"

// ImportSpecifier is one binding of an import declaration.
type ImportSpecifier struct {
	Imported string // name exported by the module ("default" / "*" for those clauses)
	Local    string // name bound in the file
	Span     Span   // whole specifier, e.g. "A as B"
	NameSpan Span   // the imported name token
	TypeOnly bool
}

// Aliased reports whether the specifier binds a different local name.
func (s *ImportSpecifier) Aliased() bool {
	return s.Local != s.Imported
}

// ImportDecl is a static import statement.
type ImportDecl struct {
	Span       Span // from "import" to the terminating semicolon, if any
	Module     string
	ModuleSpan Span // includes the quotes
	Quote      byte
	TypeOnly   bool
	Default    *ImportSpecifier
	Namespace  *ImportSpecifier
	Named      []*ImportSpecifier
	Braces     Span // "{ ... }" inclusive; empty when there is no named clause
}

// SideEffect reports whether the import binds nothing (import 'x').
func (d *ImportDecl) SideEffect() bool {
	return d.Default == nil && d.Namespace == nil && d.Braces.Empty()
}

// Find returns the named specifier importing name, or nil.
func (d *ImportDecl) Find(name string) *ImportSpecifier {
	for _, spec := range d.Named {
		if spec.Imported == name {
			return spec
		}
	}

	return nil
}

// BindingCount returns the number of names bound by the declaration.
func (d *ImportDecl) BindingCount() int {
	count := len(d.Named)
	if d.Default != nil {
		count++
	}

	if d.Namespace != nil {
		count++
	}

	return count
}

// ImportsFrom returns the declarations importing from module.
func (t *SourceTree) ImportsFrom(module string) []*ImportDecl {
	var decls []*ImportDecl

	for _, decl := range t.imports {
		if decl.Module == module {
			decls = append(decls, decl)
		}
	}

	return decls
}

// FindImport returns the first declaration importing name from module
// together with its specifier.
func (t *SourceTree) FindImport(module, name string) (*ImportDecl, *ImportSpecifier) {
	for _, decl := range t.ImportsFrom(module) {
		if spec := decl.Find(name); spec != nil {
			return decl, spec
		}
	}

	return nil, nil
}

// inImport reports whether offset falls inside an import declaration.
func (t *SourceTree) inImport(offset int) bool {
	for _, decl := range t.imports {
		if decl.Span.Start <= offset && offset < decl.Span.End {
			return true
		}
	}

	return false
}

func (t *SourceTree) parseImports() []*ImportDecl {
	var decls []*ImportDecl

	depth := 0

	for i := 0; i < len(t.tokens); i++ {
		tok := t.tokens[i]

		if tok.Kind == Punct {
			switch tok.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}

			continue
		}

		if depth != 0 || !tok.IsIdent("import") || t.tok(i-1).IsPunct(".") {
			continue
		}

		next := t.tok(i + 1)
		if next.IsPunct("(") || next.IsPunct(".") {
			continue // dynamic import or import.meta
		}

		decl, end := t.parseImport(i)
		if decl == nil {
			continue
		}

		decls = append(decls, decl)
		i = end
	}

	return decls
}

// parseImport parses the declaration starting at token i ("import"). It
// returns nil for shapes it does not model (import x = require(...)).
func (t *SourceTree) parseImport(i int) (*ImportDecl, int) {
	decl := &ImportDecl{}
	j := i + 1

	if t.tok(j).IsIdent("type") && !t.tok(j+1).IsIdent("from") && !t.tok(j+1).IsPunct(",") {
		decl.TypeOnly = true
		j++
	}

	if t.tok(j).Kind == String {
		return t.finishImport(decl, i, j)
	}

	if t.tok(j).Kind == Ident && !t.tok(j).IsIdent("from") {
		name := t.tok(j)
		decl.Default = &ImportSpecifier{
			Imported: "default",
			Local:    name.Text,
			Span:     name.Span(),
			NameSpan: name.Span(),
		}
		j++

		if !t.tok(j).IsPunct(",") {
			return t.expectFrom(decl, i, j)
		}

		j++
	}

	switch {
	case t.tok(j).IsPunct("*"):
		if !t.tok(j+1).IsIdent("as") || t.tok(j+2).Kind != Ident {
			return nil, i
		}

		decl.Namespace = &ImportSpecifier{
			Imported: "*",
			Local:    t.tok(j + 2).Text,
			Span:     t.spanOf(j, j+2),
			NameSpan: t.tok(j).Span(),
		}
		j += 3
	case t.tok(j).IsPunct("{"):
		closeIdx := t.Match(j)
		if closeIdx < 0 {
			return nil, i
		}

		decl.Braces = t.spanOf(j, closeIdx)

		for _, part := range t.splitTopLevel(j, closeIdx, false) {
			spec := t.parseSpecifier(part[0], part[1])
			if spec == nil {
				return nil, i
			}

			decl.Named = append(decl.Named, spec)
		}

		j = closeIdx + 1
	default:
		return nil, i
	}

	return t.expectFrom(decl, i, j)
}

func (t *SourceTree) expectFrom(decl *ImportDecl, i, j int) (*ImportDecl, int) {
	if !t.tok(j).IsIdent("from") || t.tok(j+1).Kind != String {
		return nil, i
	}

	return t.finishImport(decl, i, j+1)
}

func (t *SourceTree) finishImport(decl *ImportDecl, i, moduleIdx int) (*ImportDecl, int) {
	module := t.tok(moduleIdx)
	decl.ModuleSpan = module.Span()
	decl.Quote = module.Text[0]
	decl.Module = unquote(module.Text)

	end := moduleIdx

	// import attributes: with { type: 'json' } / assert { ... }
	if next := t.tok(end + 1); (next.IsIdent("with") || next.IsIdent("assert")) && t.tok(end+2).IsPunct("{") {
		if m := t.Match(end + 2); m > 0 {
			end = m
		}
	}

	if t.tok(end + 1).IsPunct(";") {
		end++
	}

	decl.Span = t.spanOf(i, end)

	return decl, end
}

func (t *SourceTree) parseSpecifier(from, to int) *ImportSpecifier {
	spec := &ImportSpecifier{Span: t.spanOf(from, to)}
	j := from

	if t.tok(j).IsIdent("type") && j < to {
		spec.TypeOnly = true
		j++
	}

	name := t.tok(j)
	if name.Kind != Ident && name.Kind != String {
		return nil
	}

	spec.Imported = unquote(name.Text)
	spec.Local = spec.Imported
	spec.NameSpan = name.Span()

	switch {
	case j == to:
	case j+2 == to && t.tok(j+1).IsIdent("as") && t.tok(j+2).Kind == Ident:
		spec.Local = t.tok(j + 2).Text
	default:
		return nil
	}

	return spec
}

func unquote(text string) string {
	if len(text) >= 2 && (text[0] == '\'' || text[0] == '"') {
		return strings.ReplaceAll(text[1:len(text)-1], "\\"+text[:1], text[:1])
	}

	return text
}

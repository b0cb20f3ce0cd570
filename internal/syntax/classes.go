package syntax

// Element is one entry of an array literal.
type Element struct {
	Span  Span
	Text  string
	Ident bool // a bare identifier, as opposed to a call or other expression
}

// ArrayLiteral is a "[ ... ]" value.
type ArrayLiteral struct {
	Span     Span // brackets inclusive
	Inner    Span // between the brackets
	Elements []*Element
}

// Items returns the element spans in order.
func (a *ArrayLiteral) Items() []Span {
	items := make([]Span, len(a.Elements))
	for i, el := range a.Elements {
		items[i] = el.Span
	}

	return items
}

// Property is one "key: value" entry of an object literal. Shorthand
// properties have Value == KeySpan.
type Property struct {
	Key     string
	Span    Span
	KeySpan Span
	Value   Span
	Array   *ArrayLiteral // set when the value is an array literal
}

// ObjectLiteral is a "{ ... }" value.
type ObjectLiteral struct {
	Span       Span // braces inclusive
	Inner      Span // between the braces
	Properties []*Property
}

// Find returns the property named key, or nil.
func (o *ObjectLiteral) Find(key string) *Property {
	for _, prop := range o.Properties {
		if prop.Key == key {
			return prop
		}
	}

	return nil
}

// Decorator is an "@Name(...)" annotation. Literal is set when the first
// argument is an object literal (the metadata block).
type Decorator struct {
	Name    string
	Span    Span
	Literal *ObjectLiteral
}

// Param is a constructor parameter.
type Param struct {
	Name     string
	TypeName string
	Span     Span
}

// Constructor is a class constructor.
type Constructor struct {
	Span   Span
	Params []*Param
	Parens Span
	Body   Span
}

// ParamItems returns the parameter spans in order.
func (c *Constructor) ParamItems() []Span {
	items := make([]Span, len(c.Params))
	for i, p := range c.Params {
		items[i] = p.Span
	}

	return items
}

// Field is a class property declaration.
type Field struct {
	Name     string
	TypeName string
	Span     Span // decorators through the terminating semicolon
}

// ClassDecl is a class declaration with its decorators and members.
type ClassDecl struct {
	Name        string
	Span        Span // first decorator through the closing brace
	Body        Span
	Decorators  []*Decorator
	Constructor *Constructor
	Fields      []*Field
}

// Decorator returns the decorator named name, or nil.
func (c *ClassDecl) Decorator(name string) *Decorator {
	for _, d := range c.Decorators {
		if d.Name == name {
			return d
		}
	}

	return nil
}

var classModifiers = map[string]struct{}{
	"export": {}, "default": {}, "abstract": {}, "declare": {},
}

var memberModifiers = map[string]struct{}{
	"public": {}, "private": {}, "protected": {}, "readonly": {}, "static": {},
	"abstract": {}, "declare": {}, "override": {}, "async": {}, "get": {}, "set": {},
	"accessor": {},
}

var paramModifiers = map[string]struct{}{
	"public": {}, "private": {}, "protected": {}, "readonly": {}, "override": {},
}

func (t *SourceTree) parseClasses() []*ClassDecl {
	var (
		classes []*ClassDecl
		pending []*Decorator
	)

	for i := 0; i < len(t.tokens); i++ {
		tok := t.tokens[i]

		switch {
		case tok.IsPunct("@") && t.tok(i+1).Kind == Ident:
			dec, end := t.parseDecorator(i)
			pending = append(pending, dec)
			i = end
		case tok.Kind == Ident && isModifier(classModifiers, tok.Text):
		case tok.IsIdent("class") && !t.tok(i-1).IsPunct(".") && (t.tok(i+1).Kind == Ident || t.tok(i+1).IsPunct("{")):
			class := t.parseClass(i, pending)
			pending = nil

			if class != nil {
				classes = append(classes, class)
			}
		default:
			pending = nil
		}
	}

	return classes
}

// parseDecorator parses "@A.B(...)" starting at the '@' token and returns
// the index of its last token.
func (t *SourceTree) parseDecorator(at int) (*Decorator, int) {
	j := at + 1
	name := t.tok(j).Text

	for t.tok(j+1).IsPunct(".") && t.tok(j+2).Kind == Ident {
		j += 2
		name = t.tok(j).Text
	}

	dec := &Decorator{Name: name, Span: t.spanOf(at, j)}

	if t.tok(j + 1).IsPunct("(") {
		closeIdx := t.Match(j + 1)
		dec.Span = t.spanOf(at, closeIdx)

		args := t.splitTopLevel(j+1, closeIdx, false)
		if len(args) > 0 && t.tok(args[0][0]).IsPunct("{") && t.Match(args[0][0]) == args[0][1] {
			dec.Literal = t.parseObject(args[0][0])
		}

		j = closeIdx
	}

	return dec, j
}

func (t *SourceTree) parseClass(at int, decorators []*Decorator) *ClassDecl {
	class := &ClassDecl{Decorators: decorators}

	if name := t.tok(at + 1); name.Kind == Ident && !name.IsIdent("extends") && !name.IsIdent("implements") {
		class.Name = name.Text
	}

	open := -1
	angle := 0

	for j := at + 1; j < len(t.tokens); j++ {
		tok := t.tokens[j]

		switch {
		case tok.IsPunct("<"):
			angle++
		case tok.IsPunct(">"):
			angle--
		case tok.IsPunct("{") && angle <= 0:
			open = j
		}

		if open >= 0 {
			break
		}

		// skip object types and call groups in the heritage clause
		if m := t.match[j]; m > j {
			j = m
		}
	}

	if open < 0 {
		return nil
	}

	closeIdx := t.match[open]
	start := t.tokens[at].Start

	if len(decorators) > 0 {
		start = decorators[0].Span.Start
	}

	class.Span = Span{Start: start, End: t.tokens[closeIdx].End}
	class.Body = t.spanOf(open, closeIdx)
	t.parseMembers(class, open, closeIdx)

	return class
}

func (t *SourceTree) parseObject(open int) *ObjectLiteral {
	closeIdx := t.match[open]
	obj := &ObjectLiteral{
		Span:  t.spanOf(open, closeIdx),
		Inner: Span{Start: t.tokens[open].End, End: t.tokens[closeIdx].Start},
	}

	for _, part := range t.splitTopLevel(open, closeIdx, false) {
		key := t.tok(part[0])
		if key.Kind != Ident && key.Kind != String && key.Kind != Number {
			continue // spread or computed key
		}

		prop := &Property{
			Key:     unquote(key.Text),
			Span:    t.spanOf(part[0], part[1]),
			KeySpan: key.Span(),
			Value:   key.Span(),
		}

		if part[0] < part[1] && t.tok(part[0]+1).IsPunct(":") && part[0]+2 <= part[1] {
			valueStart := part[0] + 2
			prop.Value = t.spanOf(valueStart, part[1])

			if t.tok(valueStart).IsPunct("[") && t.match[valueStart] == part[1] {
				prop.Array = t.parseArray(valueStart)
			}
		}

		obj.Properties = append(obj.Properties, prop)
	}

	return obj
}

func (t *SourceTree) parseArray(open int) *ArrayLiteral {
	closeIdx := t.match[open]
	arr := &ArrayLiteral{
		Span:  t.spanOf(open, closeIdx),
		Inner: Span{Start: t.tokens[open].End, End: t.tokens[closeIdx].Start},
	}

	for _, part := range t.splitTopLevel(open, closeIdx, false) {
		span := t.spanOf(part[0], part[1])
		arr.Elements = append(arr.Elements, &Element{
			Span:  span,
			Text:  t.Text(span),
			Ident: part[0] == part[1] && t.tok(part[0]).Kind == Ident,
		})
	}

	return arr
}

// parseMembers walks the direct members of a class body.
func (t *SourceTree) parseMembers(class *ClassDecl, open, closeIdx int) {
	j := open + 1

	for j < closeIdx {
		if t.tokens[j].IsPunct(";") {
			j++
			continue
		}

		next := t.parseMember(class, j, closeIdx)
		if next <= j {
			next = j + 1
		}

		j = next
	}
}

// parseMember parses the member starting at token j and returns the index of
// the first token after it.
func (t *SourceTree) parseMember(class *ClassDecl, start, closeIdx int) int {
	j := start

	for t.tok(j).IsPunct("@") && t.tok(j+1).Kind == Ident {
		_, end := t.parseDecorator(j)
		j = end + 1
	}

	for t.tok(j).Kind == Ident && isModifier(memberModifiers, t.tok(j).Text) && !endsName(t.tok(j+1)) {
		j++
	}

	nameIdx := j
	name := t.tok(j)

	switch {
	case name.IsPunct("["):
		j = t.match[j] + 1 // computed name or index signature
	case name.IsPunct("*"):
		j += 2 // generator method
	default:
		j++
	}

	if t.tok(j).IsPunct("?") || t.tok(j).IsPunct("!") {
		j++
	}

	if t.tok(j).IsPunct("<") || t.tok(j).IsPunct("(") {
		return t.parseMethod(class, name, nameIdx, j, closeIdx)
	}

	return t.parseField(class, name, start, j, closeIdx)
}

func (t *SourceTree) parseMethod(class *ClassDecl, name Token, nameIdx, j, closeIdx int) int {
	for j < closeIdx && !t.tokens[j].IsPunct("(") {
		j++
	}

	parens := j
	j = t.match[parens] + 1

	// return type annotations may contain object types; the body is the last
	// brace group before the next member
	body := -1
	angle := 0

	for j < closeIdx {
		tok := t.tokens[j]

		switch {
		case tok.IsPunct("<"):
			angle++
		case tok.IsPunct(">"):
			angle--
		}

		if tok.IsPunct(";") {
			j++
			break
		}

		if tok.IsPunct("{") && angle <= 0 {
			body = j
			j = t.match[j] + 1

			if !t.tok(j).IsPunct("{") {
				break
			}

			continue
		}

		if m := t.match[j]; m > j {
			j = m
		}

		j++
	}

	if name.IsIdent("constructor") && class.Constructor == nil {
		ctor := &Constructor{
			Span:   Span{Start: t.tokens[nameIdx].Start, End: t.tokens[j-1].End},
			Parens: t.spanOf(parens, t.match[parens]),
		}

		if body >= 0 {
			ctor.Body = t.spanOf(body, t.match[body])
		}

		for _, part := range t.splitTopLevel(parens, t.match[parens], true) {
			if p := t.parseParam(part[0], part[1]); p != nil {
				ctor.Params = append(ctor.Params, p)
			}
		}

		class.Constructor = ctor
	}

	return j
}

func (t *SourceTree) parseParam(from, to int) *Param {
	j := from

	for t.tok(j).IsPunct("@") && t.tok(j+1).Kind == Ident {
		_, end := t.parseDecorator(j)
		j = end + 1
	}

	for j < to && t.tok(j).Kind == Ident && isModifier(paramModifiers, t.tok(j).Text) && !endsName(t.tok(j+1)) {
		j++
	}

	name := t.tok(j)
	if name.Kind != Ident {
		return nil // destructured parameter
	}

	param := &Param{Name: name.Text, Span: t.spanOf(from, to)}
	j++

	if t.tok(j).IsPunct("?") {
		j++
	}

	if j <= to && t.tok(j).IsPunct(":") {
		param.TypeName = t.typeText(j+1, to)
	}

	return param
}

func (t *SourceTree) parseField(class *ClassDecl, name Token, start, j, closeIdx int) int {
	typeName := ""
	if t.tok(j).IsPunct(":") {
		end := t.typeEnd(j+1, closeIdx)
		if end > j+1 {
			typeName = t.Text(t.spanOf(j+1, end-1))
		}

		j = end
	}

	end := t.statementEnd(j, closeIdx)

	if name.Kind == Ident || name.Kind == String {
		class.Fields = append(class.Fields, &Field{
			Name:     unquote(name.Text),
			TypeName: typeName,
			Span:     t.spanOf(start, end-1),
		})
	}

	return end
}

// typeText returns the type annotation in tokens [from, to], stopping at a
// default value.
func (t *SourceTree) typeText(from, to int) string {
	end := t.typeEnd(from, to+1)
	if end <= from {
		return ""
	}

	return t.Text(t.spanOf(from, end-1))
}

// typeEnd returns the index of the first token after a type annotation that
// starts at from: an '=' , ';' or ',' outside generic brackets, a line break
// followed by a new member, or limit.
func (t *SourceTree) typeEnd(from, limit int) int {
	angle := 0

	for j := from; j < limit; j++ {
		tok := t.tokens[j]

		switch {
		case tok.IsPunct("<"):
			angle++
		case tok.IsPunct(">"):
			angle--
		case angle <= 0 && (tok.IsPunct("=") || tok.IsPunct(";") || tok.IsPunct(",")):
			return j
		case angle <= 0 && j > from && t.newlineBetween(j-1, j) && startsMember(tok) && !continuesType(t.tokens[j-1]):
			return j
		}

		if m := t.match[j]; m > j {
			j = m
		}
	}

	return limit
}

// statementEnd returns the index after a field declaration starting at j:
// just past its semicolon, or at the first token on a new line that cannot
// continue the initialiser.
func (t *SourceTree) statementEnd(j, limit int) int {
	for ; j < limit; j++ {
		tok := t.tokens[j]

		if tok.IsPunct(";") {
			return j + 1
		}

		if j > 0 && t.newlineBetween(j-1, j) && startsMember(tok) && endsExpression(t.tokens[j-1]) {
			return j
		}

		if m := t.match[j]; m > j {
			j = m
		}
	}

	return limit
}

func isModifier(set map[string]struct{}, text string) bool {
	_, ok := set[text]
	return ok
}

// endsName reports whether tok following a modifier keyword shows that the
// keyword is itself the member name (e.g. a field called "get").
func endsName(tok Token) bool {
	if tok.Kind != Punct {
		return false
	}

	switch tok.Text {
	case "(", ":", "=", ";", "?", "!", "<", ",", ")":
		return true
	}

	return false
}

func startsMember(tok Token) bool {
	return tok.Kind == Ident || tok.Kind == String || tok.IsPunct("@") || tok.IsPunct("[") || tok.IsPunct("*")
}

func endsExpression(tok Token) bool {
	switch tok.Kind {
	case Ident, String, Number, Template, Regex:
		return true
	case Punct:
		return tok.Text == ")" || tok.Text == "]" || tok.Text == "}" || tok.Text == ">" || tok.Text == "++" || tok.Text == "--"
	}

	return false
}

func continuesType(tok Token) bool {
	return tok.IsPunct("|") || tok.IsPunct("&") || tok.IsPunct(":") || tok.IsPunct("=>") || tok.IsPunct(".")
}

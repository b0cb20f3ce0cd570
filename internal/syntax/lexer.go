package syntax

import (
	"errors"
	"fmt"
)

// ErrUnterminated is returned when a string, comment, template or regular
// expression literal runs past the end of its line or file.
var ErrUnterminated = errors.New("unterminated literal")

// multi-byte punctuators recognised by the lexer, longest first.
// '<' and '>' are always emitted alone so generic brackets can be counted.
var punctuators = []string{
	"...", "===", "!==",
	"=>", "?.", "==", "!=", "&&", "||", "??", "++", "--", "**",
}

// keywords after which a '/' starts a regular expression literal.
var regexKeywords = map[string]struct{}{
	"return": {}, "typeof": {}, "instanceof": {}, "in": {}, "of": {}, "new": {},
	"delete": {}, "void": {}, "throw": {}, "case": {}, "do": {}, "else": {},
	"yield": {}, "await": {},
}

// punctuators before a '{' that opens an object literal or type literal
// rather than a block.
var expressionOpeners = map[string]struct{}{
	"=": {}, "(": {}, ",": {}, ":": {}, "[": {}, "?": {}, "!": {}, "...": {},
	"||": {}, "&&": {}, "??": {}, "==": {}, "===": {}, "!=": {}, "!==": {},
	"+": {}, "-": {}, "*": {}, "%": {}, "|": {}, "&": {}, "<": {}, ">": {},
}

type lexer struct {
	src  []byte
	off  int
	toks []Token

	// embedded holds the tokens of each ${...} substitution, which is part
	// of the enclosing Template token in toks.
	embedded [][]Token

	// blocks records, for every open '{', whether it opened a block.
	blocks      []bool
	closedBlock bool
}

// Lex splits src into tokens. Whitespace and comments are dropped; every
// token keeps its byte span so edits can be expressed against the source.
// Code inside template substitutions stays part of its Template token.
func Lex(src []byte) ([]Token, error) {
	toks, _, err := lexAll(src)
	return toks, err
}

// lexAll returns the top-level tokens and, separately, the tokens of every
// template substitution, one group per substitution.
func lexAll(src []byte) ([]Token, [][]Token, error) {
	lx := &lexer{src: src}
	if err := lx.run(); err != nil {
		return nil, nil, err
	}

	return lx.toks, lx.embedded, nil
}

func (lx *lexer) eof() bool {
	return lx.off >= len(lx.src)
}

func (lx *lexer) peek() byte {
	if lx.eof() {
		return 0
	}

	return lx.src[lx.off]
}

func (lx *lexer) peekAt(n int) byte {
	if lx.off+n >= len(lx.src) {
		return 0
	}

	return lx.src[lx.off+n]
}

func (lx *lexer) emit(kind Kind, start int) {
	lx.toks = append(lx.toks, Token{
		Kind:  kind,
		Text:  string(lx.src[start:lx.off]),
		Start: start,
		End:   lx.off,
	})
}

func (lx *lexer) run() error {
	// Skip a leading byte order mark.
	if len(lx.src) >= 3 && lx.src[0] == 0xEF && lx.src[1] == 0xBB && lx.src[2] == 0xBF {
		lx.off = 3
	}

	for {
		if err := lx.skipTrivia(); err != nil {
			return err
		}

		if lx.eof() {
			return nil
		}

		if err := lx.next(); err != nil {
			return err
		}
	}
}

func (lx *lexer) next() error {
	start := lx.off
	b := lx.peek()

	switch {
	case isIdentStart(b):
		lx.scanIdent()
		lx.emit(Ident, start)
	case b == '#' && isIdentStart(lx.peekAt(1)):
		lx.off++
		lx.scanIdent()
		lx.emit(Ident, start)
	case isDigit(b) || (b == '.' && isDigit(lx.peekAt(1))):
		lx.scanNumber()
		lx.emit(Number, start)
	case b == '\'' || b == '"':
		if err := lx.scanString(b); err != nil {
			return err
		}

		lx.emit(String, start)
	case b == '`':
		if err := lx.scanTemplate(); err != nil {
			return err
		}

		lx.emit(Template, start)
	case b == '/' && lx.regexAllowed():
		if err := lx.scanRegex(); err != nil {
			return err
		}

		lx.emit(Regex, start)
	default:
		lx.scanPunct()
		lx.trackBraces(string(lx.src[start:lx.off]))
		lx.emit(Punct, start)
	}

	return nil
}

// trackBraces maintains the block stack before punct is emitted.
func (lx *lexer) trackBraces(punct string) {
	switch punct {
	case "{":
		lx.blocks = append(lx.blocks, lx.opensBlock())
	case "}":
		lx.closedBlock = false
		if n := len(lx.blocks); n > 0 {
			lx.closedBlock = lx.blocks[n-1]
			lx.blocks = lx.blocks[:n-1]
		}
	}
}

// opensBlock guesses whether a '{' at the current position starts a
// statement block (or class body) rather than an object or type literal.
func (lx *lexer) opensBlock() bool {
	if len(lx.toks) == 0 {
		return true
	}

	prev := lx.toks[len(lx.toks)-1]

	switch prev.Kind {
	case Punct:
		_, expr := expressionOpeners[prev.Text]
		return !expr
	case Ident:
		_, expr := regexKeywords[prev.Text]
		return !expr || prev.Text == "else" || prev.Text == "do"
	default:
		return false
	}
}

func (lx *lexer) skipTrivia() error {
	for !lx.eof() {
		b := lx.peek()

		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v':
			lx.off++
		case b == '/' && lx.peekAt(1) == '/':
			for !lx.eof() && lx.peek() != '\n' {
				lx.off++
			}
		case b == '/' && lx.peekAt(1) == '*':
			if err := lx.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}

	return nil
}

func (lx *lexer) skipBlockComment() error {
	start := lx.off
	lx.off += 2

	for !lx.eof() {
		if lx.peek() == '*' && lx.peekAt(1) == '/' {
			lx.off += 2
			return nil
		}

		lx.off++
	}

	return fmt.Errorf("block comment at offset %d: %w", start, ErrUnterminated)
}

func (lx *lexer) scanIdent() {
	for !lx.eof() && isIdentPart(lx.peek()) {
		lx.off++
	}
}

func (lx *lexer) scanNumber() {
	for !lx.eof() {
		b := lx.peek()
		if isIdentPart(b) || b == '.' {
			lx.off++
			continue
		}

		// exponent sign, e.g. 1e-7
		prev := lx.src[lx.off-1]
		if (b == '+' || b == '-') && (prev == 'e' || prev == 'E') && isDigit(lx.peekAt(1)) {
			lx.off++
			continue
		}

		return
	}
}

func (lx *lexer) scanString(quote byte) error {
	start := lx.off
	lx.off++

	for !lx.eof() {
		b := lx.peek()

		switch b {
		case '\\':
			lx.off += 2
		case quote:
			lx.off++
			return nil
		case '\n':
			return fmt.Errorf("string at offset %d: %w", start, ErrUnterminated)
		default:
			lx.off++
		}
	}

	return fmt.Errorf("string at offset %d: %w", start, ErrUnterminated)
}

// scanTemplate consumes a template literal, including nested ${...} code.
func (lx *lexer) scanTemplate() error {
	start := lx.off
	lx.off++

	for !lx.eof() {
		b := lx.peek()

		switch {
		case b == '\\':
			lx.off += 2
		case b == '`':
			lx.off++
			return nil
		case b == '$' && lx.peekAt(1) == '{':
			lx.off += 2
			if err := lx.scanEmbedded(); err != nil {
				return err
			}
		default:
			lx.off++
		}
	}

	return fmt.Errorf("template at offset %d: %w", start, ErrUnterminated)
}

// scanEmbedded lexes the code inside ${...} up to and including the closing
// brace. Its tokens go to lx.embedded.
func (lx *lexer) scanEmbedded() error {
	start := lx.off
	outer, outerBlocks := lx.toks, lx.blocks
	lx.toks, lx.blocks = nil, nil

	defer func() {
		lx.embedded = append(lx.embedded, lx.toks)
		lx.toks, lx.blocks = outer, outerBlocks
	}()

	depth := 1

	for {
		if err := lx.skipTrivia(); err != nil {
			return err
		}

		if lx.eof() {
			break
		}

		switch lx.peek() {
		case '{':
			depth++
		case '}':
			depth--

			if depth == 0 {
				lx.off++
				return nil
			}
		}

		if err := lx.next(); err != nil {
			return err
		}
	}

	return fmt.Errorf("template expression at offset %d: %w", start, ErrUnterminated)
}

func (lx *lexer) scanRegex() error {
	start := lx.off
	lx.off++
	inClass := false

	for !lx.eof() {
		b := lx.peek()

		switch {
		case b == '\\':
			lx.off += 2
			continue
		case b == '\n':
			return fmt.Errorf("regular expression at offset %d: %w", start, ErrUnterminated)
		case b == '[':
			inClass = true
		case b == ']':
			inClass = false
		case b == '/' && !inClass:
			lx.off++
			lx.scanIdent() // flags

			return nil
		}

		lx.off++
	}

	return fmt.Errorf("regular expression at offset %d: %w", start, ErrUnterminated)
}

func (lx *lexer) scanPunct() {
	for _, p := range punctuators {
		if lx.off+len(p) > len(lx.src) || string(lx.src[lx.off:lx.off+len(p)]) != p {
			continue
		}

		// a?.5:1 is a conditional, not optional chaining
		if p == "?." && isDigit(lx.peekAt(2)) {
			continue
		}

		lx.off += len(p)

		return
	}

	lx.off++
}

// regexAllowed decides whether a '/' at the current offset starts a regular
// expression rather than a division, based on the previous token.
func (lx *lexer) regexAllowed() bool {
	if len(lx.toks) == 0 {
		return true
	}

	prev := lx.toks[len(lx.toks)-1]

	switch prev.Kind {
	case Punct:
		if prev.Text == "}" {
			// a statement may start after a block, not after an object literal
			return lx.closedBlock
		}

		return prev.Text != ")" && prev.Text != "]" &&
			prev.Text != "++" && prev.Text != "--"
	case Ident:
		_, ok := regexKeywords[prev.Text]
		return ok
	default:
		return false
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

package unit

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// tokenKind enumerates the token kinds of the unit-expression grammar.
type tokenKind int

const (
	tokEOF      tokenKind = iota
	tokNumber             // numeric literal (decimal or scientific)
	tokSymbol             // unit symbol: a run of letters
	tokStar               // '*', '·', '⋅'
	tokSlash              // '/'
	tokCaret              // '^'
	tokExponent           // signed integer after '^', or a superscript run
)

// token is a single lexical unit. pos is the byte offset of the token start,
// used to anchor error messages.
type token struct {
	kind tokenKind
	text string
	num  float64
	exp  int
	pos  int
}

// lexer scans a unit-expression string left to right.
type lexer struct {
	src   string
	start int // start of the current token
	cur   int // current scan position
}

// superscriptValues decodes the Unicode superscript alphabet used for
// exponents attached directly to a symbol ("s⁻¹", "m²").
var superscriptValues = map[rune]int{
	'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4,
	'⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9,
}

// lex tokenizes the whole expression. The returned slice always ends with
// an EOF token. Unrecognized characters and malformed numeric literals fail
// with ErrSyntax anchored to the offending position.
func lex(src string) ([]token, error) {
	l := &lexer{src: src}
	var tokens []token
	for {
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.kind == tokCaret {
			// The grammar requires a signed integer right after '^'; scan
			// it here so '-' never needs meaning anywhere else.
			exp, err := l.scanExponent()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, exp)
		}
		if tok.kind == tokEOF {
			return tokens, nil
		}
	}
}

func (l *lexer) isAtEnd() bool { return l.cur >= len(l.src) }

// peek decodes the rune at the current position without consuming it.
func (l *lexer) peek() (rune, int) {
	if l.isAtEnd() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.src[l.cur:])
}

func (l *lexer) advance() rune {
	r, size := l.peek()
	l.cur += size
	return r
}

func (l *lexer) skipSpace() {
	for !l.isAtEnd() {
		r, size := l.peek()
		if r != ' ' && r != '\t' {
			return
		}
		l.cur += size
	}
}

func (l *lexer) token(kind tokenKind) token {
	return token{kind: kind, text: l.src[l.start:l.cur], pos: l.start}
}

func (l *lexer) errf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), l.start)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isSymbolRune reports whether r can appear in a unit symbol or custom
// base-dimension identifier. Covers non-ASCII symbols such as Ω and µ;
// superscript digits are category No and excluded.
func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func (l *lexer) scanToken() (token, error) {
	l.skipSpace()
	l.start = l.cur

	if l.isAtEnd() {
		return l.token(tokEOF), nil
	}

	r, _ := l.peek()

	switch r {
	case '*', '·', '⋅':
		l.advance()
		return l.token(tokStar), nil
	case '/':
		l.advance()
		return l.token(tokSlash), nil
	case '^':
		l.advance()
		return l.token(tokCaret), nil
	}

	if _, ok := superscriptValues[r]; ok || r == '⁻' || r == '⁺' {
		return l.scanSuperscript()
	}
	if isDigit(r) || r == '.' || r == '-' || r == '+' {
		return l.scanNumber()
	}
	if isSymbolRune(r) {
		return l.scanSymbol(), nil
	}

	l.advance()
	return token{}, l.errf("unrecognized character %q", r)
}

// scanSymbol consumes a maximal run of symbol runes.
func (l *lexer) scanSymbol() token {
	for !l.isAtEnd() {
		r, _ := l.peek()
		if !isSymbolRune(r) {
			break
		}
		l.advance()
	}
	return l.token(tokSymbol)
}

// scanNumber consumes a decimal or scientific literal: digits, optional
// fraction, optional exponent part. A sign is only consumed when it starts
// the literal ('-' or '+' came from the caller's dispatch); the exponent
// part is only consumed when digits follow, so "5 e" stays two tokens.
func (l *lexer) scanNumber() (token, error) {
	if r, _ := l.peek(); r == '-' || r == '+' {
		l.advance()
		if next, _ := l.peek(); !isDigit(next) && next != '.' {
			return token{}, l.errf("dangling sign %q", r)
		}
	}
	sawDigits := false
	for !l.isAtEnd() {
		r, _ := l.peek()
		if !isDigit(r) {
			break
		}
		l.advance()
		sawDigits = true
	}
	if r, _ := l.peek(); r == '.' {
		l.advance()
		for !l.isAtEnd() {
			r, _ := l.peek()
			if !isDigit(r) {
				break
			}
			l.advance()
			sawDigits = true
		}
	}
	if !sawDigits {
		return token{}, l.errf("malformed number %q", l.src[l.start:l.cur])
	}
	if r, _ := l.peek(); r == 'e' || r == 'E' {
		save := l.cur
		l.advance()
		if r, _ := l.peek(); r == '-' || r == '+' {
			l.advance()
		}
		if r, _ := l.peek(); isDigit(r) {
			for !l.isAtEnd() {
				r, _ := l.peek()
				if !isDigit(r) {
					break
				}
				l.advance()
			}
		} else {
			l.cur = save // not an exponent; leave 'e' for the next token
		}
	}
	text := l.src[l.start:l.cur]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, l.errf("malformed number %q", text)
	}
	tok := l.token(tokNumber)
	tok.num = v
	return tok, nil
}

// scanExponent consumes the ASCII signed integer that must follow '^'.
func (l *lexer) scanExponent() (token, error) {
	l.skipSpace()
	l.start = l.cur
	if r, _ := l.peek(); r == '-' || r == '+' {
		l.advance()
	}
	sawDigits := false
	for !l.isAtEnd() {
		r, _ := l.peek()
		if !isDigit(r) {
			break
		}
		l.advance()
		sawDigits = true
	}
	if !sawDigits {
		return token{}, l.errf("expected integer exponent after '^'")
	}
	text := l.src[l.start:l.cur]
	n, err := strconv.Atoi(text)
	if err != nil {
		return token{}, l.errf("malformed exponent %q", text)
	}
	tok := l.token(tokExponent)
	tok.exp = n
	return tok, nil
}

// scanSuperscript consumes a run of superscript sign and digit runes
// attached directly to the preceding symbol.
func (l *lexer) scanSuperscript() (token, error) {
	neg := false
	if r, _ := l.peek(); r == '⁻' || r == '⁺' {
		neg = r == '⁻'
		l.advance()
	}
	n := 0
	sawDigits := false
	for !l.isAtEnd() {
		r, _ := l.peek()
		d, ok := superscriptValues[r]
		if !ok {
			break
		}
		l.advance()
		n = n*10 + d
		sawDigits = true
	}
	if !sawDigits {
		return token{}, l.errf("superscript sign without digits")
	}
	if neg {
		n = -n
	}
	tok := l.token(tokExponent)
	tok.exp = n
	return tok, nil
}

package unit

import (
	"fmt"
	"math"

	"github.com/dukaforge/gauge/pkg/dimension"
)

// Parse evaluates a unit expression against the table and returns the
// resulting quantity, with its magnitude in the coherent reference scale.
//
// Grammar: [number] term (('*' | '/' | '·' | ' ') term)*, where
// term := symbol ['^' signedInt | superscript]. Evaluation is flat and
// left to right; whitespace between terms is implicit multiplication.
// A bare number is a dimensionless quantity.
//
// Parsing is a pure function of (text, table): no I/O, no side effects.
func (t *Table) Parse(text string) (Quantity, error) {
	tokens, err := lex(text)
	if err != nil {
		return Quantity{}, err
	}
	p := &parser{table: t, tokens: tokens}
	return p.parse()
}

// ParseTyped is Parse followed by a dimension check against want. The
// mismatch error carries both vectors.
func (t *Table) ParseTyped(text string, want dimension.Vector) (Quantity, error) {
	q, err := t.Parse(text)
	if err != nil {
		return Quantity{}, err
	}
	if !q.dims.Equal(want) {
		return Quantity{}, fmt.Errorf("%w: %q has dimension %s, want %s",
			dimension.ErrMismatch, text, q.dims, want)
	}
	return q, nil
}

// Parse evaluates a unit expression against the default SI table.
func Parse(text string) (Quantity, error) {
	return Default().Parse(text)
}

// ParseTyped evaluates a unit expression against the default SI table and
// checks the result dimension against want.
func ParseTyped(text string, want dimension.Vector) (Quantity, error) {
	return Default().ParseTyped(text, want)
}

// MustParse is Parse that panics on error; for static initialization of
// known-good literals.
func MustParse(text string) Quantity {
	q, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return q
}

// parser folds the token stream into a single (value, dims) pair.
type parser struct {
	table  *Table
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), tok.pos)
}

func (p *parser) parse() (Quantity, error) {
	value := 1.0
	if p.peek().kind == tokNumber {
		value = p.next().num
	}
	if p.peek().kind == tokEOF {
		if p.pos == 0 {
			return Quantity{}, fmt.Errorf("%w: empty expression", ErrSyntax)
		}
		// Bare number: dimensionless.
		return Quantity{value: value}, nil
	}

	var dims dimension.Vector
	divide := false
	for {
		tok := p.next()
		if tok.kind != tokSymbol {
			return Quantity{}, p.errf(tok, "expected unit symbol, got %q", tok.text)
		}
		u, err := p.table.Resolve(tok.text)
		if err != nil {
			return Quantity{}, err
		}

		exp := 1
		switch p.peek().kind {
		case tokCaret:
			p.next()
			exp = p.next().exp // lexer guarantees an exponent follows the caret
		case tokExponent:
			exp = p.next().exp
		}

		factor := u.Scale
		d := u.Dims
		if exp != 1 {
			factor = math.Pow(u.Scale, float64(exp))
			d = u.Dims.Pow(exp)
		}
		if divide {
			value /= factor
			dims = dims.Div(d)
		} else {
			value *= factor
			dims = dims.Mul(d)
		}

		switch tok := p.peek(); tok.kind {
		case tokEOF:
			return Quantity{value: value, dims: dims}, nil
		case tokStar:
			p.next()
			divide = false
		case tokSlash:
			p.next()
			divide = true
		case tokSymbol:
			divide = false // implicit multiplication
		default:
			return Quantity{}, p.errf(tok, "unexpected %q", tok.text)
		}
	}
}

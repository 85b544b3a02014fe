// Package dimension implements the exponent-vector algebra for physical
// dimensions. A Vector maps base-dimension identifiers to non-zero integer
// exponents; the empty vector is dimensionless. Vectors are immutable value
// types: every operation returns a new vector.
package dimension

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Canonical SI base-dimension identifiers. Custom identifiers may be any
// other non-empty string of letters.
const (
	Length      = "L"
	Mass        = "M"
	Time        = "T"
	Current     = "I"
	Temperature = "Θ"
	Amount      = "N"
	Luminosity  = "J"
)

// ErrMismatch is returned when an operation combines incompatible
// dimensions, or when a root does not evenly divide every exponent.
var ErrMismatch = errors.New("dimension mismatch")

// baseOrder fixes the canonical rendering order for the SI identifiers.
// Custom identifiers sort alphabetically after these.
var baseOrder = []string{Mass, Length, Time, Current, Temperature, Amount, Luminosity}

// baseRank maps an SI identifier to its position in baseOrder.
var baseRank = func() map[string]int {
	r := make(map[string]int, len(baseOrder))
	for i, id := range baseOrder {
		r[id] = i
	}
	return r
}()

// Vector is a physical dimension: a mapping from base-dimension identifier
// to non-zero integer exponent. The zero Vector is dimensionless.
type Vector struct {
	exp map[string]int
}

// Base returns the vector for a single base dimension with exponent 1.
func Base(id string) Vector {
	return Vector{exp: map[string]int{id: 1}}
}

// New builds a vector from an identifier→exponent mapping. Zero exponents
// are dropped; the input map is copied, never retained.
func New(exponents map[string]int) Vector {
	m := make(map[string]int, len(exponents))
	for id, e := range exponents {
		if e != 0 {
			m[id] = e
		}
	}
	if len(m) == 0 {
		return Vector{}
	}
	return Vector{exp: m}
}

// Exponent returns the exponent for the given identifier (0 if absent).
func (v Vector) Exponent(id string) int {
	return v.exp[id]
}

// IsDimensionless reports whether the vector has no non-zero exponents.
func (v Vector) IsDimensionless() bool {
	return len(v.exp) == 0
}

// Equal reports structural equality: same identifiers, same exponents.
func (v Vector) Equal(o Vector) bool {
	if len(v.exp) != len(o.exp) {
		return false
	}
	for id, e := range v.exp {
		if o.exp[id] != e {
			return false
		}
	}
	return true
}

// combine returns a vector with exponent v[id] + k*o[id] for each identifier,
// dropping entries that cancel to zero.
func (v Vector) combine(o Vector, k int) Vector {
	m := make(map[string]int, len(v.exp)+len(o.exp))
	for id, e := range v.exp {
		m[id] = e
	}
	for id, e := range o.exp {
		m[id] += k * e
		if m[id] == 0 {
			delete(m, id)
		}
	}
	if len(m) == 0 {
		return Vector{}
	}
	return Vector{exp: m}
}

// Mul returns the dimension of a product: exponents added.
func (v Vector) Mul(o Vector) Vector {
	return v.combine(o, 1)
}

// Div returns the dimension of a quotient: exponents subtracted.
func (v Vector) Div(o Vector) Vector {
	return v.combine(o, -1)
}

// Pow returns the dimension raised to an integer power: exponents scaled
// by n. Pow(0) is dimensionless.
func (v Vector) Pow(n int) Vector {
	if n == 0 {
		return Vector{}
	}
	m := make(map[string]int, len(v.exp))
	for id, e := range v.exp {
		m[id] = e * n
	}
	if len(m) == 0 {
		return Vector{}
	}
	return Vector{exp: m}
}

// Root returns the n-th root of the dimension. It fails with ErrMismatch
// unless every exponent is evenly divisible by n.
func (v Vector) Root(n int) (Vector, error) {
	if n == 0 {
		return Vector{}, fmt.Errorf("%w: zeroth root", ErrMismatch)
	}
	m := make(map[string]int, len(v.exp))
	for id, e := range v.exp {
		if e%n != 0 {
			return Vector{}, fmt.Errorf("%w: exponent %d of %s is not divisible by %d", ErrMismatch, e, id, n)
		}
		m[id] = e / n
	}
	if len(m) == 0 {
		return Vector{}, nil
	}
	return Vector{exp: m}, nil
}

// Identifiers returns the identifiers with non-zero exponents in canonical
// order: SI base order first, then custom identifiers alphabetically.
func (v Vector) Identifiers() []string {
	ids := make([]string, 0, len(v.exp))
	for id := range v.exp {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ri, iOK := baseRank[ids[i]]
		rj, jOK := baseRank[ids[j]]
		switch {
		case iOK && jOK:
			return ri < rj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

// String renders the vector in canonical form: identifiers in canonical
// order with "^exponent" suffixes, exponent 1 omitted, entries separated by
// spaces. The dimensionless vector renders as "1".
func (v Vector) String() string {
	if v.IsDimensionless() {
		return "1"
	}
	var b strings.Builder
	for i, id := range v.Identifiers() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(id)
		if e := v.exp[id]; e != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(e))
		}
	}
	return b.String()
}

// Parse reads a vector back from its canonical String form: space-separated
// "identifier" or "identifier^exponent" entries, or "1" for dimensionless.
// Duplicate identifiers and malformed exponents are errors.
func Parse(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "1" {
		return Vector{}, nil
	}
	m := make(map[string]int)
	for _, field := range strings.Fields(s) {
		id := field
		exp := 1
		if i := strings.IndexByte(field, '^'); i >= 0 {
			id = field[:i]
			var err error
			exp, err = strconv.Atoi(field[i+1:])
			if err != nil {
				return Vector{}, fmt.Errorf("parsing dimension %q: bad exponent %q", s, field[i+1:])
			}
		}
		if id == "" {
			return Vector{}, fmt.Errorf("parsing dimension %q: empty identifier", s)
		}
		if _, dup := m[id]; dup {
			return Vector{}, fmt.Errorf("parsing dimension %q: duplicate identifier %q", s, id)
		}
		if exp != 0 {
			m[id] = exp
		}
	}
	if len(m) == 0 {
		return Vector{}, nil
	}
	return Vector{exp: m}, nil
}

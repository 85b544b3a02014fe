package unit

import (
	"fmt"
	"sort"

	"github.com/dukaforge/gauge/pkg/dimension"
)

// Unit is a named measurement unit: a scale factor relative to the coherent
// reference unit of its dimension, plus the dimension itself.
type Unit struct {
	Symbol string
	Scale  float64
	Dims   dimension.Vector
}

// Prefix is a multiplicative scale factor attachable to a unit symbol by
// string concatenation ("k" + "m" → km).
type Prefix struct {
	Symbol string
	Factor float64
}

// Table maps unit symbols and prefix symbols to their definitions. A Table
// is immutable once built and safe for concurrent readers. Unit and prefix
// symbols live in separate namespaces; symbols are case-sensitive.
type Table struct {
	units    map[string]Unit
	prefixes map[string]Prefix
}

// LookupUnit returns the unit registered under symbol, if any.
func (t *Table) LookupUnit(symbol string) (Unit, bool) {
	u, ok := t.units[symbol]
	return u, ok
}

// LookupPrefix returns the prefix registered under symbol, if any.
func (t *Table) LookupPrefix(symbol string) (Prefix, bool) {
	p, ok := t.prefixes[symbol]
	return p, ok
}

// Units returns all registered units sorted by symbol.
func (t *Table) Units() []Unit {
	out := make([]Unit, 0, len(t.units))
	for _, u := range t.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Prefixes returns all registered prefixes sorted by symbol.
func (t *Table) Prefixes() []Prefix {
	out := make([]Prefix, 0, len(t.prefixes))
	for _, p := range t.prefixes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Builder accumulates unit and prefix registrations and finalizes them into
// an immutable Table. Registrations chain fluently; the first registration
// error (duplicate or empty symbol) is recorded and reported by Build, so a
// typo cannot be masked by a later registration silently winning.
type Builder struct {
	units    map[string]Unit
	prefixes map[string]Prefix
	err      error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		units:    make(map[string]Unit),
		prefixes: make(map[string]Prefix),
	}
}

// Unit registers a unit symbol with its scale factor and dimension.
func (b *Builder) Unit(symbol string, scale float64, dims dimension.Vector) *Builder {
	if b.err != nil {
		return b
	}
	if symbol == "" {
		b.err = fmt.Errorf("%w: unit", ErrEmptySymbol)
		return b
	}
	if _, exists := b.units[symbol]; exists {
		b.err = fmt.Errorf("%w: unit %q", ErrDuplicateSymbol, symbol)
		return b
	}
	b.units[symbol] = Unit{Symbol: symbol, Scale: scale, Dims: dims}
	return b
}

// Prefix registers a prefix symbol with its multiplicative factor.
func (b *Builder) Prefix(symbol string, factor float64) *Builder {
	if b.err != nil {
		return b
	}
	if symbol == "" {
		b.err = fmt.Errorf("%w: prefix", ErrEmptySymbol)
		return b
	}
	if _, exists := b.prefixes[symbol]; exists {
		b.err = fmt.Errorf("%w: prefix %q", ErrDuplicateSymbol, symbol)
		return b
	}
	b.prefixes[symbol] = Prefix{Symbol: symbol, Factor: factor}
	return b
}

// Merge registers every unit and prefix from an existing table. Collisions
// with symbols already registered are duplicate errors, like any other
// registration.
func (b *Builder) Merge(t *Table) *Builder {
	if t == nil {
		return b
	}
	for _, u := range t.Units() {
		b.Unit(u.Symbol, u.Scale, u.Dims)
	}
	for _, p := range t.Prefixes() {
		b.Prefix(p.Symbol, p.Factor)
	}
	return b
}

// Build finalizes the registrations into an immutable Table. It returns the
// first registration error, if any occurred.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	units := make(map[string]Unit, len(b.units))
	for k, v := range b.units {
		units[k] = v
	}
	prefixes := make(map[string]Prefix, len(b.prefixes))
	for k, v := range b.prefixes {
		prefixes[k] = v
	}
	return &Table{units: units, prefixes: prefixes}, nil
}

package sqlite

import (
	"fmt"

	"github.com/dukaforge/gauge/pkg/unit"
)

// LoadTable builds an immutable symbol table from the seed plus every
// stored registration. A stored symbol colliding with the seed surfaces
// as unit.ErrDuplicateSymbol, pointing at the offending row.
func (s *Store) LoadTable(seed *unit.Table) (*unit.Table, error) {
	units, err := s.Units()
	if err != nil {
		return nil, err
	}
	prefixes, err := s.Prefixes()
	if err != nil {
		return nil, err
	}

	b := unit.NewBuilder().Merge(seed)
	for _, u := range units {
		b.Unit(u.Symbol, u.Scale, u.Dims)
	}
	for _, p := range prefixes {
		b.Prefix(p.Symbol, p.Factor)
	}
	table, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("loading stored vocabulary: %w", err)
	}
	return table, nil
}

package unit

import (
	"fmt"
	"strings"
)

// Resolve decomposes a raw symbol token against the table. An exact unit
// match always wins. Otherwise every registered prefix that is a proper
// prefix of the symbol is tried, longest first, requiring the remaining
// suffix to be a registered unit. Two decompositions with equally long
// prefixes are an ambiguity error carrying the candidates; no decomposition
// at all is an unknown-symbol error.
//
// The returned Unit carries the token as its symbol and the combined
// prefix×unit scale.
func (t *Table) Resolve(symbol string) (Unit, error) {
	if u, ok := t.units[symbol]; ok {
		return Unit{Symbol: symbol, Scale: u.Scale, Dims: u.Dims}, nil
	}

	type candidate struct {
		prefix Prefix
		unit   Unit
	}
	var candidates []candidate
	for _, p := range t.prefixes {
		if len(p.Symbol) >= len(symbol) || !strings.HasPrefix(symbol, p.Symbol) {
			continue
		}
		if u, ok := t.units[symbol[len(p.Symbol):]]; ok {
			candidates = append(candidates, candidate{prefix: p, unit: u})
		}
	}
	if len(candidates) == 0 {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	best := candidates[0]
	tied := false
	for _, c := range candidates[1:] {
		switch {
		case len(c.prefix.Symbol) > len(best.prefix.Symbol):
			best, tied = c, false
		case len(c.prefix.Symbol) == len(best.prefix.Symbol):
			tied = true
		}
	}
	if tied {
		names := make([]string, 0, len(candidates))
		for _, c := range candidates {
			if len(c.prefix.Symbol) == len(best.prefix.Symbol) {
				names = append(names, c.prefix.Symbol+"+"+c.unit.Symbol)
			}
		}
		return Unit{}, fmt.Errorf("%w: %q (candidates: %s)", ErrAmbiguousSymbol, symbol, strings.Join(names, ", "))
	}

	return Unit{
		Symbol: symbol,
		Scale:  best.prefix.Factor * best.unit.Scale,
		Dims:   best.unit.Dims,
	}, nil
}

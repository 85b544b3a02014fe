package unit

import (
	"errors"
	"testing"

	"github.com/dukaforge/gauge/pkg/dimension"
)

func TestResolveExactMatchWins(t *testing.T) {
	table := Default()
	tests := []struct {
		symbol    string
		wantScale float64
		wantDims  dimension.Vector
	}{
		// "d" is the day unit, not a bare deci prefix reading.
		{"d", 86400, dimension.Base(dimension.Time)},
		// "cd" is the candela, not centi+day.
		{"cd", 1, dimension.Base(dimension.Luminosity)},
		// "h" is the hour, not a bare hecto.
		{"h", 3600, dimension.Base(dimension.Time)},
		// "min" is the minute, not milli+anything.
		{"min", 60, dimension.Base(dimension.Time)},
		// "T" is the tesla.
		{"T", 1, dimension.New(map[string]int{dimension.Mass: 1, dimension.Time: -2, dimension.Current: -1})},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, err := table.Resolve(tt.symbol)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.symbol, err)
			}
			if u.Scale != tt.wantScale {
				t.Errorf("Resolve(%q).Scale = %g, want %g", tt.symbol, u.Scale, tt.wantScale)
			}
			if !u.Dims.Equal(tt.wantDims) {
				t.Errorf("Resolve(%q).Dims = %v, want %v", tt.symbol, u.Dims, tt.wantDims)
			}
		})
	}
}

func TestResolveDecomposition(t *testing.T) {
	table := Default()
	tests := []struct {
		symbol    string
		wantScale float64
	}{
		{"km", 1000},
		{"mm", 1e-3},
		{"kg", 1},
		{"mg", 1e-6},
		{"ms", 1e-3},
		{"dL", 1e-4},
		// "dam" must pick the longer deca prefix, not deci+"am".
		{"dam", 10},
		{"daL", 1e-2},
		{"GHz", 1e9},
		{"hPa", 100},
		{"Tm", 1e12},
		{"µs", 1e-6},
		{"mbar", 100},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, err := table.Resolve(tt.symbol)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.symbol, err)
			}
			if !almostEqual(u.Scale, tt.wantScale) {
				t.Errorf("Resolve(%q).Scale = %g, want %g", tt.symbol, u.Scale, tt.wantScale)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	table := Default()
	// "da" alone is a prefix without a unit; "qGz" decomposes to no
	// registered unit under any prefix.
	for _, symbol := range []string{"da", "qGz", "xx", ""} {
		_, err := table.Resolve(symbol)
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Resolve(%q): error = %v, want ErrUnknownSymbol", symbol, err)
		}
	}
}

func TestResolvePrefixRequiresProperPrefix(t *testing.T) {
	// A prefix symbol equal to the whole token must not resolve; "m" is the
	// metre (exact match), and a bare "k" has no unit suffix to attach to.
	table := Default()
	u, err := table.Resolve("m")
	if err != nil {
		t.Fatalf("Resolve(m) error: %v", err)
	}
	if !u.Dims.Equal(dimension.Base(dimension.Length)) {
		t.Errorf("Resolve(m).Dims = %v, want length", u.Dims)
	}
	if _, err := table.Resolve("k"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Resolve(k): error = %v, want ErrUnknownSymbol", err)
	}
}

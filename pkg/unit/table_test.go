package unit

import (
	"errors"
	"testing"

	"github.com/dukaforge/gauge/pkg/dimension"
)

func TestBuilderBuild(t *testing.T) {
	table, err := NewBuilder().
		Unit("m", 1, dimension.Base(dimension.Length)).
		Prefix("k", 1000).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	u, ok := table.LookupUnit("m")
	if !ok || u.Scale != 1 {
		t.Errorf("LookupUnit(m) = %+v, %v", u, ok)
	}
	p, ok := table.LookupPrefix("k")
	if !ok || p.Factor != 1000 {
		t.Errorf("LookupPrefix(k) = %+v, %v", p, ok)
	}
	if _, ok := table.LookupUnit("k"); ok {
		t.Error("prefix symbol leaked into unit namespace")
	}
	if _, ok := table.LookupPrefix("m"); ok {
		t.Error("unit symbol leaked into prefix namespace")
	}
}

func TestBuilderDuplicateUnit(t *testing.T) {
	_, err := NewBuilder().
		Unit("m", 1, dimension.Base(dimension.Length)).
		Unit("m", 100, dimension.Base(dimension.Length)).
		Build()
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("duplicate unit: error = %v, want ErrDuplicateSymbol", err)
	}
}

func TestBuilderDuplicatePrefix(t *testing.T) {
	_, err := NewBuilder().
		Prefix("k", 1000).
		Prefix("k", 1024).
		Build()
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("duplicate prefix: error = %v, want ErrDuplicateSymbol", err)
	}
}

func TestBuilderSameSymbolBothNamespaces(t *testing.T) {
	// Unit and prefix namespaces are separate; "T" can be both tesla and tera.
	table, err := NewBuilder().
		Unit("T", 1, dimension.Base(dimension.Mass)).
		Prefix("T", 1e12).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if _, ok := table.LookupUnit("T"); !ok {
		t.Error("unit T not found")
	}
	if _, ok := table.LookupPrefix("T"); !ok {
		t.Error("prefix T not found")
	}
}

func TestBuilderEmptySymbol(t *testing.T) {
	_, err := NewBuilder().Unit("", 1, dimension.Vector{}).Build()
	if !errors.Is(err, ErrEmptySymbol) {
		t.Errorf("empty unit symbol: error = %v, want ErrEmptySymbol", err)
	}
	_, err = NewBuilder().Prefix("", 1).Build()
	if !errors.Is(err, ErrEmptySymbol) {
		t.Errorf("empty prefix symbol: error = %v, want ErrEmptySymbol", err)
	}
}

func TestBuilderErrorSticks(t *testing.T) {
	// Registrations after the first error are ignored; Build reports the
	// first error, so the original typo is not masked.
	_, err := NewBuilder().
		Unit("m", 1, dimension.Base(dimension.Length)).
		Unit("m", 2, dimension.Base(dimension.Length)).
		Unit("s", 1, dimension.Base(dimension.Time)).
		Build()
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("error = %v, want ErrDuplicateSymbol", err)
	}
}

func TestBuilderMerge(t *testing.T) {
	base, err := NewBuilder().
		Unit("m", 1, dimension.Base(dimension.Length)).
		Prefix("k", 1000).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	merged, err := NewBuilder().
		Merge(base).
		Unit("ft", 0.3048, dimension.Base(dimension.Length)).
		Build()
	if err != nil {
		t.Fatalf("merged Build error: %v", err)
	}
	if _, ok := merged.LookupUnit("m"); !ok {
		t.Error("merged table lost seed unit")
	}
	if _, ok := merged.LookupUnit("ft"); !ok {
		t.Error("merged table lost new unit")
	}

	// The seed table is unaffected.
	if _, ok := base.LookupUnit("ft"); ok {
		t.Error("seed table mutated by Merge")
	}

	// Collisions with the seed are duplicate errors.
	_, err = NewBuilder().Merge(base).Unit("m", 2, dimension.Base(dimension.Length)).Build()
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("merge collision: error = %v, want ErrDuplicateSymbol", err)
	}
}

func TestTableListings(t *testing.T) {
	table, err := NewBuilder().
		Unit("s", 1, dimension.Base(dimension.Time)).
		Unit("m", 1, dimension.Base(dimension.Length)).
		Prefix("k", 1000).
		Prefix("c", 0.01).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	units := table.Units()
	if len(units) != 2 || units[0].Symbol != "m" || units[1].Symbol != "s" {
		t.Errorf("Units() = %+v, want [m s] sorted", units)
	}
	prefixes := table.Prefixes()
	if len(prefixes) != 2 || prefixes[0].Symbol != "c" || prefixes[1].Symbol != "k" {
		t.Errorf("Prefixes() = %+v, want [c k] sorted", prefixes)
	}
}

func TestDefaultIsSameInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same table instance")
	}
}

package unit

import (
	"sync"

	"github.com/dukaforge/gauge/pkg/dimension"
)

// Shorthands for the dimension vectors of the SI catalogue.
var (
	dimless      = dimension.Vector{}
	length       = dimension.Base(dimension.Length)
	mass         = dimension.Base(dimension.Mass)
	duration     = dimension.Base(dimension.Time)
	current      = dimension.Base(dimension.Current)
	temperature  = dimension.Base(dimension.Temperature)
	amount       = dimension.Base(dimension.Amount)
	luminosity   = dimension.Base(dimension.Luminosity)
	area         = length.Pow(2)
	volume       = length.Pow(3)
	frequency    = duration.Pow(-1)
	force        = mass.Mul(length).Div(duration.Pow(2))
	pressure     = force.Div(area)
	energy       = force.Mul(length)
	power        = energy.Div(duration)
	charge       = current.Mul(duration)
	voltage      = power.Div(current)
	capacitance  = charge.Div(voltage)
	resistance   = voltage.Div(current)
	conductance  = current.Div(voltage)
	magneticFlux = voltage.Mul(duration)
	fluxDensity  = magneticFlux.Div(area)
	inductance   = magneticFlux.Div(current)
	illuminance  = luminosity.Div(area)
	absorbedDose = energy.Div(mass)
	catalysis    = amount.Div(duration)
	data         = dimension.Base("B")
)

// SI registers the SI prefixes (2022 set, q through Q) and the SI base,
// derived, and accepted non-SI units. The coherent mass unit is the
// kilogram, so the gram registers with scale 1e-3 and "kg" resolves to 1
// through the "k" prefix. "µ" and its ASCII stand-in "u" both register as
// the micro prefix.
func (b *Builder) SI() *Builder {
	b.Prefix("q", 1e-30).
		Prefix("r", 1e-27).
		Prefix("y", 1e-24).
		Prefix("z", 1e-21).
		Prefix("a", 1e-18).
		Prefix("f", 1e-15).
		Prefix("p", 1e-12).
		Prefix("n", 1e-9).
		Prefix("µ", 1e-6).
		Prefix("u", 1e-6).
		Prefix("m", 1e-3).
		Prefix("c", 1e-2).
		Prefix("d", 1e-1).
		Prefix("da", 1e1).
		Prefix("h", 1e2).
		Prefix("k", 1e3).
		Prefix("M", 1e6).
		Prefix("G", 1e9).
		Prefix("T", 1e12).
		Prefix("P", 1e15).
		Prefix("E", 1e18).
		Prefix("Z", 1e21).
		Prefix("Y", 1e24).
		Prefix("R", 1e27).
		Prefix("Q", 1e30)

	// Base units.
	b.Unit("m", 1, length).
		Unit("g", 1e-3, mass).
		Unit("s", 1, duration).
		Unit("A", 1, current).
		Unit("K", 1, temperature).
		Unit("mol", 1, amount).
		Unit("cd", 1, luminosity)

	// Derived units with special symbols.
	b.Unit("Hz", 1, frequency).
		Unit("N", 1, force).
		Unit("Pa", 1, pressure).
		Unit("J", 1, energy).
		Unit("W", 1, power).
		Unit("C", 1, charge).
		Unit("V", 1, voltage).
		Unit("F", 1, capacitance).
		Unit("Ω", 1, resistance).
		Unit("ohm", 1, resistance).
		Unit("S", 1, conductance).
		Unit("Wb", 1, magneticFlux).
		Unit("T", 1, fluxDensity).
		Unit("H", 1, inductance).
		Unit("lm", 1, luminosity).
		Unit("lx", 1, illuminance).
		Unit("Bq", 1, frequency).
		Unit("Gy", 1, absorbedDose).
		Unit("Sv", 1, absorbedDose).
		Unit("kat", 1, catalysis).
		Unit("rad", 1, dimless).
		Unit("sr", 1, dimless)

	// Accepted non-SI units. Bare "h" and "d" resolve as units because
	// exact matches take precedence over prefix decomposition.
	b.Unit("L", 1e-3, volume).
		Unit("l", 1e-3, volume).
		Unit("t", 1e3, mass).
		Unit("min", 60, duration).
		Unit("h", 3600, duration).
		Unit("d", 86400, duration).
		Unit("ha", 1e4, area).
		Unit("bar", 1e5, pressure).
		Unit("eV", 1.602176634e-19, energy)

	return b
}

// Binary registers the binary prefixes (Ki through Yi, powers of 1024) and
// the byte as a unit of the data dimension. The bit registers as 1/8 byte.
func (b *Builder) Binary() *Builder {
	factor := 1.0
	for _, sym := range []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"} {
		factor *= 1024
		b.Prefix(sym, factor)
	}
	return b.Unit("B", 1, data).Unit("bit", 0.125, data)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in SI table. It is constructed once on first
// use, is immutable thereafter, and is safe to share across goroutines.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewBuilder().SI().Build()
		if err != nil {
			// The catalogue is static; a registration conflict here is a bug.
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

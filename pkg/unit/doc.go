// Package unit parses human-written unit expressions ("2.5 g/l", "m s^-1",
// "kg·m²·s⁻²") into dimensioned quantities and provides checked arithmetic
// over them. Symbols resolve against an immutable Table of units and
// metric-style prefixes; the built-in SI vocabulary is available through
// Default. Tables are safe to share across goroutines once built.
package unit

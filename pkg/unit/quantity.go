package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dukaforge/gauge/pkg/dimension"
)

// Quantity is an immutable dimensioned value: a magnitude expressed in the
// coherent reference scale (SI base units for the default vocabulary) plus
// the dimension vector it carries. Arithmetic that would mix incompatible
// dimensions fails with dimension.ErrMismatch.
type Quantity struct {
	value float64
	dims  dimension.Vector
}

// New returns a quantity with the given magnitude, already expressed in the
// coherent reference scale, and dimension.
func New(value float64, dims dimension.Vector) Quantity {
	return Quantity{value: value, dims: dims}
}

// Value returns the magnitude in the coherent reference scale.
func (q Quantity) Value() float64 { return q.value }

// Dims returns the quantity's dimension vector.
func (q Quantity) Dims() dimension.Vector { return q.dims }

// Add returns q + o. Both operands must have equal dimensions.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.dims.Equal(o.dims) {
		return Quantity{}, fmt.Errorf("%w: cannot add %s and %s", dimension.ErrMismatch, q.dims, o.dims)
	}
	return Quantity{value: q.value + o.value, dims: q.dims}, nil
}

// Sub returns q - o. Both operands must have equal dimensions.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.dims.Equal(o.dims) {
		return Quantity{}, fmt.Errorf("%w: cannot subtract %s from %s", dimension.ErrMismatch, o.dims, q.dims)
	}
	return Quantity{value: q.value - o.value, dims: q.dims}, nil
}

// Mul returns q × o; magnitudes multiply and dimensions combine.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{value: q.value * o.value, dims: q.dims.Mul(o.dims)}
}

// Div returns q ÷ o; magnitudes divide and dimensions combine.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{value: q.value / o.value, dims: q.dims.Div(o.dims)}
}

// Pow returns q raised to an integer power.
func (q Quantity) Pow(n int) Quantity {
	return Quantity{value: math.Pow(q.value, float64(n)), dims: q.dims.Pow(n)}
}

// Root returns the n-th root of q. Every dimension exponent must be evenly
// divisible by n.
func (q Quantity) Root(n int) (Quantity, error) {
	d, err := q.dims.Root(n)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: math.Pow(q.value, 1/float64(n)), dims: d}, nil
}

// In returns the magnitude expressed in the target unit expression, which
// must resolve in the table to the same dimension as q.
func (q Quantity) In(t *Table, expr string) (float64, error) {
	target, err := t.Parse(expr)
	if err != nil {
		return 0, err
	}
	if !target.dims.Equal(q.dims) {
		return 0, fmt.Errorf("%w: cannot express %s in %q (%s)",
			dimension.ErrMismatch, q.dims, expr, target.dims)
	}
	return q.value / target.value, nil
}

// FromDuration converts a time.Duration to a quantity of seconds.
func FromDuration(d time.Duration) Quantity {
	return Quantity{value: d.Seconds(), dims: dimension.Base(dimension.Time)}
}

// Duration converts a time quantity to a time.Duration.
func (q Quantity) Duration() (time.Duration, error) {
	if !q.dims.Equal(dimension.Base(dimension.Time)) {
		return 0, fmt.Errorf("%w: %s is not a time", dimension.ErrMismatch, q.dims)
	}
	return time.Duration(q.value * float64(time.Second)), nil
}

// coherentSymbols maps each SI base-dimension identifier to the unit symbol
// of its coherent reference unit, used for rendering. Custom identifiers
// render verbatim.
var coherentSymbols = map[string]string{
	dimension.Length:      "m",
	dimension.Mass:        "kg",
	dimension.Time:        "s",
	dimension.Current:     "A",
	dimension.Temperature: "K",
	dimension.Amount:      "mol",
	dimension.Luminosity:  "cd",
}

// RenderDims renders a dimension vector through the coherent unit symbols,
// e.g. {M:1, L:2, T:-3} → "kg m^2 s^-3". The output re-parses (against a
// table that registers those symbols) to an equal dimension. Dimensionless
// renders as the empty string.
func RenderDims(d dimension.Vector) string {
	if d.IsDimensionless() {
		return ""
	}
	var b strings.Builder
	for i, id := range d.Identifiers() {
		if i > 0 {
			b.WriteByte(' ')
		}
		if sym, ok := coherentSymbols[id]; ok {
			b.WriteString(sym)
		} else {
			b.WriteString(id)
		}
		if e := d.Exponent(id); e != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(e))
		}
	}
	return b.String()
}

// String renders the quantity as magnitude followed by its dimension in
// coherent unit symbols ("12.5 kg m^2 s^-3"). Dimensionless quantities
// render as the bare magnitude. The result is re-parseable.
func (q Quantity) String() string {
	mag := strconv.FormatFloat(q.value, 'g', -1, 64)
	if q.dims.IsDimensionless() {
		return mag
	}
	return mag + " " + RenderDims(q.dims)
}

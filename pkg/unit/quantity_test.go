package unit

import (
	"errors"
	"testing"
	"time"

	"github.com/dukaforge/gauge/pkg/dimension"
)

func TestQuantityAdd(t *testing.T) {
	a := MustParse("2 km")
	b := MustParse("500 m")
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if sum.Value() != 2500 {
		t.Errorf("2km + 500m = %g m, want 2500", sum.Value())
	}
	if !sum.Dims().Equal(dimension.Base(dimension.Length)) {
		t.Errorf("sum dims = %v, want length", sum.Dims())
	}
}

func TestQuantityAddMismatch(t *testing.T) {
	a := MustParse("2 km")
	b := MustParse("3 s")
	if _, err := a.Add(b); !errors.Is(err, dimension.ErrMismatch) {
		t.Errorf("km + s: error = %v, want ErrMismatch", err)
	}
	if _, err := a.Sub(b); !errors.Is(err, dimension.ErrMismatch) {
		t.Errorf("km - s: error = %v, want ErrMismatch", err)
	}
}

func TestQuantitySub(t *testing.T) {
	a := MustParse("1 h")
	b := MustParse("15 min")
	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}
	if diff.Value() != 2700 {
		t.Errorf("1h - 15min = %g s, want 2700", diff.Value())
	}
}

func TestQuantityMulDiv(t *testing.T) {
	distance := MustParse("100 m")
	elapsed := MustParse("20 s")

	speed := distance.Div(elapsed)
	if speed.Value() != 5 {
		t.Errorf("speed = %g, want 5", speed.Value())
	}
	wantSpeed := dimension.New(map[string]int{dimension.Length: 1, dimension.Time: -1})
	if !speed.Dims().Equal(wantSpeed) {
		t.Errorf("speed dims = %v, want %v", speed.Dims(), wantSpeed)
	}

	back := speed.Mul(elapsed)
	if back.Value() != 100 || !back.Dims().Equal(dimension.Base(dimension.Length)) {
		t.Errorf("speed*time = (%g, %v), want (100, length)", back.Value(), back.Dims())
	}
}

func TestQuantityPowRoot(t *testing.T) {
	side := MustParse("3 m")
	area := side.Pow(2)
	if area.Value() != 9 {
		t.Errorf("area = %g, want 9", area.Value())
	}
	if !area.Dims().Equal(dimension.New(map[string]int{dimension.Length: 2})) {
		t.Errorf("area dims = %v, want L^2", area.Dims())
	}

	back, err := area.Root(2)
	if err != nil {
		t.Fatalf("Root error: %v", err)
	}
	if !almostEqual(back.Value(), 3) || !back.Dims().Equal(dimension.Base(dimension.Length)) {
		t.Errorf("sqrt(area) = (%g, %v), want (3, length)", back.Value(), back.Dims())
	}

	if _, err := side.Root(2); !errors.Is(err, dimension.ErrMismatch) {
		t.Errorf("sqrt(length): error = %v, want ErrMismatch", err)
	}
}

func TestQuantityIn(t *testing.T) {
	q := MustParse("90 km/h")
	got, err := q.In(Default(), "m/s")
	if err != nil {
		t.Fatalf("In error: %v", err)
	}
	if !almostEqual(got, 25) {
		t.Errorf("90 km/h in m/s = %g, want 25", got)
	}

	if _, err := q.In(Default(), "kg"); !errors.Is(err, dimension.ErrMismatch) {
		t.Errorf("speed in kg: error = %v, want ErrMismatch", err)
	}
	if _, err := q.In(Default(), "qGz"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("speed in qGz: error = %v, want ErrUnknownSymbol", err)
	}
}

func TestQuantityDuration(t *testing.T) {
	q := FromDuration(90 * time.Second)
	if q.Value() != 90 || !q.Dims().Equal(dimension.Base(dimension.Time)) {
		t.Errorf("FromDuration = (%g, %v), want (90, time)", q.Value(), q.Dims())
	}

	d, err := MustParse("1.5 min").Duration()
	if err != nil {
		t.Fatalf("Duration error: %v", err)
	}
	if d != 90*time.Second {
		t.Errorf("Duration = %v, want 90s", d)
	}

	if _, err := MustParse("3 m").Duration(); !errors.Is(err, dimension.ErrMismatch) {
		t.Errorf("Duration of length: error = %v, want ErrMismatch", err)
	}
}

func TestQuantityString(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"2500 m", "2500 m"},
		{"42", "42"},
		{"1 N", "1 kg m s^-2"},
		{"1 W", "1 kg m^2 s^-3"},
		{"2 mol/L", "2000 m^-3 mol"},
	}
	for _, tt := range tests {
		q := MustParse(tt.expr)
		if got := q.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.expr, got, tt.want)
		}
	}
}

func TestRenderDims(t *testing.T) {
	tests := []struct {
		name string
		dims dimension.Vector
		want string
	}{
		{"dimensionless", dimension.Vector{}, ""},
		{"power", dimension.New(map[string]int{dimension.Mass: 1, dimension.Length: 2, dimension.Time: -3}), "kg m^2 s^-3"},
		{"custom identifier", dimension.Base("B"), "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderDims(tt.dims); got != tt.want {
				t.Errorf("RenderDims = %q, want %q", got, tt.want)
			}
		})
	}
}

package solver

import (
	"math"
	"testing"

	"github.com/san-kum/emgrid/internal/field"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.17g, want %.17g (tol %g)", name, got, want, tol)
	}
}

// Reference values for the 5x5 single-wire case were produced with a
// straight transcription of the sweep (clamped stencil, row-major,
// in-place) run for 50 iterations.
func TestLaplace_SingleWire(t *testing.T) {
	voltage, _ := field.NewScalar(5, 5)
	pinned := make([]bool, 25)
	for _, y := range []int{1, 2, 3} {
		voltage.Set(2, y, 2.0)
		pinned[2*5+y] = true
	}

	p := Laplace{Iterations: 50}.Solve(voltage, pinned)

	want := []float64{
		1.9897341481447484,
		1.9938836250096679,
		2.0,
		1.9944527919880777,
		1.9916399232855801,
	}
	for x := 0; x < 5; x++ {
		approx(t, "P(x,2)", p.At(x, 2), want[x], 1e-12)
	}
}

func TestLaplace_PinnedCellsExact(t *testing.T) {
	voltage, _ := field.NewScalar(7, 7)
	pinned := make([]bool, 49)
	voltage.Set(3, 3, -4.5)
	pinned[3*7+3] = true

	p := Laplace{Iterations: 200}.Solve(voltage, pinned)
	if p.At(3, 3) != -4.5 {
		t.Errorf("pinned cell drifted: %v", p.At(3, 3))
	}
}

func TestLaplace_DefaultIterations(t *testing.T) {
	voltage, _ := field.NewScalar(3, 3)
	pinned := make([]bool, 9)
	voltage.Set(1, 1, 1)
	pinned[4] = true

	var calls int
	Laplace{Progress: func(it int, _ float64) { calls = it }}.Solve(voltage, pinned)
	if calls != DefaultIterations {
		t.Errorf("ran %d iterations, want %d", calls, DefaultIterations)
	}
}

func TestLaplace_InputUntouched(t *testing.T) {
	voltage, _ := field.NewScalar(5, 5)
	pinned := make([]bool, 25)
	voltage.Set(2, 2, 3)
	pinned[2*5+2] = true

	Laplace{Iterations: 10}.Solve(voltage, pinned)
	if voltage.At(1, 2) != 0 || voltage.At(2, 2) != 3 {
		t.Error("Solve mutated the voltage field")
	}
}

func TestBiotSavart_ThreeCellWire(t *testing.T) {
	current, _ := field.NewVector(5, 5, 3)
	for _, y := range []int{1, 2, 3} {
		current.Set(2, y, 0, 1, 0)
	}

	b := BiotSavart{}.Solve(current)

	// Hand-summed: mu0/4pi * sum over the three sources of
	// (0,1,0) x d / |d|^3 evaluated at the origin.
	approx(t, "B_z(0,0)", b.At(0, 0)[2], 3.099430318805062e-08, 1e-18)

	// In-plane currents produce a purely out-of-plane field.
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			vec := b.At(x, y)
			if vec[0] != 0 || vec[1] != 0 {
				t.Fatalf("in-plane component at (%d,%d): %v", x, y, vec)
			}
		}
	}
}

func TestBiotSavart_SelfTermSkipped(t *testing.T) {
	current, _ := field.NewVector(4, 4, 3)
	current.Set(1, 1, 1, 0, 0)

	b := BiotSavart{}.Solve(current)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			if v := b.At(x, y); math.IsNaN(v[2]) || math.IsInf(v[2], 0) {
				t.Fatalf("non-finite field at (%d,%d)", x, y)
			}
		}
	}
	// The lone source sees no other sources.
	if v := b.At(1, 1); v[2] != 0 {
		t.Errorf("self contribution not skipped: %v", v[2])
	}
}

func TestBiotSavart_NoSources(t *testing.T) {
	current, _ := field.NewVector(3, 3, 3)
	b := BiotSavart{}.Solve(current)
	for _, v := range b.Values() {
		if v != 0 {
			t.Fatal("expected zero field for zero current")
		}
	}
}

func TestBiotSavart_WorkerCountInvariant(t *testing.T) {
	// 40x40 crosses the parallel threshold; chunking must not change
	// the result because each cell sums its sources in a fixed order.
	current, _ := field.NewVector(40, 40, 3)
	for y := 5; y <= 30; y++ {
		current.Set(12, y, 0, 1, 0)
		current.Set(27, y, 0, -1, 0)
	}

	one := BiotSavart{Workers: 1}.Solve(current)
	many := BiotSavart{Workers: 8}.Solve(current)

	a, b := one.Values(), many.Values()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("worker count changed result at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestElectricField_IsNegativeGradient(t *testing.T) {
	p, _ := field.NewScalar(6, 6)
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			p.Set(x, y, float64(x*x)-2*float64(y))
		}
	}
	e := ElectricField(p)
	g := p.Gradient()
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			ev, gv := e.At(x, y), g.At(x, y)
			if ev[0] != -gv[0] || ev[1] != -gv[1] {
				t.Fatalf("E != -grad P at (%d,%d)", x, y)
			}
		}
	}
}

func TestEnergyFlux_CrossOverMu0(t *testing.T) {
	e, _ := field.NewVector(1, 1, 2)
	b, _ := field.NewVector(1, 1, 3)
	e.Set(0, 0, 2, 3)
	b.Set(0, 0, 0, 0, 4e-8)

	ef, err := EnergyFlux(e, b)
	if err != nil {
		t.Fatal(err)
	}
	vec := ef.At(0, 0)
	approx(t, "EF_x", vec[0], 3*4e-8/Mu0, 1e-12)
	approx(t, "EF_y", vec[1], -2*4e-8/Mu0, 1e-12)
	if vec[2] != 0 {
		t.Errorf("EF_z = %v, want 0", vec[2])
	}
}

func TestEnergyFlux_ExtentMismatch(t *testing.T) {
	e, _ := field.NewVector(2, 2, 2)
	b, _ := field.NewVector(3, 3, 3)
	if _, err := EnergyFlux(e, b); err == nil {
		t.Error("expected extent error")
	}
}

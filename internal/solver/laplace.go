package solver

import (
	"math"

	"github.com/san-kum/emgrid/internal/field"
)

// DefaultIterations is the relaxation budget used when none is given.
const DefaultIterations = 1000

// ProgressFunc receives the 1-based iteration number and the largest
// single-cell update of that sweep. Used by the live view; it never
// affects termination.
type ProgressFunc func(iteration int, maxDelta float64)

// Laplace computes the electric potential over the grid by in-place
// Gauss-Seidel relaxation of the 5-point stencil. Cells flagged in the
// pinned mask hold their voltage for the whole run; border cells use
// index-clamped neighbors, which makes the outer edge reflective.
type Laplace struct {
	Iterations int
	Progress   ProgressFunc
}

// Solve returns the potential for the given wire voltage field. The
// potential starts as a copy of the voltage field, so unpinned cells
// start at zero. The sweep is row-major with x as the outer axis;
// updated values are visible to later cells within the same sweep.
func (l Laplace) Solve(voltage *field.ScalarField, pinned []bool) *field.ScalarField {
	p := voltage.Clone()
	w, h := p.Dims()
	v := p.Values()

	iters := l.Iterations
	if iters <= 0 {
		iters = DefaultIterations
	}

	for it := 0; it < iters; it++ {
		var maxDelta float64
		for x := 0; x < w; x++ {
			xm := x - 1
			if xm < 0 {
				xm = 0
			}
			xp := x + 1
			if xp > w-1 {
				xp = w - 1
			}
			row := x * h
			for y := 0; y < h; y++ {
				i := row + y
				if pinned[i] {
					continue
				}
				ym := y - 1
				if ym < 0 {
					ym = 0
				}
				yp := y + 1
				if yp > h-1 {
					yp = h - 1
				}
				next := (v[xm*h+y] + v[xp*h+y] + v[row+ym] + v[row+yp]) / 4
				if l.Progress != nil {
					if d := math.Abs(next - v[i]); d > maxDelta {
						maxDelta = d
					}
				}
				v[i] = next
			}
		}
		if l.Progress != nil {
			l.Progress(it+1, maxDelta)
		}
	}
	return p
}

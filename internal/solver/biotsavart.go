package solver

import (
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/emgrid/internal/field"
)

// Mu0 is the vacuum permeability (2018 CODATA), in the unit system of
// the grid: cell spacing 1, unit currents.
const Mu0 = 1.25663706212e-06

// Grids below this cell count are summed serially; goroutine setup
// costs more than it saves there.
const parallelThreshold = 1024

type source struct {
	x, y       int
	ix, iy, iz float64
}

// BiotSavart computes the magnetic field as the direct superposition
// of every current-carrying cell: B(r) = mu0/4pi * sum I x d / |d|^3
// with d the in-plane displacement from source to field point. The
// singular self-term is skipped. In-plane currents yield a field with
// only a z-component.
type BiotSavart struct {
	// Workers bounds the row-chunked goroutines; 0 means NumCPU.
	Workers int
}

// Solve returns a 3-component field over the same grid as current.
func (b BiotSavart) Solve(current *field.VectorField) *field.VectorField {
	w, h := current.Dims()
	out, _ := field.NewVector(w, h, 3)

	srcs := collectSources(current)
	if len(srcs) == 0 {
		return out
	}

	if w*h < parallelThreshold {
		b.sumRows(current, srcs, out, 0, w)
		return out
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunk := (w + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < w; start += chunk {
		end := start + chunk
		if end > w {
			end = w
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			b.sumRows(current, srcs, out, lo, hi)
		}(start, end)
	}
	wg.Wait()
	return out
}

// sumRows accumulates every source contribution for field cells with
// x in [lo, hi). Source order is fixed, so partitioning the output
// cells does not change the floating-point result.
func (b BiotSavart) sumRows(current *field.VectorField, srcs []source, out *field.VectorField, lo, hi int) {
	_, h := current.Dims()
	k := Mu0 / (4 * math.Pi)
	for x := lo; x < hi; x++ {
		for y := 0; y < h; y++ {
			var bx, by, bz float64
			for _, s := range srcs {
				dx := float64(x - s.x)
				dy := float64(y - s.y)
				d := math.Sqrt(dx*dx + dy*dy)
				if d == 0 {
					continue
				}
				inv := 1 / (d * d * d)
				// I x d with d = (dx, dy, 0)
				bx += -s.iz * dy * inv
				by += s.iz * dx * inv
				bz += (s.ix*dy - s.iy*dx) * inv
			}
			out.Set(x, y, k*bx, k*by, k*bz)
		}
	}
}

// collectSources walks the grid x-major and keeps cells with a
// non-zero current vector.
func collectSources(current *field.VectorField) []source {
	w, h := current.Dims()
	var srcs []source
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			c := current.At(x, y)
			ix, iy := c[0], c[1]
			iz := 0.0
			if len(c) == 3 {
				iz = c[2]
			}
			if ix == 0 && iy == 0 && iz == 0 {
				continue
			}
			srcs = append(srcs, source{x: x, y: y, ix: ix, iy: iy, iz: iz})
		}
	}
	return srcs
}

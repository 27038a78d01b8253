package field

import "math"

// ScalarField is a map f : (x, y) -> R over a fixed W x H grid.
// Values are stored x-major: index = x*h + y.
type ScalarField struct {
	w, h int
	data []float64
}

// NewScalar creates a zero-valued scalar field over a w x h grid.
func NewScalar(w, h int) (*ScalarField, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrRank
	}
	return &ScalarField{w: w, h: h, data: make([]float64, w*h)}, nil
}

// Dims returns the grid extent.
func (s *ScalarField) Dims() (w, h int) { return s.w, s.h }

// At returns the value at cell (x, y).
func (s *ScalarField) At(x, y int) float64 { return s.data[x*s.h+y] }

// Set writes the value at cell (x, y).
func (s *ScalarField) Set(x, y int, v float64) { s.data[x*s.h+y] = v }

// Values exposes the backing buffer in x-major order. Solver hot loops
// index it directly; everyone else should go through At/Set.
func (s *ScalarField) Values() []float64 { return s.data }

// Clone returns an independent copy.
func (s *ScalarField) Clone() *ScalarField {
	c := &ScalarField{w: s.w, h: s.h, data: make([]float64, len(s.data))}
	copy(c.data, s.data)
	return c
}

// MinMax returns the smallest and largest values in the field.
func (s *ScalarField) MinMax() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range s.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Gradient returns the 2-component gradient of the field at unit grid
// spacing: central differences in the interior, one-sided differences
// at the grid border. Component 0 is d/dx, component 1 is d/dy.
func (s *ScalarField) Gradient() *VectorField {
	g, _ := NewVector(s.w, s.h, 2)
	for x := 0; x < s.w; x++ {
		for y := 0; y < s.h; y++ {
			var gx, gy float64
			switch {
			case s.w == 1:
				// single column: no x variation
			case x == 0:
				gx = s.At(1, y) - s.At(0, y)
			case x == s.w-1:
				gx = s.At(s.w-1, y) - s.At(s.w-2, y)
			default:
				gx = (s.At(x+1, y) - s.At(x-1, y)) / 2
			}
			switch {
			case s.h == 1:
				// single row: no y variation
			case y == 0:
				gy = s.At(x, 1) - s.At(x, 0)
			case y == s.h-1:
				gy = s.At(x, s.h-1) - s.At(x, s.h-2)
			default:
				gy = (s.At(x, y+1) - s.At(x, y-1)) / 2
			}
			g.Set(x, y, gx, gy)
		}
	}
	return g
}

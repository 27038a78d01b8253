package field

// VectorField is a map f : (x, y) -> R^2 or R^3 over a fixed W x H grid.
// The component count is a property of the whole field, fixed at
// construction. Components are stored x-major, cell-contiguous:
// index = (x*h + y)*comps + c.
type VectorField struct {
	w, h  int
	comps int
	data  []float64
}

// NewVector creates a zero-valued vector field with comps components
// per cell. Only 2 and 3 components are supported.
func NewVector(w, h, comps int) (*VectorField, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrRank
	}
	if comps != 2 && comps != 3 {
		return nil, ErrComponents
	}
	return &VectorField{w: w, h: h, comps: comps, data: make([]float64, w*h*comps)}, nil
}

// Dims returns the grid extent.
func (v *VectorField) Dims() (w, h int) { return v.w, v.h }

// Components returns the per-cell component count (2 or 3).
func (v *VectorField) Components() int { return v.comps }

// At returns the vector at cell (x, y) as a view into the backing
// buffer; mutating the returned slice mutates the field.
func (v *VectorField) At(x, y int) []float64 {
	i := (x*v.h + y) * v.comps
	return v.data[i : i+v.comps]
}

// Set writes the vector at cell (x, y). Extra components beyond the
// field's count are ignored; missing ones are left unchanged.
func (v *VectorField) Set(x, y int, vec ...float64) {
	i := (x*v.h + y) * v.comps
	n := len(vec)
	if n > v.comps {
		n = v.comps
	}
	copy(v.data[i:i+n], vec[:n])
}

// Values exposes the backing buffer. Layout as documented on the type.
func (v *VectorField) Values() []float64 { return v.data }

// Clone returns an independent copy.
func (v *VectorField) Clone() *VectorField {
	c := &VectorField{w: v.w, h: v.h, comps: v.comps, data: make([]float64, len(v.data))}
	copy(c.data, v.data)
	return c
}

// X returns the first component as a scalar field.
func (v *VectorField) X() *ScalarField { return v.component(0) }

// Y returns the second component as a scalar field.
func (v *VectorField) Y() *ScalarField { return v.component(1) }

// Z returns the third component as a scalar field, or nil for a
// 2-component field.
func (v *VectorField) Z() *ScalarField {
	if v.comps == 2 {
		return nil
	}
	return v.component(2)
}

func (v *VectorField) component(c int) *ScalarField {
	s, _ := NewScalar(v.w, v.h)
	for x := 0; x < v.w; x++ {
		for y := 0; y < v.h; y++ {
			s.Set(x, y, v.data[(x*v.h+y)*v.comps+c])
		}
	}
	return s
}

// Cross returns the per-cell cross product v x o. Both fields must
// share the grid extent. 2-component vectors are lifted to 3 with a
// zero z-component; the result always has 3 components.
func (v *VectorField) Cross(o *VectorField) (*VectorField, error) {
	if v.w != o.w || v.h != o.h {
		return nil, ErrExtent
	}
	out, _ := NewVector(v.w, v.h, 3)
	for x := 0; x < v.w; x++ {
		for y := 0; y < v.h; y++ {
			ax, ay, az := v.at3(x, y)
			bx, by, bz := o.at3(x, y)
			out.Set(x, y, ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx)
		}
	}
	return out, nil
}

func (v *VectorField) at3(x, y int) (float64, float64, float64) {
	i := (x*v.h + y) * v.comps
	if v.comps == 2 {
		return v.data[i], v.data[i+1], 0
	}
	return v.data[i], v.data[i+1], v.data[i+2]
}

// Scale multiplies every component by k, in place.
func (v *VectorField) Scale(k float64) {
	for i := range v.data {
		v.data[i] *= k
	}
}

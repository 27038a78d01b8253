package em

import (
	"github.com/san-kum/emgrid/internal/field"
	"github.com/san-kum/emgrid/internal/solver"
)

// World is a fixed-extent 2D grid holding placed wires, the boundary
// fields they assemble, and the fields derived from them. Derived
// fields are nil until Compute succeeds; accessors never hand out
// partial or stale data.
type World struct {
	w, h int

	wires    []*Wire
	circuits []*Circuit

	voltage *field.ScalarField // nonzero only on wire cells
	current *field.VectorField // nonzero only on wire cells, 3 components
	pinned  []bool             // wire mask, x-major

	potential *field.ScalarField
	electric  *field.VectorField
	magnetic  *field.VectorField
	flux      *field.VectorField
}

// ComputeConfig tunes a Compute call. The zero value asks for the
// defaults: 1000 relaxation iterations, NumCPU Biot-Savart workers,
// no progress reporting.
type ComputeConfig struct {
	Iterations int
	Workers    int
	Progress   solver.ProgressFunc
}

// NewWorld builds an empty world. The shape must be exactly two
// positive integers (width, height); anything else fails with ErrShape.
func NewWorld(shape ...int) (*World, error) {
	if len(shape) != 2 || shape[0] <= 0 || shape[1] <= 0 {
		return nil, ErrShape
	}
	w, h := shape[0], shape[1]
	voltage, _ := field.NewScalar(w, h)
	current, _ := field.NewVector(w, h, 3)
	return &World{
		w:       w,
		h:       h,
		voltage: voltage,
		current: current,
		pinned:  make([]bool, w*h),
	}, nil
}

// Shape returns the grid extent.
func (wd *World) Shape() (w, h int) { return wd.w, wd.h }

// Wires returns the placed wires in placement order.
func (wd *World) Wires() []*Wire {
	out := make([]*Wire, len(wd.wires))
	copy(out, wd.wires)
	return out
}

// Circuits returns the placed circuits in placement order.
func (wd *World) Circuits() []*Circuit {
	out := make([]*Circuit, len(wd.circuits))
	copy(out, wd.circuits)
	return out
}

// Place adds a wire or circuit to the world, writing its voltage and
// current into the boundary fields cell by cell. A later placement
// overwrites any earlier value at a shared cell; overlap is not
// validated. Cells outside the grid are ignored.
func (wd *World) Place(e Element) {
	for _, w := range e.wires() {
		wd.placeWire(w)
	}
	if c, ok := e.(*Circuit); ok {
		wd.circuits = append(wd.circuits, c)
	}
}

func (wd *World) placeWire(w *Wire) {
	cur := w.Current()
	for _, c := range w.Position() {
		if c.X < 0 || c.X >= wd.w || c.Y < 0 || c.Y >= wd.h {
			continue
		}
		wd.voltage.Set(c.X, c.Y, w.Voltage())
		wd.current.Set(c.X, c.Y, cur.X, cur.Y, cur.Z)
		wd.pinned[c.X*wd.h+c.Y] = true
	}
	wd.wires = append(wd.wires, w)
}

// Compute derives all fields with default settings.
func (wd *World) Compute() error { return wd.ComputeWith(ComputeConfig{}) }

// ComputeWith derives the potential, magnetic field, electric field
// and energy flux from the current boundary-field snapshot. It fails
// with ErrNoWires on an empty world and has no other failure mode.
// Calling it again recomputes everything from scratch.
func (wd *World) ComputeWith(cfg ComputeConfig) error {
	if len(wd.wires) == 0 {
		return ErrNoWires
	}

	laplace := solver.Laplace{Iterations: cfg.Iterations, Progress: cfg.Progress}
	potential := laplace.Solve(wd.voltage, wd.pinned)

	magnetic := solver.BiotSavart{Workers: cfg.Workers}.Solve(wd.current)

	electric := solver.ElectricField(potential)
	flux, err := solver.EnergyFlux(electric, magnetic)
	if err != nil {
		return err
	}

	wd.potential = potential
	wd.magnetic = magnetic
	wd.electric = electric
	wd.flux = flux
	return nil
}

// WireMask returns a copy of the x-major occupancy mask: true where
// some wire covers the cell. The viz layer uses it to blank wire
// cells in stream plots.
func (wd *World) WireMask() ([]bool, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	out := make([]bool, len(wd.pinned))
	copy(out, wd.pinned)
	return out, nil
}

// WiresVoltage returns the assembled wire voltage field.
func (wd *World) WiresVoltage() (*field.ScalarField, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	return wd.voltage, nil
}

// WiresCurrent returns the assembled wire current field.
func (wd *World) WiresCurrent() (*field.VectorField, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	return wd.current, nil
}

// Potential returns the computed electric potential.
func (wd *World) Potential() (*field.ScalarField, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	if wd.potential == nil {
		return nil, ErrNotComputed
	}
	return wd.potential, nil
}

// ElectricField returns the computed electric field (2 components).
func (wd *World) ElectricField() (*field.VectorField, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	if wd.electric == nil {
		return nil, ErrNotComputed
	}
	return wd.electric, nil
}

// MagneticField returns the computed magnetic field (3 components;
// only z is non-trivial for in-plane currents).
func (wd *World) MagneticField() (*field.VectorField, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	if wd.magnetic == nil {
		return nil, ErrNotComputed
	}
	return wd.magnetic, nil
}

// EnergyFlux returns the computed Poynting vector field.
func (wd *World) EnergyFlux() (*field.VectorField, error) {
	if len(wd.wires) == 0 {
		return nil, ErrEmptyWorld
	}
	if wd.flux == nil {
		return nil, ErrNotComputed
	}
	return wd.flux, nil
}

package solver

import "github.com/san-kum/emgrid/internal/field"

// ElectricField returns E = -grad(P) as a 2-component field.
func ElectricField(potential *field.ScalarField) *field.VectorField {
	e := potential.Gradient()
	e.Scale(-1)
	return e
}

// EnergyFlux returns the Poynting vector (E x B) / mu0. E is lifted to
// (E_x, E_y, 0) before crossing, so with B carrying only a z-component
// the result is purely in-plane.
func EnergyFlux(electric, magnetic *field.VectorField) (*field.VectorField, error) {
	ef, err := electric.Cross(magnetic)
	if err != nil {
		return nil, err
	}
	ef.Scale(1 / Mu0)
	return ef, nil
}

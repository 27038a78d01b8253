// Package field provides typed 2D field containers over a fixed grid.
//
// Two container types cover every quantity the solvers work with:
//
//   - [ScalarField]: grid-indexed map to a single real value per cell
//   - [VectorField]: grid-indexed map to a 2- or 3-component vector per cell
//
// Both own a flat float64 buffer in x-major order and validate their
// dimensionality at construction. Derived operations (gradient, cross
// product) allocate new fields and never mutate their inputs.
//
// # Example
//
//	p, _ := field.NewScalar(51, 51)
//	e := p.Gradient()
//	bz := b.Z()
package field

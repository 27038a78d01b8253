// Package solver implements the numerical core for static 2D
// electromagnetics:
//
//   - [Laplace]: electric potential by Gauss-Seidel relaxation with
//     fixed-voltage (Dirichlet) wire cells and a zero-flux (Neumann)
//     grid border
//   - [BiotSavart]: magnetic field by direct superposition over every
//     current-carrying cell
//   - [ElectricField] / [EnergyFlux]: fields derived from the solver
//     outputs with no further iteration
//
// The relaxation sweep is in place and row-major (x outer, y inner);
// the iteration budget is the sole termination criterion. Biot-Savart
// work is chunked across worker goroutines on larger grids; results
// are deterministic because each output cell accumulates its sources
// in a fixed order.
package solver

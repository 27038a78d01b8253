// Package em models a 2D world of current-carrying wires and the
// static electromagnetic fields they produce.
//
// A [World] owns the grid and two boundary fields assembled from the
// wires placed in it: the wire voltage (scalar) and the wire current
// (3-component vector). [World.Compute] derives the remaining fields
// from that snapshot:
//
//   - potential, by Laplace relaxation with wire cells pinned
//   - magnetic field, by a direct Biot-Savart sum
//   - electric field, as the negative potential gradient
//   - energy flux, as the Poynting vector (E x B)/mu0
//
// # Example
//
//	w, _ := em.NewWorld(51, 51)
//	wire, _ := em.NewWire(em.Cell{13, 25}, em.Cell{13, 37}, em.Current{Y: 1}, 4.5)
//	w.Place(wire)
//	if err := w.Compute(); err != nil { ... }
//	p, _ := w.Potential()
//
// Worlds are not safe for concurrent use; Compute is one long
// synchronous call.
package em

package em

// Cell addresses one grid cell.
type Cell struct {
	X, Y int
}

// Current is the constant current vector carried by a wire. Z stays
// zero for the in-plane wires this world supports, but is kept so the
// current field crosses cleanly with 3-component fields.
type Current struct {
	X, Y, Z float64
}

// Wire is an axis-aligned straight segment from start to stop
// (inclusive) carrying a constant current and held at a constant
// voltage. Wires are immutable after construction.
type Wire struct {
	start, stop Cell
	current     Current
	voltage     float64
	vertical    bool
}

// NewWire builds a wire between two cells that share exactly one
// coordinate. A diagonal segment fails with ErrNotAxisAligned. A
// single-cell wire (start == stop) is valid and counts as vertical.
func NewWire(start, stop Cell, current Current, voltage float64) (*Wire, error) {
	vertical := start.X == stop.X
	horizontal := start.Y == stop.Y
	if !vertical && !horizontal {
		return nil, ErrNotAxisAligned
	}
	return &Wire{
		start:    start,
		stop:     stop,
		current:  current,
		voltage:  voltage,
		vertical: vertical,
	}, nil
}

// Start returns the first endpoint.
func (w *Wire) Start() Cell { return w.start }

// Stop returns the last endpoint (inclusive).
func (w *Wire) Stop() Cell { return w.stop }

// Current returns the wire's current vector.
func (w *Wire) Current() Current { return w.current }

// Voltage returns the wire's voltage.
func (w *Wire) Voltage() float64 { return w.voltage }

// Position returns the ordered cells the wire occupies, walking from
// start to stop with a +-1 step along the varying axis.
func (w *Wire) Position() []Cell {
	if w.vertical {
		cells := make([]Cell, 0, abs(w.stop.Y-w.start.Y)+1)
		for _, y := range span(w.start.Y, w.stop.Y) {
			cells = append(cells, Cell{X: w.start.X, Y: y})
		}
		return cells
	}
	cells := make([]Cell, 0, abs(w.stop.X-w.start.X)+1)
	for _, x := range span(w.start.X, w.stop.X) {
		cells = append(cells, Cell{X: x, Y: w.start.Y})
	}
	return cells
}

func (w *Wire) wires() []*Wire { return []*Wire{w} }

// span lists the integers from a to b inclusive, in walk order.
func span(a, b int) []int {
	step := 1
	if b < a {
		step = -1
	}
	out := make([]int, 0, abs(b-a)+1)
	for i := a; ; i += step {
		out = append(out, i)
		if i == b {
			break
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

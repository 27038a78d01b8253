package em

// Circuit groups wires for placement convenience; it carries no state
// beyond the ordered wire list.
type Circuit struct {
	list []*Wire
}

// NewCircuit builds a circuit from wires in placement order.
func NewCircuit(wires ...*Wire) *Circuit {
	list := make([]*Wire, len(wires))
	copy(list, wires)
	return &Circuit{list: list}
}

// Wires returns the circuit's wires in placement order.
func (c *Circuit) Wires() []*Wire {
	out := make([]*Wire, len(c.list))
	copy(out, c.list)
	return out
}

func (c *Circuit) wires() []*Wire { return c.list }

// Element is anything that contributes wires to a world: a single
// [Wire] or a [Circuit].
type Element interface {
	wires() []*Wire
}

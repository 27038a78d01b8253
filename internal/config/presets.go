package config

import "sort"

// Presets are ready-made circuits. "loop" is the symmetric reference
// loop; the others are larger rectangular circuits split into a
// positive and a negative half.
var presets = map[string]*Config{
	"loop": {
		Shape:      []int{51, 51},
		Iterations: 1000,
		Wires: []WireSpec{
			{Start: []int{13, 25}, Stop: []int{13, 37}, Current: []float64{0, 1}, Voltage: 4.5},
			{Start: []int{13, 37}, Stop: []int{37, 37}, Current: []float64{1, 0}, Voltage: 4.5},
			{Start: []int{37, 37}, Stop: []int{37, 25}, Current: []float64{0, -1}, Voltage: 4.5},
			{Start: []int{37, 25}, Stop: []int{37, 13}, Current: []float64{0, -1}, Voltage: -4.5},
			{Start: []int{37, 13}, Stop: []int{13, 13}, Current: []float64{-1, 0}, Voltage: -4.5},
			{Start: []int{13, 13}, Stop: []int{13, 25}, Current: []float64{0, 1}, Voltage: -4.5},
		},
	},
	"split-loop": {
		Shape:      []int{101, 101},
		Iterations: 1000,
		Wires: []WireSpec{
			{Start: []int{54, 35}, Stop: []int{29, 35}, Current: []float64{-1, 0}, Voltage: 4.5},
			{Start: []int{29, 35}, Stop: []int{29, 86}, Current: []float64{0, 1}, Voltage: 4.5},
			{Start: []int{29, 86}, Stop: []int{54, 86}, Current: []float64{1, 0}, Voltage: 4.5},
			{Start: []int{54, 86}, Stop: []int{80, 86}, Current: []float64{1, 0}, Voltage: -4.5},
			{Start: []int{80, 86}, Stop: []int{80, 35}, Current: []float64{0, -1}, Voltage: -4.5},
			{Start: []int{80, 35}, Stop: []int{54, 35}, Current: []float64{-1, 0}, Voltage: -4.5},
		},
	},
	"tall-loop": {
		Shape:      []int{121, 121},
		Iterations: 1000,
		Wires: []WireSpec{
			{Start: []int{45, 50}, Stop: []int{44, 50}, Current: []float64{-1, 0}, Voltage: 4.5},
			{Start: []int{44, 50}, Stop: []int{44, 101}, Current: []float64{0, 1}, Voltage: 4.5},
			{Start: []int{44, 101}, Stop: []int{94, 101}, Current: []float64{1, 0}, Voltage: 4.5},
			{Start: []int{94, 101}, Stop: []int{95, 101}, Current: []float64{1, 0}, Voltage: -4.5},
			{Start: []int{95, 101}, Stop: []int{95, 50}, Current: []float64{0, -1}, Voltage: -4.5},
			{Start: []int{95, 50}, Stop: []int{94, 50}, Current: []float64{-1, 0}, Voltage: -4.5},
		},
	},
	"wide-loop": {
		Shape:      []int{142, 92},
		Iterations: 1000,
		Wires: []WireSpec{
			{Start: []int{120, 20}, Stop: []int{20, 20}, Current: []float64{-1, 0}, Voltage: 4.5},
			{Start: []int{20, 20}, Stop: []int{20, 71}, Current: []float64{0, 1}, Voltage: 4.5},
			{Start: []int{20, 71}, Stop: []int{120, 71}, Current: []float64{1, 0}, Voltage: 4.5},
			{Start: []int{120, 71}, Stop: []int{121, 71}, Current: []float64{1, 0}, Voltage: -4.5},
			{Start: []int{121, 71}, Stop: []int{121, 20}, Current: []float64{0, -1}, Voltage: -4.5},
			{Start: []int{121, 20}, Stop: []int{120, 20}, Current: []float64{-1, 0}, Voltage: -4.5},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
// The copy is safe to modify.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := &Config{
		Shape:      append([]int(nil), p.Shape...),
		Iterations: p.Iterations,
		Wires:      append([]WireSpec(nil), p.Wires...),
	}
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

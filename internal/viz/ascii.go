package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/emgrid/internal/field"
)

// CrossSection plots the values along one grid row (fixed y, varying
// x) as an ASCII graph for quick terminal inspection.
func CrossSection(f *field.ScalarField, y int, caption string) string {
	w, h := f.Dims()
	if y < 0 || y >= h {
		y = (h - 1) / 2
	}
	data := make([]float64, w)
	for x := 0; x < w; x++ {
		data[x] = f.At(x, y)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/emgrid/internal/field"
)

// scalarGrid adapts a ScalarField to plotter.GridXYZ.
type scalarGrid struct {
	f *field.ScalarField
}

func (g scalarGrid) Dims() (c, r int) { return g.f.Dims() }
func (g scalarGrid) Z(c, r int) float64 {
	return g.f.At(c, r)
}
func (g scalarGrid) X(c int) float64 { return float64(c) }
func (g scalarGrid) Y(r int) float64 { return float64(r) }

// SaveHeatMap renders a scalar field as a heatmap PNG (or any format
// gonum/plot infers from the extension).
func SaveHeatMap(f *field.ScalarField, opts PlotOptions, path string) error {
	opts = opts.withDefaults()

	pal := moreland.SmoothBlueRed().Palette(255)
	hm := plotter.NewHeatMap(scalarGrid{f: f}, pal)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(hm)

	return p.Save(opts.Width, opts.Height, path)
}

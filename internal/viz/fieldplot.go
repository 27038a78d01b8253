package viz

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/emgrid/internal/field"
)

// vectorGrid adapts a VectorField's in-plane components to
// plotter.FieldXY. Masked cells report a zero vector, which the field
// plotter draws as nothing; the original stream plots blank wire cells
// the same way.
type vectorGrid struct {
	f    *field.VectorField
	mask []bool // x-major, optional
}

func (g vectorGrid) Dims() (c, r int) { return g.f.Dims() }

func (g vectorGrid) Vector(c, r int) plotter.XY {
	if g.mask != nil {
		_, h := g.f.Dims()
		if g.mask[c*h+r] {
			return plotter.XY{}
		}
	}
	v := g.f.At(c, r)
	return plotter.XY{X: v[0], Y: v[1]}
}

func (g vectorGrid) X(c int) float64 { return float64(c) }
func (g vectorGrid) Y(r int) float64 { return float64(r) }

// SaveFieldPlot renders the in-plane components of a vector field as
// an arrow plot. A non-nil mask blanks the flagged cells (hide-wires).
func SaveFieldPlot(f *field.VectorField, mask []bool, opts PlotOptions, path string) error {
	opts = opts.withDefaults()

	fp := plotter.NewField(vectorGrid{f: f, mask: mask})

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(fp)

	return p.Save(opts.Width, opts.Height, path)
}

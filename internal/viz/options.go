package viz

import "gonum.org/v1/plot/vg"

// PlotOptions carries the open-ended display knobs for image plots.
// Zero-valued fields fall back to defaults at render time; the core
// packages never see these.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.XLabel == "" {
		o.XLabel = "x"
	}
	if o.YLabel == "" {
		o.YLabel = "y"
	}
	if o.Width == 0 {
		o.Width = 8 * vg.Inch
	}
	if o.Height == 0 {
		o.Height = 8 * vg.Inch
	}
	return o
}

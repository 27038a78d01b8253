// Package viz renders computed fields for humans.
//
// Three surfaces are provided:
//
//   - [SaveHeatMap] and [SaveFieldPlot]: PNG images via gonum/plot,
//     a diverging heat map for scalar fields and an arrow plot for
//     vector fields
//   - [CrossSection]: an ASCII graph of one grid row for quick
//     terminal inspection
//   - [LiveModel]: a Bubble Tea view that streams relaxation progress
//     while a world computes
//
// # Live View Key Bindings
//
//	q / esc - Quit
package viz

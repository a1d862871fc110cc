// Package viz renders an evaluation of the trained network against the exact
// solution. The exact curve is always solid and the prediction dashed.
// PNG, SVG and in-memory images come from gonum/plot, interactive HTML from
// plotly and CSV from gota. The loss history is charted with margaid.
package viz

import (
	"github.com/pkg/errors"
)

// Plot labels shared by every renderer.
const (
	Title          = "PINN vs Exact: Singularly Perturbed Reaction–Diffusion"
	XLabel         = "x"
	YLabel         = "u(x)"
	ExactLabel     = "Exact Solution"
	PredictedLabel = "PINN Prediction"
)

// Curves holds three aligned sequences: grid points, network predictions and
// exact values.
type Curves struct {
	X         []float64
	Predicted []float64
	Exact     []float64
}

func (c Curves) validate() error {
	if len(c.X) == 0 {
		return errors.New("no points to plot")
	}
	if len(c.Predicted) != len(c.X) || len(c.Exact) != len(c.X) {
		return errors.Errorf("misaligned curves: %d x, %d predicted, %d exact",
			len(c.X), len(c.Predicted), len(c.Exact))
	}
	return nil
}

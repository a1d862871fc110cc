package viz

import (
	"io"
	"math"

	mg "github.com/erkkah/margaid"
	"github.com/pkg/errors"
)

// Loss chart labels.
const (
	LossTitle         = "Training Loss"
	LossXLabel        = "epoch"
	LossYLabel        = "loss"
	TotalLossLabel    = "Total"
	PDELossLabel      = "PDE residual"
	BoundaryLossLabel = "Boundary"
)

// LossHistory holds the per-epoch loss components, aligned by epoch.
type LossHistory struct {
	Total    []float64
	PDE      []float64
	Boundary []float64
}

func (h LossHistory) validate() error {
	n := len(h.Total)
	if n == 0 {
		return errors.New("no losses to plot")
	}
	if len(h.PDE) != n || len(h.Boundary) != n {
		return errors.Errorf("misaligned losses: %d total, %d pde, %d boundary",
			n, len(h.PDE), len(h.Boundary))
	}
	for _, s := range [][]float64{h.Total, h.PDE, h.Boundary} {
		for i, v := range s {
			if !(v > 0) || math.IsInf(v, 1) {
				return errors.Errorf("epoch %d: loss %g cannot be drawn on a log scale", i, v)
			}
		}
	}
	return nil
}

// WriteLossSVG renders the loss history on a logarithmic scale as a
// standalone SVG of the given pixel size.
func WriteLossSVG(h LossHistory, w io.Writer, width, height int) error {
	if err := h.validate(); err != nil {
		return err
	}

	total := mg.NewSeries(mg.Titled(TotalLossLabel))
	pde := mg.NewSeries(mg.Titled(PDELossLabel))
	boundary := mg.NewSeries(mg.Titled(BoundaryLossLabel))
	for i := range h.Total {
		epoch := float64(i)
		total.Add(mg.MakeValue(epoch, h.Total[i]))
		pde.Add(mg.MakeValue(epoch, h.PDE[i]))
		boundary.Add(mg.MakeValue(epoch, h.Boundary[i]))
	}

	diagram := mg.New(width, height,
		mg.WithAutorange(mg.XAxis, total),
		mg.WithAutorange(mg.YAxis, total, pde, boundary),
		mg.WithProjection(mg.YAxis, mg.Log),
		mg.WithInset(70),
		mg.WithPadding(2),
		mg.WithColorScheme(90),
		mg.WithBackgroundColor("#f8f8f8"),
	)
	diagram.Line(total, mg.UsingAxes(mg.XAxis, mg.YAxis), mg.UsingStrokeWidth(2))
	diagram.Line(pde, mg.UsingAxes(mg.XAxis, mg.YAxis), mg.UsingStrokeWidth(1))
	diagram.Line(boundary, mg.UsingAxes(mg.XAxis, mg.YAxis), mg.UsingStrokeWidth(1))
	diagram.Axis(total, mg.XAxis, diagram.ValueTicker('f', 0, 10), false, LossXLabel)
	diagram.Axis(total, mg.YAxis, diagram.ValueTicker('e', 0, 10), true, LossYLabel)
	diagram.Frame()
	diagram.Title(LossTitle)
	diagram.Legend(mg.BottomLeft)

	if err := diagram.Render(w); err != nil {
		return errors.Wrap(err, "rendering loss svg")
	}
	return nil
}

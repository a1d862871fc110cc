package viz

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default figure size, 8 x 5 inches.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

var (
	exactColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	predictedColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// NewPlot builds the comparison plot: exact solid, prediction dashed, grid and legend.
func NewPlot(c Curves) (*plot.Plot, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid())

	exact, err := plotter.NewLine(xys(c.X, c.Exact))
	if err != nil {
		return nil, errors.Wrap(err, "exact curve")
	}
	exact.LineStyle.Width = vg.Points(2)
	exact.LineStyle.Color = exactColor

	predicted, err := plotter.NewLine(xys(c.X, c.Predicted))
	if err != nil {
		return nil, errors.Wrap(err, "predicted curve")
	}
	predicted.LineStyle.Width = vg.Points(2)
	predicted.LineStyle.Color = predictedColor
	predicted.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	p.Add(exact, predicted)
	p.Legend.Add(ExactLabel, exact)
	p.Legend.Add(PredictedLabel, predicted)
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// SavePNG writes the plot to path. The format follows the file extension.
func SavePNG(c Curves, path string) error {
	p, err := NewPlot(c)
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "saving plot to %q", path)
	}
	return nil
}

// WritePNG encodes the plot as PNG into w.
func WritePNG(c Curves, w io.Writer) error {
	canvas, err := render(c)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(w); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

// Image renders the plot into an in-memory image.
func Image(c Curves) (image.Image, error) {
	canvas, err := render(c)
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

func render(c Curves) (*vgimg.Canvas, error) {
	p, err := NewPlot(c)
	if err != nil {
		return nil, err
	}
	canvas := vgimg.New(Width, Height)
	p.Draw(draw.New(canvas))
	return canvas, nil
}

package viz

import (
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// WriteSVG renders the comparison plot of NewPlot as a standalone SVG.
func WriteSVG(c Curves, w io.Writer) error {
	p, err := NewPlot(c)
	if err != nil {
		return err
	}
	canvas := vgsvg.New(Width, Height)
	p.Draw(draw.New(canvas))
	if _, err := canvas.WriteTo(w); err != nil {
		return errors.Wrap(err, "rendering svg")
	}
	return nil
}

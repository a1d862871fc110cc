package viz

import (
	"encoding/json"
	"html/template"
	"io"

	grob "github.com/MetalBlueberry/go-plotly/generated/v2.34.0/graph_objects"
	ptypes "github.com/MetalBlueberry/go-plotly/pkg/types"
	"github.com/pkg/errors"
)

// PlotlyCDN is the plotly.js bundle matching the generated graph objects.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.34.0.min.js"

// PredictedDash is the plotly dash style of the prediction trace.
const PredictedDash = "dash"

var htmlPage = template.Must(template.New("plot").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.CDN}}"></script>
</head>
<body>
<div id="plot"></div>
<script>
var fig = {{.Figure}};
Plotly.newPlot("plot", fig.data, fig.layout);
</script>
</body>
</html>
`))

// Figure builds the plotly figure for the comparison.
func Figure(c Curves) (*grob.Fig, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &grob.Fig{
		Data: []ptypes.Trace{
			&grob.Scatter{
				Name: ptypes.S(ExactLabel),
				Mode: "lines",
				Line: &grob.ScatterLine{Shape: grob.ScatterLineShapeLinear},
				X:    ptypes.DataArray(c.X),
				Y:    ptypes.DataArray(c.Exact),
			},
			&grob.Scatter{
				Name: ptypes.S(PredictedLabel),
				Mode: "lines",
				Line: &grob.ScatterLine{Shape: grob.ScatterLineShapeLinear, Dash: ptypes.S(PredictedDash)},
				X:    ptypes.DataArray(c.X),
				Y:    ptypes.DataArray(c.Predicted),
			},
		},
		Layout: &grob.Layout{
			Title: &grob.LayoutTitle{Text: ptypes.S(Title)},
			Xaxis: &grob.LayoutXaxis{
				Showgrid: ptypes.B(true),
				Title:    &grob.LayoutXaxisTitle{Text: ptypes.S(XLabel)},
			},
			Yaxis: &grob.LayoutYaxis{
				Showgrid: ptypes.B(true),
				Title:    &grob.LayoutYaxisTitle{Text: ptypes.S(YLabel)},
			},
		},
	}, nil
}

// WriteHTML writes a self-contained page that draws the figure with plotly.js.
func WriteHTML(c Curves, w io.Writer) error {
	fig, err := Figure(c)
	if err != nil {
		return err
	}
	data, err := json.Marshal(fig)
	if err != nil {
		return errors.Wrap(err, "encoding figure")
	}
	err = htmlPage.Execute(w, struct {
		Title  string
		CDN    string
		Figure template.JS
	}{
		Title:  Title,
		CDN:    PlotlyCDN,
		Figure: template.JS(data), //nolint:gosec // JSON produced by json.Marshal
	})
	return errors.Wrap(err, "writing html")
}

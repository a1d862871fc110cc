// Package main trains the reaction-diffusion PINN and reports the result.
//
// Usage:
//
//	pinn [flags]
//	pinn version
//
// Hyperparameters are fixed; flags only select extra outputs. Stdout carries
// only the epoch lines. After training the comparison plot is shown in a
// window until it is closed, unless -headless is set.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/pinn/internal/backend/cpu"
	"github.com/born-ml/pinn/internal/pinn"
	"github.com/born-ml/pinn/internal/report"
	"github.com/born-ml/pinn/internal/viz"
	"github.com/born-ml/pinn/internal/viz/window"
)

const version = "v0.1.0"

var (
	flagPlot      = flag.String("plot", "", "Write the comparison plot to this PNG file.")
	flagSVG       = flag.String("svg", "", "Write the comparison plot to this SVG file.")
	flagLossSVG   = flag.String("loss-svg", "", "Write the loss history chart to this SVG file.")
	flagHTML      = flag.String("html", "", "Write an interactive plotly page to this HTML file.")
	flagCSV       = flag.String("csv", "", "Write x, predicted and exact columns to this CSV file.")
	flagReport    = flag.String("report", "", "Write a YAML run report to this file.")
	flagTapeGraph = flag.String("tape-graph", "", "Write the first training tape to this Graphviz DOT file.")
	flagWeights   = flag.String("weights", "", "Write the trained weights to this SafeTensors file.")
	flagHeadless  = flag.Bool("headless", false, "Do not display the plot window after training.")
	flagProgress  = flag.Bool("progress", false, "Show a progress bar on stderr while training.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.Arg(0) == "version" {
		fmt.Printf("pinn %s\n", version)
		return
	}

	device := cpu.New().Info()
	klog.V(1).Infof("device: %s", device)

	cfg := pinn.DefaultConfig()
	opts := []pinn.TrainerOption{pinn.WithOutput(os.Stdout)}

	var progress *report.Progress
	if *flagProgress {
		progress = report.NewProgress(cfg.Epochs, os.Stderr)
		opts = append(opts, pinn.WithEpochHook(progress.Hook()))
	}

	var tapeGraph *os.File
	if *flagTapeGraph != "" {
		tapeGraph = must.M1(os.Create(*flagTapeGraph))
		opts = append(opts, pinn.WithTapeGraph(tapeGraph))
	}

	res, err := pinn.Run(cfg, opts...)
	if err != nil {
		klog.Exitf("Training failed: %+v", err)
	}
	if progress != nil {
		must.M(progress.Finish())
	}
	if tapeGraph != nil {
		must.M(tapeGraph.Close())
		klog.Infof("Tape graph written to %q", *flagTapeGraph)
	}
	fmt.Fprint(os.Stderr, report.Summary(res))

	curves := viz.Curves{
		X:         res.Evaluation.X,
		Predicted: res.Evaluation.Predicted,
		Exact:     res.Evaluation.Exact,
	}
	if *flagPlot != "" {
		must.M(viz.SavePNG(curves, *flagPlot))
		klog.Infof("Plot written to %q", *flagPlot)
	}
	writeOutput(*flagSVG, func(w io.Writer) error { return viz.WriteSVG(curves, w) })
	writeOutput(*flagLossSVG, func(w io.Writer) error { return viz.WriteLossSVG(lossHistory(res.History), w, 1024, 400) })
	writeOutput(*flagHTML, func(w io.Writer) error { return viz.WriteHTML(curves, w) })
	writeOutput(*flagCSV, func(w io.Writer) error { return viz.WriteCSV(curves, w) })
	writeOutput(*flagWeights, func(w io.Writer) error { return pinn.SaveWeights(w, res) })
	writeOutput(*flagReport, func(w io.Writer) error { return report.WriteYAML(w, res, device) })

	if !*flagHeadless {
		must.M(window.Show(curves))
	}
}

func lossHistory(history []pinn.Losses) viz.LossHistory {
	h := viz.LossHistory{
		Total:    make([]float64, len(history)),
		PDE:      make([]float64, len(history)),
		Boundary: make([]float64, len(history)),
	}
	for i, l := range history {
		h.Total[i] = l.Total
		h.PDE[i] = l.PDE
		h.Boundary[i] = l.Boundary()
	}
	return h
}

// writeOutput creates path and fills it with write. An empty path is a no-op.
func writeOutput(path string, write func(w io.Writer) error) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		klog.Exitf("Failed to create %q: %v", path, err)
	}
	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		klog.Exitf("Failed to write %q: %+v", path, errors.WithStack(err))
	}
	klog.Infof("Wrote %q", path)
}

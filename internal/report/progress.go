// Package report presents a run: a progress bar while training, a summary
// table and a YAML record afterwards.
package report

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/born-ml/pinn/internal/pinn"
)

// ProgressbarStyle is the theme of the training progress bar.
var ProgressbarStyle = progressbar.ThemeASCII

// Progress shows training progress on a terminal.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar for epochs epochs, drawn on w.
func NewProgress(epochs int, w io.Writer) *Progress {
	return &Progress{
		bar: progressbar.NewOptions(epochs,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("training"),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("epochs"),
			progressbar.OptionSetTheme(ProgressbarStyle),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Hook returns an epoch hook that advances the bar and shows the current loss.
func (p *Progress) Hook() pinn.EpochHook {
	return func(epoch int, losses pinn.Losses) {
		p.bar.Describe(fmt.Sprintf("loss %.3e", losses.Total))
		_ = p.bar.Add(1)
	}
}

// Finish completes the bar.
func (p *Progress) Finish() error {
	return p.bar.Finish()
}

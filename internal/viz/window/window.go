// Package window shows a rendered evaluation plot in a desktop window.
package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/born-ml/pinn/internal/viz"
)

// Show renders c and displays it in a window, blocking until the window is
// closed. It must be called from the main goroutine.
func Show(c viz.Curves) error {
	img, err := viz.Image(c)
	if err != nil {
		return err
	}

	a := app.New()
	win := a.NewWindow(viz.Title)
	picture := canvas.NewImageFromImage(img)
	picture.FillMode = canvas.ImageFillContain
	picture.SetMinSize(fyne.NewSize(800, 500))
	win.SetContent(picture)
	win.ShowAndRun()
	return nil
}

package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// maxWindowSide caps the initial window size for large canvases.
const maxWindowSide = 1000

// ShowPreview opens a window presenting img scaled to fit and blocks until
// the window is closed.
func ShowPreview(title string, img image.Image) {
	application := app.NewWithID("com.piwi3910.tagcloud")
	application.Settings().SetTheme(newPreviewTheme(img.At(0, 0)))

	window := application.NewWindow(title)
	window.SetContent(previewContent(img))
	window.Resize(windowSize(img.Bounds()))
	window.CenterOnScreen()
	window.ShowAndRun()
}

func previewContent(img image.Image) fyne.CanvasObject {
	pic := canvas.NewImageFromImage(img)
	pic.FillMode = canvas.ImageFillContain
	pic.ScaleMode = canvas.ImageScaleSmooth
	return pic
}

// windowSize returns the image size shrunk so the longer side is at most
// maxWindowSide, keeping the aspect ratio.
func windowSize(b image.Rectangle) fyne.Size {
	w, h := float32(b.Dx()), float32(b.Dy())
	if w <= 0 || h <= 0 {
		return fyne.NewSize(maxWindowSide, maxWindowSide)
	}
	longest := w
	if h > longest {
		longest = h
	}
	if longest > maxWindowSide {
		f := maxWindowSide / longest
		w, h = w*f, h*f
	}
	return fyne.NewSize(w, h)
}

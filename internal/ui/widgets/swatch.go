// Package widgets holds the canvas widgets the gallery uses to show tokens.
package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// checker is drawn under swatches so translucent colors read as such.
var checker = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// NewSwatch renders a color chip with its name and description beneath.
func NewSwatch(name, description string, c color.Color) fyne.CanvasObject {
	back := canvas.NewRectangle(checker)
	back.CornerRadius = 6
	back.SetMinSize(fyne.NewSize(120, 48))

	chip := canvas.NewRectangle(c)
	chip.CornerRadius = 6
	chip.StrokeWidth = 1
	chip.StrokeColor = color.NRGBA{A: 40}
	chip.SetMinSize(fyne.NewSize(120, 48))

	title := widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	desc := widget.NewLabel(description)
	desc.Wrapping = fyne.TextWrapWord

	return container.NewVBox(container.NewStack(back, chip), title, desc)
}

// This file provides tooltip-enabled button helpers using the fyne-tooltip library.

package ui

import (
	"fyne.io/fyne/v2"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button with a tooltip that appears on hover.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// withToolTips installs the layer tooltips are drawn on. It must wrap the
// window's root content.
func withToolTips(content fyne.CanvasObject, window fyne.Window) fyne.CanvasObject {
	return fynetooltip.AddWindowToolTipLayer(content, window.Canvas())
}

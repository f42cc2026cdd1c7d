package dialogs

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowWireColorPicker opens the colour picker preset to current and calls
// onPick with the chosen colour. Cancelling leaves the colour unchanged.
func ShowWireColorPicker(window fyne.Window, current color.Color, onPick func(color.Color)) {
	picker := dialog.NewColorPicker("Wire Color", "Pick a colour for new wires", func(c color.Color) {
		if c != nil {
			onPick(c)
		}
	}, window)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

// Package panels provides UI panels for the application.
package panels

import (
	"fmt"
	"image/color"
	"log"

	"circuit-sketch/internal/app"
	"circuit-sketch/internal/component"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/ui/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Sidebar holds the component buttons and the editing tools.
type Sidebar struct {
	editor    *app.Editor
	window    fyne.Window
	container *fyne.Container

	componentBtns map[component.Kind]*widget.Button
	wireBtn       *widget.Button
	textBtn       *widget.Button
	colorBtn      *widget.Button
	swatch        *canvas.Rectangle
	zoomLabel     *widget.Label
}

// NewSidebar creates the sidebar for editor.
func NewSidebar(editor *app.Editor) *Sidebar {
	sb := &Sidebar{
		editor:        editor,
		componentBtns: make(map[component.Kind]*widget.Button),
	}

	components := container.NewVBox(widget.NewLabelWithStyle("Components", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, kind := range component.Kinds() {
		kind := kind
		btn := widget.NewButton(kind.Label(), func() { sb.addComponent(kind) })
		sb.componentBtns[kind] = btn
		components.Add(btn)
	}

	sb.swatch = canvas.NewRectangle(editor.WireColor())
	sb.swatch.SetMinSize(fyne.NewSize(24, 24))
	sb.swatch.CornerRadius = 4
	sb.colorBtn = widget.NewButton("Pick Wire Color", sb.pickColor)

	sb.wireBtn = widget.NewButton("Wire Mode", func() { editor.SetMode(sketch.ModeWire) })
	sb.textBtn = widget.NewButton("Text Mode", editor.ToggleTextMode)

	sb.zoomLabel = widget.NewLabel("")
	zoomOut := widget.NewButton("-", editor.ZoomOut)
	zoomIn := widget.NewButton("+", editor.ZoomIn)

	tools := container.NewVBox(
		widget.NewLabelWithStyle("Tools", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sb.wireBtn,
		sb.textBtn,
		container.NewBorder(nil, nil, sb.swatch, nil, sb.colorBtn),
		container.NewBorder(nil, nil, zoomOut, zoomIn, sb.zoomLabel),
		widget.NewSeparator(),
		widget.NewButton("Export PNG", editor.RequestExport),
		widget.NewButton("Reset Circuit", editor.Reset),
	)

	sb.container = container.NewVBox(components, widget.NewSeparator(), tools)

	editor.On(app.EventModeChanged, func(data interface{}) {
		if m, ok := data.(sketch.Mode); ok {
			sb.showMode(m)
		}
	})
	editor.On(app.EventWireColorChanged, func(data interface{}) {
		if c, ok := data.(color.NRGBA); ok {
			sb.swatch.FillColor = c
			sb.swatch.Refresh()
		}
	})
	editor.On(app.EventZoomChanged, func(data interface{}) {
		if z, ok := data.(float64); ok {
			sb.showZoom(z)
		}
	})

	sb.showMode(editor.Mode())
	sb.showZoom(editor.Zoom())
	return sb
}

// Container returns the panel container.
func (sb *Sidebar) Container() fyne.CanvasObject {
	return sb.container
}

// SetWindow sets the parent window for dialogs.
func (sb *Sidebar) SetWindow(w fyne.Window) {
	sb.window = w
}

func (sb *Sidebar) addComponent(kind component.Kind) {
	if _, err := sb.editor.AddComponent(kind); err != nil {
		log.Printf("Add %s: %v", kind, err)
		if sb.window != nil {
			dialog.ShowError(err, sb.window)
		}
	}
}

func (sb *Sidebar) pickColor() {
	if sb.window == nil {
		return
	}
	dialogs.ShowWireColorPicker(sb.window, sb.editor.WireColor(), sb.editor.SetWireColor)
}

// showMode highlights the button of the active mode.
func (sb *Sidebar) showMode(m sketch.Mode) {
	sb.wireBtn.Importance = widget.MediumImportance
	sb.textBtn.Importance = widget.MediumImportance
	switch m {
	case sketch.ModeWire:
		sb.wireBtn.Importance = widget.HighImportance
	case sketch.ModeText:
		sb.textBtn.Importance = widget.HighImportance
	}
	sb.wireBtn.Refresh()
	sb.textBtn.Refresh()
}

func (sb *Sidebar) showZoom(z float64) {
	sb.zoomLabel.SetText(fmt.Sprintf("%.0f%%", z*100))
}

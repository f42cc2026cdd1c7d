// Package app provides the editor controller, its commands and events, and
// application lifecycle helpers.
package app

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"circuit-sketch/internal/component"
	"circuit-sketch/internal/render"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/pkg/geometry"
)

const (
	zoomInFactor  = 1.2
	zoomOutFactor = 0.8
	minZoom       = 0.05
	maxZoom       = 20.0
)

// EventType identifies different editor events.
type EventType int

const (
	EventSceneChanged     EventType = iota // items, selection or marker changed
	EventModeChanged                       // data: sketch.Mode
	EventWireColorChanged                  // data: color.NRGBA
	EventZoomChanged                       // data: float64
	EventExported                          // data: string path
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// Editor is the top-level controller. It owns the scene and the settings
// the scene reads, and exposes every user command.
type Editor struct {
	settings sketch.Settings
	scene    *sketch.Scene
	icons    *component.Library
	renderer *render.Renderer

	zoom     float64
	lastMode sketch.Mode

	requestExport func()

	listeners map[EventType][]EventListener
}

// NewEditor creates an editor with an empty scene in select mode.
func NewEditor(icons *component.Library) (*Editor, error) {
	r, err := render.New(icons)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	e := &Editor{
		settings:  sketch.DefaultSettings(),
		icons:     icons,
		renderer:  r,
		zoom:      1.0,
		listeners: make(map[EventType][]EventListener),
	}
	e.lastMode = e.settings.Mode
	e.scene = sketch.NewScene(&e.settings)
	e.scene.SetTextMeasure(r.MeasureLabel)
	e.scene.OnChange(e.sceneChanged)
	return e, nil
}

// On registers an event listener for the specified event type.
func (e *Editor) On(event EventType, listener EventListener) {
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (e *Editor) Emit(event EventType, data interface{}) {
	for _, listener := range e.listeners[event] {
		listener(data)
	}
}

// sceneChanged relays scene notifications, including the automatic return
// to select mode after a label is placed.
func (e *Editor) sceneChanged() {
	e.Emit(EventSceneChanged, nil)
	if e.settings.Mode != e.lastMode {
		e.modeChanged()
	}
}

func (e *Editor) modeChanged() {
	log.Printf("Mode: %s -> %s", e.lastMode, e.settings.Mode)
	e.lastMode = e.settings.Mode
	e.Emit(EventModeChanged, e.settings.Mode)
}

// Scene returns the scene.
func (e *Editor) Scene() *sketch.Scene {
	return e.scene
}

// Renderer returns the renderer shared by the canvas and export.
func (e *Editor) Renderer() *render.Renderer {
	return e.renderer
}

// SetTextPrompt installs the prompt used to enter label text.
func (e *Editor) SetTextPrompt(p sketch.TextPrompt) {
	e.scene.SetTextPrompt(p)
}

// Mode returns the current interaction mode.
func (e *Editor) Mode() sketch.Mode {
	return e.settings.Mode
}

// WireColor returns the color used for new wires.
func (e *Editor) WireColor() color.NRGBA {
	return e.settings.WireColor
}

// SelectedArea returns the committed export area, if any.
func (e *Editor) SelectedArea() (geometry.Rect, bool) {
	if e.settings.SelectedArea == nil {
		return geometry.Rect{}, false
	}
	return *e.settings.SelectedArea, true
}

// AddComponent places a new component at the default position.
func (e *Editor) AddComponent(kind component.Kind) (*sketch.Component, error) {
	return e.AddComponentAt(kind, sketch.DefaultPosition)
}

// AddComponentAt places a new component with its top-left at pos. Every
// bitmap the component can show must load, otherwise nothing is added.
func (e *Editor) AddComponentAt(kind component.Kind, pos geometry.Point2D) (*sketch.Component, error) {
	c, err := sketch.NewComponent(kind, pos, geometry.Size{})
	if err != nil {
		return nil, err
	}

	icon, err := e.icons.Check(kind)
	if err != nil {
		return nil, fmt.Errorf("add %s: %w", kind, err)
	}
	b := icon.Bounds()
	c.Size = geometry.NewSize(float64(b.Dx()), float64(b.Dy()))

	e.scene.Add(c)
	log.Printf("Added %s at (%.0f, %.0f)", kind, pos.X, pos.Y)
	return c, nil
}

// SetMode switches the interaction mode. Leaving wire mode drops the pending
// wire start point.
func (e *Editor) SetMode(m sketch.Mode) {
	if e.settings.Mode == m {
		return
	}
	if e.settings.Mode == sketch.ModeWire {
		e.scene.ResetWire()
	}
	e.settings.Mode = m
	e.modeChanged()
}

// ToggleWireMode enters wire mode, or returns to select mode if already in it.
func (e *Editor) ToggleWireMode() {
	if e.settings.Mode == sketch.ModeWire {
		e.SetMode(sketch.ModeSelect)
		log.Println("Wire drawing mode disabled")
		return
	}
	e.SetMode(sketch.ModeWire)
	log.Println("Wire drawing mode enabled")
}

// ToggleTextMode enters text mode, or returns to select mode if already in it.
func (e *Editor) ToggleTextMode() {
	if e.settings.Mode == sketch.ModeText {
		e.SetMode(sketch.ModeSelect)
		log.Println("Text insertion mode disabled")
		return
	}
	e.SetMode(sketch.ModeText)
	log.Println("Text insertion mode enabled")
}

// SetWireColor sets the color of wires drawn from now on.
func (e *Editor) SetWireColor(c color.Color) {
	e.settings.WireColor = colorutil.ToNRGBA(c)
	e.Emit(EventWireColorChanged, e.settings.WireColor)
}

// Zoom returns the view scale.
func (e *Editor) Zoom() float64 {
	return e.zoom
}

// SetZoom sets the view scale, clamped to a usable range.
func (e *Editor) SetZoom(zoom float64) {
	zoom = math.Max(minZoom, math.Min(maxZoom, zoom))
	if zoom == e.zoom {
		return
	}
	e.zoom = zoom
	e.Emit(EventZoomChanged, zoom)
}

// ZoomIn scales the view up by 1.2.
func (e *Editor) ZoomIn() {
	e.SetZoom(e.zoom * zoomInFactor)
}

// ZoomOut scales the view down by 0.8.
func (e *Editor) ZoomOut() {
	e.SetZoom(e.zoom * zoomOutFactor)
}

// Reset removes every item.
func (e *Editor) Reset() {
	n := e.scene.Len()
	e.scene.Clear()
	log.Printf("Reset: removed %d items", n)
}

// DeleteSelected removes every selected item and returns how many went.
func (e *Editor) DeleteSelected() int {
	selected := e.scene.Selected()
	for _, it := range selected {
		e.scene.Remove(it)
	}
	return len(selected)
}

// RotateSelected rotates every selected component by 90 degrees.
func (e *Editor) RotateSelected() int {
	return e.eachSelectedComponent(func(c *sketch.Component) bool {
		c.Rotate()
		return true
	})
}

// MirrorSelected toggles the vertical flip of every selected component.
func (e *Editor) MirrorSelected() int {
	return e.eachSelectedComponent(func(c *sketch.Component) bool {
		c.MirrorVertically()
		return true
	})
}

// ToggleTransistorImage swaps the bitmap of every selected transistor.
func (e *Editor) ToggleTransistorImage() int {
	return e.eachSelectedComponent(func(c *sketch.Component) bool {
		if c.Type != component.Transistor {
			return false
		}
		c.ToggleImage()
		return true
	})
}

// eachSelectedComponent applies fn to selected components, skipping wires
// and labels, and returns how many fn reported as changed.
func (e *Editor) eachSelectedComponent(fn func(c *sketch.Component) bool) int {
	var comps []*sketch.Component
	for _, it := range e.scene.Selected() {
		if c, ok := it.AsComponent(); ok {
			comps = append(comps, c)
		}
	}
	if len(comps) == 0 {
		return 0
	}

	n := 0
	e.scene.Edit(func() {
		for _, c := range comps {
			if fn(c) {
				n++
			}
		}
	})
	return n
}

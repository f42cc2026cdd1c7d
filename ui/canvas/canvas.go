// Package canvas provides the scene canvas widget with zoom and pointer input.
package canvas

import (
	"image"
	"sync"

	"circuit-sketch/internal/render"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SceneCanvas displays a scene and feeds pointer input back into it.
type SceneCanvas struct {
	widget.BaseWidget

	scene    *sketch.Scene
	renderer *render.Renderer

	// Display state
	raster *fynecanvas.Raster
	mu     sync.RWMutex // guards zoom and size, read by the paint goroutine
	zoom   float64

	// Container
	scroll  *zoomScroll
	content *sceneContent
	size    fyne.Size // content size at the current zoom

	// Callbacks
	onZoomIn  func()
	onZoomOut func()
}

// zoomScroll is a widget that wraps a scroll container but intercepts wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *SceneCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *SceneCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	zs.canvas.wheel(ev)
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// sceneContent wraps the raster to receive pointer events.
type sceneContent struct {
	widget.BaseWidget
	canvas *SceneCanvas
	raster *fynecanvas.Raster

	pressed bool
	last    fyne.Position
}

var (
	_ desktop.Mouseable = (*sceneContent)(nil)
	_ desktop.Hoverable = (*sceneContent)(nil)
	_ fyne.Draggable    = (*sceneContent)(nil)
	_ fyne.Scrollable   = (*sceneContent)(nil)
)

func newSceneContent(sc *SceneCanvas, raster *fynecanvas.Raster) *sceneContent {
	c := &sceneContent{canvas: sc, raster: raster}
	c.ExtendBaseWidget(c)
	return c
}

func (c *sceneContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *sceneContent) MinSize() fyne.Size {
	return c.raster.MinSize()
}

// MouseDown starts a gesture on the primary button.
func (c *sceneContent) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.pressed = true
	c.last = ev.Position
	additive := ev.Modifier&(fyne.KeyModifierShift|fyne.KeyModifierControl) != 0
	c.canvas.scene.Press(c.canvas.toScene(ev.Position), additive)
	c.canvas.Refresh()
}

// MouseUp ends a gesture.
func (c *sceneContent) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.release(ev.Position)
}

// Dragged follows the pointer with the button held.
func (c *sceneContent) Dragged(ev *fyne.DragEvent) {
	c.move(ev.Position)
}

// DragEnd may arrive with or without a matching MouseUp.
func (c *sceneContent) DragEnd() {
	c.release(c.last)
}

func (c *sceneContent) MouseIn(*desktop.MouseEvent) {}

// MouseMoved follows the pointer without a button, which keeps wire chains
// growing between clicks.
func (c *sceneContent) MouseMoved(ev *desktop.MouseEvent) {
	c.move(ev.Position)
}

func (c *sceneContent) MouseOut() {}

func (c *sceneContent) Scrolled(ev *fyne.ScrollEvent) {
	c.canvas.wheel(ev)
}

func (c *sceneContent) move(pos fyne.Position) {
	// Drag and hover can both report the same position
	if pos == c.last {
		return
	}
	c.last = pos
	c.canvas.scene.Move(c.canvas.toScene(pos))
	c.canvas.Refresh()
}

func (c *sceneContent) release(pos fyne.Position) {
	if !c.pressed {
		return
	}
	c.pressed = false
	c.canvas.scene.Release(c.canvas.toScene(pos))
	c.canvas.Refresh()
}

// NewSceneCanvas creates a canvas for scene drawn by renderer.
func NewSceneCanvas(scene *sketch.Scene, renderer *render.Renderer) *SceneCanvas {
	sc := &SceneCanvas{
		scene:    scene,
		renderer: renderer,
		zoom:     1.0,
	}

	sc.raster = fynecanvas.NewRaster(sc.draw)
	sc.raster.ScaleMode = fynecanvas.ImageScalePixels

	sc.content = newSceneContent(sc, sc.raster)
	sc.scroll = newZoomScroll(sc.content, sc)
	sc.updateContentSize()

	sc.ExtendBaseWidget(sc)
	return sc
}

// Container returns the canvas container for embedding in layouts.
func (sc *SceneCanvas) Container() fyne.CanvasObject {
	return sc.scroll
}

// OnWheel sets the callbacks for mouse-wheel zoom requests.
func (sc *SceneCanvas) OnWheel(zoomIn, zoomOut func()) {
	sc.onZoomIn = zoomIn
	sc.onZoomOut = zoomOut
}

// SetZoom sets the display scale.
func (sc *SceneCanvas) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	sc.mu.Lock()
	sc.zoom = zoom
	sc.mu.Unlock()
	sc.updateContentSize()
}

// Zoom returns the display scale.
func (sc *SceneCanvas) Zoom() float64 {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.zoom
}

// Refresh redraws the scene.
func (sc *SceneCanvas) Refresh() {
	sc.raster.Refresh()
}

func (sc *SceneCanvas) wheel(ev *fyne.ScrollEvent) {
	switch {
	case ev.Scrolled.DY > 0 && sc.onZoomIn != nil:
		sc.onZoomIn()
	case ev.Scrolled.DY < 0 && sc.onZoomOut != nil:
		sc.onZoomOut()
	}
}

// toScene converts a content position to scene coordinates.
func (sc *SceneCanvas) toScene(pos fyne.Position) geometry.Point2D {
	zoom := sc.Zoom()
	return geometry.NewPoint2D(float64(pos.X)/zoom, float64(pos.Y)/zoom)
}

// updateContentSize resizes the content to the scene bounds at the current zoom.
func (sc *SceneCanvas) updateContentSize() {
	b := sc.scene.Bounds()
	sc.mu.Lock()
	sc.size = fyne.NewSize(float32(b.Width*sc.zoom), float32(b.Height*sc.zoom))
	size := sc.size
	sc.mu.Unlock()

	sc.raster.SetMinSize(size)
	sc.raster.Resize(size)
	sc.content.Resize(size)
	sc.content.Refresh()
	sc.scroll.Refresh()
}

// draw is the raster drawing function. w and h are device pixels, which
// differ from the content size on scaled displays.
func (sc *SceneCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	sc.mu.RLock()
	zoom, width := sc.zoom, sc.size.Width
	sc.mu.RUnlock()
	if w <= 0 || width <= 0 {
		return output
	}

	// Runs on the paint goroutine, so items are only read inside View
	sc.scene.View(func(items []sketch.Item, marker *geometry.Rect) {
		sc.renderer.Draw(output, items, render.Options{
			Zoom:          zoom * float64(w) / float64(width),
			Background:    colorutil.Canvas,
			ShowSelection: true,
			Marker:        marker,
		})
	})
	return output
}

// CreateRenderer implements fyne.Widget.
func (sc *SceneCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sc.scroll)
}

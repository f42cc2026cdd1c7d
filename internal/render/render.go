// Package render rasterizes sketch items for the canvas and for PNG export.
package render

import (
	"image"
	"image/color"
	"log"
	"math"
	"sync"

	"circuit-sketch/internal/component"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/pkg/geometry"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
)

const (
	// LabelFontSize is the label point size at zoom 1.
	LabelFontSize = 14.0

	selectionPad = 3
)

// LabelColor is the fixed label text color.
var LabelColor = colorutil.White

// Options controls a single Draw call.
type Options struct {
	Zoom   float64          // display scale, 1 = one pixel per scene unit
	Origin geometry.Point2D // scene point drawn at the destination's top-left

	// Background fills the destination first. Nil leaves it untouched,
	// which keeps a fresh image transparent.
	Background color.Color

	ShowSelection bool           // outline selected items
	Marker        *geometry.Rect // live area-selection rectangle, scene coordinates
}

// Renderer draws items using icons from a component library.
// It is safe for concurrent use.
type Renderer struct {
	icons *component.Library
	font  *opentype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// New creates a renderer. Labels use the embedded Go Regular font.
func New(icons *component.Library) (*Renderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		icons: icons,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// MeasureLabel returns the extent of text in scene units.
func (r *Renderer) MeasureLabel(text string) geometry.Size {
	r.mu.Lock()
	defer r.mu.Unlock()

	face, err := r.face(LabelFontSize)
	if err != nil {
		return geometry.Size{}
	}
	m := face.Metrics()
	return geometry.NewSize(
		float64(font.MeasureString(face, text).Ceil()),
		float64((m.Ascent + m.Descent).Ceil()),
	)
}

// Draw paints items onto dst in z-order.
func (r *Renderer) Draw(dst *image.RGBA, items []sketch.Item, opts Options) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opts.Zoom <= 0 {
		opts.Zoom = 1
	}
	view := geometry.Scale(opts.Zoom, opts.Zoom).
		Compose(geometry.Translation(-opts.Origin.X, -opts.Origin.Y))

	if opts.Background != nil {
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	}

	for _, it := range items {
		switch it.Kind() {
		case sketch.KindComponent:
			c, _ := it.AsComponent()
			r.drawComponent(dst, c, view)
		case sketch.KindWire:
			w, _ := it.AsWire()
			r.drawWire(dst, w, view, opts.Zoom)
		case sketch.KindLabel:
			l, _ := it.AsLabel()
			r.drawLabel(dst, l, view, opts.Zoom)
		}

		if opts.ShowSelection && it.Selected() {
			b := viewRect(view, it.Bounds()).Inset(selectionPad)
			drawDashedRect(dst, b, colorutil.Gold, 1)
		}
	}

	if opts.Marker != nil {
		drawDashedRect(dst, viewRect(view, *opts.Marker), colorutil.Gray, 2)
	}
}

// Rasterize renders items clipped to area into a new transparent image of
// the area's size.
func (r *Renderer) Rasterize(items []sketch.Item, area geometry.Rect) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(area.Width), int(area.Height)))
	r.Draw(img, items, Options{Zoom: 1, Origin: area.TopLeft()})
	return img
}

func (r *Renderer) drawComponent(dst *image.RGBA, c *sketch.Component, view geometry.AffineTransform) {
	icon, err := r.icons.Icon(c.Type, c.AlternateImage())
	if err != nil {
		log.Printf("render: %v", err)
		drawDashedRect(dst, viewRect(view, c.Bounds()), colorutil.Magenta, 2)
		return
	}

	// Scale the bitmap onto the component's nominal size before placing it.
	ib := icon.Bounds()
	fit := geometry.Scale(c.Size.Width/float64(ib.Dx()), c.Size.Height/float64(ib.Dy())).
		Compose(geometry.Translation(-float64(ib.Min.X), -float64(ib.Min.Y)))
	t := view.Compose(c.Transform()).Compose(fit)

	s2d := f64.Aff3{t.A, t.B, t.TX, t.C, t.D, t.TY}
	xdraw.BiLinear.Transform(dst, s2d, icon, ib, xdraw.Over, nil)
}

func (r *Renderer) drawWire(dst *image.RGBA, w *sketch.Wire, view geometry.AffineTransform, zoom float64) {
	a := view.Apply(w.Start())
	b := view.Apply(w.End())
	thickness := int(math.Round(sketch.WireWidth * zoom))
	if thickness < 1 {
		thickness = 1
	}
	drawLine(dst, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), w.Color(), thickness)
}

func (r *Renderer) drawLabel(dst *image.RGBA, l *sketch.Label, view geometry.AffineTransform, zoom float64) {
	face, err := r.face(LabelFontSize * zoom)
	if err != nil {
		log.Printf("render: label face: %v", err)
		return
	}
	p := view.Apply(l.Pos)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(LabelColor),
		Face: face,
		Dot:  toFixed(p.X, p.Y).Add(fixedPoint(0, face.Metrics().Ascent)),
	}
	d.DrawString(l.Text)
}

// face returns a cached face for size; callers hold r.mu.
func (r *Renderer) face(size float64) (font.Face, error) {
	size = math.Round(size*2) / 2
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	r.faces[size] = f
	return f, nil
}

// viewRect maps a scene rectangle through an axis-aligned view transform.
func viewRect(view geometry.AffineTransform, r geometry.Rect) geometry.Rect {
	return geometry.RectFromPoints(view.Apply(r.TopLeft()), view.Apply(r.BottomRight()))
}

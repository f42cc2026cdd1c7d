package sketch

import (
	"image/color"

	"circuit-sketch/pkg/geometry"
)

const (
	// WireWidth is the stroke width of a wire in scene units.
	WireWidth = 2.0

	wireHitTolerance = 4.0
)

// Wire is a straight segment between two scene points. Its geometry and
// color never change after creation.
type Wire struct {
	itemBase

	start geometry.Point2D
	end   geometry.Point2D
	color color.NRGBA
}

var _ Item = (*Wire)(nil)

// NewWire creates a wire segment.
func NewWire(start, end geometry.Point2D, c color.NRGBA) *Wire {
	return &Wire{start: start, end: end, color: c}
}

func (w *Wire) Kind() ItemKind        { return KindWire }
func (w *Wire) AsWire() (*Wire, bool) { return w, true }

// Start returns the first endpoint.
func (w *Wire) Start() geometry.Point2D { return w.start }

// End returns the second endpoint.
func (w *Wire) End() geometry.Point2D { return w.end }

// Color returns the stroke color.
func (w *Wire) Color() color.NRGBA { return w.color }

// Bounds returns the segment's bounding box widened by the stroke.
func (w *Wire) Bounds() geometry.Rect {
	return geometry.RectFromPoints(w.start, w.end).Inset(WireWidth / 2)
}

// Hit reports whether p is within a few units of the segment.
func (w *Wire) Hit(p geometry.Point2D) bool {
	return geometry.SegmentDistance(p, w.start, w.end) <= wireHitTolerance
}

// Package sketch holds the drawable items of a circuit sketch and the scene
// that interprets pointer input against the current interaction mode.
package sketch

import "circuit-sketch/pkg/geometry"

// ItemKind distinguishes the three drawable item variants.
type ItemKind int

const (
	KindComponent ItemKind = iota
	KindWire
	KindLabel
)

func (k ItemKind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindWire:
		return "wire"
	case KindLabel:
		return "label"
	default:
		return "unknown"
	}
}

// Item is a drawable, selectable entity owned by a Scene. The set of
// implementations is closed: Component, Wire and Label.
type Item interface {
	Kind() ItemKind

	// Bounds returns the axis-aligned bounding box in scene coordinates.
	Bounds() geometry.Rect

	// Hit reports whether a scene point falls on the item.
	Hit(p geometry.Point2D) bool

	Selected() bool

	AsComponent() (*Component, bool)
	AsWire() (*Wire, bool)
	AsLabel() (*Label, bool)

	setSelected(bool)
}

// Movable is implemented by items that follow a pointer drag.
type Movable interface {
	MoveBy(delta geometry.Point2D)
}

// itemBase carries selection state and the negative capability answers.
type itemBase struct {
	selected bool
}

func (b *itemBase) Selected() bool                  { return b.selected }
func (b *itemBase) setSelected(v bool)              { b.selected = v }
func (b *itemBase) AsComponent() (*Component, bool) { return nil, false }
func (b *itemBase) AsWire() (*Wire, bool)           { return nil, false }
func (b *itemBase) AsLabel() (*Label, bool)         { return nil, false }

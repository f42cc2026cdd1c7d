package sketch

import (
	"errors"
	"fmt"

	"circuit-sketch/internal/component"
	"circuit-sketch/pkg/geometry"
)

// ErrInvalidComponent is returned when a component is created with a kind
// outside the catalogue.
var ErrInvalidComponent = errors.New("invalid component")

// DefaultPosition is where new components are placed when no position is given.
var DefaultPosition = geometry.NewPoint2D(200, 200)

// Component is a placed circuit part icon.
type Component struct {
	itemBase

	Type component.Kind
	Pos  geometry.Point2D // top-left of the unrotated icon
	Size geometry.Size    // icon size in scene units

	rotation  float64 // degrees, unbounded
	scaleY    float64 // +1 normal, -1 mirrored
	alternate bool    // transistor only
}

var (
	_ Item    = (*Component)(nil)
	_ Movable = (*Component)(nil)
)

// NewComponent creates a component of the given kind.
func NewComponent(kind component.Kind, pos geometry.Point2D, size geometry.Size) (*Component, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidComponent, component.ErrUnknownKind, string(kind))
	}
	return &Component{
		Type:   kind,
		Pos:    pos,
		Size:   size,
		scaleY: 1,
	}, nil
}

func (c *Component) Kind() ItemKind                  { return KindComponent }
func (c *Component) AsComponent() (*Component, bool) { return c, true }

// Rotation returns the accumulated rotation in degrees.
func (c *Component) Rotation() float64 {
	return c.rotation
}

// Rotate turns the component a further 90 degrees clockwise.
func (c *Component) Rotate() {
	c.rotation += 90
}

// ScaleY returns the vertical scale factor of the item transform.
func (c *Component) ScaleY() float64 {
	return c.scaleY
}

// Mirrored reports whether the component is flipped vertically.
func (c *Component) Mirrored() bool {
	return c.scaleY < 0
}

// MirrorVertically toggles the vertical flip.
func (c *Component) MirrorVertically() {
	if c.scaleY > 0 {
		c.scaleY = -1
	} else {
		c.scaleY = 1
	}
}

// AlternateImage reports whether the alternate bitmap is showing.
func (c *Component) AlternateImage() bool {
	return c.alternate
}

// ToggleImage swaps between the two transistor bitmaps. Other kinds have a
// single bitmap and are left unchanged.
func (c *Component) ToggleImage() {
	if !c.Type.HasAlternate() {
		return
	}
	c.alternate = !c.alternate
}

// MoveBy translates the component.
func (c *Component) MoveBy(delta geometry.Point2D) {
	c.Pos = c.Pos.Add(delta)
}

// Transform maps icon pixel coordinates to scene coordinates. Rotation and
// mirroring pivot on the icon centre.
func (c *Component) Transform() geometry.AffineTransform {
	cx, cy := c.Size.Width/2, c.Size.Height/2
	return geometry.Translation(c.Pos.X+cx, c.Pos.Y+cy).
		Compose(geometry.RotationDegrees(c.rotation)).
		Compose(geometry.Scale(1, c.scaleY)).
		Compose(geometry.Translation(-cx, -cy))
}

// Bounds returns the scene bounding box of the transformed icon.
func (c *Component) Bounds() geometry.Rect {
	local := geometry.NewRect(0, 0, c.Size.Width, c.Size.Height)
	t := c.Transform()
	corners := local.Corners()
	for i, p := range corners {
		corners[i] = t.Apply(p)
	}
	return geometry.BoundingBox(corners)
}

// Hit reports whether p lies on the icon rectangle.
func (c *Component) Hit(p geometry.Point2D) bool {
	inv, ok := c.Transform().Inverse()
	if !ok {
		return false
	}
	local := inv.Apply(p)
	return geometry.NewRect(0, 0, c.Size.Width, c.Size.Height).Contains(local)
}

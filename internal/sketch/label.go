package sketch

import (
	"errors"

	"circuit-sketch/pkg/geometry"
)

// ErrEmptyLabel is returned when a label is created without text.
var ErrEmptyLabel = errors.New("label text is empty")

// Label is a free-standing text annotation. Font and color are fixed by the
// renderer; Size is the measured extent of Text.
type Label struct {
	itemBase

	Text string
	Pos  geometry.Point2D
	Size geometry.Size
}

var (
	_ Item    = (*Label)(nil)
	_ Movable = (*Label)(nil)
)

// NewLabel creates a text label at pos.
func NewLabel(text string, pos geometry.Point2D, size geometry.Size) (*Label, error) {
	if text == "" {
		return nil, ErrEmptyLabel
	}
	return &Label{Text: text, Pos: pos, Size: size}, nil
}

func (l *Label) Kind() ItemKind          { return KindLabel }
func (l *Label) AsLabel() (*Label, bool) { return l, true }

func (l *Label) Bounds() geometry.Rect {
	return geometry.NewRect(l.Pos.X, l.Pos.Y, l.Size.Width, l.Size.Height)
}

func (l *Label) Hit(p geometry.Point2D) bool {
	return l.Bounds().Contains(p)
}

// MoveBy translates the label.
func (l *Label) MoveBy(delta geometry.Point2D) {
	l.Pos = l.Pos.Add(delta)
}

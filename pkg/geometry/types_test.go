package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectFromPointsNormalizes(t *testing.T) {
	want := Rect{X: 10, Y: 20, Width: 90, Height: 40}

	assert.Equal(t, want, RectFromPoints(NewPoint2D(10, 20), NewPoint2D(100, 60)))
	assert.Equal(t, want, RectFromPoints(NewPoint2D(100, 60), NewPoint2D(10, 20)))
	assert.Equal(t, want, RectFromPoints(NewPoint2D(100, 20), NewPoint2D(10, 60)))
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, RectFromPoints(NewPoint2D(5, 5), NewPoint2D(5, 50)).Empty())
	assert.False(t, NewRect(0, 0, 1, 1).Empty())
}

func TestRotationDegreesQuarterTurns(t *testing.T) {
	p := NewPoint2D(1, 0)

	assert.Equal(t, NewPoint2D(1, 0), RotationDegrees(0).Apply(p))
	assert.Equal(t, NewPoint2D(0, 1), RotationDegrees(90).Apply(p))
	assert.Equal(t, NewPoint2D(-1, 0), RotationDegrees(180).Apply(p))
	assert.Equal(t, NewPoint2D(0, -1), RotationDegrees(270).Apply(p))
	assert.Equal(t, RotationDegrees(90), RotationDegrees(450))
	assert.Equal(t, RotationDegrees(270), RotationDegrees(-90))

	q := RotationDegrees(45).Apply(p)
	assert.InDelta(t, math.Sqrt2/2, q.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, q.Y, 1e-9)
}

func TestInverseRoundTrip(t *testing.T) {
	tr := Translation(200, 150).Compose(RotationDegrees(90)).Compose(Scale(1, -1))

	inv, ok := tr.Inverse()
	require.True(t, ok)

	p := NewPoint2D(12, -7)
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestInverseSingular(t *testing.T) {
	_, ok := Scale(0, 1).Inverse()
	assert.False(t, ok)
}

func TestSegmentDistance(t *testing.T) {
	a, b := NewPoint2D(0, 0), NewPoint2D(10, 0)

	assert.InDelta(t, 3.0, SegmentDistance(NewPoint2D(5, 3), a, b), 1e-9)
	assert.InDelta(t, 5.0, SegmentDistance(NewPoint2D(13, 4), a, b), 1e-9)
	assert.InDelta(t, 5.0, SegmentDistance(NewPoint2D(3, 4), a, a), 1e-9)
}

func TestBoundingBox(t *testing.T) {
	r := BoundingBox([]Point2D{{X: 3, Y: 9}, {X: -1, Y: 2}, {X: 7, Y: 4}})
	assert.Equal(t, Rect{X: -1, Y: 2, Width: 8, Height: 7}, r)
	assert.Equal(t, Rect{}, BoundingBox(nil))
}

package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"circuit-sketch/internal/component"
	"circuit-sketch/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCoversEveryOrientation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 40, 20))))
	lib := component.NewLibrary(fstest.MapFS{
		component.Transistor.IconPath():    {Data: buf.Bytes()},
		component.Transistor.AltIconPath(): {Data: buf.Bytes()},
	})

	rows := []variant{{kind: component.Transistor}, {kind: component.Transistor, alternate: true}}
	measure := func(string) geometry.Size { return geometry.NewSize(50, 14) }

	items, err := layout(lib, rows, 100, measure)
	require.NoError(t, err)
	require.Len(t, items, 2*9)

	// Second row, last column: 270 degrees, mirrored, alternate image
	last, ok := items[17].AsComponent()
	require.True(t, ok)
	assert.Equal(t, 270.0, last.Rotation())
	assert.True(t, last.Mirrored())
	assert.True(t, last.AlternateImage())
	assert.Equal(t, geometry.NewPoint2D(830, 140), last.Pos)

	label, ok := items[9].AsLabel()
	require.True(t, ok)
	assert.Equal(t, "Transistor (alt)", label.Text)
}

func TestLayoutMissingIcon(t *testing.T) {
	lib := component.NewLibrary(fstest.MapFS{})
	measure := func(string) geometry.Size { return geometry.Size{} }

	_, err := layout(lib, []variant{{kind: component.Resistor}}, 100, measure)
	assert.ErrorIs(t, err, component.ErrMissingIcon)
}

func TestParseKinds(t *testing.T) {
	all, err := parseKinds(" ")
	require.NoError(t, err)
	assert.Equal(t, component.Kinds(), all)

	some, err := parseKinds("opv, Resistor")
	require.NoError(t, err)
	assert.Equal(t, []component.Kind{component.OpAmp, component.Resistor}, some)

	_, err = parseKinds("resistor,diode")
	assert.ErrorIs(t, err, component.ErrUnknownKind)
}

package component

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fullFS(t *testing.T) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, k := range Kinds() {
		fsys[k.IconPath()] = &fstest.MapFile{Data: pngBytes(t, 40, 20, color.White)}
	}
	fsys[Transistor.AltIconPath()] = &fstest.MapFile{Data: pngBytes(t, 40, 20, color.Black)}
	return fsys
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Resistor ")
	require.NoError(t, err)
	assert.Equal(t, Resistor, k)

	_, err = ParseKind("inductor")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindLabels(t *testing.T) {
	var labels []string
	for _, k := range Kinds() {
		labels = append(labels, k.Label())
	}
	assert.Equal(t, []string{"Resistor", "Capacitor", "Transistor", "Opv"}, labels)
}

func TestAlternateOnlyForTransistor(t *testing.T) {
	for _, k := range Kinds() {
		assert.Equal(t, k == Transistor, k.HasAlternate(), string(k))
	}
	assert.Equal(t, "components/transistor2.png", Transistor.AltIconPath())
	assert.Empty(t, Resistor.AltIconPath())
}

func TestLibraryIcon(t *testing.T) {
	lib := NewLibrary(fullFS(t))

	img, err := lib.Icon(Resistor, false)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())

	again, err := lib.Icon(Resistor, false)
	require.NoError(t, err)
	assert.Same(t, img, again)

	// Non-transistor kinds ignore the alternate flag.
	alt, err := lib.Icon(Resistor, true)
	require.NoError(t, err)
	assert.Same(t, img, alt)

	def, err := lib.Icon(Transistor, false)
	require.NoError(t, err)
	other, err := lib.Icon(Transistor, true)
	require.NoError(t, err)
	assert.NotSame(t, def, other)
}

func TestLibraryMissingIcon(t *testing.T) {
	fsys := fullFS(t)
	delete(fsys, Capacitor.IconPath())
	lib := NewLibrary(fsys)

	_, err := lib.Icon(Capacitor, false)
	assert.ErrorIs(t, err, ErrMissingIcon)

	_, err = lib.Icon(Kind("diode"), false)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestLibraryCheckRequiresAlternate(t *testing.T) {
	fsys := fullFS(t)
	delete(fsys, Transistor.AltIconPath())
	lib := NewLibrary(fsys)

	_, err := lib.Check(Transistor)
	assert.ErrorIs(t, err, ErrMissingIcon)

	_, err = lib.Check(Resistor)
	assert.NoError(t, err)
}

func TestLibraryCorruptIcon(t *testing.T) {
	fsys := fullFS(t)
	fsys[OpAmp.IconPath()] = &fstest.MapFile{Data: []byte("not a png")}

	_, err := NewLibrary(fsys).Icon(OpAmp, false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingIcon)
}

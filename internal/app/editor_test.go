package app

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"circuit-sketch/internal/component"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/pkg/geometry"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iconFile(t *testing.T, w, h int) *fstest.MapFile {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &fstest.MapFile{Data: buf.Bytes()}
}

func iconFS(t *testing.T) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, k := range component.Kinds() {
		fsys[k.IconPath()] = iconFile(t, 60, 30)
	}
	fsys[component.Transistor.AltIconPath()] = iconFile(t, 60, 30)
	return fsys
}

func newEditor(t *testing.T) *Editor {
	t.Helper()
	return newEditorFS(t, iconFS(t))
}

func newEditorFS(t *testing.T, fsys fstest.MapFS) *Editor {
	t.Helper()
	e, err := NewEditor(component.NewLibrary(fsys))
	require.NoError(t, err)
	return e
}

func pt(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

func selectAll(e *Editor) {
	for _, it := range e.Scene().Items() {
		e.Scene().Select(it, true)
	}
}

func TestScenarioResistorWireExport(t *testing.T) {
	e := newEditor(t)

	r, err := e.AddComponent(component.Resistor)
	require.NoError(t, err)
	assert.Equal(t, pt(200, 200), r.Pos)
	assert.Equal(t, geometry.NewSize(60, 30), r.Size)

	e.Scene().Select(r, false)
	e.RotateSelected()
	assert.Equal(t, 90.0, r.Rotation())

	e.SetWireColor(color.RGBA{R: 255, A: 255})
	require.True(t, e.HandleKey(fyne.KeyW))
	e.Scene().Press(pt(0, 0), false)
	e.Scene().Press(pt(100, 100), false)

	var wires []*sketch.Wire
	for _, it := range e.Scene().Items() {
		if w, ok := it.AsWire(); ok {
			wires = append(wires, w)
		}
	}
	require.Len(t, wires, 1)
	assert.Equal(t, pt(0, 0), wires[0].Start())
	assert.Equal(t, pt(100, 100), wires[0].End())
	assert.Equal(t, colorutil.Red, wires[0].Color())

	selectAll(e)
	assert.Len(t, e.Scene().Selected(), 2)

	_, ok := e.SelectedArea()
	require.False(t, ok)
	img := e.Snapshot()
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestAddComponentErrors(t *testing.T) {
	e := newEditor(t)
	_, err := e.AddComponent(component.Kind("inductor"))
	assert.ErrorIs(t, err, sketch.ErrInvalidComponent)

	fsys := iconFS(t)
	delete(fsys, component.Capacitor.IconPath())
	delete(fsys, component.Transistor.AltIconPath())
	e = newEditorFS(t, fsys)

	_, err = e.AddComponent(component.Capacitor)
	assert.ErrorIs(t, err, component.ErrMissingIcon)
	_, err = e.AddComponent(component.Transistor)
	assert.ErrorIs(t, err, component.ErrMissingIcon)
	assert.Equal(t, 0, e.Scene().Len())

	_, err = e.AddComponentAt(component.OpAmp, pt(10, 20))
	assert.NoError(t, err)
	assert.Equal(t, 1, e.Scene().Len())
}

func TestWireModeToggleClearsPendingPoint(t *testing.T) {
	e := newEditor(t)

	e.ToggleWireMode()
	assert.Equal(t, sketch.ModeWire, e.Mode())
	e.Scene().Press(pt(10, 10), false)
	_, pending := e.Scene().PendingWire()
	assert.True(t, pending)

	e.ToggleWireMode()
	assert.Equal(t, sketch.ModeSelect, e.Mode())
	_, pending = e.Scene().PendingWire()
	assert.False(t, pending)

	e.ToggleWireMode()
	e.Scene().Press(pt(50, 50), false)
	assert.Equal(t, 0, e.Scene().Len(), "re-enabled wire mode starts fresh")
}

func TestModesAreExclusive(t *testing.T) {
	e := newEditor(t)

	e.ToggleWireMode()
	e.Scene().Press(pt(1, 1), false)
	e.ToggleTextMode()
	assert.Equal(t, sketch.ModeText, e.Mode())
	_, pending := e.Scene().PendingWire()
	assert.False(t, pending, "leaving wire mode for text mode drops the pending start")

	e.ToggleTextMode()
	assert.Equal(t, sketch.ModeSelect, e.Mode())
}

func TestTextPlacementEmitsModeChange(t *testing.T) {
	e := newEditor(t)
	e.SetTextPrompt(func(_ geometry.Point2D, done func(string, bool)) { done("R1", true) })

	var modes []sketch.Mode
	e.On(EventModeChanged, func(data interface{}) { modes = append(modes, data.(sketch.Mode)) })

	e.HandleKey(fyne.KeyT)
	e.Scene().Press(pt(30, 40), false)

	assert.Equal(t, []sketch.Mode{sketch.ModeText, sketch.ModeSelect}, modes)
	require.Equal(t, 1, e.Scene().Len())
	l, ok := e.Scene().Items()[0].AsLabel()
	require.True(t, ok)
	assert.Greater(t, l.Size.Width, 0.0)
}

func TestDeleteSelected(t *testing.T) {
	e := newEditor(t)
	a, err := e.AddComponent(component.Resistor)
	require.NoError(t, err)
	_, err = e.AddComponent(component.Capacitor)
	require.NoError(t, err)

	assert.Equal(t, 0, e.DeleteSelected())
	assert.Equal(t, 2, e.Scene().Len(), "empty selection deletes nothing")

	e.Scene().Select(a, false)
	assert.True(t, e.HandleKey(fyne.KeyDelete))
	assert.Equal(t, 1, e.Scene().Len())
}

func TestReset(t *testing.T) {
	e := newEditor(t)
	for _, k := range component.Kinds() {
		_, err := e.AddComponent(k)
		require.NoError(t, err)
	}
	e.ToggleWireMode()
	e.Scene().Press(pt(0, 0), false)
	e.Scene().Press(pt(5, 5), false)
	e.ToggleWireMode()

	e.Reset()
	assert.Equal(t, 0, e.Scene().Len())
}

func TestComponentCommandsSkipOtherItems(t *testing.T) {
	e := newEditor(t)
	res, err := e.AddComponent(component.Resistor)
	require.NoError(t, err)
	tr, err := e.AddComponentAt(component.Transistor, pt(400, 100))
	require.NoError(t, err)
	w := sketch.NewWire(pt(0, 0), pt(10, 10), colorutil.White)
	e.Scene().Add(w)
	selectAll(e)

	assert.Equal(t, 2, e.RotateSelected())
	assert.Equal(t, 90.0, res.Rotation())
	assert.Equal(t, 90.0, tr.Rotation())

	assert.True(t, e.HandleKey(fyne.KeyM))
	assert.True(t, res.Mirrored())
	assert.True(t, tr.Mirrored())

	assert.True(t, e.HandleKey(fyne.KeyS))
	assert.True(t, tr.AlternateImage())
	assert.False(t, res.AlternateImage())
	assert.Equal(t, 1, e.ToggleTransistorImage())
	assert.False(t, tr.AlternateImage())

	assert.Equal(t, pt(0, 0), w.Start())
}

func TestZoom(t *testing.T) {
	e := newEditor(t)
	var seen []float64
	e.On(EventZoomChanged, func(data interface{}) { seen = append(seen, data.(float64)) })

	e.ZoomIn()
	assert.InDelta(t, 1.2, e.Zoom(), 1e-9)
	e.ZoomOut()
	assert.InDelta(t, 0.96, e.Zoom(), 1e-9)
	assert.Len(t, seen, 2)

	for i := 0; i < 100; i++ {
		e.ZoomOut()
	}
	assert.Equal(t, minZoom, e.Zoom())
}

func TestUnboundKey(t *testing.T) {
	e := newEditor(t)
	assert.False(t, e.HandleKey(fyne.KeyQ))
}

func TestShortcutTable(t *testing.T) {
	want := map[fyne.KeyName]string{
		fyne.KeyDelete: "delete-selected",
		fyne.KeyR:      "rotate-selected",
		fyne.KeyM:      "mirror-selected",
		fyne.KeyE:      "export-to-image",
		fyne.KeyT:      "toggle-text-mode",
		fyne.KeyW:      "toggle-wire-mode",
		fyne.KeyS:      "toggle-transistor-image",
	}
	got := map[fyne.KeyName]string{}
	for k, a := range Shortcuts {
		got[k] = a.String()
	}
	assert.Equal(t, want, got)
}

func TestExportFullCanvas(t *testing.T) {
	e := newEditor(t)
	_, err := e.AddComponent(component.OpAmp)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "exports", "circuit.png")
	var exported string
	e.On(EventExported, func(data interface{}) { exported = data.(string) })

	require.NoError(t, e.Export(path))
	assert.Equal(t, path, exported)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestExportCropsToSelectedArea(t *testing.T) {
	e := newEditor(t)
	e.Scene().Press(pt(100, 50), false)
	e.Scene().Move(pt(20, 150))
	e.Scene().Release(pt(20, 150))

	area, ok := e.SelectedArea()
	require.True(t, ok)
	assert.Equal(t, geometry.NewRect(20, 50, 80, 100), area)

	img := e.Snapshot()
	assert.Equal(t, image.Rect(0, 0, 80, 100), img.Bounds())
}

func TestExportShortcutUsesHandler(t *testing.T) {
	e := newEditor(t)
	called := 0
	e.OnExportRequest(func() { called++ })

	assert.True(t, e.HandleKey(fyne.KeyE))
	assert.Equal(t, 1, called)
}

func TestExportBadPath(t *testing.T) {
	e := newEditor(t)
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := e.Export(filepath.Join(blocker, "circuit.png"))
	assert.Error(t, err)
}

package app

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"circuit-sketch/internal/sketch"
	"circuit-sketch/pkg/geometry"
)

// DefaultExportPath is the suggested export file.
const DefaultExportPath = "exports/circuit.png"

// ErrEmptyExport is returned when the export area has no pixels.
var ErrEmptyExport = errors.New("export area is empty")

// OnExportRequest sets the handler for the export shortcut. The main window
// uses it to ask for a path; without one, exports go to DefaultExportPath.
func (e *Editor) OnExportRequest(fn func()) {
	e.requestExport = fn
}

// RequestExport runs the export handler.
func (e *Editor) RequestExport() {
	if e.requestExport != nil {
		e.requestExport()
		return
	}
	if err := e.Export(DefaultExportPath); err != nil {
		log.Printf("Export failed: %v", err)
	}
}

// Snapshot renders the scene cropped to the selected area, or to the whole
// canvas when no area is selected, on a transparent background.
func (e *Editor) Snapshot() *image.RGBA {
	area := e.scene.Bounds()
	if sel, ok := e.SelectedArea(); ok {
		area = sel
	}
	var img *image.RGBA
	e.scene.View(func(items []sketch.Item, _ *geometry.Rect) {
		img = e.renderer.Rasterize(items, area)
	})
	return img
}

// Export writes the snapshot to path as PNG, creating the parent directory.
func (e *Editor) Export(path string) error {
	if path == "" {
		path = DefaultExportPath
	}

	img := e.Snapshot()
	if img.Bounds().Empty() {
		return ErrEmptyExport
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	b := img.Bounds()
	log.Printf("Exported %dx%d to %s", b.Dx(), b.Dy(), path)
	e.Emit(EventExported, path)
	return nil
}

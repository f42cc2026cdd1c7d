// Command icontest renders every component icon in every orientation onto
// one contact sheet, for checking rotation, mirroring and the transistor's
// alternate image without opening the editor.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"circuit-sketch/internal/component"
	"circuit-sketch/internal/render"
	"circuit-sketch/internal/sketch"
	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/pkg/geometry"
)

// variant is one row of the sheet.
type variant struct {
	kind      component.Kind
	alternate bool
}

func main() {
	resDir := flag.String("res", component.ResourceDir(), "Directory containing components/")
	outPath := flag.String("out", "exports/icontest.png", "Output PNG path")
	cell := flag.Float64("cell", 120, "Cell size in pixels")
	only := flag.String("kinds", "", "Comma-separated kinds to include (default all)")
	flag.Parse()

	kinds, err := parseKinds(*only)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -kinds: %v\n", err)
		os.Exit(2)
	}

	lib := component.OpenLibrary(*resDir)
	r, err := render.New(lib)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create renderer: %v\n", err)
		os.Exit(1)
	}

	var rows []variant
	for _, k := range kinds {
		if _, err := lib.Check(k); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", k, err)
			continue
		}
		rows = append(rows, variant{kind: k})
		if k.HasAlternate() {
			rows = append(rows, variant{kind: k, alternate: true})
		}
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No icons found under %s\n", *resDir)
		os.Exit(1)
	}

	items, err := layout(lib, rows, *cell, r.MeasureLabel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Layout failed: %v\n", err)
		os.Exit(1)
	}

	// Header column plus rotations 0..270, each plain and mirrored
	w := int(*cell * 9)
	h := int(*cell * float64(len(rows)))
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Draw(sheet, items, render.Options{Zoom: 1, Background: colorutil.Canvas})

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %dx%d sheet with %d rows to %s\n", w, h, len(rows), *outPath)
}

// parseKinds turns a comma-separated list into kinds. Empty means all.
func parseKinds(list string) ([]component.Kind, error) {
	if strings.TrimSpace(list) == "" {
		return component.Kinds(), nil
	}
	var out []component.Kind
	for _, name := range strings.Split(list, ",") {
		k, err := component.ParseKind(name)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// layout builds one row per variant: a name label, then the icon at
// 0/90/180/270 degrees followed by the same four mirrored.
func layout(lib *component.Library, rows []variant, cell float64, measure sketch.TextMeasure) ([]sketch.Item, error) {
	var items []sketch.Item
	for row, v := range rows {
		y := float64(row) * cell

		name := v.kind.Label()
		if v.alternate {
			name += " (alt)"
		}
		label, err := sketch.NewLabel(name, geometry.NewPoint2D(8, y+cell/2), measure(name))
		if err != nil {
			return nil, err
		}
		items = append(items, label)

		icon, err := lib.Icon(v.kind, v.alternate)
		if err != nil {
			return nil, err
		}
		size := geometry.NewSize(float64(icon.Bounds().Dx()), float64(icon.Bounds().Dy()))

		for col := 0; col < 8; col++ {
			cx := float64(col+1)*cell + cell/2
			pos := geometry.NewPoint2D(cx-size.Width/2, y+cell/2-size.Height/2)
			c, err := sketch.NewComponent(v.kind, pos, size)
			if err != nil {
				return nil, err
			}
			for i := 0; i < col%4; i++ {
				c.Rotate()
			}
			if col >= 4 {
				c.MirrorVertically()
			}
			if v.alternate {
				c.ToggleImage()
			}
			items = append(items, c)
		}
	}
	return items, nil
}

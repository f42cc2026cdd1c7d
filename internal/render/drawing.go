package render

import (
	"image"
	"image/color"
	"math"

	"circuit-sketch/pkg/geometry"

	"golang.org/x/image/math/fixed"
)

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.Color, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	lo := -thickness / 2
	hi := lo + thickness

	for {
		// Stamp a thickness x thickness square
		for t := lo; t < hi; t++ {
			for s := lo; s < hi; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawDashedRect outlines a rectangle with a 2-on 2-off dash pattern.
func drawDashedRect(output *image.RGBA, r geometry.Rect, col color.Color, thickness int) {
	x1 := int(math.Round(r.X))
	y1 := int(math.Round(r.Y))
	x2 := int(math.Round(r.X + r.Width))
	y2 := int(math.Round(r.Y + r.Height))

	for t := 0; t < thickness; t++ {
		for x := x1; x <= x2; x++ {
			if dashOn(x) {
				setClipped(output, x, y1+t, col)
				setClipped(output, x, y2-t, col)
			}
		}
		for y := y1; y <= y2; y++ {
			if dashOn(y) {
				setClipped(output, x1+t, y, col)
				setClipped(output, x2-t, y, col)
			}
		}
	}
}

func dashOn(v int) bool {
	return ((v%4)+4)%4 < 2
}

func setClipped(output *image.RGBA, x, y int, col color.Color) {
	if (image.Point{X: x, Y: y}).In(output.Bounds()) {
		output.Set(x, y, col)
	}
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

func fixedPoint(x, y fixed.Int26_6) fixed.Point26_6 {
	return fixed.Point26_6{X: x, Y: y}
}

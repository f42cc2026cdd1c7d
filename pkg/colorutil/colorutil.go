// Package colorutil provides shared color utilities for the circuit sketch application.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"
)

// Common colors used throughout the application.
var (
	Black   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Gray    = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 255} // selection marker
	Gold    = color.NRGBA{R: 0xFF, G: 0xD5, B: 0x00, A: 255} // selected item outline
	Magenta = color.NRGBA{R: 255, G: 0, B: 255, A: 255}      // missing icon placeholder

	// Dark theme surfaces
	Canvas     = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 255}
	Background = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 255}
	Button     = color.NRGBA{R: 0x32, G: 0x32, B: 0x32, A: 255}
	Hover      = color.NRGBA{R: 0x5E, G: 0x5E, B: 0x5E, A: 255}
	Pressed    = color.NRGBA{R: 0x7A, G: 0x7A, B: 0x7A, A: 255}
	Foreground = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 255}
)

// ToNRGBA converts any color to non-premultiplied 8-bit RGBA.
func ToNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Hex formats a color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func Hex(c color.Color) string {
	n := ToNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// ParseHex parses #RGB, #RRGGBB or #RRGGBBAA (the leading # is optional).
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	a := uint8(255)

	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("parse color %q: unexpected length %d", s, len(s))
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

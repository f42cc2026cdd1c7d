package sketch

import (
	"image/color"

	"circuit-sketch/pkg/colorutil"
	"circuit-sketch/pkg/geometry"
)

// Mode selects how pointer input on the scene is interpreted.
type Mode int

const (
	ModeSelect Mode = iota // select and move items, drag out an export area
	ModeWire               // chain wire segments
	ModeText               // place one text label
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeWire:
		return "wire"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// Settings is the editor state the scene consults on every pointer event.
// The editor owns it and hands the scene a pointer.
type Settings struct {
	Mode      Mode
	WireColor color.NRGBA

	// SelectedArea is the last committed selection rectangle, or nil for
	// the whole canvas.
	SelectedArea *geometry.Rect
}

// DefaultSettings returns select mode with white wires and no selected area.
func DefaultSettings() Settings {
	return Settings{
		Mode:      ModeSelect,
		WireColor: colorutil.White,
	}
}

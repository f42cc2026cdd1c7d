// Package component defines the closed catalogue of circuit parts and
// loads their icon bitmaps.
package component

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a circuit part type.
type Kind string

const (
	Resistor   Kind = "resistor"
	Capacitor  Kind = "capacitor"
	Transistor Kind = "transistor"
	OpAmp      Kind = "opv"
)

// ErrUnknownKind is returned for a kind outside the catalogue.
var ErrUnknownKind = errors.New("unknown component kind")

// kinds lists the catalogue in sidebar order.
var kinds = []Kind{Resistor, Capacitor, Transistor, OpAmp}

// Kinds returns every known kind in display order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind converts a name to a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Valid reports whether k is part of the catalogue.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Label returns the capitalized name shown on sidebar buttons.
func (k Kind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// HasAlternate reports whether the kind has a second bitmap state.
func (k Kind) HasAlternate() bool {
	return k == Transistor
}

// IconPath returns the resource path of the kind's icon.
func (k Kind) IconPath() string {
	return "components/" + string(k) + ".png"
}

// AltIconPath returns the resource path of the alternate icon, or "" if the
// kind has none.
func (k Kind) AltIconPath() string {
	if !k.HasAlternate() {
		return ""
	}
	return "components/" + string(k) + "2.png"
}

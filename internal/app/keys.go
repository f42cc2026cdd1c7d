package app

import (
	"fyne.io/fyne/v2"
)

// Action is an editor command reachable from a keyboard shortcut.
type Action int

const (
	ActionDeleteSelected Action = iota + 1
	ActionRotateSelected
	ActionMirrorSelected
	ActionExport
	ActionToggleTextMode
	ActionToggleWireMode
	ActionToggleTransistorImage
)

func (a Action) String() string {
	switch a {
	case ActionDeleteSelected:
		return "delete-selected"
	case ActionRotateSelected:
		return "rotate-selected"
	case ActionMirrorSelected:
		return "mirror-selected"
	case ActionExport:
		return "export-to-image"
	case ActionToggleTextMode:
		return "toggle-text-mode"
	case ActionToggleWireMode:
		return "toggle-wire-mode"
	case ActionToggleTransistorImage:
		return "toggle-transistor-image"
	default:
		return "none"
	}
}

// Shortcuts maps single keys to editor actions.
var Shortcuts = map[fyne.KeyName]Action{
	fyne.KeyDelete: ActionDeleteSelected,
	fyne.KeyR:      ActionRotateSelected,
	fyne.KeyM:      ActionMirrorSelected,
	fyne.KeyE:      ActionExport,
	fyne.KeyT:      ActionToggleTextMode,
	fyne.KeyW:      ActionToggleWireMode,
	fyne.KeyS:      ActionToggleTransistorImage,
}

// HandleKey runs the action bound to key and reports whether one was bound.
func (e *Editor) HandleKey(key fyne.KeyName) bool {
	a, ok := Shortcuts[key]
	if !ok {
		return false
	}
	e.Do(a)
	return true
}

// Do runs an action.
func (e *Editor) Do(a Action) {
	switch a {
	case ActionDeleteSelected:
		e.DeleteSelected()
	case ActionRotateSelected:
		e.RotateSelected()
	case ActionMirrorSelected:
		e.MirrorSelected()
	case ActionExport:
		e.RequestExport()
	case ActionToggleTextMode:
		e.ToggleTextMode()
	case ActionToggleWireMode:
		e.ToggleWireMode()
	case ActionToggleTransistorImage:
		e.ToggleTransistorImage()
	}
}

package sketch

import (
	"sync"

	"circuit-sketch/pkg/geometry"
)

// Canvas dimensions in scene units.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// TextPrompt asks the user for label text. It calls done exactly once, either
// before returning or later from a dialog callback.
type TextPrompt func(at geometry.Point2D, done func(text string, ok bool))

// TextMeasure returns the rendered extent of label text.
type TextMeasure func(text string) geometry.Size

// Scene owns every item of a sketch and turns raw pointer input into item
// edits according to Settings.Mode. Input and edits arrive on the UI event
// goroutine; View may run concurrently from the paint goroutine. Settings
// are only read and written on the event goroutine.
type Scene struct {
	settings *Settings

	mu    sync.RWMutex
	items []Item

	// Wire mode
	wireStart *geometry.Point2D

	// Select mode
	marker     *marker
	dragging   bool
	dragOrigin geometry.Point2D

	prompt   TextPrompt
	measure  TextMeasure
	onChange func()
}

// marker is the transient dashed rectangle of an area selection.
type marker struct {
	origin geometry.Point2D
	rect   geometry.Rect
}

// NewScene creates an empty scene reading its mode from settings.
func NewScene(settings *Settings) *Scene {
	return &Scene{settings: settings}
}

// SetTextPrompt installs the prompt used in text mode.
func (s *Scene) SetTextPrompt(p TextPrompt) {
	s.prompt = p
}

// SetTextMeasure installs the function that sizes new labels.
func (s *Scene) SetTextMeasure(m TextMeasure) {
	s.measure = m
}

// OnChange registers a callback fired after any change to items, selection,
// marker or settings made by the scene. It runs without the scene lock held.
func (s *Scene) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Scene) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// update runs fn under the write lock and notifies if fn reports a change.
func (s *Scene) update(fn func() bool) {
	s.mu.Lock()
	dirty := fn()
	s.mu.Unlock()
	if dirty {
		s.changed()
	}
}

// Edit runs fn under the write lock, then notifies. Callers use it to mutate
// items they obtained from the scene, such as rotating a component.
func (s *Scene) Edit(fn func()) {
	s.update(func() bool {
		fn()
		return true
	})
}

// View calls fn with the items in z-order and the live marker, or nil, while
// holding the read lock. fn must not modify the scene or keep the slice.
func (s *Scene) View(fn func(items []Item, marker *geometry.Rect)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m *geometry.Rect
	if s.marker != nil {
		r := s.marker.rect
		m = &r
	}
	fn(s.items, m)
}

// Settings returns the settings the scene reads.
func (s *Scene) Settings() *Settings {
	return s.settings
}

// Bounds returns the full canvas rectangle.
func (s *Scene) Bounds() geometry.Rect {
	return geometry.NewRect(0, 0, CanvasWidth, CanvasHeight)
}

// Items returns the items in z-order, bottom first. The slice is a copy.
func (s *Scene) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of items.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add places an item on top of the scene.
func (s *Scene) Add(it Item) {
	s.update(func() bool {
		s.items = append(s.items, it)
		return true
	})
}

// Remove deletes an item, reporting whether it was present.
func (s *Scene) Remove(it Item) bool {
	found := false
	s.update(func() bool {
		for i, existing := range s.items {
			if existing == it {
				s.items = append(s.items[:i], s.items[i+1:]...)
				it.setSelected(false)
				found = true
				break
			}
		}
		return found
	})
	return found
}

// Clear removes every item and abandons any gesture in progress.
func (s *Scene) Clear() {
	s.update(func() bool {
		for _, it := range s.items {
			it.setSelected(false)
		}
		s.items = nil
		s.wireStart = nil
		s.marker = nil
		s.dragging = false
		return true
	})
}

// Selected returns the selected items in z-order.
func (s *Scene) Selected() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected()
}

func (s *Scene) selected() []Item {
	var out []Item
	for _, it := range s.items {
		if it.Selected() {
			out = append(out, it)
		}
	}
	return out
}

// Select marks an item selected. Without additive the rest of the selection
// is cleared first.
func (s *Scene) Select(it Item, additive bool) {
	s.update(func() bool {
		if !additive {
			s.clearSelection()
		}
		it.setSelected(true)
		return true
	})
}

// ClearSelection deselects every item.
func (s *Scene) ClearSelection() {
	s.update(func() bool {
		s.clearSelection()
		return true
	})
}

func (s *Scene) clearSelection() {
	for _, it := range s.items {
		it.setSelected(false)
	}
}

// ItemAt returns the topmost item under p, or nil.
func (s *Scene) ItemAt(p geometry.Point2D) Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemAt(p)
}

func (s *Scene) itemAt(p geometry.Point2D) Item {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Hit(p) {
			return s.items[i]
		}
	}
	return nil
}

// PendingWire returns the start point of the next wire segment, if any.
func (s *Scene) PendingWire() (geometry.Point2D, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wireStart == nil {
		return geometry.Point2D{}, false
	}
	return *s.wireStart, true
}

// ResetWire forgets the pending wire start point.
func (s *Scene) ResetWire() {
	s.update(func() bool {
		if s.wireStart == nil {
			return false
		}
		s.wireStart = nil
		return true
	})
}

// Marker returns the live selection rectangle while an area is being dragged.
func (s *Scene) Marker() (geometry.Rect, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.marker == nil {
		return geometry.Rect{}, false
	}
	return s.marker.rect, true
}

// Press handles a primary-button press at scene point p. additive is set
// when a selection modifier (shift or control) is held.
func (s *Scene) Press(p geometry.Point2D, additive bool) {
	switch s.settings.Mode {
	case ModeWire:
		s.update(func() bool { return s.pressWire(p) })
	case ModeText:
		s.pressText(p)
	default:
		s.update(func() bool { return s.pressSelect(p, additive) })
	}
}

// Move handles pointer motion, with or without a button held. In select
// mode a press-drag both resizes the area marker and moves a grabbed
// selection.
func (s *Scene) Move(p geometry.Point2D) {
	if s.settings.Mode == ModeWire {
		s.update(func() bool {
			if s.wireStart == nil {
				return false
			}
			s.extendWire(p)
			return true
		})
		return
	}

	s.update(func() bool {
		dirty := false
		if s.marker != nil {
			s.marker.rect = geometry.RectFromPoints(s.marker.origin, p)
			dirty = true
		}
		if s.dragging {
			delta := p.Sub(s.dragOrigin)
			s.dragOrigin = p
			for _, it := range s.selected() {
				if m, ok := it.(Movable); ok {
					m.MoveBy(delta)
				}
			}
			dirty = true
		}
		return dirty
	})
}

// Release handles the primary button being let go. It is safe to call when
// no gesture is in progress.
func (s *Scene) Release(p geometry.Point2D) {
	s.update(func() bool {
		s.dragging = false
		if s.marker == nil {
			return false
		}

		rect := s.marker.rect
		s.marker = nil
		if rect.Empty() {
			s.settings.SelectedArea = nil
		} else {
			s.settings.SelectedArea = &rect
		}
		return true
	})
}

func (s *Scene) pressWire(p geometry.Point2D) bool {
	if s.wireStart == nil {
		start := p
		s.wireStart = &start
		return true
	}
	s.extendWire(p)
	return true
}

// extendWire adds a segment from the pending start to p and makes p the
// new start.
func (s *Scene) extendWire(p geometry.Point2D) {
	s.items = append(s.items, NewWire(*s.wireStart, p, s.settings.WireColor))
	next := p
	s.wireStart = &next
}

// pressText runs the prompt without the lock, since done may be called
// before the prompt returns.
func (s *Scene) pressText(p geometry.Point2D) {
	if s.prompt == nil {
		s.settings.Mode = ModeSelect
		s.changed()
		return
	}
	s.prompt(p, func(text string, ok bool) {
		if ok {
			s.placeLabel(text, p)
		}
		s.settings.Mode = ModeSelect
		s.changed()
	})
}

func (s *Scene) placeLabel(text string, p geometry.Point2D) {
	var size geometry.Size
	if s.measure != nil {
		size = s.measure(text)
	}
	label, err := NewLabel(text, p, size)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.items = append(s.items, label)
	s.mu.Unlock()
}

// pressSelect updates the selection for a hit and always starts the area
// marker at p; a hit also grabs the selection for moving.
func (s *Scene) pressSelect(p geometry.Point2D, additive bool) bool {
	s.dragging = false
	if hit := s.itemAt(p); hit != nil {
		switch {
		case additive:
			hit.setSelected(!hit.Selected())
		case !hit.Selected():
			s.clearSelection()
			hit.setSelected(true)
		}
		s.dragging = hit.Selected()
		s.dragOrigin = p
	} else if !additive {
		s.clearSelection()
	}

	s.marker = &marker{origin: p, rect: geometry.RectFromPoints(p, p)}
	return true
}

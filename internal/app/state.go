// Package app provides application lifecycle state and events.
package app

import (
	"sync"

	"matrix-editor/internal/surface"
)

// NoSelection marks the selection index when no element is selected.
const NoSelection = -1

// State holds the editor's shared state: the emulator surface, the
// current selection, and event listeners the UI hangs off.
type State struct {
	mu sync.RWMutex

	// Surface is the composited scene. Set once at startup.
	Surface *surface.Surface

	selected int
	modified bool

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	// EventSceneChanged fires after any element add, move, remove,
	// replace, or background fill. The front-end repaints on it.
	EventSceneChanged EventType = iota
	// EventSelectionChanged fires when the selected element changes.
	// Data is the new index, or NoSelection.
	EventSelectionChanged
	// EventModified fires when the unsaved-changes flag flips.
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates state around a ready surface with nothing selected.
func NewState(surf *surface.Surface) *State {
	return &State{
		Surface:   surf,
		selected:  NoSelection,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Selected returns the selected element's ordinal index, or
// NoSelection.
func (s *State) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Select changes the selection and emits EventSelectionChanged if it
// moved.
func (s *State) Select(index int) {
	s.mu.Lock()
	changed := s.selected != index
	s.selected = index
	s.mu.Unlock()
	if changed {
		s.Emit(EventSelectionChanged, index)
	}
}

// ClearSelection deselects any selected element.
func (s *State) ClearSelection() {
	s.Select(NoSelection)
}

// Modified reports whether the scene changed since startup.
func (s *State) Modified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// SetModified flips the unsaved-changes flag and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// SceneChanged marks the scene modified and asks the front-end to
// repaint.
func (s *State) SceneChanged() {
	s.SetModified(true)
	s.Emit(EventSceneChanged, nil)
}

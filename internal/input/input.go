// Package input turns SDL2 events into gizmo interactions and camera controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

// EventType is the kind of a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	Wheel  float64
}

// Input polls SDL and accumulates per-frame state.
type Input struct {
	events []Event
	State
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		State:  State{held: make(map[sdl.Scancode]bool)},
	}
}

// Update polls SDL events for one frame. Returns true when the app should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.State.beginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		i.State.Apply(e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		t := EventKeyUp
		if e.Type == sdl.KEYDOWN {
			t = EventKeyDown
		}
		return Event{Type: t, Key: e.Keysym.Scancode}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventWheel, Wheel: float64(e.Y)}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// State is the input state accumulated from events. It has no SDL calls and
// can be driven directly.
type State struct {
	cursor [2]float64

	primaryDown    bool
	primaryPressed bool // Pressed during this frame
	orbiting       bool
	panning        bool

	orbit [2]float64
	pan   [2]float64
	zoom  float64

	held    map[sdl.Scancode]bool
	pressed []sdl.Scancode

	resized       bool
	width, height int
}

// NewState creates an empty state.
func NewState() *State {
	return &State{held: make(map[sdl.Scancode]bool)}
}

func (s *State) beginFrame() {
	s.primaryPressed = false
	s.orbit, s.pan, s.zoom = [2]float64{}, [2]float64{}, 0
	s.pressed = s.pressed[:0]
	s.resized = false
}

// EndFrame clears the per-frame deltas after they were consumed.
func (s *State) EndFrame() {
	s.beginFrame()
}

// Apply folds one event into the state.
func (s *State) Apply(e Event) {
	switch e.Type {
	case EventMouseMove:
		next := [2]float64{float64(e.MouseX), float64(e.MouseY)}
		dx, dy := next[0]-s.cursor[0], next[1]-s.cursor[1]
		if s.orbiting {
			s.orbit[0] += dx
			s.orbit[1] += dy
		}
		if s.panning {
			s.pan[0] += dx
			s.pan[1] += dy
		}
		s.cursor = next

	case EventMouseDown:
		s.cursor = [2]float64{float64(e.MouseX), float64(e.MouseY)}
		switch e.Button {
		case sdl.BUTTON_LEFT:
			s.primaryDown = true
			s.primaryPressed = true
		case sdl.BUTTON_RIGHT:
			s.orbiting = true
		case sdl.BUTTON_MIDDLE:
			s.panning = true
		}

	case EventMouseUp:
		s.cursor = [2]float64{float64(e.MouseX), float64(e.MouseY)}
		switch e.Button {
		case sdl.BUTTON_LEFT:
			s.primaryDown = false
		case sdl.BUTTON_RIGHT:
			s.orbiting = false
		case sdl.BUTTON_MIDDLE:
			s.panning = false
		}

	case EventWheel:
		s.zoom += e.Wheel

	case EventKeyDown:
		if s.held == nil {
			s.held = make(map[sdl.Scancode]bool)
		}
		s.held[e.Key] = true
		s.pressed = append(s.pressed, e.Key)

	case EventKeyUp:
		delete(s.held, e.Key)

	case EventWindowResize:
		s.resized = true
		s.width, s.height = e.Width, e.Height
	}
}

// Interaction returns the gizmo input of this frame. A press that started
// and ended within the frame still reports DragStarted.
func (s *State) Interaction(blocked bool) gizmo.Interaction {
	return gizmo.Interaction{
		Cursor:      s.cursor,
		DragStarted: s.primaryPressed,
		Dragging:    s.primaryDown || s.primaryPressed,
		Blocked:     blocked,
	}
}

// Cursor returns the last pointer position.
func (s *State) Cursor() [2]float64 {
	return s.cursor
}

// Orbit returns the right-drag delta of this frame in pixels.
func (s *State) Orbit() (float64, float64) {
	return s.orbit[0], s.orbit[1]
}

// Pan returns the middle-drag delta of this frame in pixels.
func (s *State) Pan() (float64, float64) {
	return s.pan[0], s.pan[1]
}

// Zoom returns the wheel steps of this frame.
func (s *State) Zoom() float64 {
	return s.zoom
}

// Resized reports a window size change during this frame.
func (s *State) Resized() (int, int, bool) {
	return s.width, s.height, s.resized
}

// IsKeyPressed checks if a key went down this frame.
func (s *State) IsKeyPressed(key sdl.Scancode) bool {
	for _, k := range s.pressed {
		if k == key {
			return true
		}
	}
	return false
}

// IsKeyHeld checks if a key is currently down.
func (s *State) IsKeyHeld(key sdl.Scancode) bool {
	return s.held[key]
}

// SnapHeld reports whether either Ctrl key is down, which toggles snapping
// while held.
func (s *State) SnapHeld() bool {
	return s.held[sdl.SCANCODE_LCTRL] || s.held[sdl.SCANCODE_RCTRL]
}

package gizmo

// Interaction is the per-frame input snapshot.
type Interaction struct {
	// Cursor is the pointer position in window pixels (same space as Config.Viewport).
	Cursor [2]float64
	// DragStarted is true on the frame the primary button was pressed.
	DragStarted bool
	// Dragging is true while the primary button is held.
	Dragging bool
	// Blocked marks the gizmo as covered by other UI; no hover or drag starts.
	Blocked bool
}

func (in Interaction) normalized() Interaction {
	if in.DragStarted {
		in.Dragging = true
	}
	return in
}

// Phase is the interaction state of the gizmo.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHovering
	PhaseDragging
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHovering:
		return "hovering"
	case PhaseDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Result is produced by Update on every dragging frame that changed the transform.
type Result struct {
	Mode   Mode   // Mode of the dragged handle
	Handle Handle // The dragged handle

	// Transform is the new transform of the entity.
	Transform Transform
	// Delta is the change since the previous result of this drag.
	Delta Transform
	// Total is the change since the drag started.
	Total Transform

	// Angle is the rotation since the drag started, in radians. It is
	// signed around the handle axis for rotate handles. Arcball drags have
	// no fixed axis and report the unsigned angle of the Total rotation.
	// Zero for translate and scale handles.
	Angle float64
}

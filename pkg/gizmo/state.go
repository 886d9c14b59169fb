package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// dragState is the interaction state carried across frames while a handle
// is dragged. The references are frozen at drag start; last, the angles and
// scaleOffset follow the latest frame.
type dragState struct {
	handle Handle
	start  *frame       // Frame at drag start
	ray    viewport.Ray // Pick ray at drag start
	cursor mgl64.Vec2   // Cursor at drag start

	// Translate: start point and the constraint (axis or plane normal).
	point     mgl64.Vec3
	axisParam float64
	normal    mgl64.Vec3
	planeA    mgl64.Vec3
	planeB    mgl64.Vec3

	// Rotate: unit start vector in the rotation plane. When screenSpace is
	// set the angle is measured around the projected gizmo center instead.
	vector      mgl64.Vec3
	screenSpace bool

	// Scale: screen direction and distance from the center at drag start,
	// and the per-axis factors of the last frame.
	screenDir   mgl64.Vec2
	screenDist  float64
	scaleOffset mgl64.Vec3

	// Targets moved by UpdateTargets, as they were at drag start.
	targets []Transform

	last     Transform // Last emitted transform
	angle    float64   // Rotation angle of last, after snapping
	rawAngle float64   // Unsnapped angle, unwrapped across frames
}

func newDragState(h Handle, f *frame, ray viewport.Ray) *dragState {
	return &dragState{
		handle: h,
		start:  f,
		ray:    ray,
		cursor: ray.Screen,
		last:   f.transform,
	}
}

// snap rounds v when snapping is enabled in the current config.
func snap(cfg Config, v, interval float64) float64 {
	if !cfg.Snapping {
		return v
	}
	return viewport.RoundToInterval(v, interval)
}

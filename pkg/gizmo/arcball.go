package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

func arcballHandles(modes Mode) []Handle {
	if !modes.Has(ModeArcball) {
		return nil
	}
	return []Handle{{Mode: ModeArcball, Direction: DirectionView, Kind: HandleArcball}}
}

func beginArcball(d *dragState) bool {
	d.vector = sphereVector(d.start, d.cursor)
	return true
}

// sphereVector maps a window position onto a virtual sphere around the
// gizmo center, returned in world space.
func sphereVector(f *frame, cursor mgl64.Vec2) mgl64.Vec3 {
	radius := f.arcballRadius() / f.worldPerPixel()
	x := (cursor[0] - f.center[0]) / radius
	y := -(cursor[1] - f.center[1]) / radius // Flip Y

	var z float64
	if d2 := x*x + y*y; d2 <= 1 {
		z = math.Sqrt(1 - d2)
	} else {
		l := math.Sqrt(d2)
		x, y = x/l, y/l
	}
	return f.right.Mul(x).Add(f.up.Mul(y)).Add(f.toEye.Mul(z))
}

// dragArcball rotates by twice the arc between the drag-start and current
// sphere points.
func dragArcball(d *dragState, cursor mgl64.Vec2) (Transform, bool) {
	from := d.vector
	to := sphereVector(d.start, cursor)

	q := viewport.RotationAlign(from, to)
	q = q.Mul(q)

	start := d.start
	rot := q.Mul(start.rotation).Normalize()
	if !viewport.FiniteQuat(rot) {
		return Transform{}, false
	}

	// Unsigned, the axis changes with every frame
	d.angle = 2 * math.Acos(mgl64.Clamp(from.Dot(to), -1, 1))
	return makeTransform(start.scale, rot, start.translation), true
}

package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// grazingDot is the |ray·normal| below which a rotation plane is too close
// to edge-on for plane intersection, and the screen angle is used instead.
const grazingDot = 0.05

func rotateHandles(modes Mode) []Handle {
	var hs []Handle
	for _, h := range []Handle{
		{Mode: ModeRotateX, Direction: DirectionX, Kind: HandleArc},
		{Mode: ModeRotateY, Direction: DirectionY, Kind: HandleArc},
		{Mode: ModeRotateZ, Direction: DirectionZ, Kind: HandleArc},
		{Mode: ModeRotateView, Direction: DirectionView, Kind: HandleViewRing},
	} {
		if modes.Has(h.Mode) {
			hs = append(hs, h)
		}
	}
	return hs
}

func beginRotate(d *dragState) bool {
	f := d.start
	d.normal = f.axis(d.handle.Direction)

	if d.handle.Kind == HandleArc && math.Abs(d.ray.Direction.Dot(d.normal)) >= grazingDot {
		if t, ok := d.ray.IntersectPlane(d.normal, f.translation); ok {
			if v, ok := viewport.Normalize(d.ray.At(t).Sub(f.translation)); ok {
				d.vector = v
				return true
			}
		}
	}

	d.screenSpace = true
	d.vector = screenVector(f, d.cursor, d.normal)
	return true
}

// screenVector maps the cursor direction around the projected gizmo center
// to a unit vector in the rotation plane.
func screenVector(f *frame, cursor mgl64.Vec2, normal mgl64.Vec3) mgl64.Vec3 {
	off := cursor.Sub(f.center)
	w := f.right.Mul(off[0]).Sub(f.up.Mul(off[1])) // Flip Y
	w = w.Sub(normal.Mul(normal.Dot(w)))
	if v, ok := viewport.Normalize(w); ok {
		return v
	}
	return arcFacing(f, normal)
}

// screenAngle returns the signed world angle swept by the cursor around the
// projected gizmo center since drag start.
func screenAngle(d *dragState, cursor mgl64.Vec2) (float64, bool) {
	c := d.start.center
	from := d.cursor.Sub(c)
	to := cursor.Sub(c)
	if to.Len() < 1e-9 {
		return 0, false
	}
	delta := viewport.WrapAngle(math.Atan2(to[1], to[0]) - math.Atan2(from[1], from[0]))

	// Window Y points down, so a positive screen angle is clockwise when
	// the camera basis is right handed.
	facing := d.normal.Dot(d.start.right.Cross(d.start.up))
	if facing > 0 {
		return -delta, true
	}
	return delta, true
}

// dragRotate rotates the start orientation around the handle normal by the
// angle swept since drag start.
func dragRotate(d *dragState, cfg Config, ray viewport.Ray, cursor mgl64.Vec2) (Transform, bool) {
	var raw float64
	if d.screenSpace {
		a, ok := screenAngle(d, cursor)
		if !ok {
			return Transform{}, false
		}
		raw = a
	} else {
		t, ok := ray.IntersectPlane(d.normal, d.start.translation)
		if !ok {
			return Transform{}, false
		}
		v, ok := viewport.Normalize(ray.At(t).Sub(d.start.translation))
		if !ok {
			return Transform{}, false
		}
		raw = viewport.SignedAngle(d.vector, v, d.normal)
	}

	// Unwrap so the angle keeps growing past a half turn
	total := d.rawAngle + viewport.WrapAngle(raw-d.rawAngle)
	angle := snap(cfg, total, cfg.SnapAngle)

	start := d.start
	rot := mgl64.QuatRotate(angle, d.normal).Mul(start.rotation).Normalize()
	if !viewport.FiniteQuat(rot) {
		return Transform{}, false
	}

	d.rawAngle = total
	d.angle = angle
	return makeTransform(start.scale, rot, start.translation), true
}

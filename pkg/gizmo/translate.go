package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

func translateHandles(modes Mode) []Handle {
	var hs []Handle
	for _, h := range []Handle{
		{Mode: ModeTranslateX, Direction: DirectionX, Kind: HandleArrow},
		{Mode: ModeTranslateY, Direction: DirectionY, Kind: HandleArrow},
		{Mode: ModeTranslateZ, Direction: DirectionZ, Kind: HandleArrow},
		{Mode: ModeTranslateView, Direction: DirectionView, Kind: HandleViewDisc},
		{Mode: ModeTranslateXY, Direction: DirectionZ, Kind: HandlePlane},
		{Mode: ModeTranslateXZ, Direction: DirectionY, Kind: HandlePlane},
		{Mode: ModeTranslateYZ, Direction: DirectionX, Kind: HandlePlane},
	} {
		if modes.Has(h.Mode) {
			hs = append(hs, h)
		}
	}
	return hs
}

func beginTranslate(d *dragState) bool {
	f := d.start

	switch d.handle.Kind {
	case HandleArrow:
		d.normal = f.axis(d.handle.Direction)
		_, s, ok := d.ray.ClosestToLine(f.translation, d.normal)
		if !ok {
			return false
		}
		d.axisParam = s
		d.point = f.translation.Add(d.normal.Mul(s))
		return true

	case HandlePlane:
		p := d.handle.plane(f)
		d.normal, d.planeA, d.planeB = p.normal, p.a, p.b

	case HandleViewDisc:
		d.normal, d.planeA, d.planeB = f.toEye, f.right, f.up

	default:
		return false
	}

	t, ok := d.ray.IntersectPlane(d.normal, f.translation)
	if !ok {
		return false
	}
	d.point = d.ray.At(t)
	return true
}

// dragTranslate moves the start translation along the constraint by the
// distance between the start point and the current pointer point.
func dragTranslate(d *dragState, cfg Config, ray viewport.Ray) (Transform, bool) {
	var delta mgl64.Vec3

	if d.handle.Kind == HandleArrow {
		_, s, ok := ray.ClosestToLine(d.start.translation, d.normal)
		if !ok {
			return Transform{}, false
		}
		dist := snap(cfg, s-d.axisParam, cfg.SnapDistance)
		delta = d.normal.Mul(dist)
	} else {
		t, ok := ray.IntersectPlane(d.normal, d.start.translation)
		if !ok {
			return Transform{}, false
		}
		offset := ray.At(t).Sub(d.point)
		a := snap(cfg, offset.Dot(d.planeA), cfg.SnapDistance)
		b := snap(cfg, offset.Dot(d.planeB), cfg.SnapDistance)
		delta = d.planeA.Mul(a).Add(d.planeB.Mul(b))
	}

	start := d.start
	return makeTransform(start.scale, start.rotation, start.translation.Add(delta)), true
}

package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// minScale is the smallest scale factor a drag can produce.
const minScale = 1e-4

func scaleHandles(modes Mode) []Handle {
	var hs []Handle
	for _, h := range []Handle{
		{Mode: ModeScaleX, Direction: DirectionX, Kind: HandleArrow},
		{Mode: ModeScaleY, Direction: DirectionY, Kind: HandleArrow},
		{Mode: ModeScaleZ, Direction: DirectionZ, Kind: HandleArrow},
		{Mode: ModeScaleUniform, Direction: DirectionView, Kind: HandleUniform},
		{Mode: ModeScaleXY, Direction: DirectionZ, Kind: HandlePlane},
		{Mode: ModeScaleXZ, Direction: DirectionY, Kind: HandlePlane},
		{Mode: ModeScaleYZ, Direction: DirectionX, Kind: HandlePlane},
	} {
		if !modes.Has(h.Mode) || scaleHidden(h.Mode, modes) {
			continue
		}
		hs = append(hs, h)
	}
	return hs
}

// scaleHidden reports whether a scale handle would sit on top of another
// enabled handle and is left out.
func scaleHidden(m Mode, modes Mode) bool {
	switch m {
	case ModeScaleUniform:
		return modes.Has(ModeRotateView)
	case ModeScaleXY:
		return modes.Has(ModeTranslateXY)
	case ModeScaleXZ:
		return modes.Has(ModeTranslateXZ)
	case ModeScaleYZ:
		return modes.Has(ModeTranslateYZ)
	}
	return false
}

func beginScale(d *dragState) bool {
	f := d.start
	offset := d.cursor.Sub(f.center)

	if d.handle.Kind == HandleArrow {
		if tip, ok := f.project(d.handle.arrow(f).end); ok {
			if dir, ok := normalize2(tip.Sub(f.center)); ok {
				d.screenDir = dir
				d.screenDist = offset.Dot(dir)
			}
		}
	}

	// Fall back to the cursor direction, or a fixed reference when the drag
	// starts on the center.
	if d.screenDist < 1 {
		if dir, ok := normalize2(offset); ok && offset.Len() >= 1 {
			d.screenDir = dir
			d.screenDist = offset.Len()
		} else {
			d.screenDir = mgl64.Vec2{1, 0}
			d.screenDist = f.cfg.Visuals.Size * 0.2 * f.pixelsPerPoint
		}
	}
	return true
}

// scaleAxes returns the local axes a scale handle acts on.
func scaleAxes(h Handle) mgl64.Vec3 {
	switch h.Kind {
	case HandleArrow:
		return unitAxis(h.Direction)
	case HandlePlane:
		a, b := planeAxes(h.Direction)
		return a.Add(b)
	default:
		return mgl64.Vec3{1, 1, 1}
	}
}

// dragScale scales by the ratio of the cursor distance from the center,
// measured along the drag-start direction, to the distance at drag start.
func dragScale(d *dragState, cfg Config, cursor mgl64.Vec2) (Transform, bool) {
	factor := cursor.Sub(d.start.center).Dot(d.screenDir) / d.screenDist
	factor = snap(cfg, factor, cfg.SnapScale)
	factor = math.Max(factor, minScale)

	axes := scaleAxes(d.handle)
	d.scaleOffset = mgl64.Vec3{1, 1, 1}.Add(axes.Mul(factor - 1))

	start := d.start
	scale := applyScale(start.scale, start.rotation, start.translation, d.scaleOffset, start.cfg.LocalSpace())
	return makeTransform(scale, start.rotation, start.translation), true
}

// applyScale multiplies a scale by per-axis factors given in the local
// basis, or in world space followed by decomposition.
func applyScale(scale mgl64.Vec3, rot mgl64.Quat, trans, offset mgl64.Vec3, local bool) mgl64.Vec3 {
	if local {
		return mgl64.Vec3{scale[0] * offset[0], scale[1] * offset[1], scale[2] * offset[2]}
	}
	m := mgl64.Scale3D(offset[0], offset[1], offset[2]).Mul4(viewport.Compose(scale, rot, trans))
	s, _, _ := viewport.Decompose(m)
	return s
}

func normalize2(v mgl64.Vec2) (mgl64.Vec2, bool) {
	l := v.Len()
	if l < 1e-9 || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

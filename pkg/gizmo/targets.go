package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MedianTransform places a gizmo for a group of targets: the mean
// translation and scale, and the rotation of the last target. An empty
// group gives the identity.
func MedianTransform(targets []Transform) Transform {
	if len(targets) == 0 {
		return IdentityTransform()
	}

	var trans, scale mgl64.Vec3
	for _, t := range targets {
		trans = trans.Add(t.Translation)
		scale = scale.Add(t.Scale)
	}
	n := 1 / float64(len(targets))
	last := targets[len(targets)-1]
	return makeTransform(scale.Mul(n), last.Quat().Normalize(), trans.Mul(n))
}

// UpdateTargets is Update for several entities moved by one gizmo.
//
// While no handle is dragged the gizmo is placed at MedianTransform(targets)
// in place of Config.Model. The targets are captured when a drag starts; on
// every result the new transform of each captured target is returned,
// computed from its drag-start transform around Config.Pivot.
func (g *Gizmo) UpdateTargets(in Interaction, targets []Transform) (Result, []Transform, bool) {
	if g.drag == nil && len(targets) > 0 {
		if m := MedianTransform(targets); m.finite() {
			g.cfg.Model = m.Matrix()
		}
	}

	res, ok := g.Update(in)
	if g.drag != nil && g.drag.targets == nil {
		g.drag.targets = append([]Transform{}, targets...)
	}
	if !ok {
		return res, nil, false
	}

	out := make([]Transform, len(g.drag.targets))
	for i, t := range g.drag.targets {
		out[i] = g.drag.applyTo(t, g.cfg.Pivot)
	}
	return res, out, true
}

// applyTo moves one target by the change of the gizmo since drag start.
func (d *dragState) applyTo(t Transform, pivot PivotPoint) Transform {
	s, r, tr := t.parts()
	r = r.Normalize()
	f := d.start
	center := f.translation

	switch d.handle.Mode.Kind() {
	case KindTranslate:
		delta := mgl64.Vec3(d.last.Translation).Sub(center)
		return makeTransform(s, r, tr.Add(delta))

	case KindRotate, KindArcball:
		q := d.last.Quat().Mul(f.rotation.Inverse()).Normalize()
		if d.handle.Kind == HandleArc && f.cfg.LocalSpace() {
			// Each target turns around its own local axis
			q = mgl64.QuatRotate(d.angle, r.Rotate(unitAxis(d.handle.Direction)))
		}
		if pivot == PivotMedian {
			tr = center.Add(q.Rotate(tr.Sub(center)))
		}
		return makeTransform(s, q.Mul(r).Normalize(), tr)

	case KindScale:
		local := f.cfg.LocalSpace()
		if pivot == PivotMedian {
			off := f.basis.Inverse().Rotate(tr.Sub(center))
			off = mgl64.Vec3{off[0] * d.scaleOffset[0], off[1] * d.scaleOffset[1], off[2] * d.scaleOffset[2]}
			tr = center.Add(f.basis.Rotate(off))
		}
		return makeTransform(applyScale(s, r, tr, d.scaleOffset, local), r, tr)
	}
	return t
}

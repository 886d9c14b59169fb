package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxSnapTicks skips the snap ticks when the snap angle is very small.
const maxSnapTicks = 256

// minOpacity is the opacity below which a handle is not drawn.
const minOpacity = 1e-4

// handleColor returns the style color of a handle.
func handleColor(v Visuals, d Direction, focused bool, opacity float64) [4]float32 {
	var c Color
	switch d {
	case DirectionX:
		c = v.XColor
	case DirectionY:
		c = v.YColor
	case DirectionZ:
		c = v.ZColor
	default:
		c = v.SColor
	}
	alpha := v.InactiveAlpha
	if focused {
		alpha = v.HighlightAlpha
		if v.HighlightColor[3] != 0 {
			c = v.HighlightColor
		}
	}

	out := c.Float()
	out[3] *= float32(mgl64.Clamp(alpha*opacity, 0, 1))
	return out
}

// tessellate appends the handle geometry. d is the drag state when the
// handle is being dragged, nil otherwise.
func (h Handle) tessellate(b *shapeBuilder, focused bool, d *dragState) {
	f := b.f
	v := f.cfg.Visuals

	switch h.Kind {
	case HandleArrow:
		h.tessellateArrow(b, focused)

	case HandlePlane:
		vis := h.visibility(f)
		if vis <= minOpacity {
			return
		}
		p := h.plane(f)
		a, c := p.a.Mul(p.half), p.b.Mul(p.half)
		b.convexPolygon([]mgl64.Vec3{
			p.origin.Sub(c).Sub(a),
			p.origin.Add(c).Sub(a),
			p.origin.Add(c).Add(a),
			p.origin.Sub(c).Add(a),
		}, handleColor(v, h.Direction, focused, vis))

	case HandleArc, HandleViewRing:
		if d != nil {
			tessellateActiveRotation(b, h, d)
			return
		}
		color := handleColor(v, h.Direction, focused, 1)
		normal := f.axis(h.Direction)
		if h.Kind == HandleViewRing {
			b.polyline(circlePoints(f.translation, normal, f.right, f.outerRadius()), true, v.StrokeWidth, color)
			return
		}
		half := arcHalfAngle(f, normal)
		facing := arcFacing(f, normal)
		if half >= math.Pi {
			b.polyline(circlePoints(f.translation, normal, facing, f.ringRadius()), true, v.StrokeWidth, color)
			return
		}
		b.polyline(arcPoints(f.translation, normal, facing, f.ringRadius(), -half, 2*half), false, v.StrokeWidth, color)

	case HandleViewDisc:
		color := handleColor(v, h.Direction, focused, 1)
		b.polyline(circlePoints(f.translation, f.toEye, f.right, f.innerRadius()), true, v.StrokeWidth, color)

	case HandleUniform:
		color := handleColor(v, h.Direction, focused, 1)
		b.polyline(circlePoints(f.translation, f.toEye, f.right, f.innerRadius()), true, v.StrokeWidth, color)
		b.polyline(circlePoints(f.translation, f.toEye, f.right, f.outerRadius()), true, v.StrokeWidth, color)

	case HandleArcball:
		if !focused {
			return
		}
		color := v.SColor.Float()
		color[3] *= 0.1
		b.fan(f.translation, circlePoints(f.translation, f.toEye, f.right, f.arcballRadius()), true, color)
	}
}

func (h Handle) tessellateArrow(b *shapeBuilder, focused bool) {
	f := b.f
	vis := h.visibility(f)
	if vis <= minOpacity {
		return
	}
	color := handleColor(f.cfg.Visuals, h.Direction, focused, vis)

	stroke := f.cfg.Visuals.StrokeWidth
	tipWidth := 2.4 * stroke
	a := h.arrow(f)
	tipLength := math.Min(f.size(tipWidth), a.length)
	tipStart := a.end.Sub(a.dir.Mul(tipLength))

	b.lineSegment(a.start, tipStart, stroke, color)
	if h.Mode.Kind() == KindScale {
		b.lineSegment(tipStart, a.end, tipWidth, color)
	} else {
		b.arrowHead(tipStart, a.end, tipWidth, color)
	}
}

// tessellateActiveRotation draws the full ring, the swept sector, the
// start and end spokes and, with snapping enabled, the snap ticks.
func tessellateActiveRotation(b *shapeBuilder, h Handle, d *dragState) {
	f := b.f
	v := f.cfg.Visuals
	color := handleColor(v, h.Direction, true, 1)

	radius := f.ringRadius()
	if h.Kind == HandleViewRing {
		radius = f.outerRadius()
	}
	center := f.translation
	normal := d.normal
	from := d.vector

	// Each full turn darkens the sector
	laps := math.Floor(math.Abs(d.angle) / (2 * math.Pi))
	rest := d.angle - math.Copysign(laps*2*math.Pi, d.angle)
	if laps > 0 {
		lapColor := color
		lapColor[3] *= float32(math.Min(0.25*laps, 1))
		b.fan(center, circlePoints(center, normal, from, radius), true, lapColor)
	}
	if math.Abs(rest) > 1e-5 {
		sectorColor := color
		sectorColor[3] *= float32(math.Min(0.25*(laps+1), 1))
		b.fan(center, arcPoints(center, normal, from, radius, 0, rest), false, sectorColor)
	}

	end := center.Add(circleDir(normal, from, d.angle).Mul(radius))
	b.polyline([]mgl64.Vec3{center.Add(from.Mul(radius)), center, end}, false, v.StrokeWidth, color)
	b.polyline(circlePoints(center, normal, from, radius), true, v.StrokeWidth, color)

	snapAngle := f.cfg.SnapAngle
	if !f.cfg.Snapping || snapAngle <= 0 || 2*math.Pi/snapAngle > maxSnapTicks {
		return
	}
	ticks := int(2*math.Pi/snapAngle) + 1
	for i := 0; i < ticks; i++ {
		dir := circleDir(normal, from, d.angle+float64(i)*snapAngle)
		b.lineSegment(center.Add(dir.Mul(radius*1.1)), center.Add(dir.Mul(radius*1.2)), v.StrokeWidth/2, color)
	}
}

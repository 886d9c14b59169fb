package gizmo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// HandleKind is the geometric shape of a handle.
type HandleKind int

const (
	HandleArrow    HandleKind = iota // Axis line with an arrow or box tip
	HandlePlane                      // Small quad spanned by two axes
	HandleArc                        // Rotation ring around one axis
	HandleViewRing                   // Rotation ring facing the camera
	HandleViewDisc                   // Center disc for view plane translation
	HandleUniform                    // Center disc and outer ring for uniform scale
	HandleArcball                    // Free rotation inside the gizmo
)

// String returns the kind name.
func (k HandleKind) String() string {
	switch k {
	case HandleArrow:
		return "arrow"
	case HandlePlane:
		return "plane"
	case HandleArc:
		return "arc"
	case HandleViewRing:
		return "view_ring"
	case HandleViewDisc:
		return "view_disc"
	case HandleUniform:
		return "uniform"
	case HandleArcball:
		return "arcball"
	default:
		return fmt.Sprintf("HandleKind(%d)", int(k))
	}
}

// priority orders handles whose hits are equally close.
// Lower values win: screen-space handles, then axes, planes, arcs.
func (k HandleKind) priority() int {
	switch k {
	case HandleViewDisc, HandleUniform, HandleViewRing:
		return 0
	case HandleArrow:
		return 1
	case HandlePlane:
		return 2
	case HandleArc:
		return 3
	default:
		return 4
	}
}

// Handle identifies one sub-gizmo. For plane handles Direction is the plane normal.
type Handle struct {
	Mode      Mode
	Direction Direction
	Kind      HandleKind
}

// String returns e.g. "translate_x/arrow".
func (h Handle) String() string {
	return h.Mode.String() + "/" + h.Kind.String()
}

// hit is the result of a successful hit test.
type hit struct {
	t          float64    // Distance along the pick ray
	point      mgl64.Vec3 // World position on the handle
	visibility float64
}

// better reports whether h should win over o.
func (h hit) better(kind HandleKind, o hit, oKind HandleKind) bool {
	eps := 1e-6 * math.Max(1, math.Abs(h.t))
	if math.IsInf(h.t, 1) && math.IsInf(o.t, 1) {
		return kind.priority() < oKind.priority()
	}
	if math.Abs(h.t-o.t) <= eps {
		return kind.priority() < oKind.priority()
	}
	return h.t < o.t
}

// Fade ranges for handles seen at grazing angles.
const (
	arrowFadeStart = 0.95
	arrowFadeEnd   = 0.99
	planeFadeStart = 0.70
	planeFadeEnd   = 0.86
)

// visibility returns the opacity factor of a handle in (-inf, 1].
// A handle at or below zero is neither drawn nor pickable.
func (h Handle) visibility(f *frame) float64 {
	switch h.Kind {
	case HandleArrow:
		dot := math.Abs(f.toEye.Dot(f.axis(h.Direction)))
		return math.Min(1, 1-(dot-arrowFadeStart)/(arrowFadeEnd-arrowFadeStart))
	case HandlePlane:
		dot := math.Abs(f.toEye.Dot(f.axis(h.Direction)))
		return math.Min(1, 1-((1-dot)-planeFadeStart)/(planeFadeEnd-planeFadeStart))
	}
	return 1
}

// hitTest intersects the pick ray with the handle.
func (h Handle) hitTest(f *frame, ray viewport.Ray) (hit, bool) {
	switch h.Kind {
	case HandleArrow:
		return h.hitArrow(f, ray)
	case HandlePlane:
		return h.hitPlane(f, ray)
	case HandleArc:
		return h.hitArc(f, ray)
	case HandleViewRing:
		return hitRing(f, ray, f.outerRadius())
	case HandleViewDisc:
		return hitDisc(f, ray, f.innerRadius())
	case HandleUniform:
		if hv, ok := hitDisc(f, ray, f.innerRadius()); ok {
			return hv, true
		}
		return hitRing(f, ray, f.outerRadius())
	case HandleArcball:
		hv, ok := hitDisc(f, ray, f.arcballRadius())
		hv.t = math.Inf(1)
		return hv, ok
	}
	return hit{}, false
}

// arrow is the world-space extent of an axis handle.
type arrow struct {
	start, end mgl64.Vec3
	dir        mgl64.Vec3
	length     float64
}

// arrowOverlaps reports whether a translate arrow shares its axis with a
// scale arrow and must be drawn beyond it.
func arrowOverlaps(m Mode, modes Mode) bool {
	switch m {
	case ModeTranslateX:
		return modes.Has(ModeScaleX)
	case ModeTranslateY:
		return modes.Has(ModeScaleY)
	case ModeTranslateZ:
		return modes.Has(ModeScaleZ)
	}
	return false
}

func (h Handle) arrow(f *frame) arrow {
	dir := f.axis(h.Direction)
	width := f.size(f.cfg.Visuals.StrokeWidth)
	full := f.size(f.cfg.Visuals.Size)

	var start mgl64.Vec3
	var length float64
	if arrowOverlaps(h.Mode, f.modes) {
		start = dir.Mul(full + width*3)
		length = full*0.2 + width
	} else {
		start = dir.Mul(width*0.5 + f.innerRadius())
		length = full - start.Len()
		if f.modes.Count() > 1 {
			length -= width * 2
		}
	}

	start = start.Add(f.translation)
	return arrow{
		start:  start,
		end:    start.Add(dir.Mul(length)),
		dir:    dir,
		length: length,
	}
}

func (h Handle) hitArrow(f *frame, ray viewport.Ray) (hit, bool) {
	vis := h.visibility(f)
	if vis <= 0 {
		return hit{}, false
	}
	a := h.arrow(f)
	t, p, dist := ray.ClosestToSegment(a.start, a.end)
	if dist > f.focusDistance {
		return hit{}, false
	}
	return hit{t: t, point: p, visibility: vis}, true
}

// planeAxes returns the two in-plane axes (bitangent, tangent) of a plane
// handle whose normal is d, in the local basis.
func planeAxes(d Direction) (mgl64.Vec3, mgl64.Vec3) {
	switch d {
	case DirectionX:
		return mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}
	case DirectionY:
		return mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}
	default:
		return mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}
	}
}

// plane is the world-space quad of a plane handle.
type plane struct {
	origin mgl64.Vec3
	normal mgl64.Vec3
	a, b   mgl64.Vec3 // In-plane unit axes
	half   float64    // Half edge length
}

func (h Handle) plane(f *frame) plane {
	la, lb := planeAxes(h.Direction)
	a := f.basis.Rotate(la)
	b := f.basis.Rotate(lb)
	offset := f.size(f.cfg.Visuals.Size) * 0.5

	return plane{
		origin: f.translation.Add(a.Add(b).Mul(offset)),
		normal: f.axis(h.Direction),
		a:      a,
		b:      b,
		half:   f.size(f.cfg.Visuals.Size*0.1+f.cfg.Visuals.StrokeWidth*2) * 0.5,
	}
}

func (h Handle) hitPlane(f *frame, ray viewport.Ray) (hit, bool) {
	vis := h.visibility(f)
	if vis <= 0 {
		return hit{}, false
	}
	p := h.plane(f)
	t, ok := ray.IntersectPlane(p.normal, p.origin)
	if !ok {
		return hit{}, false
	}
	point := ray.At(t)
	local := point.Sub(p.origin)
	limit := p.half + f.focusDistance*0.5
	if math.Abs(local.Dot(p.a)) > limit || math.Abs(local.Dot(p.b)) > limit {
		return hit{}, false
	}
	return hit{t: t, point: point, visibility: vis}, true
}

// arcHalfAngle returns half the angular span of a rotation arc. The arc is
// the camera-facing half circle, widening to a full circle as the axis
// turns towards the viewer.
func arcHalfAngle(f *frame, normal mgl64.Vec3) float64 {
	const minDot, maxDot = 0.990, 0.995

	dot := math.Abs(normal.Dot(f.toEye))
	angle := mgl64.Clamp((dot-minDot)/(maxDot-minDot), 0, 1)*math.Pi/2 + math.Pi/2
	if math.Abs(angle-math.Pi) < 1e-2 {
		angle = math.Pi
	}
	return angle
}

// arcFacing returns the in-plane direction of the arc midpoint: the view
// direction projected on the rotation plane.
func arcFacing(f *frame, normal mgl64.Vec3) mgl64.Vec3 {
	facing := f.toEye.Sub(normal.Mul(normal.Dot(f.toEye)))
	if n, ok := viewport.Normalize(facing); ok {
		return n
	}
	return anyPerpendicular(normal)
}

func (h Handle) hitArc(f *frame, ray viewport.Ray) (hit, bool) {
	normal := f.axis(h.Direction)
	radius := f.ringRadius()

	t, dist := ray.DistanceOnPlane(normal, f.translation)
	if math.Abs(dist-radius) > f.focusDistance {
		return hit{}, false
	}
	point := ray.At(t)
	offset, ok := viewport.Normalize(point.Sub(f.translation))
	if !ok {
		return hit{}, false
	}
	angle := viewport.SignedAngle(arcFacing(f, normal), offset, normal)
	if math.Abs(angle) > arcHalfAngle(f, normal) {
		return hit{}, false
	}
	return hit{t: t, point: point, visibility: 1}, true
}

// hitRing tests a camera-facing ring band around the gizmo origin.
func hitRing(f *frame, ray viewport.Ray, radius float64) (hit, bool) {
	t, dist := ray.DistanceOnPlane(f.toEye, f.translation)
	if math.Abs(dist-radius) > f.focusDistance {
		return hit{}, false
	}
	return hit{t: t, point: ray.At(t), visibility: 1}, true
}

// hitDisc tests a filled camera-facing disc around the gizmo origin.
func hitDisc(f *frame, ray viewport.Ray, radius float64) (hit, bool) {
	t, dist := ray.DistanceOnPlane(f.toEye, f.translation)
	if dist > radius+f.focusDistance {
		return hit{}, false
	}
	return hit{t: t, point: ray.At(t), visibility: 1}, true
}

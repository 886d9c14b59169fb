package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray represents a pick ray in world space. Screen is the window point the
// ray was cast from.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3 // Normalized direction
	Screen    mgl64.Vec2
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// parallelEpsilon is the |dot| below which a ray is treated as parallel to a plane.
const parallelEpsilon = 1e-7

// IntersectPlane intersects the ray with a plane given by normal and a point.
// Returns the ray distance and false if the ray is parallel to the plane or
// the hit lies behind the ray origin.
func (r Ray) IntersectPlane(normal, origin mgl64.Vec3) (float64, bool) {
	denom := normal.Dot(r.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return 0, false
	}
	t := origin.Sub(r.Origin).Dot(normal) / denom
	return t, t >= 0 && finite(t)
}

// DistanceOnPlane intersects the ray with a plane and returns the ray distance
// together with the distance from the hit point to the plane origin.
// If there is no hit the distance is +Inf.
func (r Ray) DistanceOnPlane(normal, origin mgl64.Vec3) (t, dist float64) {
	t, ok := r.IntersectPlane(normal, origin)
	if !ok {
		return t, math.Inf(1)
	}
	return t, r.At(t).Sub(origin).Len()
}

// ClosestToLine finds the closest points between the ray and an infinite line.
// Returns the ray parameter, the line parameter and false if the two are parallel.
// lineDir must be normalized.
func (r Ray) ClosestToLine(lineOrigin, lineDir mgl64.Vec3) (rayT, lineT float64, ok bool) {
	b := r.Direction.Dot(lineDir)
	w := r.Origin.Sub(lineOrigin)
	d := r.Direction.Dot(w)
	e := lineDir.Dot(w)
	denom := 1 - b*b

	if denom < 1e-8 {
		return 0, e, false
	}
	rayT = (b*e - d) / denom
	lineT = (e - b*d) / denom
	return rayT, lineT, true
}

// ClosestToSegment finds the closest points between the ray and the segment
// from a to b. Returns the ray distance, the point on the segment and the
// distance between the two closest points.
func (r Ray) ClosestToSegment(a, b mgl64.Vec3) (rayT float64, point mgl64.Vec3, dist float64) {
	seg := b.Sub(a)
	length := seg.Len()
	if length < 1e-12 {
		rayT = math.Max(0, a.Sub(r.Origin).Dot(r.Direction))
		return rayT, a, r.At(rayT).Sub(a).Len()
	}
	dir := seg.Mul(1 / length)

	_, s, ok := r.ClosestToLine(a, dir)
	if !ok {
		// Parallel: any segment point is equally close; use the start
		s = 0
	}
	s = mgl64.Clamp(s, 0, length)
	point = a.Add(dir.Mul(s))

	rayT = math.Max(0, point.Sub(r.Origin).Dot(r.Direction))
	return rayT, point, r.At(rayT).Sub(point).Len()
}

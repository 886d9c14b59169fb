// Package viewport provides the projection math shared by the gizmo:
// screen/world conversion, pick rays and the intersection routines used
// for hit testing. All computations run in double precision.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rect is a viewport rectangle in window coordinates (origin top-left, Y down).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a viewport rectangle anchored at the window origin.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Valid reports whether the rectangle has a finite, positive size.
func (r Rect) Valid() bool {
	return finite(r.X) && finite(r.Y) && finite(r.Width) && finite(r.Height) &&
		r.Width > 0 && r.Height > 0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p[0] >= r.X && p[0] <= r.X+r.Width && p[1] >= r.Y && p[1] <= r.Y+r.Height
}

// Aspect returns width / height.
func (r Rect) Aspect() float64 {
	if r.Height == 0 {
		return 1
	}
	return r.Width / r.Height
}

// minClipW is the smallest clip-space w accepted as "in front of the camera".
const minClipW = 1e-10

// WorldToScreen projects a point through mvp into window coordinates.
// Returns false if the point is behind the camera or the projection degenerates.
func WorldToScreen(r Rect, mvp mgl64.Mat4, p mgl64.Vec3) (mgl64.Vec2, bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	if clip[3] < minClipW || !finite(clip[3]) {
		return mgl64.Vec2{}, false
	}

	ndcX := clip[0] / clip[3]
	ndcY := -clip[1] / clip[3] // Flip Y

	c := r.Center()
	out := mgl64.Vec2{
		c[0] + ndcX*r.Width/2,
		c[1] + ndcY*r.Height/2,
	}
	if !finite(out[0]) || !finite(out[1]) {
		return mgl64.Vec2{}, false
	}
	return out, true
}

// ScreenToWorld unprojects a window point at the given NDC depth
// (-1 near, 1 far) using the inverse view-projection matrix.
func ScreenToWorld(r Rect, invViewProj mgl64.Mat4, p mgl64.Vec2, ndcZ float64) mgl64.Vec3 {
	ndcX := (p[0]-r.X)/r.Width*2 - 1
	ndcY := 1 - (p[1]-r.Y)/r.Height*2

	world := invViewProj.Mul4x1(mgl64.Vec4{ndcX, ndcY, ndcZ, 1})

	// w is zero when the far plane is at infinity
	if math.Abs(world[3]) < 1e-7 {
		world[3] = math.Copysign(1e-7, world[3])
	}
	return world.Vec3().Mul(1 / world[3])
}

// ScreenToRay converts a window point into a world-space pick ray.
// Works for perspective and orthographic projections alike.
func ScreenToRay(r Rect, invViewProj mgl64.Mat4, p mgl64.Vec2) (Ray, bool) {
	near := ScreenToWorld(r, invViewProj, p, -1)
	far := ScreenToWorld(r, invViewProj, p, 1)

	dir, ok := Normalize(far.Sub(near))
	if !ok || !FiniteVec3(near) {
		return Ray{}, false
	}
	return Ray{Origin: near, Direction: dir, Screen: p}, true
}

// PixelSize returns the world-space size of one viewport unit at the depth
// of the given point. Returns false if the point is behind the camera.
func PixelSize(r Rect, viewProj, proj mgl64.Mat4, p mgl64.Vec3) (float64, bool) {
	w := viewProj.Mul4x1(p.Vec4(1))[3]
	sx := proj.At(0, 0)
	if w < minClipW || sx == 0 {
		return 0, false
	}
	size := w / sx / r.Width * 2
	return size, finite(size) && size > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

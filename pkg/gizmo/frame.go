package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// frame holds everything derived from a Config and the entity transform
// that handles need for picking, dragging and drawing.
type frame struct {
	cfg   Config
	modes Mode

	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4

	transform   Transform
	translation mgl64.Vec3
	rotation    mgl64.Quat
	scale       mgl64.Vec3
	basis       mgl64.Quat // Rotation in local space, identity in global

	center         mgl64.Vec2 // Window position of the gizmo origin
	scaleFactor    float64    // World units per point at the gizmo depth
	focusDistance  float64    // Pick tolerance in world units
	pixelsPerPoint float64

	// Orthonormal camera-facing basis at the gizmo origin.
	// toEye points from the gizmo towards the viewer.
	toEye, right, up mgl64.Vec3
}

// newFrame prepares a frame. Returns false if the gizmo origin cannot be
// projected, e.g. because it is behind the camera.
func newFrame(cfg Config, t Transform) (*frame, bool) {
	f := &frame{
		cfg:            cfg,
		modes:          cfg.EnabledModes(),
		viewProj:       cfg.Projection.Mul4(cfg.View),
		transform:      t,
		pixelsPerPoint: cfg.pixelsPerPoint(),
	}
	f.scale, f.rotation, f.translation = t.parts()
	f.rotation = f.rotation.Normalize()

	f.basis = mgl64.QuatIdent()
	if cfg.LocalSpace() {
		f.basis = f.rotation
	}

	var ok bool
	if f.invViewProj, ok = viewport.Invert(f.viewProj); !ok {
		return nil, false
	}
	if f.center, ok = viewport.WorldToScreen(cfg.Viewport, f.viewProj, f.translation); !ok {
		return nil, false
	}

	px, ok := viewport.PixelSize(cfg.Viewport, f.viewProj, cfg.Projection, f.translation)
	if !ok {
		return nil, false
	}
	f.scaleFactor = px * f.pixelsPerPoint
	f.focusDistance = f.scaleFactor * (cfg.Visuals.StrokeWidth/2 + 5)

	ray, ok := viewport.ScreenToRay(cfg.Viewport, f.invViewProj, f.center)
	if !ok {
		return nil, false
	}
	f.toEye = ray.Direction.Mul(-1)

	// View matrix rows 0 and 1 are the camera right and up vectors
	// for both left and right handed conventions.
	camRight := cfg.View.Row(0).Vec3()
	camUp := cfg.View.Row(1).Vec3()

	f.right = viewport.NormalizeOr(camRight.Sub(f.toEye.Mul(camRight.Dot(f.toEye))), anyPerpendicular(f.toEye))
	up := camUp.Sub(f.toEye.Mul(camUp.Dot(f.toEye)))
	up = up.Sub(f.right.Mul(up.Dot(f.right)))
	f.up = viewport.NormalizeOr(up, f.toEye.Cross(f.right))

	return f, true
}

// axis returns the world direction of a handle axis.
func (f *frame) axis(d Direction) mgl64.Vec3 {
	if d == DirectionView {
		return f.toEye
	}
	return f.basis.Rotate(unitAxis(d))
}

// ray casts a pick ray through a window position.
func (f *frame) ray(cursor mgl64.Vec2) (viewport.Ray, bool) {
	return viewport.ScreenToRay(f.cfg.Viewport, f.invViewProj, cursor)
}

// project maps a world position to the window.
func (f *frame) project(p mgl64.Vec3) (mgl64.Vec2, bool) {
	return viewport.WorldToScreen(f.cfg.Viewport, f.viewProj, p)
}

// size converts a length in points to world units at the gizmo depth.
func (f *frame) size(points float64) float64 {
	return f.scaleFactor * points
}

// worldPerPixel is the world length of one window pixel at the gizmo depth.
func (f *frame) worldPerPixel() float64 {
	return f.scaleFactor / f.pixelsPerPoint
}

// Radii shared by the circular handles.
func (f *frame) ringRadius() float64 {
	return f.size(f.cfg.Visuals.Size)
}

func (f *frame) innerRadius() float64 {
	return f.size(f.cfg.Visuals.Size) * 0.2
}

func (f *frame) outerRadius() float64 {
	return f.size(f.cfg.Visuals.Size + f.cfg.Visuals.StrokeWidth + 5)
}

func (f *frame) arcballRadius() float64 {
	return f.size(f.cfg.Visuals.Size + f.cfg.Visuals.StrokeWidth - 5)
}

func unitAxis(d Direction) mgl64.Vec3 {
	switch d {
	case DirectionX:
		return mgl64.Vec3{1, 0, 0}
	case DirectionY:
		return mgl64.Vec3{0, 1, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

// anyPerpendicular returns a unit vector perpendicular to unit vector n.
func anyPerpendicular(n mgl64.Vec3) mgl64.Vec3 {
	p := n.Cross(mgl64.Vec3{0, 1, 0})
	if p.Len() < 1e-6 {
		p = n.Cross(mgl64.Vec3{1, 0, 0})
	}
	return p.Normalize()
}

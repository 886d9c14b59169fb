// Package camera provides the orbit camera used by the gizmo tools.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target mgl64.Vec3

	// Spherical coordinates
	Distance float64 // Distance from target
	Pitch    float64 // Vertical angle, radians
	Yaw      float64 // Horizontal angle, radians

	FOV          float64 // Vertical field of view, radians
	Near, Far    float64
	Orthographic bool

	// Constraints
	MinDistance float64
	MaxDistance float64
	MaxPitch    float64

	// Sensitivity
	DragSensitivity float64 // Radians per pixel
	ZoomSensitivity float64 // Fraction of the distance per wheel step
}

// NewOrbitCamera creates an orbit camera looking at the origin from the front right.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        8,
		Pitch:           0.45,
		Yaw:             0.6,
		FOV:             mgl64.DegToRad(45),
		Near:            0.1,
		Far:             1000,
		MinDistance:     0.5,
		MaxDistance:     500,
		MaxPitch:        1.5,
		DragSensitivity: 0.008,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl64.Vec3 {
	sp, cp := math.Sincos(c.Pitch)
	sy, cy := math.Sincos(c.Yaw)
	return c.Target.Add(mgl64.Vec3{cp * sy, sp, cp * cy}.Mul(c.Distance))
}

// ViewMatrix returns the world to view matrix.
func (c *OrbitCamera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), c.Target, mgl64.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the view to clip matrix for the given aspect ratio.
// Orthographic cameras size the view volume so the target plane keeps the
// framing of the perspective camera.
func (c *OrbitCamera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Orthographic {
		h := c.Distance * math.Tan(c.FOV/2)
		w := h * aspect
		return mgl64.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// HandleDrag rotates the camera by a mouse delta in pixels.
func (c *OrbitCamera) HandleDrag(dx, dy float64) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch += dy * c.DragSensitivity
	c.Pitch = mgl64.Clamp(c.Pitch, -c.MaxPitch, c.MaxPitch)
}

// HandleZoom moves the camera toward the target for positive wheel steps.
func (c *OrbitCamera) HandleZoom(delta float64) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = mgl64.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandlePan shifts the target in the camera plane by a mouse delta in pixels.
func (c *OrbitCamera) HandlePan(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	view := c.ViewMatrix()
	right := mgl64.Vec3{view.At(0, 0), view.At(0, 1), view.At(0, 2)}
	up := mgl64.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}

	// World units covered by one pixel at the target distance
	perPixel := 2 * c.Distance * math.Tan(c.FOV/2) / viewportHeight
	c.Target = c.Target.Sub(right.Mul(dx * perPixel)).Add(up.Mul(dy * perPixel))
}

// FitToRadius frames a sphere of the given radius around target.
func (c *OrbitCamera) FitToRadius(target mgl64.Vec3, radius float64) {
	c.Target = target
	c.Distance = radius / math.Sin(c.FOV/2)
	c.Distance = mgl64.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

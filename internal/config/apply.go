package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/internal/camera"
	"github.com/Faultbox/midgard-gizmo/internal/logger"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.PixelsPerPoint < 0 {
		return fmt.Errorf("window: pixels_per_point must not be negative")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera: fov must be in (0, 180) degrees, got %g", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera: need 0 < near < far, got near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera: distance must be positive")
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	g := gizmo.DefaultConfig()
	g.View = mgl64.LookAtV(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	g.Projection = mgl64.Perspective(mgl64.DegToRad(c.Camera.FOV), 1, c.Camera.Near, c.Camera.Far)
	g.Viewport = c.Viewport()
	if err := c.Gizmo.Apply(&g); err != nil {
		return err
	}
	return g.Validate()
}

// Viewport returns the full window rectangle.
func (c *Config) Viewport() viewport.Rect {
	return viewport.NewRect(float64(c.Window.Width), float64(c.Window.Height))
}

// Apply writes the handle set, orientation, pivot, snapping and style into g.
// Matrices and the viewport of g are left untouched.
func (gc GizmoConfig) Apply(g *gizmo.Config) error {
	modes, err := gizmo.ParseModes(gc.Modes)
	if err != nil {
		return fmt.Errorf("gizmo: modes: %w", err)
	}
	orientation, err := gizmo.ParseOrientation(gc.Orientation)
	if err != nil {
		return fmt.Errorf("gizmo: %w", err)
	}
	pivot, err := gizmo.ParsePivotPoint(gc.Pivot)
	if err != nil {
		return fmt.Errorf("gizmo: %w", err)
	}

	g.Modes = modes
	g.Orientation = orientation
	g.Pivot = pivot
	g.Snapping = gc.Snapping
	g.SnapAngle = mgl64.DegToRad(gc.SnapAngle)
	g.SnapDistance = gc.SnapDistance
	g.SnapScale = gc.SnapScale
	g.Visuals = gc.Visuals.Visuals()
	return nil
}

// Visuals converts the YAML style to the gizmo style.
func (v VisualsConfig) Visuals() gizmo.Visuals {
	return gizmo.Visuals{
		XColor:         gizmo.Color(v.XColor),
		YColor:         gizmo.Color(v.YColor),
		ZColor:         gizmo.Color(v.ZColor),
		SColor:         gizmo.Color(v.SColor),
		HighlightColor: gizmo.Color(v.HighlightColor),
		InactiveAlpha:  v.InactiveAlpha,
		HighlightAlpha: v.HighlightAlpha,
		StrokeWidth:    v.StrokeWidth,
		Size:           v.Size,
	}
}

// OrbitCamera creates the initial camera.
func (cc CameraConfig) OrbitCamera() *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.Target = mgl64.Vec3(cc.Target)
	c.Distance = cc.Distance
	c.Yaw = mgl64.DegToRad(cc.Yaw)
	c.Pitch = mgl64.DegToRad(cc.Pitch)
	c.FOV = mgl64.DegToRad(cc.FOV)
	c.Near = cc.Near
	c.Far = cc.Far
	c.Orthographic = cc.Orthographic
	return c
}

// GizmoConfig builds a complete library config for the given camera and window.
func (c *Config) GizmoConfig(cam *camera.OrbitCamera, model mgl64.Mat4) (gizmo.Config, error) {
	g := gizmo.DefaultConfig()
	if err := c.Gizmo.Apply(&g); err != nil {
		return g, err
	}
	vp := c.Viewport()
	g.Viewport = vp
	g.View = cam.ViewMatrix()
	g.Projection = cam.ProjectionMatrix(vp.Aspect())
	g.Model = model
	g.PixelsPerPoint = c.Window.PixelsPerPoint
	return g, nil
}

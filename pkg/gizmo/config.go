package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// Default snapping increments.
const (
	DefaultSnapAngle    = math.Pi / 32
	DefaultSnapDistance = 0.1
	DefaultSnapScale    = 0.1
)

// Color is an 8-bit RGBA color with straight (non-premultiplied) alpha.
type Color [4]uint8

// RGBA creates a color.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// Float converts the color to normalized float components.
func (c Color) Float() [4]float32 {
	return [4]float32{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
		float32(c[3]) / 255,
	}
}

// Visuals controls the look of the gizmo.
type Visuals struct {
	XColor Color // X axis handles
	YColor Color // Y axis handles
	ZColor Color // Z axis handles
	SColor Color // View handles

	// HighlightColor replaces the axis color of a hovered or dragged handle.
	// Leave the alpha at zero to keep the axis color.
	HighlightColor Color

	InactiveAlpha  float64 // Opacity of handles that are not focused
	HighlightAlpha float64 // Opacity of the focused handle

	StrokeWidth float64 // Line width in points
	Size        float64 // Gizmo radius in points
}

// DefaultVisuals returns the default look.
func DefaultVisuals() Visuals {
	return Visuals{
		XColor:         RGBA(255, 0, 125, 255),
		YColor:         RGBA(0, 255, 125, 255),
		ZColor:         RGBA(0, 125, 255, 255),
		SColor:         RGBA(255, 255, 255, 255),
		InactiveAlpha:  0.7,
		HighlightAlpha: 1.0,
		StrokeWidth:    4,
		Size:           75,
	}
}

// Config is the per-frame configuration supplied by the host.
type Config struct {
	View       mgl64.Mat4 // World to view
	Projection mgl64.Mat4 // View to clip, perspective or orthographic
	Model      mgl64.Mat4 // Transform of the manipulated entity

	// Viewport is the window rectangle the projection maps to, in pixels.
	// Cursor positions use the same coordinate space.
	Viewport viewport.Rect

	// Modes is the set of enabled handles.
	Modes Mode
	// ModeOverride forces a single handle. When set, Modes is ignored and a
	// drag started anywhere in the viewport activates that handle.
	ModeOverride Mode

	Orientation Orientation
	// Pivot is used by UpdateTargets.
	Pivot PivotPoint

	Snapping     bool
	SnapAngle    float64 // Radians
	SnapDistance float64 // World units
	SnapScale    float64 // Scale factor increment

	Visuals Visuals

	// PixelsPerPoint converts style sizes (points) to pixels.
	PixelsPerPoint float64
}

// DefaultConfig returns a config with every handle enabled, identity
// matrices and an empty viewport. View, Projection and Viewport must be set
// before use.
func DefaultConfig() Config {
	return Config{
		View:           mgl64.Ident4(),
		Projection:     mgl64.Ident4(),
		Model:          mgl64.Ident4(),
		Modes:          ModeAll,
		Orientation:    OrientationGlobal,
		SnapAngle:      DefaultSnapAngle,
		SnapDistance:   DefaultSnapDistance,
		SnapScale:      DefaultSnapScale,
		Visuals:        DefaultVisuals(),
		PixelsPerPoint: 1,
	}
}

// EnabledModes returns the handles in effect, taking ModeOverride into account.
func (c Config) EnabledModes() Mode {
	if c.ModeOverride != 0 {
		return c.ModeOverride
	}
	return c.Modes & ModeAll
}

// LocalSpace reports whether handles follow the entity rotation.
func (c Config) LocalSpace() bool {
	return c.Orientation == OrientationLocal
}

func (c Config) pixelsPerPoint() float64 {
	if c.PixelsPerPoint == 0 {
		return 1
	}
	return c.PixelsPerPoint
}

// Validate checks the config. The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if !c.Viewport.Valid() {
		return configError("viewport", "size must be finite and positive, got %gx%g",
			c.Viewport.Width, c.Viewport.Height)
	}
	if _, ok := viewport.Invert(c.View); !ok {
		return configError("view matrix", "matrix is singular or not finite")
	}
	if _, ok := viewport.Invert(c.Projection); !ok {
		return configError("projection matrix", "matrix is singular or not finite")
	}
	if !viewport.FiniteMat4(c.Model) {
		return configError("model matrix", "matrix has non-finite entries")
	}
	if _, ok := viewport.Invert(c.Projection.Mul4(c.View)); !ok {
		return configError("view-projection matrix", "matrix is singular")
	}

	if c.ModeOverride != 0 && !c.ModeOverride.Single() {
		return configError("mode override", "must name exactly one handle, got %s", c.ModeOverride)
	}
	if c.Orientation != OrientationGlobal && c.Orientation != OrientationLocal {
		return configError("orientation", "unknown value %d", c.Orientation)
	}
	if c.Pivot != PivotMedian && c.Pivot != PivotIndividual {
		return configError("pivot point", "unknown value %d", c.Pivot)
	}

	for _, s := range []struct {
		name string
		v    float64
	}{
		{"snap angle", c.SnapAngle},
		{"snap distance", c.SnapDistance},
		{"snap scale", c.SnapScale},
	} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) || s.v < 0 {
			return configError(s.name, "must be finite and non-negative, got %g", s.v)
		}
	}

	ppp := c.pixelsPerPoint()
	if math.IsNaN(ppp) || math.IsInf(ppp, 0) || ppp <= 0 {
		return configError("pixels per point", "must be finite and positive, got %g", c.PixelsPerPoint)
	}

	v := c.Visuals
	if !(v.StrokeWidth > 0) || math.IsInf(v.StrokeWidth, 0) {
		return configError("stroke width", "must be finite and positive, got %g", v.StrokeWidth)
	}
	if !(v.Size > 0) || math.IsInf(v.Size, 0) {
		return configError("gizmo size", "must be finite and positive, got %g", v.Size)
	}
	if !(v.InactiveAlpha >= 0 && v.InactiveAlpha <= 1) {
		return configError("inactive alpha", "must be within [0, 1], got %g", v.InactiveAlpha)
	}
	if !(v.HighlightAlpha >= 0 && v.HighlightAlpha <= 1) {
		return configError("highlight alpha", "must be within [0, 1], got %g", v.HighlightAlpha)
	}
	return nil
}

// modesChanged reports whether switching from c to o needs new handles.
func (c Config) modesChanged(o Config) bool {
	return c.EnabledModes() != o.EnabledModes()
}

// Package scene draws the reference geometry around the manipulated entity:
// a ground grid and the entity box. Lines are added to gizmo DrawData in
// window pixels so the same renderers draw scene and gizmo.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// nearW is the smallest clip w kept when clipping lines at the camera plane.
const nearW = 1e-4

// Overlay projects world-space lines for one camera.
type Overlay struct {
	rect     viewport.Rect
	viewProj mgl64.Mat4
	out      *gizmo.DrawData
}

// NewOverlay creates an overlay for the camera of cfg writing into out.
func NewOverlay(cfg gizmo.Config, out *gizmo.DrawData) *Overlay {
	return &Overlay{
		rect:     cfg.Viewport,
		viewProj: cfg.Projection.Mul4(cfg.View),
		out:      out,
	}
}

// Line draws a world-space segment. Parts behind the camera are clipped.
func (o *Overlay) Line(a, b mgl64.Vec3, width float32, color [4]float32) bool {
	ca := o.viewProj.Mul4x1(a.Vec4(1))
	cb := o.viewProj.Mul4x1(b.Vec4(1))
	if ca.W() < nearW && cb.W() < nearW {
		return false
	}
	if ca.W() < nearW {
		a = a.Add(b.Sub(a).Mul((nearW - ca.W()) / (cb.W() - ca.W())))
	} else if cb.W() < nearW {
		b = b.Add(a.Sub(b).Mul((nearW - cb.W()) / (ca.W() - cb.W())))
	}

	sa, ok := viewport.WorldToScreen(o.rect, o.viewProj, a)
	if !ok {
		return false
	}
	sb, ok := viewport.WorldToScreen(o.rect, o.viewProj, b)
	if !ok {
		return false
	}
	o.out.AddLine(vec32(sa), vec32(sb), width, color)
	return true
}

// Box draws the edges of the [-half, half] cube transformed by model.
func (o *Overlay) Box(model mgl64.Mat4, half float64, width float32, color [4]float32) {
	var corners [8]mgl64.Vec3
	for i := range corners {
		c := mgl64.Vec3{-half, -half, -half}
		if i&1 != 0 {
			c[0] = half
		}
		if i&2 != 0 {
			c[1] = half
		}
		if i&4 != 0 {
			c[2] = half
		}
		corners[i] = mgl64.TransformCoordinate(c, model)
	}
	// Corners differing in exactly one bit share an edge
	for i := 0; i < 8; i++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				o.Line(corners[i], corners[j], width, color)
			}
		}
	}
}

// Grid draws lines on the y = 0 plane every step units out to extent. The
// X and Z axis lines use their own colors.
func (o *Overlay) Grid(extent, step float64, width float32, color, xAxis, zAxis [4]float32) {
	if step <= 0 || extent <= 0 {
		return
	}
	n := int(extent / step)
	for i := -n; i <= n; i++ {
		v := float64(i) * step
		cx, cz := color, color
		if i == 0 {
			cx, cz = xAxis, zAxis
		}
		o.Line(mgl64.Vec3{-extent, 0, v}, mgl64.Vec3{extent, 0, v}, width, cx)
		o.Line(mgl64.Vec3{v, 0, -extent}, mgl64.Vec3{v, 0, extent}, width, cz)
	}
}

func vec32(v mgl64.Vec2) [2]float32 {
	return [2]float32{float32(v[0]), float32(v[1])}
}

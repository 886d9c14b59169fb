package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawIsFinite(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"default", func(*Config) {}},
		{"orthographic", func(c *Config) { c.Projection = mgl64.Ortho(-4, 4, -3, 3, 0.1, 100) }},
		{"local rotated", func(c *Config) {
			c.Orientation = OrientationLocal
			c.Model = mgl64.HomogRotate3D(0.8, mgl64.Vec3{1, 1, 0}.Normalize()).Mul4(mgl64.Scale3D(2, 0.5, 1))
		}},
		{"top down", func(c *Config) {
			c.View = mgl64.LookAtV(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{}, mgl64.Vec3{0, 0, -1})
		}},
		{"grazing", func(c *Config) {
			c.View = mgl64.LookAtV(mgl64.Vec3{10, 0.001, 0}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
		}},
		{"off screen", func(c *Config) { c.Model = mgl64.Translate3D(6, 0, 0) }},
		{"behind camera", func(c *Config) { c.Model = mgl64.Translate3D(0, 0, 20) }},
		{"near plane", func(c *Config) { c.Model = mgl64.Translate3D(0, 0, 9.85) }},
		{"snapping", func(c *Config) { c.Snapping = true }},
		{"hidpi", func(c *Config) { c.PixelsPerPoint = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(ModeAll)
			tt.modify(&cfg)
			g := newTestGizmo(t, cfg)

			requireFiniteDrawData(t, g.Draw())

			for _, p := range [][2]float64{{cx, cy}, {cx + 50, cy}, {cx + 75, cy}, {cx, cy - 40}} {
				g.Update(at(p[0], p[1]))
				requireFiniteDrawData(t, g.Draw())
			}
		})
	}
}

func TestDrawBehindCameraIsEmpty(t *testing.T) {
	cfg := testConfig(ModeAll)
	cfg.Model = mgl64.Translate3D(0, 0, 20)
	g := newTestGizmo(t, cfg)

	assert.True(t, g.Draw().Empty())
}

func TestEdgeOnPlaneIsCulled(t *testing.T) {
	// Normal of the XZ plane is perpendicular to the view direction
	g := newTestGizmo(t, testConfig(ModeTranslateXZ))
	d := g.Draw()
	assert.Empty(t, d.Vertices)
	assert.Empty(t, d.Indices)

	// Not pickable either
	g.Update(at(cx+37.5, cy))
	assert.False(t, g.IsFocused())

	// The XY plane faces the camera
	g = newTestGizmo(t, testConfig(ModeTranslateXY))
	assert.NotEmpty(t, g.Draw().Vertices)
}

func TestAxisParallelToViewIsCulled(t *testing.T) {
	g := newTestGizmo(t, testConfig(ModeTranslateZ))
	assert.True(t, g.Draw().Empty())
}

func TestDrawIsDeterministic(t *testing.T) {
	cfg := testConfig(ModeAll)
	cfg.Orientation = OrientationLocal
	cfg.Model = mgl64.HomogRotate3DY(0.3)

	a := newTestGizmo(t, cfg)
	b := newTestGizmo(t, cfg)
	a.Update(at(cx+50, cy))
	b.Update(at(cx+50, cy))

	assert.Equal(t, a.Draw(), b.Draw())
	assert.Equal(t, a.Draw(), a.Draw())
}

func TestHoverHighlights(t *testing.T) {
	g := newTestGizmo(t, testConfig(ModeTranslateX))
	idle := g.Draw()
	require.False(t, idle.Empty())

	g.Update(at(cx+50, cy))
	hovered := g.Draw()
	require.Equal(t, len(idle.Colors), len(hovered.Colors))

	v := DefaultVisuals()
	assert.InDelta(t, v.InactiveAlpha, idle.Colors[0][3], 1e-6)
	assert.InDelta(t, v.HighlightAlpha, hovered.Colors[0][3], 1e-6)
}

func TestDrawWhileDraggingShowsActiveHandle(t *testing.T) {
	g := newTestGizmo(t, testConfig(ModeAll))
	idle := g.Draw()

	dragPath(t, g, [2]float64{cx + 50, cy}, [2]float64{cx + 70, cy})
	active := g.Draw()

	assert.False(t, active.Empty())
	assert.Less(t, active.Triangles(), idle.Triangles())
}

func TestActiveRotationFeedback(t *testing.T) {
	cfg := testConfig(ModeRotateZ)
	g := newTestGizmo(t, cfg)
	idle := g.Draw()

	dragPath(t, g, [2]float64{cx + 75, cy}, [2]float64{cx, cy - 75})
	plain := g.Draw()
	requireFiniteDrawData(t, plain)
	assert.Greater(t, plain.Triangles(), idle.Triangles(), "sector and spokes are added")

	cfg.Snapping = true
	require.NoError(t, g.UpdateConfig(cfg))
	snapped := g.Draw()
	assert.Greater(t, snapped.Triangles(), plain.Triangles(), "snap ticks are added")
}

func TestDrawDataAppend(t *testing.T) {
	var a, b DrawData
	white := [4]float32{1, 1, 1, 1}
	a.AddTriangle([2]float32{0, 0}, [2]float32{1, 0}, [2]float32{0, 1}, white)
	b.AddLine([2]float32{0, 0}, [2]float32{10, 0}, 2, white)

	a.Append(b)
	assert.Len(t, a.Vertices, 7)
	assert.Equal(t, 3, a.Triangles())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 3, 5, 6}, a.Indices)
	assert.Equal(t, [2]float32{0, 1}, a.Vertices[3])

	a.Reset()
	assert.True(t, a.Empty())
}

func TestAddLineSkipsTransparent(t *testing.T) {
	var d DrawData
	d.AddLine([2]float32{0, 0}, [2]float32{10, 0}, 2, [4]float32{1, 1, 1, 0})
	d.AddLine([2]float32{5, 5}, [2]float32{5, 5}, 2, [4]float32{1, 1, 1, 1})
	assert.True(t, d.Empty())
}

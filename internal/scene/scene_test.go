package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

var white = [4]float32{1, 1, 1, 1}

func testConfig() gizmo.Config {
	cfg := gizmo.DefaultConfig()
	cfg.View = mgl64.LookAtV(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	cfg.Projection = mgl64.Perspective(mgl64.DegToRad(45), 800.0/600.0, 0.1, 100)
	cfg.Viewport = viewport.NewRect(800, 600)
	return cfg
}

func TestLineProjects(t *testing.T) {
	var dd gizmo.DrawData
	o := NewOverlay(testConfig(), &dd)

	require.True(t, o.Line(mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{1, 0, 0}, 2, white))
	require.Len(t, dd.Vertices, 4)

	// A horizontal line through the center is a quad around y = 300
	for _, v := range dd.Vertices {
		assert.InDelta(t, 300, v[1], 1.0001)
	}
	assert.Less(t, dd.Vertices[0][0], float32(400))
	assert.Greater(t, dd.Vertices[1][0], float32(400))
}

func TestLineBehindCamera(t *testing.T) {
	var dd gizmo.DrawData
	o := NewOverlay(testConfig(), &dd)

	assert.False(t, o.Line(mgl64.Vec3{0, 0, 20}, mgl64.Vec3{1, 0, 20}, 2, white))
	assert.True(t, dd.Empty())

	// Crossing the camera plane keeps the visible part
	assert.True(t, o.Line(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, -1, 20}, 2, white))
	for _, v := range dd.Vertices {
		assert.False(t, v[0] != v[0] || v[1] != v[1], "NaN vertex")
	}
}

func TestBox(t *testing.T) {
	var dd gizmo.DrawData
	NewOverlay(testConfig(), &dd).Box(mgl64.Translate3D(1, 0, 0), 0.5, 1, white)
	assert.Equal(t, 12*2, dd.Triangles())
}

func TestGrid(t *testing.T) {
	cfg := testConfig()
	cfg.View = mgl64.LookAtV(mgl64.Vec3{0, 8, 8}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})

	var dd gizmo.DrawData
	NewOverlay(cfg, &dd).Grid(2, 1, 1, white, [4]float32{1, 0, 0, 1}, [4]float32{0, 0, 1, 1})

	// 5 lines per direction, 2 triangles each
	assert.Equal(t, 20, dd.Triangles())
	assert.Contains(t, dd.Colors, [4]float32{1, 0, 0, 1})
	assert.Contains(t, dd.Colors, [4]float32{0, 0, 1, 1})

	dd.Reset()
	NewOverlay(cfg, &dd).Grid(2, 0, 1, white, white, white)
	assert.True(t, dd.Empty())
}

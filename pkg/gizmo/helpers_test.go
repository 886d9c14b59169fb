package gizmo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// Screen center of the 800x600 test viewport.
const cx, cy = 400.0, 300.0

// testConfig looks at the origin from (0, 0, 10) with a 45 degree
// perspective camera.
func testConfig(modes Mode) Config {
	cfg := DefaultConfig()
	cfg.Viewport = viewport.NewRect(800, 600)
	cfg.View = mgl64.LookAtV(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	cfg.Projection = mgl64.Perspective(mgl64.DegToRad(45), 800.0/600.0, 0.1, 100)
	cfg.Modes = modes
	return cfg
}

// worldPerPixel is the world size of one pixel at the origin for testConfig.
func worldPerPixel() float64 {
	return 2 * 10 * math.Tan(mgl64.DegToRad(45)/2) / 600
}

func newTestGizmo(t *testing.T, cfg Config) *Gizmo {
	t.Helper()
	g, err := New(cfg)
	require.NoError(t, err)
	return g
}

func at(x, y float64) Interaction {
	return Interaction{Cursor: [2]float64{x, y}}
}

func press(x, y float64) Interaction {
	return Interaction{Cursor: [2]float64{x, y}, DragStarted: true, Dragging: true}
}

func hold(x, y float64) Interaction {
	return Interaction{Cursor: [2]float64{x, y}, Dragging: true}
}

// dragPath presses at from, then drags through path and returns the last result.
func dragPath(t *testing.T, g *Gizmo, from [2]float64, path ...[2]float64) Result {
	t.Helper()

	_, ok := g.Update(press(from[0], from[1]))
	require.False(t, ok, "drag start must not produce a result")
	require.Equal(t, PhaseDragging, g.Phase())

	var last Result
	for _, p := range path {
		if res, ok := g.Update(hold(p[0], p[1])); ok {
			last = res
		}
	}
	return last
}

func requireFiniteDrawData(t *testing.T, d DrawData) {
	t.Helper()

	require.Len(t, d.Colors, len(d.Vertices))
	require.Zero(t, len(d.Indices)%3, "indices must form triangles")
	for i, v := range d.Vertices {
		for _, c := range v {
			require.False(t, math.IsNaN(float64(c)) || math.IsInf(float64(c), 0),
				"vertex %d is not finite: %v", i, v)
		}
	}
	for _, idx := range d.Indices {
		require.Less(t, int(idx), len(d.Vertices))
	}
}

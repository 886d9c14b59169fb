package gizmo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetAt(x, y, z float64) Transform {
	t := IdentityTransform()
	t.Translation = [3]float64{x, y, z}
	return t
}

func TestMedianTransform(t *testing.T) {
	assert.Equal(t, IdentityTransform(), MedianTransform(nil))

	a := targetAt(1, 0, 0)
	a.Scale = [3]float64{1, 3, 1}
	b := targetAt(3, 2, 0)
	b.Rotation = makeTransform(mgl64.Vec3{1, 1, 1}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}), mgl64.Vec3{}).Rotation

	m := MedianTransform([]Transform{a, b})
	assert.InDeltaSlice(t, []float64{2, 1, 0}, m.Translation[:], 1e-12)
	assert.InDeltaSlice(t, []float64{1, 2, 1}, m.Scale[:], 1e-12)
	assert.InDeltaSlice(t, b.Rotation[:], m.Rotation[:], 1e-12)
}

// updateTargets presses at from, drags to to and returns the last targets.
func updateTargets(t *testing.T, g *Gizmo, targets []Transform, from, to [2]float64) []Transform {
	t.Helper()

	_, out, ok := g.UpdateTargets(press(from[0], from[1]), targets)
	require.False(t, ok)
	require.Nil(t, out)
	require.Equal(t, PhaseDragging, g.Phase())

	// The host writes the results back; the drag must not compound them
	var last []Transform
	for _, p := range [][2]float64{{(from[0] + to[0]) / 2, (from[1] + to[1]) / 2}, to} {
		_, out, ok := g.UpdateTargets(hold(p[0], p[1]), targets)
		require.True(t, ok)
		require.Len(t, out, len(targets))
		targets, last = out, out
	}
	return last
}

func TestUpdateTargets(t *testing.T) {
	quarterZ := [4]float64{0, 0, math.Sqrt2 / 2, math.Sqrt2 / 2}
	ident := [4]float64{0, 0, 0, 1}

	tests := []struct {
		name      string
		modes     Mode
		pivot     PivotPoint
		from, to  [2]float64
		wantTrans [2][3]float64
		wantRot   [4]float64
		wantScale [3]float64
	}{
		{
			name:      "translate",
			modes:     ModeTranslateX,
			from:      [2]float64{cx + 50, cy},
			to:        [2]float64{cx + 100, cy},
			wantTrans: [2][3]float64{{-1 + 50*worldPerPixel(), 0, 0}, {1 + 50*worldPerPixel(), 0, 0}},
			wantRot:   ident,
			wantScale: [3]float64{1, 1, 1},
		},
		{
			name:      "rotate around median",
			modes:     ModeRotateZ,
			from:      [2]float64{cx + 75, cy},
			to:        [2]float64{cx, cy - 75},
			wantTrans: [2][3]float64{{0, -1, 0}, {0, 1, 0}},
			wantRot:   quarterZ,
			wantScale: [3]float64{1, 1, 1},
		},
		{
			name:      "rotate around origins",
			modes:     ModeRotateZ,
			pivot:     PivotIndividual,
			from:      [2]float64{cx + 75, cy},
			to:        [2]float64{cx, cy - 75},
			wantTrans: [2][3]float64{{-1, 0, 0}, {1, 0, 0}},
			wantRot:   quarterZ,
			wantScale: [3]float64{1, 1, 1},
		},
		{
			name:      "scale around median",
			modes:     ModeScaleX,
			from:      [2]float64{cx + 50, cy},
			to:        [2]float64{cx + 100, cy},
			wantTrans: [2][3]float64{{-2, 0, 0}, {2, 0, 0}},
			wantRot:   ident,
			wantScale: [3]float64{2, 1, 1},
		},
		{
			name:      "scale around origins",
			modes:     ModeScaleX,
			pivot:     PivotIndividual,
			from:      [2]float64{cx + 50, cy},
			to:        [2]float64{cx + 100, cy},
			wantTrans: [2][3]float64{{-1, 0, 0}, {1, 0, 0}},
			wantRot:   ident,
			wantScale: [3]float64{2, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(tt.modes)
			cfg.Pivot = tt.pivot
			g := newTestGizmo(t, cfg)

			out := updateTargets(t, g, []Transform{targetAt(-1, 0, 0), targetAt(1, 0, 0)}, tt.from, tt.to)
			for i, got := range out {
				assert.InDeltaSlice(t, tt.wantTrans[i][:], got.Translation[:], 1e-9, "target %d", i)
				assert.InDeltaSlice(t, tt.wantRot[:], got.Rotation[:], 1e-9, "target %d", i)
				assert.InDeltaSlice(t, tt.wantScale[:], got.Scale[:], 1e-9, "target %d", i)
			}
		})
	}
}

func TestUpdateTargetsPlacesGizmoAtMedian(t *testing.T) {
	g := newTestGizmo(t, testConfig(ModeAllTranslate))

	_, out, ok := g.UpdateTargets(at(10, 10), []Transform{targetAt(1, 0, 0), targetAt(3, 0, 0)})
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Equal(t, mgl64.Vec4{2, 0, 0, 1}, g.Config().Model.Col(3))

	// No targets keeps the configured model
	g.UpdateTargets(at(10, 10), nil)
	assert.Equal(t, mgl64.Vec4{2, 0, 0, 1}, g.Config().Model.Col(3))
}

func TestUpdateTargetsLocalAxes(t *testing.T) {
	cfg := testConfig(ModeRotateZ)
	cfg.Orientation = OrientationLocal
	cfg.Pivot = PivotIndividual
	g := newTestGizmo(t, cfg)

	tilted := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})
	a := makeTransform(mgl64.Vec3{1, 1, 1}, tilted, mgl64.Vec3{})
	b := IdentityTransform()

	out := updateTargets(t, g, []Transform{a, b}, [2]float64{cx + 75, cy}, [2]float64{cx, cy - 75})

	// a turns around its own Z axis, b around the world Z axis
	quarter := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	want := makeTransform(mgl64.Vec3{1, 1, 1}, tilted.Mul(quarter), mgl64.Vec3{})
	assert.InDeltaSlice(t, want.Rotation[:], out[0].Rotation[:], 1e-9)
	want = makeTransform(mgl64.Vec3{1, 1, 1}, quarter, mgl64.Vec3{})
	assert.InDeltaSlice(t, want.Rotation[:], out[1].Rotation[:], 1e-9)
}

package scenario

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Camera at (0, 0, 10) looking at the origin, 800x600 window.
const header = `
window: {width: 800, height: 600}
camera: {distance: 10, yaw: 0, pitch: 0, fov: 45}
`

// World units per pixel on the z = 0 plane.
var worldPerPixel = 2 * 10 * math.Tan(math.Pi/8) / 600

func run(t *testing.T, src string) (*Script, *Report) {
	t.Helper()
	s, err := Parse([]byte(header + src))
	require.NoError(t, err)
	rep, err := NewRunner(zaptest.NewLogger(t)).Run(s)
	require.NoError(t, err)
	return s, rep
}

func TestTranslateArrow(t *testing.T) {
	s, rep := run(t, `
name: drag x arrow
gizmo: {modes: [translate]}
steps:
  - {action: move, at: [450, 300]}
  - {action: press, at: [450, 300]}
  - {action: drag, to: [550, 300], frames: 10}
  - {action: release}
`)

	assert.Equal(t, "drag x arrow", rep.Name)
	require.Len(t, rep.Frames, 13)
	assert.Equal(t, "translate_x/arrow", rep.Frames[0].Hovered)
	assert.Equal(t, "hovering", rep.Frames[0].Phase)
	assert.Nil(t, rep.Frames[1].Result, "drag start emits nothing")
	assert.Equal(t, "dragging", rep.Frames[1].Phase)
	assert.Equal(t, 10, rep.Results)

	assert.InDelta(t, 100*worldPerPixel, rep.Final.Translation[0], 1e-6)
	assert.InDelta(t, 0, rep.Final.Translation[1], 1e-9)
	assert.InDelta(t, 0, rep.Final.Translation[2], 1e-9)
	assert.NotEmpty(t, rep.Draw.Indices)
	assert.NoError(t, s.Check(rep))
}

func TestTranslateArrowSnapped(t *testing.T) {
	s, rep := run(t, `
gizmo: {modes: [translate], snapping: true, snap_distance: 0.1}
steps:
  - {action: press, at: [450, 300]}
  - {action: drag, to: [550, 300], frames: 10}
expect:
  translation: [1.4, 0, 0]
  results: 10
  tolerance: 1e-9
`)
	require.NoError(t, s.Check(rep))
	last := rep.Frames[len(rep.Frames)-1]
	require.NotNil(t, last.Result)
	assert.Equal(t, "translate_x/arrow", last.Result.Handle)
	assert.InDelta(t, 1.4, last.Result.Total.Translation[0], 1e-9)
}

func TestRotateRing(t *testing.T) {
	s, rep := run(t, `
gizmo: {modes: [rotate_z]}
steps:
  - {action: press, at: [475, 300]}
  - {action: drag, to: [400, 225], frames: 12}
  - {action: release}
expect:
  rotation: [0, 0, 0.7071067811865476, 0.7071067811865476]
  tolerance: 1e-6
`)
	require.NoError(t, s.Check(rep))

	var last *FrameResult
	for _, f := range rep.Frames {
		if f.Result != nil {
			last = f.Result
		}
	}
	require.NotNil(t, last)
	assert.InDelta(t, 90, last.Angle, 1e-4)
}

func TestBlockedStepDoesNotHover(t *testing.T) {
	s, rep := run(t, `
gizmo: {modes: [translate]}
steps:
  - {action: move, at: [450, 300], blocked: true}
  - {action: press, at: [450, 300], blocked: true}
  - {action: drag, to: [550, 300], frames: 4}
expect:
  translation: [0, 0, 0]
  results: 0
`)
	require.NoError(t, s.Check(rep))
	assert.Empty(t, rep.Frames[0].Hovered)
}

func TestCheckReportsMismatch(t *testing.T) {
	s, rep := run(t, `
gizmo: {modes: [translate]}
steps:
  - {action: move, at: [10, 10]}
expect:
  translation: [1, 0, 0]
`)
	err := s.Check(rep)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translation")

	hovered := "translate_x/arrow"
	s.Expect = &Expect{Hovered: &hovered}
	assert.Error(t, s.Check(rep))

	s.Expect = nil
	assert.NoError(t, s.Check(rep))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown action", "steps: [{action: jump}]"},
		{"move without cursor", "steps: [{action: move}]"},
		{"negative frames", "steps: [{action: drag, to: [1, 1], frames: -2}]"},
		{"bad mode", "gizmo: {modes: [wiggle]}"},
		{"bad yaml", "steps: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(header+"name: from file\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from file", s.Name)
	assert.Equal(t, [3]float64{1, 1, 1}, s.Model.Scale)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestModelMatrix(t *testing.T) {
	m := Model{Translation: [3]float64{1, 2, 3}, Rotation: [3]float64{0, 0, 90}, Scale: [3]float64{2, 2, 2}}
	p := m.Matrix().Mul4x1([4]float64{1, 0, 0, 1})

	// Scaled to 2, rotated onto +Y, then translated
	assert.InDelta(t, 1, p[0], 1e-9)
	assert.InDelta(t, 4, p[1], 1e-9)
	assert.InDelta(t, 3, p[2], 1e-9)
}

package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw, c.Distance = 0, 0, 10
	p := c.Position()
	assert.InDeltaSlice(t, []float64{0, 0, 10}, p[:], 1e-9)

	c.Yaw = math.Pi / 2
	p = c.Position()
	assert.InDeltaSlice(t, []float64{10, 0, 0}, p[:], 1e-9)

	c.Target = mgl64.Vec3{1, 2, 3}
	assert.InDelta(t, 10, c.Position().Sub(c.Target).Len(), 1e-9)
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera()
	c.Target = mgl64.Vec3{2, 0, -1}
	v := c.ViewMatrix().Mul4x1(c.Target.Vec4(1))

	assert.InDelta(t, 0, v[0], 1e-9)
	assert.InDelta(t, 0, v[1], 1e-9)
	assert.InDelta(t, -c.Distance, v[2], 1e-9)
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.Pitch)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, -c.MaxPitch, c.Pitch)

	yaw := c.Yaw
	c.HandleDrag(100, 0)
	assert.InDelta(t, yaw-100*c.DragSensitivity, c.Yaw, 1e-12)
}

func TestHandleZoom(t *testing.T) {
	c := NewOrbitCamera()
	c.Distance = 10
	c.HandleZoom(1)
	assert.InDelta(t, 9, c.Distance, 1e-12)

	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	assert.Equal(t, c.MinDistance, c.Distance)
}

func TestHandlePanKeepsTargetInCameraPlane(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch, c.Yaw, c.Distance = 0, 0, 10
	c.HandlePan(100, 0, 600)

	// Dragging right moves the scene right, so the target moves left
	assert.Less(t, c.Target.X(), 0.0)
	assert.InDelta(t, 0, c.Target.Y(), 1e-12)
	assert.InDelta(t, 0, c.Target.Z(), 1e-12)
}

func TestProjectionMatrix(t *testing.T) {
	c := NewOrbitCamera()
	p := c.ProjectionMatrix(2)
	assert.InDelta(t, p.At(1, 1)/2, p.At(0, 0), 1e-12)
	assert.Equal(t, -1.0, p.At(3, 2))

	c.Orthographic = true
	o := c.ProjectionMatrix(2)
	assert.Equal(t, 0.0, o.At(3, 2))
	assert.Equal(t, 1.0, o.At(3, 3))
}

func TestFitToRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToRadius(mgl64.Vec3{0, 1, 0}, 2)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, c.Target)
	assert.InDelta(t, 2/math.Sin(c.FOV/2), c.Distance, 1e-9)
}

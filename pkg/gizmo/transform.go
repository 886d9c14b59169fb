package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// Transform is a translation, rotation and scale, stored as plain arrays so
// hosts can convert it to their own math types.
type Transform struct {
	Translation [3]float64
	Rotation    [4]float64 // Quaternion x, y, z, w
	Scale       [3]float64
}

// IdentityTransform returns the transform that changes nothing.
func IdentityTransform() Transform {
	return Transform{
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}
}

// TransformFromMatrix decomposes an affine matrix.
func TransformFromMatrix(m mgl64.Mat4) Transform {
	return makeTransform(viewport.Decompose(m))
}

// Matrix composes the transform into translate * rotate * scale.
func (t Transform) Matrix() mgl64.Mat4 {
	s, r, tr := t.parts()
	return viewport.Compose(s, r, tr)
}

// Quat returns the rotation as an mgl64 quaternion.
func (t Transform) Quat() mgl64.Quat {
	return mgl64.Quat{W: t.Rotation[3], V: mgl64.Vec3{t.Rotation[0], t.Rotation[1], t.Rotation[2]}}
}

func makeTransform(scale mgl64.Vec3, rot mgl64.Quat, trans mgl64.Vec3) Transform {
	return Transform{
		Translation: trans,
		Rotation:    [4]float64{rot.V[0], rot.V[1], rot.V[2], rot.W},
		Scale:       scale,
	}
}

func (t Transform) parts() (scale mgl64.Vec3, rot mgl64.Quat, trans mgl64.Vec3) {
	return t.Scale, t.Quat(), t.Translation
}

func (t Transform) finite() bool {
	s, r, tr := t.parts()
	return viewport.FiniteVec3(s) && viewport.FiniteQuat(r) && viewport.FiniteVec3(tr)
}

// relative returns the change from base to t: the translation difference,
// the rotation taking base to t and the per-axis scale ratio.
func (t Transform) relative(base Transform) Transform {
	s, r, tr := t.parts()
	bs, br, btr := base.parts()

	var ratio mgl64.Vec3
	for i := range ratio {
		ratio[i] = 1
		if bs[i] != 0 {
			ratio[i] = s[i] / bs[i]
		}
	}
	return makeTransform(ratio, r.Mul(br.Inverse()).Normalize(), tr.Sub(btr))
}

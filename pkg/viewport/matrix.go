package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// singularEpsilon is the relative determinant threshold below which a matrix
// is considered non-invertible.
const singularEpsilon = 1e-14

// Invert returns the inverse of m, or false if m is singular or not finite.
func Invert(m mgl64.Mat4) (mgl64.Mat4, bool) {
	if !FiniteMat4(m) {
		return mgl64.Mat4{}, false
	}

	scale := 0.0
	for _, v := range m {
		scale = math.Max(scale, math.Abs(v))
	}
	det := m.Det()
	if scale == 0 || math.Abs(det) <= singularEpsilon*math.Pow(scale, 4) {
		return mgl64.Mat4{}, false
	}

	inv := m.Inv()
	return inv, FiniteMat4(inv)
}

// Normalize returns v scaled to unit length, or false for a (near) zero vector.
func Normalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < 1e-12 || !finite(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// NormalizeOr returns v normalized, or fallback if v is degenerate.
func NormalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if n, ok := Normalize(v); ok {
		return n
	}
	return fallback
}

// Decompose splits an affine matrix into scale, rotation and translation.
// A negative determinant is folded into the X scale. A zero scale axis
// yields an identity rotation.
func Decompose(m mgl64.Mat4) (scale mgl64.Vec3, rot mgl64.Quat, trans mgl64.Vec3) {
	trans = m.Col(3).Vec3()

	cols := [3]mgl64.Vec3{m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()}
	for i, c := range cols {
		scale[i] = c.Len()
	}
	if cols[0].Cross(cols[1]).Dot(cols[2]) < 0 {
		scale[0] = -scale[0]
	}

	for i := range cols {
		if math.Abs(scale[i]) < 1e-12 {
			return scale, mgl64.QuatIdent(), trans
		}
		cols[i] = cols[i].Mul(1 / scale[i])
	}

	r := mgl64.Ident4()
	r.SetCol(0, cols[0].Vec4(0))
	r.SetCol(1, cols[1].Vec4(0))
	r.SetCol(2, cols[2].Vec4(0))
	return scale, mgl64.Mat4ToQuat(r).Normalize(), trans
}

// Compose builds translate * rotate * scale.
func Compose(scale mgl64.Vec3, rot mgl64.Quat, trans mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(trans[0], trans[1], trans[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// RotationAlign returns the rotation taking unit vector from onto unit vector to.
func RotationAlign(from, to mgl64.Vec3) mgl64.Quat {
	c := from.Dot(to)
	if c < -1+1e-12 {
		// Opposite vectors: rotate half a turn around any perpendicular axis
		axis := from.Cross(mgl64.Vec3{1, 0, 0})
		if axis.Len() < 1e-6 {
			axis = from.Cross(mgl64.Vec3{0, 1, 0})
		}
		return mgl64.QuatRotate(math.Pi, axis.Normalize())
	}
	v := from.Cross(to)
	return mgl64.Quat{W: 1 + c, V: v}.Normalize()
}

// RoundToInterval rounds v to the nearest multiple of interval.
// A non-positive interval leaves v unchanged.
func RoundToInterval(v, interval float64) float64 {
	if interval <= 0 || !finite(interval) {
		return v
	}
	return math.Round(v/interval) * interval
}

// WrapAngle maps an angle to (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// SignedAngle returns the angle rotating unit vector a onto unit vector b
// around axis n, following the right-hand rule.
func SignedAngle(a, b, n mgl64.Vec3) float64 {
	return math.Atan2(n.Dot(a.Cross(b)), a.Dot(b))
}

// FiniteVec3 reports whether all components are finite.
func FiniteVec3(v mgl64.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

// FiniteMat4 reports whether all entries are finite.
func FiniteMat4(m mgl64.Mat4) bool {
	for _, v := range m {
		if !finite(v) {
			return false
		}
	}
	return true
}

// FiniteQuat reports whether all components are finite.
func FiniteQuat(q mgl64.Quat) bool {
	return finite(q.W) && FiniteVec3(q.V)
}

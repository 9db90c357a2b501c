package mathutil

import "math"

// Mat34 is an affine transform p' = A·p + t stored row-major:
//
//	[m11 m12 m13 tx
//	 m21 m22 m23 ty
//	 m31 m32 m33 tz]
//
// There is no perspective row; the perspective divide is done by the
// projection package. Value type, every operation returns a new matrix.
type Mat34 [12]float64

func Mat34Identity() Mat34 {
	return Mat34FromMat3(Mat3Identity(), Vec3{})
}

// Mat34Scale returns a uniform scale with zero translation.
func Mat34Scale(s float64) Mat34 {
	return Mat34FromMat3(Mat3Diag(s, s, s), Vec3{})
}

// Mat34ScaleVec returns a per-axis scale with zero translation.
func Mat34ScaleVec(s Vec3) Mat34 {
	return Mat34FromMat3(Mat3Diag(s[0], s[1], s[2]), Vec3{})
}

// Mat34Rotation returns the extrinsic Euler rotation about z, then x, then y
// (r holds the angles in radians per axis). The result equals Ry·Rx·Rz; the
// entries are the expanded product and must stay in this form.
func Mat34Rotation(r Vec3) Mat34 {
	sx, cx := math.Sincos(r[0])
	sy, cy := math.Sincos(r[1])
	sz, cz := math.Sincos(r[2])
	return Mat34{
		cy*cz + sy*sx*sz, cz*sy*sx - cy*sz, cx * sy, 0,
		cx * sz, cx * cz, -sx, 0,
		cy*sx*sz - cz*sy, sy*sz + cy*cz*sx, cy * cx, 0,
	}
}

// Mat34Translation returns an identity linear part with translation t.
func Mat34Translation(t Vec3) Mat34 {
	return Mat34FromMat3(Mat3Identity(), t)
}

// Mat34FromMat3 builds an affine matrix from a 3×3 linear part and translation.
func Mat34FromMat3(r Mat3, t Vec3) Mat34 {
	return Mat34{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
	}
}

// LookAt builds the world-to-camera transform. The camera basis is
// z = normalize(target - eye), x = normalize(up × z), y = z × x, placed as
// rows of the orientation, and the result is orientation · translation(-eye):
// a world point is shifted by -eye first and rotated second.
//
// The result is NaN when up is parallel to the view direction.
func LookAt(eye, target, up Vec3) Mat34 {
	z := target.Sub(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	orientation := Mat34FromMat3(Mat3Rows(x, y, z), Vec3{})
	return Mat34Mul(orientation, Mat34Translation(eye.Scale(-1)))
}

// Mat34Mul returns a ∘ b: b is applied first, then a.
// Linear part is A·B, translation is A·t_b + t_a.
func Mat34Mul(a, b Mat34) Mat34 {
	la := a.Linear()
	return Mat34FromMat3(Mat3Mul(la, b.Linear()), la.MulVec3(b.Translation()).Add(a.Translation()))
}

// MulPoint applies the transform to a point: A·v + t.
func (m Mat34) MulPoint(v Vec3) Vec3 {
	return m.Linear().MulVec3(v).Add(m.Translation())
}

// Linear returns the 3×3 part.
func (m Mat34) Linear() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Translation returns the translation column.
func (m Mat34) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

package mathutil_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"ringscan/internal/mathutil"
)

var sampleAngles = []mathutil.Vec3{
	{0, 0, 0},
	{0.3, -1.1, 0.7},
	{math.Pi / 2, 0, 0},
	{0, math.Pi / 2, math.Pi / 4},
	{-2.5, 1.9, -0.4},
}

func TestScaleOneIsIdentity(t *testing.T) {
	id := mathutil.Mat34Scale(1)
	require.Equal(t, mathutil.Mat34Identity(), id)
	for _, v := range sampleVecs {
		require.Equal(t, v, id.MulPoint(v))
	}
}

func TestScaleVecIsDiagonal(t *testing.T) {
	m := mathutil.Mat34ScaleVec(mathutil.V3(2, 3, -1))
	require.Equal(t, mathutil.Vec3{2, 6, -3}, m.MulPoint(mathutil.V3(1, 2, 3)))
	require.Equal(t, mathutil.Vec3{}, m.Translation())
}

func TestTranslation(t *testing.T) {
	m := mathutil.Mat34Translation(mathutil.V3(1, -2, 3))
	require.Equal(t, mathutil.Vec3{2, -1, 4}, m.MulPoint(mathutil.V3(1, 1, 1)))
	require.Equal(t, mathutil.Mat3Identity(), m.Linear())
}

func TestRotationPreservesLength(t *testing.T) {
	for _, r := range sampleAngles {
		R := mathutil.Mat34Rotation(r)
		for _, v := range sampleVecs {
			require.InDelta(t, v.Len(), R.MulPoint(v).Len(), eps*v.Len(), "r=%v v=%v", r, v)
		}
		require.InDelta(t, 1.0, R.Linear().Det(), eps)
		require.Equal(t, mathutil.Vec3{}, R.Translation())
	}
}

// Z is applied first, then X, then Y, all about fixed world axes.
func TestRotationOrderIsZThenXThenY(t *testing.T) {
	for _, r := range sampleAngles {
		got := mathutil.Mat34Rotation(r).Linear()

		want := mathutil.Mat3Mul(mathutil.Mat3Mul(mathutil.RotY(r[1]), mathutil.RotX(r[0])), mathutil.RotZ(r[2]))
		for i := range want {
			require.InDelta(t, want[i], got[i], eps, "r=%v entry %d", r, i)
		}

		ref := mgl64.Rotate3DY(r[1]).Mul3(mgl64.Rotate3DX(r[0])).Mul3(mgl64.Rotate3DZ(r[2]))
		for _, v := range sampleVecs {
			w := ref.Mul3x1(mgl64.Vec3(v))
			requireVecInDelta(t, mathutil.Vec3(w), got.MulVec3(v), eps*(1+v.Len()))
		}
	}
}

func TestRotationOrderMatters(t *testing.T) {
	r := mathutil.V3(math.Pi/2, math.Pi/2, 0)
	got := mathutil.Mat34Rotation(r).MulPoint(mathutil.V3(0, 0, 1))
	// Rx takes +z to -y, Ry leaves -y alone.
	requireVecInDelta(t, mathutil.Vec3{0, -1, 0}, got, eps)

	swapped := mathutil.Mat3Mul(mathutil.RotX(r[0]), mathutil.RotY(r[1])).MulVec3(mathutil.V3(0, 0, 1))
	require.Greater(t, got.Sub(swapped).Len(), 0.5)
}

func TestMulComposesRightToLeft(t *testing.T) {
	s := mathutil.Mat34Scale(2)
	tr := mathutil.Mat34Translation(mathutil.V3(1, 0, 0))
	p := mathutil.V3(1, 1, 1)

	// scale first, then translate
	require.Equal(t, mathutil.Vec3{3, 2, 2}, mathutil.Mat34Mul(tr, s).MulPoint(p))
	// translate first, then scale
	require.Equal(t, mathutil.Vec3{4, 2, 2}, mathutil.Mat34Mul(s, tr).MulPoint(p))
}

func TestMulAssociatesWithPoint(t *testing.T) {
	mats := []mathutil.Mat34{
		mathutil.Mat34Rotation(mathutil.V3(0.3, -1.1, 0.7)),
		mathutil.Mat34Translation(mathutil.V3(4, 4, -12)),
		mathutil.Mat34ScaleVec(mathutil.V3(2, 0.5, -3)),
		mathutil.LookAt(mathutil.V3(4, 4, -12), mathutil.Vec3{}, mathutil.V3(0, 1, 0)),
	}
	for _, a := range mats {
		for _, b := range mats {
			ab := mathutil.Mat34Mul(a, b)
			for _, v := range sampleVecs {
				want := a.MulPoint(b.MulPoint(v))
				requireVecInDelta(t, want, ab.MulPoint(v), 1e-9*(1+want.Len()))
			}
		}
	}
}

func TestMat34FromMat3(t *testing.T) {
	r := mathutil.RotZ(0.5)
	tr := mathutil.V3(1, 2, 3)
	m := mathutil.Mat34FromMat3(r, tr)
	require.Equal(t, r, m.Linear())
	require.Equal(t, tr, m.Translation())
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	cases := []struct {
		eye, target, up mathutil.Vec3
	}{
		{mathutil.V3(4, 4, -12), mathutil.V3(0, 0, 0), mathutil.V3(0, 1, 0)},
		{mathutil.V3(0, 0, -5), mathutil.V3(0, 0, 0), mathutil.V3(0, 1, 0)},
		{mathutil.V3(-3, 7, 2), mathutil.V3(1, -1, 9), mathutil.V3(0.2, 1, 0)},
	}
	for _, tc := range cases {
		cam := mathutil.LookAt(tc.eye, tc.target, tc.up)
		requireVecInDelta(t, mathutil.Vec3{}, cam.MulPoint(tc.eye), 1e-9)

		// the target sits on the +z axis at its distance from the eye
		dist := tc.target.Sub(tc.eye).Len()
		requireVecInDelta(t, mathutil.Vec3{0, 0, dist}, cam.MulPoint(tc.target), 1e-9*dist)

		// orientation rows are orthonormal
		lin := cam.Linear()
		prod := mathutil.Mat3Mul(lin, lin.Transpose())
		id := mathutil.Mat3Identity()
		for i := range id {
			require.InDelta(t, id[i], prod[i], eps)
		}
	}
}

func TestLookAtBasis(t *testing.T) {
	cam := mathutil.LookAt(mathutil.V3(0, 0, -5), mathutil.Vec3{}, mathutil.V3(0, 1, 0))
	// axis-aligned camera: only the eye shift remains
	require.Equal(t, mathutil.Mat34{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 5,
	}, cam)
}

func TestLookAtParallelUpDegenerates(t *testing.T) {
	cam := mathutil.LookAt(mathutil.V3(0, -5, 0), mathutil.Vec3{}, mathutil.V3(0, 1, 0))
	require.False(t, cam.MulPoint(mathutil.V3(1, 1, 1)).IsFinite())
}

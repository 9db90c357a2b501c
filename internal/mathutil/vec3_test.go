package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ringscan/internal/mathutil"
)

const eps = 1e-9

var sampleVecs = []mathutil.Vec3{
	{1, 0, 0},
	{0, -2, 0},
	{3, 4, 12},
	{-0.5, 0.25, 7},
	{1e-3, -1e3, 42},
	{-4, -4, 12},
}

func requireVecInDelta(t *testing.T, want, got mathutil.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "component %d: want %v, got %v", i, want, got)
	}
}

func TestVec3Basics(t *testing.T) {
	a := mathutil.V3(1, 2, 3)
	b := mathutil.V3(4, 5, 6)

	require.Equal(t, mathutil.Vec3{5, 7, 9}, a.Add(b))
	require.Equal(t, mathutil.Vec3{-3, -3, -3}, a.Sub(b))
	require.Equal(t, mathutil.Vec3{2, 4, 6}, a.Scale(2))
	require.Equal(t, 32.0, a.Dot(b))
	require.Equal(t, 13.0, mathutil.V3(3, 4, 12).Len())

	// operands are values and stay untouched
	require.Equal(t, mathutil.Vec3{1, 2, 3}, a)
	require.Equal(t, 1.0, a.X())
	require.Equal(t, 2.0, a.Y())
	require.Equal(t, 3.0, a.Z())
}

func TestVec3CrossAxes(t *testing.T) {
	x := mathutil.V3(1, 0, 0)
	y := mathutil.V3(0, 1, 0)
	z := mathutil.V3(0, 0, 1)
	require.Equal(t, z, x.Cross(y))
	require.Equal(t, x, y.Cross(z))
	require.Equal(t, y, z.Cross(x))
	// up × forward is the camera's right axis
	require.Equal(t, x, y.Cross(z))
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	for _, v := range sampleVecs {
		require.InDelta(t, 1.0, v.Normalize().Len(), eps, "v=%v", v)
	}
}

func TestVec3NormalizeZeroIsNaN(t *testing.T) {
	n := mathutil.Vec3{}.Normalize()
	require.False(t, n.IsFinite())
	require.True(t, math.IsNaN(n[0]))
}

func TestVec3CrossAntiCommutesAndIsOrthogonal(t *testing.T) {
	for _, a := range sampleVecs {
		for _, b := range sampleVecs {
			ab := a.Cross(b)
			ba := b.Cross(a)
			requireVecInDelta(t, ab, ba.Scale(-1), eps)

			scale := a.Len() * b.Len()
			require.InDelta(t, 0, ab.Dot(a)/scale, eps, "a=%v b=%v", a, b)
			require.InDelta(t, 0, ab.Dot(b)/scale, eps, "a=%v b=%v", a, b)
		}
	}
}

func TestVec3IsFinite(t *testing.T) {
	require.True(t, mathutil.V3(1, 2, 3).IsFinite())
	require.False(t, mathutil.V3(math.Inf(1), 0, 0).IsFinite())
	require.False(t, mathutil.V3(0, 0, math.NaN()).IsFinite())
}

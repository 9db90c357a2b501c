package mathutil

import "math"

// Single-axis rotations used to check the composition order of Mat34Rotation.

func RotX(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

func RotY(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func RotZ(a float64) Mat3 {
	s, c := math.Sincos(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

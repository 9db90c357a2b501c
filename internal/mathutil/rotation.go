package mathutil

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Deg2RadVec converts each component from degrees to radians.
func Deg2RadVec(d Vec3) Vec3 {
	return Vec3{Deg2Rad(d[0]), Deg2Rad(d[1]), Deg2Rad(d[2])}
}

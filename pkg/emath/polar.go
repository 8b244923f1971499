package emath

// Integer polar geometry for a square canvas of side 2l, centred on (l,l).
// Canvas coords are (u,v) = (row, column), so u runs down the image.

import "math"

// DiscOffset returns the offset of (u,v) from the center (l,l), and the
// squared length of that offset.
func DiscOffset(u, v, l int) (du, dv, d2 int) {
	du, dv = u-l, v-l
	return du, dv, du*du + dv*dv
}

// InDisc reports whether (u,v) lies inside the closed disc of radius l
// centred on (l,l). The test is exact; no floats are involved.
func InDisc(u, v, l int) bool {
	_, _, d2 := DiscOffset(u, v, l)
	return d2 <= l*l
}

func Radius(d2 int) float64 { return math.Sqrt(float64(d2)) }

// Azimuth is the angle of the offset (du,dv), in radians, in the range (-π, π].
// du is the first (row) axis, so an offset straight down the canvas is 0.
func Azimuth(du, dv int) float64 {
	return math.Atan2(float64(dv), float64(du))
}

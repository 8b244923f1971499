package emath

import "math"

// Some functions that only operate on basic types, that are useful

// GammaLinearize_F64 undoes the sRGB transfer curve, mapping an encoded
// channel value in [0,1] back to linear light in [0,1].
// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "sRGB to linear RGB"
func GammaLinearize_F64(f float64) float64 {
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f + 0.055) / 1.055, 2.4)
}

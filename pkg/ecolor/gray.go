package ecolor

import(
	"image/color"
)

// ColToGray8 maps a color into an 8-bit gray value, using the ITU-R 601-2
// luma weights:
//
//	L = R * 299/1000 + G * 587/1000 + B * 114/1000
//
// on 8-bit channels. It is done in 16.16 fixed point with rounding, so a
// given RGB triple always lands on the same gray level that common
// imaging libraries pick when they convert RGB to "L".
func ColToGray8(c color.Color) uint8 {
	r, g, b, _ := c.RGBA() // channel values in range [0, 0xFFFF]
	r, g, b = r>>8, g>>8, b>>8

	return uint8((r*19595 + g*38470 + b*7471 + 0x8000) >> 16)
}

package ecolor

import(
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/emath"
)

// ToLinearRGB treats the color as sRGB encoded, and returns it as
// linear light with each channel in [0.0, 1.0].
func ToLinearRGB(c color.Color) hdrcolor.RGB {
	r, g, b, _ := c.RGBA()

	return hdrcolor.RGB{
		R: emath.GammaLinearize_F64(float64(r) / float64(0xFFFF)),
		G: emath.GammaLinearize_F64(float64(g) / float64(0xFFFF)),
		B: emath.GammaLinearize_F64(float64(b) / float64(0xFFFF)),
	}
}

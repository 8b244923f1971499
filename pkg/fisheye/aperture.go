package fisheye

import(
	"github.com/Freude964/ricoh-image2fish-svf/pkg/emath"
)

// An Aperture is the disc inscribed in a square canvas; it is the part
// of a fisheye image that holds projected data.
type Aperture struct {
	Side int
}

func NewAperture(side int) Aperture { return Aperture{Side: side} }

func (a Aperture)Radius() float64 { return float64(a.Side) / 2.0 }

// Contains reports whether canvas pixel (x,y) is inside the aperture.
// For an even side 2l this is exactly the set of pixels the Projector
// writes: (x-l)^2 + (y-l)^2 <= l^2.
func (a Aperture)Contains(x, y int) bool {
	if x < 0 || y < 0 || x >= a.Side || y >= a.Side {
		return false
	}

	if a.Side % 2 == 0 {
		return emath.InDisc(y, x, a.Side/2)
	}

	c := a.Radius()
	dx, dy := float64(x) - c, float64(y) - c
	return dx*dx + dy*dy <= c*c
}

// Count is the number of pixels inside the aperture.
func (a Aperture)Count() int {
	n := 0
	for y:=0; y<a.Side; y++ {
		for x:=0; x<a.Side; x++ {
			if a.Contains(x, y) {
				n++
			}
		}
	}
	return n
}

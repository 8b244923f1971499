package fisheye

import(
	"image"
	"math"

	"github.com/pkg/errors"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/ecolor"
)

// A SkyEstimate is the result of thresholding a fisheye image.
type SkyEstimate struct {
	SVF          float64      // Sky view factor: SkyPixels / TotalPixels, or 0 for an empty aperture
	SkyPixels    int          // Pixels inside the aperture brighter than the cut
	TotalPixels  int          // Pixels inside the aperture
	Cut          uint8        // The threshold mapped to [0,255]; sky is strictly brighter than this

	// The binarized image, 0xFF for sky and 0x00 otherwise. It covers
	// the whole canvas; pixels outside the aperture are thresholded too,
	// they just aren't counted.
	Mask        *image.Gray
}

// EstimateSky converts a square fisheye image to gray, marks every
// pixel brighter than 255*threshold as sky, and reports what fraction
// of the inscribed circle is sky.
func EstimateSky(img image.Image, threshold float64) (SkyEstimate, error) {
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return SkyEstimate{}, errors.Wrapf(ErrShapeMismatch, "got %dx%d", b.Dx(), b.Dy())
	}
	if math.IsNaN(threshold) || threshold < 0.0 || threshold > 1.0 {
		return SkyEstimate{}, errors.Wrapf(ErrInvalidThreshold, "got %v", threshold)
	}

	side := b.Dx()
	cut  := int(255 * threshold)
	ap   := NewAperture(side)

	est := SkyEstimate{
		Cut:  uint8(cut),
		Mask: image.NewGray(image.Rect(0, 0, side, side)),
	}

	for y:=0; y<side; y++ {
		for x:=0; x<side; x++ {
			sky := int(ecolor.ColToGray8(img.At(b.Min.X + x, b.Min.Y + y))) > cut
			if sky {
				est.Mask.Pix[est.Mask.PixOffset(x, y)] = 0xFF
			}

			if !ap.Contains(x, y) {
				continue
			}
			est.TotalPixels++
			if sky {
				est.SkyPixels++
			}
		}
	}

	if est.TotalPixels > 0 {
		est.SVF = float64(est.SkyPixels) / float64(est.TotalPixels)
	}

	return est, nil
}

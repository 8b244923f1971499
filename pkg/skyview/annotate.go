package skyview

import(
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/fisheye"
)

// Annotate draws the aperture outline and the SVF value over the
// binarized sky image, so a human can eyeball whether the threshold
// did something sensible.
func Annotate(est fisheye.SkyEstimate) image.Image {
	b := est.Mask.Bounds()
	if b.Empty() {
		return est.Mask
	}

	dc := gg.NewContextForImage(est.Mask)
	ap := fisheye.NewAperture(b.Dx())
	r  := ap.Radius()

	dc.SetRGB(1, 0, 0)
	dc.SetLineWidth(math.Max(1, r/100))
	dc.DrawCircle(r, r, r)
	dc.Stroke()

	label := fmt.Sprintf("SVF %.2f", est.SVF)
	w, h := dc.MeasureString(label)
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.DrawRectangle(4, 4, w+8, h+8)
	dc.Fill()
	dc.SetRGB(1, 0.2, 0.2)
	dc.DrawString(label, 8, 8+h)

	return dc.Image()
}

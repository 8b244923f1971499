package skyview

import(
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/pkg/errors"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/ecolor"
)

// fisheyeHDR presents an 8-bit fisheye as linear light, so it can be
// written out as a Radiance file.
type fisheyeHDR struct {
	*image.RGBA
}

var _ hdr.Image = fisheyeHDR{}

// Implement image.Image
func (f fisheyeHDR)ColorModel() color.Model { return hdrcolor.RGBModel }
func (f fisheyeHDR)At(x, y int) color.Color { return f.HDRAt(x, y) }

// Implement hdr.Image
func (f fisheyeHDR)HDRAt(x, y int) hdrcolor.Color { return ecolor.ToLinearRGB(f.RGBAAt(x, y)) }
func (f fisheyeHDR)Size() int                     { return f.Bounds().Dx() * f.Bounds().Dy() }

// WriteHDR outputs the fisheye as an RGBE (.hdr) image.
func WriteHDR(img *image.RGBA, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrapf(err, "mkdir for '%s'", filename)
	}

	writer, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "WriteHDR, open+w '%s'", filename)
	}

	err = rgbe.Encode(writer, fisheyeHDR{img})
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filename)
		return errors.Wrapf(err, "WriteHDR '%s'", filename)
	}
	return nil
}

package skyview

// Encoding and naming of the output images

import(
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/tiff"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/fisheye"
)

var(
	SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".webp"}
)

func IsSupportedExtension(ext string) bool {
	for _, s := range SupportedExtensions {
		if strings.EqualFold(ext, s) {
			return true
		}
	}
	return false
}

func extOf(filename string) string { return filepath.Ext(filename) }

// outputExt is the extension outputs for this input get. We keep the
// input's own (including its case), unless it is a format we can only
// decode.
func outputExt(filename string) string {
	ext := extOf(filename)
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".tif", ".tiff":
		return ext
	default:
		return ".png"
	}
}

// Outputs are the files written for one input image.
type Outputs struct {
	Fisheye   string
	SVF       string
	Annotated string `yaml:",omitempty"`
	HDR       string `yaml:",omitempty"`
}

// OutputNames works out where the outputs for an input file go. They
// land in subdirs of the input's dir:
//   photos/R001.JPG -> photos/fisheye/R001_equalarea.JPG
//                      photos/svf/R001_svf0.42.JPG
func (c Config)OutputNames(input string, proj fisheye.ProjectionType, svf float64) Outputs {
	dir  := filepath.Dir(input)
	ext  := outputExt(input)
	stem := strings.TrimSuffix(filepath.Base(input), extOf(input))
	svfDir := filepath.Join(dir, c.SVFDir)

	o := Outputs{
		Fisheye: filepath.Join(dir, c.FisheyeDir, fmt.Sprintf("%s_%s%s", stem, proj, ext)),
		SVF:     filepath.Join(svfDir, fmt.Sprintf("%s_svf%.2f%s", stem, svf, ext)),
	}
	if c.Annotate {
		o.Annotated = filepath.Join(svfDir, fmt.Sprintf("%s_svf%.2f_annotated.png", stem, svf))
	}
	if c.WriteHDR {
		o.HDR = filepath.Join(dir, c.FisheyeDir, fmt.Sprintf("%s_%s.hdr", stem, proj))
	}
	return o
}

// WriteImage encodes the image according to the filename's extension,
// creating the parent dir if needed.
func (c Config)WriteImage(img image.Image, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrapf(err, "mkdir for '%s'", filename)
	}

	writer, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "open+w '%s'", filename)
	}

	switch strings.ToLower(extOf(filename)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(writer, img, &jpeg.Options{Quality: c.JPEGQuality})
	case ".tif", ".tiff":
		err = tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate})
	case ".png":
		err = png.Encode(writer, img)
	default:
		err = errors.Errorf("no encoder for '%s'", filename)
	}

	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(filename)
		return errors.Wrapf(err, "encode '%s'", filename)
	}
	return nil
}

package skyview

import(
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rwcarlsen/goexif/exif"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A Photo is a decoded input file, plus whatever camera metadata it
// carried.
type Photo struct {
	LoadFilename string
	Format       string    // as reported by image.Decode

	Camera       string    // EXIF make + model, if present
	Taken        time.Time // EXIF capture time, if present

	image.Image
}

func (p Photo)HasExif() bool { return p.Camera != "" || !p.Taken.IsZero() }

func LoadPhoto(filename string) (Photo, error) {
	p := Photo{LoadFilename: filename}

	reader, err := os.Open(filename)
	if err != nil {
		return p, errors.Wrapf(err, "open+r img '%s'", filename)
	}
	defer reader.Close()

	img, format, err := image.Decode(reader)
	if err != nil {
		return p, errors.Wrapf(err, "decode '%s'", filename)
	}
	p.Image  = img
	p.Format = format

	// Metadata is nice to have; plenty of exported panoramas have none.
	if _, err := reader.Seek(0, 0); err == nil {
		p.loadExif(reader)
	}

	return p, nil
}

func (p *Photo)loadExif(reader *os.File) {
	ex, err := exif.Decode(reader)
	if err != nil {
		return
	}

	parts := []string{}
	for _, name := range []exif.FieldName{exif.Make, exif.Model} {
		if tag, err := ex.Get(name); err == nil {
			if val, err := tag.StringVal(); err == nil && strings.TrimSpace(val) != "" {
				parts = append(parts, strings.TrimSpace(val))
			}
		}
	}
	p.Camera = strings.Join(parts, " ")

	if t, err := ex.DateTime(); err == nil {
		p.Taken = t
	}
}

// FitHeight returns the photo's image, scaled down (keeping the aspect
// ratio) if it is taller than maxHeight. A maxHeight of zero leaves it
// alone.
func (p Photo)FitHeight(maxHeight int) image.Image {
	b := p.Bounds()
	if maxHeight <= 0 || b.Dy() <= maxHeight {
		return p.Image
	}

	w := b.Dx() * maxHeight / b.Dy()
	if w < 1 {
		w = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, maxHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), p.Image, b, xdraw.Src, nil)
	return dst
}

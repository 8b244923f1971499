package fisheye

import(
	"image"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/emath"
)

// A Projector maps a rectilinear source image, twice as wide as it is
// tall, onto a square fisheye canvas. The source's rows become rings
// of the fisheye (row 0 at the center), and its columns become
// azimuths around the center.
type Projector struct {
	Projection ProjectionType
	Bounds     BoundsPolicy // defaults to BoundsFail
	Workers    int          // goroutines to spread rows over; <=0 means one per CPU
}

// Project runs a Projector with the default settings.
func Project(src image.Image, projection ProjectionType) (*image.RGBA, error) {
	return Projector{Projection: projection}.Project(src)
}

// Project builds the fisheye image. If the source is 2l pixels high,
// the fisheye is 2l x 2l; pixels outside the inscribed circle of
// radius l stay opaque black, pixels inside are nearest-neighbour
// copies of source pixels.
func (p Projector)Project(src image.Image) (*image.RGBA, error) {
	if err := p.Projection.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseBoundsPolicy(string(p.Bounds)); err != nil {
		return nil, err
	}

	in := toRGBA(src)
	l := in.Bounds().Dy() / 2
	side := 2 * l

	out := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Draw(out, out.Bounds(), image.Black, image.Point{}, xdraw.Src)

	// Every row writes a distinct set of pixels, so the rows can run in
	// any order without locking. Errors are kept per row, so the one we
	// report doesn't depend on scheduling.
	rowErrs := make([]error, side)
	rows    := make(chan int, side)
	for u:=0; u<side; u++ {
		rows <- u
	}
	close(rows)

	var wg sync.WaitGroup
	for i:=0; i<p.numWorkers(side); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range rows {
				rowErrs[u] = p.projectRow(out, in, u, l)
			}
		}()
	}
	wg.Wait()

	for _, err := range rowErrs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// projectRow fills in fisheye row u. Fisheye (row u, col v) takes its
// color from source (row x1, col y1).
func (p Projector)projectRow(out, in *image.RGBA, u, l int) error {
	srcW, srcH := in.Bounds().Dx(), in.Bounds().Dy()

	for v:=0; v<2*l; v++ {
		du, dv, d2 := emath.DiscOffset(u, v, l)
		if d2 > l*l {
			continue // outside the aperture
		}

		y1 := AzimuthIndex(du, dv, l)
		x1 := p.Projection.RadialIndex(d2, l)

		row, rowOK := resolveIndex(x1, srcH)
		col, colOK := resolveIndex(y1, srcW)
		if !rowOK || !colOK {
			if p.Bounds != BoundsClamp {
				return &SourceIndexError{U: u, V: v, Row: x1, Col: y1, Height: srcH, Width: srcW}
			}
			row, col = clampIndex(row, srcH), clampIndex(col, srcW)
		}

		out.SetRGBA(v, u, in.RGBAAt(col, row))
	}

	return nil
}

func (p Projector)numWorkers(rows int) int {
	n := p.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > rows {
		n = rows
	}
	return n
}

// toRGBA returns the image as an RGBA whose bounds start at (0,0).
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}

	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	return rgba
}

package fisheye

import(
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
)

func grayRGBA(v uint8) color.RGBA { return color.RGBA{v, v, v, 0xff} }

func TestEstimateSkyErrors(t *testing.T) {
	if _, err := EstimateSky(uniformImage(10, 12, white), 0.5); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("10x12: expected ErrShapeMismatch, got %v", err)
	}

	for _, th := range []float64{-0.01, 1.01, math.NaN()} {
		if _, err := EstimateSky(uniformImage(10, 10, white), th); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("threshold %v: expected ErrInvalidThreshold, got %v", th, err)
		}
	}
}

func TestEstimateSkyUniform(t *testing.T) {
	tests := []struct{
		name      string
		c         color.RGBA
		threshold float64
		wantSVF   float64
	}{
		{"white", white, 0.99, 1.0},
		{"white at 1.0", white, 1.0, 0.0},
		{"black", black, 0.0, 0.0},
		{"dim at 0.0", grayRGBA(10), 0.0, 1.0},
		{"127 is not above 0.5", grayRGBA(127), 0.5, 0.0},
		{"128 is above 0.5", grayRGBA(128), 0.5, 1.0},
	}

	for _, test := range tests {
		est, err := EstimateSky(uniformImage(40, 40, test.c), test.threshold)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if est.SVF != test.wantSVF {
			t.Errorf("%s: SVF %v, want %v", test.name, est.SVF, test.wantSVF)
		}
		if est.TotalPixels != NewAperture(40).Count() {
			t.Errorf("%s: total %d, want %d", test.name, est.TotalPixels, NewAperture(40).Count())
		}
	}
}

func TestEstimateSkyTiny(t *testing.T) {
	out, err := Project(uniformImage(4, 2, white), Equidistant)
	if err != nil {
		t.Fatal(err)
	}

	est, err := EstimateSky(out, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if est.TotalPixels != 3 || est.SkyPixels != 3 || est.SVF != 1.0 {
		t.Errorf("got %+v, want 3 of 3 pixels sky", est)
	}
	if est.Cut != 127 {
		t.Errorf("cut %d, want 127", est.Cut)
	}
}

func TestEstimateSkyHalf(t *testing.T) {
	side := 100
	img := uniformImage(side, side, black)
	for y:=0; y<side/2; y++ {
		for x:=0; x<side; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	est, err := EstimateSky(img, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(est.SVF - 0.5) > 0.02 {
		t.Errorf("half sky gave SVF %v", est.SVF)
	}
}

func TestEstimateSkyMask(t *testing.T) {
	img := uniformImage(10, 10, white)
	img.SetRGBA(5, 5, black)

	est, err := EstimateSky(img, 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if est.Mask.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("mask bounds %s", est.Mask.Bounds())
	}
	if got := est.Mask.GrayAt(5, 5).Y; got != 0 {
		t.Errorf("dark pixel marked %d", got)
	}
	// Corners are outside the aperture but are still thresholded
	if got := est.Mask.GrayAt(0, 0).Y; got != 0xFF {
		t.Errorf("corner marked %d", got)
	}
	if est.SkyPixels != est.TotalPixels - 1 {
		t.Errorf("expected all but one pixel to be sky, got %d of %d", est.SkyPixels, est.TotalPixels)
	}
}

func TestEstimateSkyEmpty(t *testing.T) {
	est, err := EstimateSky(image.NewRGBA(image.Rect(0, 0, 0, 0)), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if est.SVF != 0 || est.TotalPixels != 0 {
		t.Errorf("empty image gave %+v", est)
	}
}

func TestEstimateSkyOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(30, 30, 50, 50))
	for y:=30; y<50; y++ {
		for x:=30; x<50; x++ {
			img.SetRGBA(x, y, white)
		}
	}

	est, err := EstimateSky(img, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if est.SVF != 1.0 {
		t.Errorf("SVF %v, want 1", est.SVF)
	}
}

package skyview

import(
	"log"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/fisheye"
)

type Config struct {
	Verbosity       int

	Projection      string   // "equaldis" or "equalarea"
	Threshold       float64  // brightness cut for sky, 0.0->1.0
	Bounds          string   // what to do with out-of-range source pixels: "fail" or "clamp"
	Workers         int      // goroutines per projection; 0 means one per CPU

	Extensions      []string // which input files to pick up from a directory
	FisheyeDir      string   // output subdirs, relative to the input file's dir
	SVFDir          string
	MaxSourceHeight int      // downscale sources taller than this; 0 means never
	JPEGQuality     int

	Annotate        bool     // also write an SVF image with the aperture and value drawn on
	WriteHDR        bool     // also write the fisheye as a Radiance .hdr
	WriteReport     bool     // write report.yaml into each SVF dir
}

func NewConfig() Config {
	return Config{
		Projection:  string(fisheye.EqualArea),
		Threshold:   0.55,
		Bounds:      string(fisheye.BoundsFail),
		Extensions:  []string{".jpg", ".jpeg", ".png"},
		FisheyeDir:  "fisheye",
		SVFDir:      "svf",
		JPEGQuality: 75,
		WriteReport: true,
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Validate checks everything up front, so a bad setting stops the run
// before any image gets read.
func (c Config)Validate() error {
	if _, err := c.GetProjector(); err != nil {
		return err
	}
	if math.IsNaN(c.Threshold) || c.Threshold < 0.0 || c.Threshold > 1.0 {
		return errors.Wrapf(fisheye.ErrInvalidThreshold, "config threshold %v", c.Threshold)
	}
	if len(c.Extensions) == 0 {
		return errors.New("config has no input extensions")
	}
	for _, ext := range c.Extensions {
		if !IsSupportedExtension(ext) {
			return errors.Errorf("config extension %q not supported, wanted one of %v", ext, SupportedExtensions)
		}
	}
	if c.FisheyeDir == "" || c.SVFDir == "" {
		return errors.New("config output dirs must not be empty")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("config jpegquality %d not in [1,100]", c.JPEGQuality)
	}
	if c.MaxSourceHeight < 0 {
		return errors.Errorf("config maxsourceheight %d is negative", c.MaxSourceHeight)
	}
	return nil
}

func (c Config)GetProjection() (fisheye.ProjectionType, error) {
	return fisheye.ParseProjection(c.Projection)
}

func (c Config)GetBoundsPolicy() (fisheye.BoundsPolicy, error) {
	return fisheye.ParseBoundsPolicy(c.Bounds)
}

func (c Config)GetProjector() (fisheye.Projector, error) {
	proj, err := c.GetProjection()
	if err != nil {
		return fisheye.Projector{}, err
	}
	bounds, err := c.GetBoundsPolicy()
	if err != nil {
		return fisheye.Projector{}, err
	}
	return fisheye.Projector{Projection: proj, Bounds: bounds, Workers: c.Workers}, nil
}

// WantsFile reports whether the filename has one of the configured
// extensions; case doesn't matter, so IMG_01.JPG counts as a .jpg.
func (c Config)WantsFile(filename string) bool {
	ext := extOf(filename)
	for _, want := range c.Extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

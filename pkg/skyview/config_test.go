package skyview

import(
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/fisheye"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	p, err := c.GetProjector()
	if err != nil {
		t.Fatal(err)
	}
	if p.Projection != fisheye.EqualArea || p.Bounds != fisheye.BoundsFail {
		t.Errorf("unexpected default projector %+v", p)
	}
	if c.Threshold != 0.55 {
		t.Errorf("default threshold %v", c.Threshold)
	}
}

func TestConfigFromYaml(t *testing.T) {
	c, err := newConfigFromYaml([]byte("projection: equaldis\nthreshold: 0.3\nannotate: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Projection != "equaldis" || c.Threshold != 0.3 || !c.Annotate {
		t.Errorf("yaml values not loaded: %+v", c)
	}
	// Unset fields keep their defaults
	if c.SVFDir != "svf" || c.JPEGQuality != 75 || !c.WriteReport {
		t.Errorf("defaults lost: %+v", c)
	}

	c2, err := newConfigFromYaml([]byte(c.AsYaml()))
	if err != nil {
		t.Fatal(err)
	}
	if c2.AsYaml() != c.AsYaml() {
		t.Errorf("yaml round trip changed config:\n%s\nvs\n%s", c.AsYaml(), c2.AsYaml())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct{
		name  string
		tweak func(*Config)
		is    error
	}{
		{"projection", func(c *Config) { c.Projection = "stereographic" }, fisheye.ErrInvalidProjection},
		{"threshold high", func(c *Config) { c.Threshold = 1.5 }, fisheye.ErrInvalidThreshold},
		{"threshold low", func(c *Config) { c.Threshold = -0.1 }, fisheye.ErrInvalidThreshold},
		{"bounds", func(c *Config) { c.Bounds = "wrap" }, nil},
		{"extension", func(c *Config) { c.Extensions = []string{".gif"} }, nil},
		{"no extensions", func(c *Config) { c.Extensions = nil }, nil},
		{"quality", func(c *Config) { c.JPEGQuality = 0 }, nil},
		{"outdir", func(c *Config) { c.FisheyeDir = "" }, nil},
	}

	for _, test := range tests {
		c := NewConfig()
		test.tweak(&c)
		err := c.Validate()
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
			continue
		}
		if test.is != nil && !errors.Is(err, test.is) {
			t.Errorf("%s: expected %v, got %v", test.name, test.is, err)
		}
	}
}

func TestWantsFile(t *testing.T) {
	c := NewConfig()
	tests := []struct{
		filename string
		want     bool
	}{
		{"R0010001.JPG", true},
		{"pano.jpeg", true},
		{"pano.Png", true},
		{"pano.tif", false},
		{"notes.txt", false},
		{"jpg", false},
	}
	for _, test := range tests {
		if got := c.WantsFile(test.filename); got != test.want {
			t.Errorf("WantsFile(%q) = %v", test.filename, got)
		}
	}

	c.Extensions = append(c.Extensions, ".tif")
	if !c.WantsFile("pano.TIF") {
		t.Errorf("added extension not picked up")
	}
}

func TestOutputNames(t *testing.T) {
	c := NewConfig()
	dir := filepath.Join("photos", "day1")

	o := c.OutputNames(filepath.Join(dir, "R001.JPG"), fisheye.EqualArea, 0.4237)
	if want := filepath.Join(dir, "fisheye", "R001_equalarea.JPG"); o.Fisheye != want {
		t.Errorf("fisheye name %q, want %q", o.Fisheye, want)
	}
	if want := filepath.Join(dir, "svf", "R001_svf0.42.JPG"); o.SVF != want {
		t.Errorf("svf name %q, want %q", o.SVF, want)
	}
	if o.Annotated != "" || o.HDR != "" {
		t.Errorf("optional outputs named when not wanted: %+v", o)
	}

	c.Annotate, c.WriteHDR = true, true
	o = c.OutputNames(filepath.Join(dir, "pano.v2.webp"), fisheye.Equidistant, 1.0)
	if want := filepath.Join(dir, "fisheye", "pano.v2_equaldis.png"); o.Fisheye != want {
		t.Errorf("webp fisheye name %q, want %q", o.Fisheye, want)
	}
	if want := filepath.Join(dir, "svf", "pano.v2_svf1.00.png"); o.SVF != want {
		t.Errorf("webp svf name %q, want %q", o.SVF, want)
	}
	if want := filepath.Join(dir, "svf", "pano.v2_svf1.00_annotated.png"); o.Annotated != want {
		t.Errorf("annotated name %q, want %q", o.Annotated, want)
	}
	if want := filepath.Join(dir, "fisheye", "pano.v2_equaldis.hdr"); o.HDR != want {
		t.Errorf("hdr name %q, want %q", o.HDR, want)
	}
}

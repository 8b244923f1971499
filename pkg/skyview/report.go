package skyview

import(
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v2"
)

// A Result records what happened to one input file.
type Result struct {
	Filename    string
	Camera      string  `yaml:",omitempty"`
	Taken       string  `yaml:",omitempty"`
	Width       int
	Height      int
	Projection  string
	SVF         float64
	SkyPixels   int
	TotalPixels int
	Outputs     Outputs `yaml:",omitempty"`
	Millis      int64   // wall time to decode, project, estimate and write
	Error       string  `yaml:",omitempty"`
}

func (r Result)Failed() bool { return r.Error != "" }

type Summary struct {
	Images    int
	Failed    int

	// Over the images that succeeded
	MeanSVF   float64
	StdDevSVF float64
	MinSVF    float64
	MaxSVF    float64

	// Over all images
	P50Millis int64
	P90Millis int64
	MaxMillis int64
}

type Report struct {
	Summary Summary
	Results []Result
}

const maxRecordedMillis = 60 * 60 * 1000

func NewReport(results []Result) Report {
	return Report{Summary: Summarize(results), Results: results}
}

func Summarize(results []Result) Summary {
	s := Summary{Images: len(results)}
	if len(results) == 0 {
		return s
	}

	svfs := []float64{}
	hist := hdrhistogram.New(1, maxRecordedMillis, 3)
	for _, r := range results {
		if r.Failed() {
			s.Failed++
		} else {
			svfs = append(svfs, r.SVF)
		}

		ms := r.Millis
		if ms < 1 {
			ms = 1
		}
		if ms > maxRecordedMillis {
			ms = maxRecordedMillis
		}
		hist.RecordValue(ms)
	}

	s.P50Millis = hist.ValueAtQuantile(50)
	s.P90Millis = hist.ValueAtQuantile(90)
	s.MaxMillis = hist.Max()

	if len(svfs) > 0 {
		s.MinSVF = floats.Min(svfs)
		s.MaxSVF = floats.Max(svfs)
		s.MeanSVF, s.StdDevSVF = stat.MeanStdDev(svfs, nil)
		if len(svfs) < 2 {
			s.StdDevSVF = 0 // undefined for a single sample
		}
	}

	return s
}

func (r Report)AsYaml() string {
	b, err := yaml.Marshal(r)
	if err != nil {
		log.Fatalf("Can't marshal report yaml: %v\n", err)
	}
	return string(b)
}

func (r Report)WriteYaml(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return errors.Wrapf(err, "mkdir for '%s'", filename)
	}
	if err := ioutil.WriteFile(filename, []byte(r.AsYaml()), 0644); err != nil {
		return errors.Wrapf(err, "write report '%s'", filename)
	}
	return nil
}

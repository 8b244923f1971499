package main

import(
	"flag"
	"log"
	"os"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/fisheye"
	"github.com/Freude964/ricoh-image2fish-svf/pkg/skyview"
)

var(
	fVerbosity int
	fProjection string
	fThreshold float64
	fWorkers int
	fBounds string
	fMaxHeight int
	fAnnotate bool
	fWriteHDR bool
	fWriteReport bool
)

func init() {
	registerFlags(flag.CommandLine)
}

func registerFlags(fs *flag.FlagSet) {
	def := skyview.NewConfig()

	fs.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	fs.StringVar(&fProjection, "projection_type", def.Projection, "fisheye projection: "+fisheye.ListProjections())
	fs.Float64Var(&fThreshold, "threshold", def.Threshold, "pixels brighter than this (0.0->1.0) count as sky")
	fs.IntVar(&fWorkers, "workers", def.Workers, "goroutines per projection, 0 for one per CPU")
	fs.StringVar(&fBounds, "bounds", def.Bounds, "what to do when a pixel maps outside the source: fail or clamp")
	fs.IntVar(&fMaxHeight, "maxheight", def.MaxSourceHeight, "downscale sources taller than this many pixels (0 to never)")
	fs.BoolVar(&fAnnotate, "annotate", def.Annotate, "also write an SVF image with the aperture and value drawn on")
	fs.BoolVar(&fWriteHDR, "hdr", def.WriteHDR, "also write the fisheye as a Radiance .hdr file")
	fs.BoolVar(&fWriteReport, "report", def.WriteReport, "write a report.yaml into each svf dir")
}

// applyFlags copies over only the flags given on the command line, so
// they win over a config file but don't clobber it with defaults.
func applyFlags(fs *flag.FlagSet, c *skyview.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			c.Verbosity = fVerbosity
		case "projection_type":
			c.Projection = fProjection
		case "threshold":
			c.Threshold = fThreshold
		case "workers":
			c.Workers = fWorkers
		case "bounds":
			c.Bounds = fBounds
		case "maxheight":
			c.MaxSourceHeight = fMaxHeight
		case "annotate":
			c.Annotate = fAnnotate
		case "hdr":
			c.WriteHDR = fWriteHDR
		case "report":
			c.WriteReport = fWriteReport
		}
	})
}

func main() {
	flag.Parse()
	log.Printf("image2fish starting\n")

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"."}
	}

	batch := skyview.NewBatch(skyview.NewConfig())
	if err := batch.LoadFilesAndDirs(args...); err != nil {
		log.Fatal(err)
	}

	applyFlags(flag.CommandLine, &batch.Config)
	if err := batch.Config.Validate(); err != nil {
		log.Fatal(err)
	}

	if batch.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", batch.Config.AsYaml())
	}

	if len(batch.Inputs) == 0 {
		log.Printf("No images found in %v\n", args)
		return
	}

	report, err := batch.Run()
	if err != nil {
		log.Fatal(err)
	}

	s := report.Summary
	log.Printf("Processed %d images (%d failed), mean SVF %.3f\n", s.Images, s.Failed, s.MeanSVF)
	if s.Failed > 0 {
		os.Exit(1)
	}
}

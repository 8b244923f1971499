package skyview

import(
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/fisheye"
)

// Run processes every input, one after another. A bad image is logged
// and recorded in the report, and doesn't stop the rest. If reports are
// enabled, each input dir gets one in its SVF subdir.
func (b *Batch)Run() (Report, error) {
	if err := b.Config.Validate(); err != nil {
		return Report{}, err
	}

	all   := []Result{}
	byDir := map[string][]Result{}
	dirs  := []string{}

	for _, filename := range b.Inputs {
		r := b.ProcessFile(filename)
		all = append(all, r)

		dir := filepath.Dir(filename)
		if _, exists := byDir[dir]; !exists {
			dirs = append(dirs, dir)
		}
		byDir[dir] = append(byDir[dir], r)
	}

	if b.WriteReport {
		for _, dir := range dirs {
			filename := filepath.Join(dir, b.SVFDir, "report.yaml")
			if err := NewReport(byDir[dir]).WriteYaml(filename); err != nil {
				return NewReport(all), err
			}
			if b.Verbosity > 0 {
				log.Printf("Report written to %s\n", filename)
			}
		}
	}

	return NewReport(all), nil
}

// ProcessFile projects one photo into a fisheye, estimates its sky
// view factor, and writes out the images. Nothing is written unless
// both steps work.
func (b *Batch)ProcessFile(filename string) Result {
	start := time.Now()
	r := Result{Filename: filename, Projection: b.Projection}

	if err := b.processFile(filename, &r); err != nil {
		r.Error = err.Error()
		log.Printf("Failed to process %s: %v\n", filename, err)
	}

	r.Millis = time.Since(start).Milliseconds()
	return r
}

func (b *Batch)processFile(filename string, r *Result) error {
	projector, err := b.GetProjector()
	if err != nil {
		return err
	}

	photo, err := LoadPhoto(filename)
	if err != nil {
		return err
	}
	if photo.HasExif() {
		r.Camera = photo.Camera
		if !photo.Taken.IsZero() {
			r.Taken = photo.Taken.Format(time.RFC3339)
		}
	}

	src := photo.FitHeight(b.MaxSourceHeight)
	r.Width, r.Height = src.Bounds().Dx(), src.Bounds().Dy()
	if b.Verbosity > 0 {
		log.Printf("Loaded %s (%s, %dx%d, camera %q)\n", filename, photo.Format, r.Width, r.Height, r.Camera)
		if r.Width != 2*r.Height {
			log.Printf("%s is not 2:1, expect odd results\n", filename)
		}
	}

	fish, err := projector.Project(src)
	if err != nil {
		return err
	}
	if fish.Bounds().Empty() {
		return errors.Errorf("source %dx%d is too small to project", r.Width, r.Height)
	}

	est, err := fisheye.EstimateSky(fish, b.Threshold)
	if err != nil {
		return err
	}
	r.SVF, r.SkyPixels, r.TotalPixels = est.SVF, est.SkyPixels, est.TotalPixels

	outs := b.OutputNames(filename, projector.Projection, est.SVF)
	if err := b.writeOutputs(outs, fish, est); err != nil {
		return err
	}
	r.Outputs = outs

	log.Printf("Processed image saved as: %s and %s\n", outs.Fisheye, outs.SVF)
	return nil
}

// writeOutputs writes all the files for one image, or none of them.
func (b *Batch)writeOutputs(outs Outputs, fish *image.RGBA, est fisheye.SkyEstimate) error {
	written := []string{}
	fail := func(err error) error {
		for _, f := range written {
			os.Remove(f)
		}
		return err
	}

	if err := b.WriteImage(fish, outs.Fisheye); err != nil {
		return fail(err)
	}
	written = append(written, outs.Fisheye)

	if err := b.WriteImage(est.Mask, outs.SVF); err != nil {
		return fail(err)
	}
	written = append(written, outs.SVF)

	if outs.Annotated != "" {
		if err := b.WriteImage(Annotate(est), outs.Annotated); err != nil {
			return fail(err)
		}
		written = append(written, outs.Annotated)
	}

	if outs.HDR != "" {
		if err := WriteHDR(fish, outs.HDR); err != nil {
			return fail(err)
		}
	}

	return nil
}

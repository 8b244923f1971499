package skyview

import(
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// A Batch is the set of photos to turn into fisheyes, along with the
// config to do it with.
type Batch struct {
	Config
	Inputs []string
}

func NewBatch(c Config) *Batch {
	return &Batch{Config: c}
}

// LoadFilesAndDirs collects inputs. A dir contributes the files directly
// inside it (not its subdirs, which is where our own outputs live). A
// .yaml file, given directly or found in a dir, replaces the config.
func (b *Batch)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		item, err := os.Stat(arg)

		switch {
		case err != nil:
			return errors.Wrapf(err, "load %s", arg)

		case item.IsDir():
			contents, err := ioutil.ReadDir(arg)
			if err != nil {
				return errors.Wrapf(err, "readdir %s", arg)
			}

			// Config first, so its Extensions decide which images we pick up
			for _, content := range contents {
				if !content.IsDir() && isYaml(content.Name()) {
					if err := b.loadFile(filepath.Join(arg, content.Name())); err != nil {
						return errors.Wrapf(err, "load %s", arg)
					}
				}
			}
			for _, content := range contents {
				if !content.IsDir() && !isYaml(content.Name()) {
					if err := b.loadFile(filepath.Join(arg, content.Name())); err != nil {
						return errors.Wrapf(err, "load %s", arg)
					}
				}
			}

		default:
			if err := b.loadFile(arg); err != nil {
				return errors.Wrapf(err, "loadfile %s", arg)
			}
		}
	}

	return nil
}

func isYaml(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

func (b *Batch)loadFile(filename string) error {
	switch {
	case isYaml(filename):
		cfg, err := loadConfig(filename)
		if err != nil {
			return errors.Wrapf(err, "Loading %s as config YAML failed", filename)
		}
		if len(b.Inputs) > 0 {
			log.Printf("Configuration from %s replaces the one used to pick the %d inputs already queued\n",
				filename, len(b.Inputs))
		}
		b.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)

	case b.WantsFile(filename):
		b.Inputs = append(b.Inputs, filename)

	default:
		if b.Verbosity > 1 {
			log.Printf("Ignoring %s\n", filename)
		}
	}

	return nil
}

func loadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config read %s", filename)
	}

	return newConfigFromYaml(contents)
}

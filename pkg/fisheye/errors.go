package fisheye

import(
	"fmt"

	"github.com/pkg/errors"
)

var(
	ErrInvalidProjection     = errors.New("invalid projection type")
	ErrShapeMismatch         = errors.New("image must be a square")
	ErrInvalidThreshold      = errors.New("threshold must be in the range [0,1]")
	ErrSourceIndexOutOfRange = errors.New("source index out of range")
)

// A SourceIndexError is returned when a fisheye pixel would sample a
// point outside the source image. This can't happen for a 2:1 source;
// it means the source has some other shape.
type SourceIndexError struct {
	U, V          int // the fisheye pixel (row, column)
	Row, Col      int // the source coords it mapped to, before wrapping
	Height, Width int // the source dimensions
}

func (e *SourceIndexError)Error() string {
	return fmt.Sprintf("fisheye pixel (%d,%d) samples source row %d, col %d of a %dx%d image: %v",
		e.U, e.V, e.Row, e.Col, e.Width, e.Height, ErrSourceIndexOutOfRange)
}

func (e *SourceIndexError)Unwrap() error { return ErrSourceIndexOutOfRange }

package fisheye

import(
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/Freude964/ricoh-image2fish-svf/pkg/emath"
)

// ProjectionType names the radial law that maps distance from the
// fisheye center to a row of the source image. The values are the
// tokens accepted on the command line.
type ProjectionType string

const(
	// Equidistant maps fisheye radius linearly onto source rows.
	Equidistant = ProjectionType("equaldis")
	// EqualArea squeezes the larger radii, so equal areas of the fisheye
	// disc come from equal areas of the source.
	EqualArea   = ProjectionType("equalarea")
)

var(
	Projections = []ProjectionType{Equidistant, EqualArea}
)

func ListProjections() string {
	return fmt.Sprintf("%v", Projections)
}

// ParseProjection turns a command line token into a ProjectionType.
func ParseProjection(token string) (ProjectionType, error) {
	p := ProjectionType(token)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p ProjectionType)String() string { return string(p) }

func (p ProjectionType)Validate() error {
	switch p {
	case Equidistant, EqualArea:
		return nil
	default:
		return errors.Wrapf(ErrInvalidProjection, "%q, wanted one of %s", string(p), ListProjections())
	}
}

// RadialIndex maps a point at squared distance d2 from the center of a
// fisheye of radius l onto a source row. For points inside the disc
// (d2 <= l*l) the result is in [0, l]. The float result is truncated,
// not rounded.
func (p ProjectionType)RadialIndex(d2, l int) int {
	switch p {
	case EqualArea:
		return int(float64(4*l) / math.Pi * math.Asin(emath.Radius(d2) / (math.Sqrt2 * float64(l))))
	default:
		return int(emath.Radius(d2))
	}
}

// AzimuthIndex maps the angle of the offset (du,dv) onto a source
// column. The angle spans (-π, π], so the result spans (-2l, 2l];
// negative columns count back from the right hand edge of the source.
func AzimuthIndex(du, dv, l int) int {
	return int(float64(2*l) / math.Pi * emath.Azimuth(du, dv))
}

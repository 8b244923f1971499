package fisheye

import(
	"github.com/pkg/errors"
)

// A BoundsPolicy says what to do when a fisheye pixel maps to a point
// outside the source image.
type BoundsPolicy string

const(
	BoundsFail  = BoundsPolicy("fail")  // abort the whole image with a *SourceIndexError
	BoundsClamp = BoundsPolicy("clamp") // sample the nearest edge pixel instead
)

func ParseBoundsPolicy(token string) (BoundsPolicy, error) {
	switch bp := BoundsPolicy(token); bp {
	case "":
		return BoundsFail, nil
	case BoundsFail, BoundsClamp:
		return bp, nil
	default:
		return "", errors.Errorf("no bounds policy named %q, wanted %q or %q", token, BoundsFail, BoundsClamp)
	}
}

// resolveIndex applies an index to an axis of length n. Negative
// indices count back from the end, so -1 is the last element. It
// reports whether the result landed inside [0, n).
func resolveIndex(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n-1
	}
	if i < 0 {
		i = 0
	}
	return i
}

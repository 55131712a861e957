package strip

import (
	"github.com/mobiusclock/mobius/pkg/math"
)

// EdgePath is the discretized boundary curve of the strip: 2N points,
// index-addressable with wraparound. Because of the half twist the strip
// has a single continuous edge, so front-inner and back-outer corner runs
// join into one closed loop traversed once per 12 clock hours.
type EdgePath []math.Vec3

// BuildEdgePath concatenates the front-inner corners with the back-outer
// corners. FrontInner(N) coincides with BackOuter(0) and BackOuter(N)
// with FrontInner(0), so the concatenation is continuous and closed.
func BuildEdgePath(cs *CrossSections) EdgePath {
	n := cs.Params.Segments
	path := make(EdgePath, 0, 2*n)
	path = append(path, cs.FrontInner...)
	path = append(path, cs.BackOuter...)
	return path
}

// At returns the path point at index i modulo the path length.
func (p EdgePath) At(i int) math.Vec3 {
	n := len(p)
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

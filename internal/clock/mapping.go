// Package clock maps wall-clock time onto the strip geometry: hour
// positions along the boundary edge path, minute/second positions on the
// centerline circle, indicator orientation, and the fast-mode time
// transform.
package clock

import (
	gomath "math"

	"github.com/mobiusclock/mobius/internal/strip"
	"github.com/mobiusclock/mobius/pkg/math"
)

// Mapper converts clock values into positions on the strip. It holds
// references to the immutable point arrays built at startup.
type Mapper struct {
	edge   strip.EdgePath
	center []math.Vec3
	n      int
	radius float32
}

// NewMapper builds a mapper over the strip's edge path and centerline.
func NewMapper(cs *strip.CrossSections, edge strip.EdgePath) *Mapper {
	return &Mapper{
		edge:   edge,
		center: cs.Centerline,
		n:      cs.Params.Segments,
		radius: cs.Params.Radius,
	}
}

// HourPoint is a resolved position on the edge path.
type HourPoint struct {
	// Position is the interpolated point on the boundary edge.
	Position math.Vec3
	// Outward points from the centerline toward the edge position.
	Outward math.Vec3
	// Tangent is the normalized direction of travel along the edge.
	Tangent math.Vec3
}

// HourPosition maps an hour-of-day value in [0, 24) onto the edge path.
// One traversal of the 2N-point path covers 12 clock hours; the full day
// walks the single boundary edge twice, which is exactly the double cover
// forced by the half twist. h and h+24 resolve to the same point.
func (m *Mapper) HourPosition(h float64) HourPoint {
	idx := m.EdgeIndex(h)
	i1 := int(idx)
	frac := float32(idx - float64(i1))
	i1 %= 2 * m.n
	i2 := (i1 + 1) % (2 * m.n)

	p1 := m.edge[i1]
	p2 := m.edge[i2]
	pos := p1.Lerp(p2, frac)

	c1 := m.center[i1%m.n]
	c2 := m.center[i2%m.n]
	cpos := c1.Lerp(c2, frac)

	return HourPoint{
		Position: pos,
		Outward:  pos.Sub(cpos).Normalize(),
		Tangent:  p2.Sub(p1).Normalize(),
	}
}

// DialPoint is a resolved position on the centerline circle.
type DialPoint struct {
	Position math.Vec3
	// Outward is the radial direction at the position.
	Outward math.Vec3
	// Tangent is the normalized direction of travel (clockwise, matching
	// the indicator's motion).
	Tangent math.Vec3
}

// DialPosition maps a value in [0, period) onto the centerline circle,
// zero at the top, increasing clockwise. Both the minute and second
// indicators use period 60.
func (m *Mapper) DialPosition(value, period float64) DialPoint {
	angle := gomath.Pi/2 - value/period*2*gomath.Pi
	sin, cos := gomath.Sincos(angle)

	outward := math.Vec3{X: float32(cos), Y: float32(sin)}
	return DialPoint{
		Position: outward.Scale(m.radius),
		Outward:  outward,
		// Derivative of the position with respect to value, normalized.
		Tangent: math.Vec3{X: float32(sin), Y: float32(-cos)},
	}
}

// EdgeIndex returns the fractional edge-path index for an hour value.
// Index N/2 (the top of the ring) is midnight; the index decreases as
// the hour advances, so indicators travel clockwise when viewed from +Z.
func (m *Mapper) EdgeIndex(h float64) float64 {
	twoN := float64(2 * m.n)
	idx := gomath.Mod(float64(m.n)/2-h/24*twoN, twoN)
	if idx < 0 {
		idx += twoN
	}
	return idx
}

// Package strip generates the Möbius strip clock-face geometry: the
// cross-section point sets, the assembled triangle mesh with its tick
// material groups, and the boundary edge path used to place indicators.
package strip

import (
	gomath "math"

	"github.com/mobiusclock/mobius/pkg/math"
)

// Params holds the fixed geometry constants of the strip.
type Params struct {
	// Segments is the number of cross-sections N. Must be at least 3.
	Segments int
	// Length is the cross-section width of the ribbon.
	Length float32
	// Thickness is the cross-section depth of the ribbon.
	Thickness float32
	// Radius is the centerline circle radius.
	Radius float32
}

// DefaultParams returns the reference strip geometry.
func DefaultParams() Params {
	return Params{
		Segments:  360,
		Length:    1.0,
		Thickness: 0.1,
		Radius:    3.0,
	}
}

// CrossSections holds the eight characteristic points of every
// cross-section, plus the centerline circle. Each slice has Segments
// entries; index i corresponds to twist angle i*pi/N and centerline
// angle -pi/2 + i*2*pi/N.
type CrossSections struct {
	FrontInner []math.Vec3
	BackInner  []math.Vec3
	FrontOuter []math.Vec3
	BackOuter  []math.Vec3

	// Thirdway points, one third of the way from the named corner toward
	// its paired corner on the opposite face. They bound the middle-third
	// tick band.
	ThirdFrontInner []math.Vec3
	ThirdBackInner  []math.Vec3
	ThirdFrontOuter []math.Vec3
	ThirdBackOuter  []math.Vec3

	Centerline []math.Vec3

	Params Params
}

// GeneratePoints computes all cross-section points from the strip
// constants. Pure function of Params; the result is never mutated after
// construction.
func GeneratePoints(p Params) *CrossSections {
	n := p.Segments
	cs := &CrossSections{
		FrontInner:      make([]math.Vec3, n),
		BackInner:       make([]math.Vec3, n),
		FrontOuter:      make([]math.Vec3, n),
		BackOuter:       make([]math.Vec3, n),
		ThirdFrontInner: make([]math.Vec3, n),
		ThirdBackInner:  make([]math.Vec3, n),
		ThirdFrontOuter: make([]math.Vec3, n),
		ThirdBackOuter:  make([]math.Vec3, n),
		Centerline:      make([]math.Vec3, n),
		Params:          p,
	}

	l := float64(p.Length)
	t := float64(p.Thickness)
	r := float64(p.Radius)

	// Half diagonal of the cross-section rectangle and the angle between
	// the diagonal and the ribbon's long axis.
	s := gomath.Sqrt(l*l+t*t) / 2
	beta := gomath.Asin(t / (2 * s))

	for i := 0; i < n; i++ {
		alpha := float64(i) * gomath.Pi / float64(n)
		phi := -gomath.Pi/2 + float64(i)*2*gomath.Pi/float64(n)

		sinA := gomath.Sin(alpha + beta)
		cosA := gomath.Cos(alpha + beta)
		sinB := gomath.Sin(alpha - beta)
		cosB := gomath.Cos(alpha - beta)

		cs.FrontOuter[i] = project(r+s*sinA, phi, s*cosA)
		cs.FrontInner[i] = project(r+s*sinB, phi, s*cosB)
		cs.BackOuter[i] = project(r-s*sinB, phi, -s*cosB)
		cs.BackInner[i] = project(r-s*sinA, phi, -s*cosA)

		cs.ThirdFrontInner[i] = thirdway(cs.FrontInner[i], cs.BackInner[i])
		cs.ThirdBackInner[i] = thirdway(cs.BackInner[i], cs.FrontInner[i])
		cs.ThirdFrontOuter[i] = thirdway(cs.FrontOuter[i], cs.BackOuter[i])
		cs.ThirdBackOuter[i] = thirdway(cs.BackOuter[i], cs.FrontOuter[i])

		cs.Centerline[i] = project(r, phi, 0)
	}

	return cs
}

// project maps a (radius, height) pair at centerline angle phi into 3D.
func project(radius, phi, z float64) math.Vec3 {
	return math.Vec3{
		X: float32(radius * gomath.Cos(phi)),
		Y: float32(radius * gomath.Sin(phi)),
		Z: float32(z),
	}
}

// thirdway returns the point one third of the way from a toward b.
func thirdway(a, b math.Vec3) math.Vec3 {
	return a.Sub(a.Sub(b).Scale(1.0 / 3.0))
}

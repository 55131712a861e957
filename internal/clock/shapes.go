package clock

import (
	gomath "math"

	"github.com/mobiusclock/mobius/internal/strip"
	"github.com/mobiusclock/mobius/pkg/math"
)

// Shape names an indicator mesh style. Hour indicators additionally
// accept ShapeOuterRing, which orbits outside the strip instead of
// sitting on it.
type Shape string

const (
	ShapeSphere    Shape = "sphere"
	ShapeDisc      Shape = "disc"
	ShapeRing      Shape = "ring"
	ShapeOuterRing Shape = "outer-ring"
)

// ParseShape resolves a shape name, reporting whether it was recognized.
func ParseShape(s string) (Shape, bool) {
	switch Shape(s) {
	case ShapeSphere, ShapeDisc, ShapeRing, ShapeOuterRing:
		return Shape(s), true
	}
	return ShapeSphere, false
}

// Indicator sizes relative to the default strip radius of 3. The hour
// shape is the largest, seconds the smallest, so overlapping indicators
// stay readable.
const (
	HourRadius   = 0.40
	MinuteRadius = 0.25
	SecondRadius = 0.12

	// RingTubeRatio is the torus tube radius as a fraction of its major
	// radius.
	RingTubeRatio = 0.35
)

// BuildSphere generates a UV sphere centered at the origin. The mesh uses
// the light material for its single group.
func BuildSphere(radius float32, stacks, slices int) *strip.Mesh {
	mesh := &strip.Mesh{}
	for st := 0; st <= stacks; st++ {
		theta := gomath.Pi * float64(st) / float64(stacks)
		sinT, cosT := gomath.Sincos(theta)
		for sl := 0; sl <= slices; sl++ {
			phi := 2 * gomath.Pi * float64(sl) / float64(slices)
			sinP, cosP := gomath.Sincos(phi)
			normal := math.Vec3{
				X: float32(sinT * cosP),
				Y: float32(cosT),
				Z: float32(sinT * sinP),
			}
			mesh.Vertices = append(mesh.Vertices, strip.Vertex{
				Position: normal.Scale(radius),
				Normal:   normal,
			})
		}
	}
	cols := slices + 1
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			a := uint32(st*cols + sl)
			b := a + uint32(cols)
			mesh.Indices = append(mesh.Indices,
				a, b, a+1,
				a+1, b, b+1)
		}
	}
	finishShape(mesh)
	return mesh
}

// BuildDisc generates a thin double-sided disc in the XY plane with a
// rim connecting the two faces. Its local +Z is the face normal.
func BuildDisc(radius, thickness float32, slices int) *strip.Mesh {
	mesh := &strip.Mesh{}
	half := thickness / 2

	// Two center vertices, then paired rim vertices per slice.
	mesh.Vertices = append(mesh.Vertices,
		strip.Vertex{Position: math.Vec3{Z: half}, Normal: math.Vec3{Z: 1}},
		strip.Vertex{Position: math.Vec3{Z: -half}, Normal: math.Vec3{Z: -1}},
	)
	for sl := 0; sl <= slices; sl++ {
		phi := 2 * gomath.Pi * float64(sl) / float64(slices)
		sinP, cosP := gomath.Sincos(phi)
		out := math.Vec3{X: float32(cosP), Y: float32(sinP)}
		rim := out.Scale(radius)
		mesh.Vertices = append(mesh.Vertices,
			strip.Vertex{Position: math.Vec3{X: rim.X, Y: rim.Y, Z: half}, Normal: math.Vec3{Z: 1}},
			strip.Vertex{Position: math.Vec3{X: rim.X, Y: rim.Y, Z: -half}, Normal: math.Vec3{Z: -1}},
			strip.Vertex{Position: math.Vec3{X: rim.X, Y: rim.Y, Z: half}, Normal: out},
			strip.Vertex{Position: math.Vec3{X: rim.X, Y: rim.Y, Z: -half}, Normal: out},
		)
	}
	stride := uint32(4)
	base := uint32(2)
	for sl := 0; sl < slices; sl++ {
		a := base + uint32(sl)*stride
		b := a + stride
		// Front face, back face, rim.
		mesh.Indices = append(mesh.Indices,
			0, a, b,
			1, b+1, a+1,
			a+2, a+3, b+2,
			b+2, a+3, b+3)
	}
	finishShape(mesh)
	return mesh
}

// BuildTorus generates a torus around the local +Z axis. Both the ring
// and outer-ring shapes use it; they differ only in placement.
func BuildTorus(major, tube float32, rings, sides int) *strip.Mesh {
	mesh := &strip.Mesh{}
	for r := 0; r <= rings; r++ {
		phi := 2 * gomath.Pi * float64(r) / float64(rings)
		sinP, cosP := gomath.Sincos(phi)
		out := math.Vec3{X: float32(cosP), Y: float32(sinP)}
		for s := 0; s <= sides; s++ {
			theta := 2 * gomath.Pi * float64(s) / float64(sides)
			sinT, cosT := gomath.Sincos(theta)
			normal := math.Vec3{
				X: out.X * float32(cosT),
				Y: out.Y * float32(cosT),
				Z: float32(sinT),
			}
			mesh.Vertices = append(mesh.Vertices, strip.Vertex{
				Position: out.Scale(major).Add(normal.Scale(tube)),
				Normal:   normal,
			})
		}
	}
	cols := sides + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < sides; s++ {
			a := uint32(r*cols + s)
			b := a + uint32(cols)
			mesh.Indices = append(mesh.Indices,
				a, a+1, b,
				b, a+1, b+1)
		}
	}
	finishShape(mesh)
	return mesh
}

// BuildIndicator returns the mesh for a shape at the given nominal
// radius. Outer rings share the torus builder; placement is handled by
// orientation.
func BuildIndicator(shape Shape, radius float32) *strip.Mesh {
	switch shape {
	case ShapeDisc:
		return BuildDisc(radius, radius*0.25, 32)
	case ShapeRing, ShapeOuterRing:
		return BuildTorus(radius, radius*RingTubeRatio, 36, 18)
	default:
		return BuildSphere(radius, 16, 24)
	}
}

func finishShape(mesh *strip.Mesh) {
	mesh.Groups = []strip.MaterialGroup{{
		Material:   strip.MaterialLight,
		StartIndex: 0,
		IndexCount: int32(len(mesh.Indices)),
	}}
}

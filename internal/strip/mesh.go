package strip

import (
	"github.com/mobiusclock/mobius/pkg/math"
)

// Vertex is a mesh vertex ready for GPU upload.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// MaterialGroup binds a contiguous index range to one material slot, for
// batched rendering. StartIndex and IndexCount are in indices, not
// triangles.
type MaterialGroup struct {
	Material   Material
	StartIndex int32
	IndexCount int32
}

// Mesh holds complete mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Groups   []MaterialGroup
}

// Vertex-buffer offsets of the eight points of a cross-section. The order
// is load-bearing: index arithmetic below and in the wrap permutation
// assumes base = i*8 plus these offsets.
const (
	offFrontInner = iota
	offBackInner
	offFrontOuter
	offBackOuter
	offThirdFrontInner
	offThirdBackInner
	offThirdFrontOuter
	offThirdBackOuter
	pointsPerSection
)

// wrapPermutation substitutes cross-section 0's point offsets when
// closing segment N-1. The last cross-section is rotated 180° relative to
// the first, so its front-inner corner lands on back-outer and so on:
// corners map o -> 3-o and the thirdway set shifts the same way.
var wrapPermutation = [pointsPerSection]int{
	offBackOuter, offFrontOuter, offBackInner, offFrontInner,
	offThirdBackOuter, offThirdFrontOuter, offThirdBackInner, offThirdFrontInner,
}

// Index counts of the two material groups of one segment.
const (
	outerGroupIndices  = 36 // six quads: both face thirds twice, two edge faces
	middleGroupIndices = 12 // two quads: the tick band on each face
	segmentIndices     = outerGroupIndices + middleGroupIndices
)

// Assemble builds the strip mesh from the cross-section points. The
// vertex buffer holds the 8 points of each cross-section in offset order
// (8N vertices); the index buffer closes the strip with 8 quads per
// segment, substituting the rotated offsets at the wrap segment. Material
// assignment per segment follows the active tick scheme.
func Assemble(cs *CrossSections, scheme TickScheme) *Mesh {
	n := cs.Params.Segments

	m := &Mesh{
		Vertices: make([]Vertex, 0, n*pointsPerSection),
		Indices:  make([]uint32, 0, n*segmentIndices),
		Groups:   make([]MaterialGroup, 0, 2*n),
	}

	for i := 0; i < n; i++ {
		m.Vertices = append(m.Vertices,
			Vertex{Position: cs.FrontInner[i]},
			Vertex{Position: cs.BackInner[i]},
			Vertex{Position: cs.FrontOuter[i]},
			Vertex{Position: cs.BackOuter[i]},
			Vertex{Position: cs.ThirdFrontInner[i]},
			Vertex{Position: cs.ThirdBackInner[i]},
			Vertex{Position: cs.ThirdFrontOuter[i]},
			Vertex{Position: cs.ThirdBackOuter[i]},
		)
	}

	for i := 0; i < n; i++ {
		base0 := uint32(i * pointsPerSection)
		next := (i + 1) % n

		// idx resolves a point offset on the far side of the segment.
		// At the wrap the raw base indices of cross-section 0 would stitch
		// front to front despite the half twist; the permutation keeps the
		// winding continuous.
		idx := func(off int) uint32 {
			if next == 0 {
				return uint32(wrapPermutation[off])
			}
			return uint32(next*pointsPerSection + off)
		}

		outerMat, middleMat := Classify(scheme, i, n)

		start := int32(len(m.Indices))

		// Outer-thirds group: the face strips either side of the tick band
		// plus the two edge faces. Category order along each width is
		// chosen so every quad's winding faces away from the ribbon.
		m.emitQuad(base0+offFrontOuter, base0+offThirdFrontOuter, idx(offFrontOuter), idx(offThirdFrontOuter))
		m.emitQuad(base0+offThirdBackOuter, base0+offBackOuter, idx(offThirdBackOuter), idx(offBackOuter))
		m.emitQuad(base0+offBackInner, base0+offThirdBackInner, idx(offBackInner), idx(offThirdBackInner))
		m.emitQuad(base0+offThirdFrontInner, base0+offFrontInner, idx(offThirdFrontInner), idx(offFrontInner))
		m.emitQuad(base0+offFrontInner, base0+offFrontOuter, idx(offFrontInner), idx(offFrontOuter))
		m.emitQuad(base0+offBackOuter, base0+offBackInner, idx(offBackOuter), idx(offBackInner))

		m.Groups = append(m.Groups, MaterialGroup{
			Material:   outerMat,
			StartIndex: start,
			IndexCount: outerGroupIndices,
		})

		start = int32(len(m.Indices))

		// Middle-third (tick) group: one quad per visible face.
		m.emitQuad(base0+offThirdFrontOuter, base0+offThirdBackOuter, idx(offThirdFrontOuter), idx(offThirdBackOuter))
		m.emitQuad(base0+offThirdBackInner, base0+offThirdFrontInner, idx(offThirdBackInner), idx(offThirdFrontInner))

		m.Groups = append(m.Groups, MaterialGroup{
			Material:   middleMat,
			StartIndex: start,
			IndexCount: middleGroupIndices,
		})
	}

	m.computeNormals()
	return m
}

// emitQuad adds the two triangles of the quad spanning point a..b across
// one segment: a0/b0 on the near cross-section, a1/b1 on the far one.
// Winding is (a0, b0, a1), (a1, b0, b1): normal ∝ (b0-a0) × (a1-a0),
// width direction crossed with strip tangent.
func (m *Mesh) emitQuad(a0, b0, a1, b1 uint32) {
	m.Indices = append(m.Indices, a0, b0, a1, a1, b0, b1)
}

// computeNormals accumulates area-weighted face normals on the shared
// vertices and normalizes, giving smooth shading around the twist.
func (m *Mesh) computeNormals() {
	for i := 0; i < len(m.Indices); i += 3 {
		v0 := &m.Vertices[m.Indices[i]]
		v1 := &m.Vertices[m.Indices[i+1]]
		v2 := &m.Vertices[m.Indices[i+2]]

		fn := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))

		v0.Normal = v0.Normal.Add(fn)
		v1.Normal = v1.Normal.Add(fn)
		v2.Normal = v2.Normal.Add(fn)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

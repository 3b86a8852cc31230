package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
)

// Vertex layout of Interleaved: position (3 x f32), normal (3 x f32),
// uv (2 x f32).
const (
	positionOffset = 0
	normalOffset   = 12
	uvOffset       = 24

	// VertexStride is the byte size of one interleaved vertex.
	VertexStride = 32
	// FloatsPerVertex is the float32 count of one interleaved vertex.
	FloatsPerVertex = VertexStride / 4
)

// Mesh is a GPU-ready vertex/index container. Positions, Normals and UVs are
// parallel: the same length, one entry per vertex. Normals and UVs are zero
// for meshes produced by this package.
type Mesh struct {
	Topology  gputypes.PrimitiveTopology
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

func newMesh(topology gputypes.PrimitiveTopology, positions [][3]float32, indices []uint32) *Mesh {
	return &Mesh{
		Topology:  topology,
		Positions: positions,
		Normals:   make([][3]float32, len(positions)),
		UVs:       make([][2]float32, len(positions)),
		Indices:   indices,
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// Primitives returns the number of points, segments or triangles drawn by m.
func (m *Mesh) Primitives() int {
	switch m.Topology {
	case gputypes.PrimitiveTopologyLineList:
		return len(m.Indices) / 2
	case gputypes.PrimitiveTopologyTriangleList:
		return len(m.Indices) / 3
	}
	return len(m.Indices)
}

// IndexFormat returns the index buffer format, always 32-bit.
func (m *Mesh) IndexFormat() gputypes.IndexFormat { return gputypes.IndexFormatUint32 }

// VertexBufferLayouts describes the Interleaved buffer for a render pipeline.
func (m *Mesh) VertexBufferLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: positionOffset, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x3, Offset: normalOffset, ShaderLocation: 1},   // normal
				{Format: gputypes.VertexFormatFloat32x2, Offset: uvOffset, ShaderLocation: 2},       // uv
			},
		},
	}
}

// Interleaved packs the vertex attributes into one buffer of
// FloatsPerVertex floats per vertex.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*FloatsPerVertex)
	for i, p := range m.Positions {
		var n [3]float32
		var uv [2]float32
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		if i < len(m.UVs) {
			uv = m.UVs[i]
		}
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// Validate checks the container invariants: parallel attribute slices, every
// index in range and an index count that fits the topology.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.UVs) != n {
		return fmt.Errorf("mesh: attribute lengths differ: %d positions, %d normals, %d uvs",
			n, len(m.Normals), len(m.UVs))
	}
	switch m.Topology {
	case gputypes.PrimitiveTopologyLineList:
		if len(m.Indices)%2 != 0 {
			return fmt.Errorf("mesh: line list has %d indices", len(m.Indices))
		}
	case gputypes.PrimitiveTopologyTriangleList:
		if len(m.Indices)%3 != 0 {
			return fmt.Errorf("mesh: triangle list has %d indices", len(m.Indices))
		}
	}
	for i, idx := range m.Indices {
		if uint64(idx) >= uint64(n) {
			return fmt.Errorf("mesh: index %d at %d out of range for %d vertices", idx, i, n)
		}
	}
	return nil
}

// Bound returns the xy extent of the positions. ok is false for a mesh
// without vertices.
func (m *Mesh) Bound() (min, max [2]float32, ok bool) {
	if len(m.Positions) == 0 {
		return min, max, false
	}
	min = [2]float32{math32.Inf(1), math32.Inf(1)}
	max = [2]float32{math32.Inf(-1), math32.Inf(-1)}
	for _, p := range m.Positions {
		min[0] = math32.Min(min[0], p[0])
		min[1] = math32.Min(min[1], p[1])
		max[0] = math32.Max(max[0], p[0])
		max[1] = math32.Max(max[1], p[1])
	}
	return min, max, true
}

// TopologyName returns a short label for t.
func TopologyName(t gputypes.PrimitiveTopology) string {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return "points"
	case gputypes.PrimitiveTopologyLineList:
		return "lines"
	case gputypes.PrimitiveTopologyTriangleList:
		return "triangles"
	}
	return fmt.Sprintf("topology(%d)", int(t))
}

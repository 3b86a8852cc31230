package mesh

import (
	"errors"

	"github.com/gogpu/gputypes"

	"geomesh/internal/geom"
)

// PolylineAccumulator merges polylines into one line-list buffer. Each
// polyline of n vertices adds n vertices and the n-1 segments joining
// consecutive ones; consecutive polylines are never joined. The zero value
// is ready to use and fails on index overflow.
type PolylineAccumulator struct {
	vertices [][3]float32
	indices  []uint32
	overflow OverflowPolicy
}

// AddPolyline appends ls. On error the accumulator is unchanged.
//
// A polyline whose indices would pass math.MaxUint32 returns an
// *IndexOverflowError, or is dropped with a warning under OverflowSkip.
func (a *PolylineAccumulator) AddPolyline(ls geom.LineString) error {
	if len(ls) == 0 {
		return nil
	}
	base := len(a.vertices)
	idx, err := segmentIndices(base, len(ls))
	if err != nil {
		var oe *IndexOverflowError
		if a.overflow == OverflowSkip && errors.As(err, &oe) {
			Logger().Warn("mesh: polyline skipped, index overflow",
				"vertices", len(ls), "base", base)
			return nil
		}
		return err
	}
	verts, err := toVertices(ls)
	if err != nil {
		return err
	}
	a.vertices = append(a.vertices, verts...)
	a.indices = append(a.indices, idx...)
	return nil
}

// VertexCount returns the number of vertices accumulated so far.
func (a *PolylineAccumulator) VertexCount() int { return len(a.vertices) }

// Finalize returns the line-list mesh, or false when no vertices were added.
// A polyline of a single point contributes a vertex but no segment.
func (a *PolylineAccumulator) Finalize() (*Mesh, bool) {
	if len(a.vertices) == 0 {
		return nil, false
	}
	verts := make([][3]float32, len(a.vertices))
	copy(verts, a.vertices)
	idx := make([]uint32, len(a.indices))
	copy(idx, a.indices)
	return newMesh(gputypes.PrimitiveTopologyLineList, verts, idx), true
}

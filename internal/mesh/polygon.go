package mesh

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"geomesh/internal/geom"
)

// contour is one polygon's triangulator input.
type contour struct {
	flat  []float64
	holes []int
}

// FlattenPolygon lays out p for a Triangulator: x, y pairs of the exterior
// followed by each hole in order, and the vertex offset of every hole.
// Rings are copied as given, closing coordinate included.
func FlattenPolygon(p geom.Polygon) (flat []float64, holes []int) {
	flat = make([]float64, 0, 2*p.NumCoords())
	holes = make([]int, 0, len(p.Interiors()))
	for i, ring := range p {
		if i > 0 {
			holes = append(holes, len(flat)/2)
		}
		for _, pt := range ring {
			flat = append(flat, pt[0], pt[1])
		}
	}
	return flat, holes
}

// PolygonContourAssembler collects polygons for triangulation and builds
// their border meshes. The zero value is ready to use with the earcut
// triangulator.
type PolygonContourAssembler struct {
	contours    []contour
	exterior    PolylineAccumulator
	interiors   []*PolylineAccumulator
	triangulate Triangulator
}

// AddPolygon appends p. A polygon without rings contributes nothing. Every
// ring needs at least 4 coordinates (closed triangle) or AddPolygon returns a
// *DegenerateRingError. On error the assembler is unchanged.
func (a *PolygonContourAssembler) AddPolygon(p geom.Polygon) error {
	if len(p) == 0 {
		return nil
	}
	for i, ring := range p {
		if len(ring) < 4 {
			return &DegenerateRingError{Ring: i, Coords: len(ring)}
		}
	}

	holes := make([]*PolylineAccumulator, 0, len(p.Interiors()))
	for _, ring := range p.Interiors() {
		acc := &PolylineAccumulator{overflow: a.exterior.overflow}
		if err := acc.AddPolyline(ring); err != nil {
			return err
		}
		holes = append(holes, acc)
	}
	// last fallible step, so nothing needs undoing after it
	if err := a.exterior.AddPolyline(p.Exterior()); err != nil {
		return err
	}

	flat, offsets := FlattenPolygon(p)
	a.contours = append(a.contours, contour{flat: flat, holes: offsets})
	a.interiors = append(a.interiors, holes...)
	return nil
}

// Len returns the number of polygons added.
func (a *PolygonContourAssembler) Len() int { return len(a.contours) }

// Finalize triangulates every polygon and merges the results into one
// triangle-list mesh, shifting each polygon's indices by the vertices
// already emitted. It returns nil, nil when no polygon was added.
func (a *PolygonContourAssembler) Finalize() (*PolygonMesh, error) {
	if len(a.contours) == 0 {
		return nil, nil
	}
	tri := a.triangulate
	if tri == nil {
		tri = Earcut
	}

	var positions [][3]float32
	var indices []uint32
	for i, c := range a.contours {
		verts, idx, err := tri(c.flat, c.holes)
		if err != nil {
			return nil, &TriangulationError{Polygon: i, Err: err}
		}
		if len(verts)%2 != 0 || len(idx)%3 != 0 {
			return nil, &TriangulationError{Polygon: i,
				Err: fmt.Errorf("malformed output: %d coordinates, %d indices", len(verts), len(idx))}
		}
		n := len(verts) / 2
		base := len(positions)
		for j := 0; j < n; j++ {
			v, err := toVertex(geom.Point{verts[2*j], verts[2*j+1]})
			if err != nil {
				return nil, err
			}
			positions = append(positions, v)
		}
		for _, k := range idx {
			if k < 0 || k >= n {
				return nil, &TriangulationError{Polygon: i,
					Err: fmt.Errorf("index %d out of range for %d vertices", k, n)}
			}
			u, err := checkedIndex(base + k)
			if err != nil {
				return nil, err
			}
			indices = append(indices, u)
		}
		Logger().Debug("mesh: polygon triangulated",
			"polygon", i, "vertices", n, "triangles", len(idx)/3, "holes", len(c.holes))
	}

	pm := &PolygonMesh{
		Mesh:      newMesh(gputypes.PrimitiveTopologyTriangleList, positions, indices),
		Interiors: make([]*Mesh, 0, len(a.interiors)),
	}
	if m, ok := a.exterior.Finalize(); ok {
		pm.Exterior = m
	}
	for _, acc := range a.interiors {
		if m, ok := acc.Finalize(); ok {
			pm.Interiors = append(pm.Interiors, m)
		}
	}
	return pm, nil
}

package mesh

import "geomesh/internal/geom"

// PointAccumulator collects points in insertion order. The zero value is
// ready to use.
type PointAccumulator struct {
	points []geom.Point
}

// Add appends p.
func (a *PointAccumulator) Add(p geom.Point) {
	a.points = append(a.points, p)
}

// Len returns the number of points added.
func (a *PointAccumulator) Len() int { return len(a.points) }

// Finalize returns the points as a PointMesh, or false when none were added.
func (a *PointAccumulator) Finalize() (*PointMesh, bool) {
	if len(a.points) == 0 {
		return nil, false
	}
	pts := make([]geom.Point, len(a.points))
	copy(pts, a.points)
	return &PointMesh{Points: pts}, true
}

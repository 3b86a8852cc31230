package mesh

import (
	"github.com/gogpu/gputypes"

	"geomesh/internal/geom"
)

// Kind identifies the variant of a GeometryMesh.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLineString:
		return "linestring"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// GeometryMesh is one output of a build: a *PointMesh, *LineStringMesh or
// *PolygonMesh.
type GeometryMesh interface {
	Kind() Kind
}

// PointMesh carries the accumulated points in insertion order, untouched.
type PointMesh struct {
	Points []geom.Point
}

// LineStringMesh is a line-list mesh of every accumulated polyline.
type LineStringMesh struct {
	Mesh *Mesh
}

// PolygonMesh is the triangulated fill of every accumulated polygon together
// with its borders: one line-list mesh holding all exterior rings, and one
// per interior ring in insertion order.
type PolygonMesh struct {
	Mesh      *Mesh
	Exterior  *Mesh
	Interiors []*Mesh
}

func (*PointMesh) Kind() Kind      { return KindPoint }
func (*LineStringMesh) Kind() Kind { return KindLineString }
func (*PolygonMesh) Kind() Kind    { return KindPolygon }

// Mesh converts the points into a point-list mesh with one index per point.
func (pm *PointMesh) Mesh() (*Mesh, error) {
	positions, err := toVertices(pm.Points)
	if err != nil {
		return nil, err
	}
	indices := make([]uint32, len(positions))
	for i := range positions {
		idx, err := checkedIndex(i)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return newMesh(gputypes.PrimitiveTopologyPointList, positions, indices), nil
}

// Meshes returns every GPU mesh held by g: the point list for points, the
// line list for linestrings, and fill, exterior and interior borders for
// polygons. Nil meshes are left out.
func Meshes(g GeometryMesh) ([]*Mesh, error) {
	switch g := g.(type) {
	case *PointMesh:
		m, err := g.Mesh()
		if err != nil {
			return nil, err
		}
		return []*Mesh{m}, nil
	case *LineStringMesh:
		return []*Mesh{g.Mesh}, nil
	case *PolygonMesh:
		out := make([]*Mesh, 0, 2+len(g.Interiors))
		for _, m := range append([]*Mesh{g.Mesh, g.Exterior}, g.Interiors...) {
			if m != nil {
				out = append(out, m)
			}
		}
		return out, nil
	}
	return nil, ErrUnsupportedGeometry
}

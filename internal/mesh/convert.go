package mesh

import (
	"errors"
	"fmt"

	"geomesh/internal/geom"
)

// Every entry point below builds into a fresh BuildContext and discards it
// on error, so a call either returns complete outputs or none.

func populate(g geom.Geometry, opts []Option) (*BuildContext, error) {
	ctx := NewBuildContext(opts...)
	if err := Populate(g, ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// PointToMesh wraps a single point.
func PointToMesh(p geom.Point, opts ...Option) (*PointMesh, error) {
	ctx, err := populate(p, opts)
	if err != nil {
		return nil, err
	}
	pm, _ := ctx.Points.Finalize()
	return pm, nil
}

// LineToMesh returns a 2-vertex line-list mesh with indices [0, 1].
func LineToMesh(l geom.Line, opts ...Option) (*Mesh, error) {
	return LineStringToMesh(l.ToLineString(), opts...)
}

// LineStringToMesh returns the line-list mesh of ls, or ErrEmptyGeometry
// when ls has no coordinates.
func LineStringToMesh(ls geom.LineString, opts ...Option) (*Mesh, error) {
	ctx, err := populate(ls, opts)
	if err != nil {
		return nil, err
	}
	m, ok := ctx.Lines.Finalize()
	if !ok {
		return nil, ErrEmptyGeometry
	}
	return m, nil
}

// MultiLineStringToMesh converts each member on its own. Empty members are
// dropped; the first failing member aborts the call.
func MultiLineStringToMesh(ml geom.MultiLineString, opts ...Option) ([]*Mesh, error) {
	out := make([]*Mesh, 0, len(ml))
	for i, ls := range ml {
		m, err := LineStringToMesh(ls, opts...)
		if errors.Is(err, ErrEmptyGeometry) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("linestring %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// PolygonToMesh triangulates p and builds its borders. A polygon without
// rings returns ErrEmptyGeometry.
func PolygonToMesh(p geom.Polygon, opts ...Option) (*PolygonMesh, error) {
	ctx, err := populate(p, opts)
	if err != nil {
		return nil, err
	}
	pm, err := ctx.Polygons.Finalize()
	if err != nil {
		return nil, err
	}
	if pm == nil {
		return nil, ErrEmptyGeometry
	}
	return pm, nil
}

// MultiPolygonToMesh converts each member on its own. Empty members are
// dropped; the first failing member aborts the call.
func MultiPolygonToMesh(mp geom.MultiPolygon, opts ...Option) ([]*PolygonMesh, error) {
	out := make([]*PolygonMesh, 0, len(mp))
	for i, p := range mp {
		pm, err := PolygonToMesh(p, opts...)
		if errors.Is(err, ErrEmptyGeometry) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("polygon %d: %w", i, err)
		}
		out = append(out, pm)
	}
	return out, nil
}

// RectToMesh converts r through its closed polygon.
func RectToMesh(r geom.Rect, opts ...Option) (*PolygonMesh, error) {
	return PolygonToMesh(r.ToPolygon(), opts...)
}

// TriangleToMesh converts t through its closed polygon.
func TriangleToMesh(t geom.Triangle, opts ...Option) (*PolygonMesh, error) {
	return PolygonToMesh(t.ToPolygon(), opts...)
}

// GeometryToMesh decomposes g into one shared context and returns at most one
// output per kind: points, then linestrings, then polygons.
func GeometryToMesh(g geom.Geometry, opts ...Option) ([]GeometryMesh, error) {
	ctx, err := populate(g, opts)
	if err != nil {
		return nil, err
	}
	return Assemble(ctx)
}

// GeometryCollectionToMesh converts each member with its own context and
// concatenates the outputs in member order. An empty collection yields an
// empty, non-nil slice.
func GeometryCollectionToMesh(c geom.Collection, opts ...Option) ([]GeometryMesh, error) {
	out := make([]GeometryMesh, 0, len(c))
	for i, g := range c {
		ms, err := GeometryToMesh(g, opts...)
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		out = append(out, ms...)
	}
	return out, nil
}

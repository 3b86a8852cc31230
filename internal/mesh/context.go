package mesh

import (
	"fmt"

	"geomesh/internal/geom"
)

// BuildContext holds one accumulator per output kind. Populate fills it and
// Assemble turns it into meshes.
type BuildContext struct {
	Points   PointAccumulator
	Lines    PolylineAccumulator
	Polygons PolygonContourAssembler
}

// NewBuildContext returns an empty context configured by opts.
func NewBuildContext(opts ...Option) *BuildContext {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BuildContext{
		Lines: PolylineAccumulator{overflow: o.overflow},
		Polygons: PolygonContourAssembler{
			exterior:    PolylineAccumulator{overflow: o.overflow},
			triangulate: o.triangulate,
		},
	}
}

// Populate decomposes g into primitives and routes each one to its
// accumulator in ctx:
//
//   - Point and MultiPoint members go to the point accumulator.
//   - Line, LineString and MultiLineString members go to the polyline
//     accumulator. A Line is a 2-point LineString.
//   - Polygon, MultiPolygon members, Triangle and Rect go to the polygon
//     assembler. Triangle and Rect are first converted to closed polygons.
//   - Collection members are populated recursively in order.
//
// Populate stops at the first error; ctx may then hold the primitives added
// before it and should be discarded.
func Populate(g geom.Geometry, ctx *BuildContext) error {
	switch g := g.(type) {
	case geom.Point:
		ctx.Points.Add(g)
	case geom.MultiPoint:
		for _, p := range g {
			ctx.Points.Add(p)
		}
	case geom.Line:
		return ctx.Lines.AddPolyline(g.ToLineString())
	case geom.LineString:
		return ctx.Lines.AddPolyline(g)
	case geom.MultiLineString:
		for i, ls := range g {
			if err := ctx.Lines.AddPolyline(ls); err != nil {
				return fmt.Errorf("linestring %d: %w", i, err)
			}
		}
	case geom.Polygon:
		return ctx.Polygons.AddPolygon(g)
	case geom.MultiPolygon:
		for i, p := range g {
			if err := ctx.Polygons.AddPolygon(p); err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
		}
	case geom.Triangle:
		return ctx.Polygons.AddPolygon(g.ToPolygon())
	case geom.Rect:
		return ctx.Polygons.AddPolygon(g.ToPolygon())
	case geom.Collection:
		for i, m := range g {
			if err := Populate(m, ctx); err != nil {
				return fmt.Errorf("geometry %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
	return nil
}

// Assemble finalizes every accumulator in ctx and returns the non-empty
// outputs in a fixed order: points, linestrings, polygons. An empty context
// yields an empty, non-nil slice.
func Assemble(ctx *BuildContext) ([]GeometryMesh, error) {
	out := make([]GeometryMesh, 0, 3)
	if pm, ok := ctx.Points.Finalize(); ok {
		out = append(out, pm)
	}
	if m, ok := ctx.Lines.Finalize(); ok {
		out = append(out, &LineStringMesh{Mesh: m})
	}
	pm, err := ctx.Polygons.Finalize()
	if err != nil {
		return nil, err
	}
	if pm != nil {
		out = append(out, pm)
	}
	Logger().Debug("mesh: assembled",
		"points", ctx.Points.Len(),
		"line_vertices", ctx.Lines.VertexCount(),
		"polygons", ctx.Polygons.Len(),
		"outputs", len(out))
	return out, nil
}

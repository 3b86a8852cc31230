package mesh

import (
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geomesh/internal/geom"
)

type unknownGeometry struct{}

func (unknownGeometry) GeoType() string  { return "Unknown" }
func (unknownGeometry) Bound() geom.BBox { return geom.EmptyBBox() }

func TestLineToMesh(t *testing.T) {
	m, err := LineToMesh(geom.Line{Start: geom.Point{1, 2}, End: geom.Point{3, 4}})
	require.NoError(t, err)
	assert.Equal(t, [][3]float32{{1, 2, 0}, {3, 4, 0}}, m.Positions)
	assert.Equal(t, []uint32{0, 1}, m.Indices)
}

func TestLineStringToMesh(t *testing.T) {
	m, err := LineStringToMesh(geom.LineString{{0, 0}, {1, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 1, 2}, m.Indices)

	_, err = LineStringToMesh(geom.LineString{})
	assert.ErrorIs(t, err, ErrEmptyGeometry)

	_, err = LineStringToMesh(geom.LineString{{0, 0}, {1e39, 0}})
	assert.ErrorIs(t, err, ErrNumericConversion)
}

func TestMultiLineStringToMesh(t *testing.T) {
	ms, err := MultiLineStringToMesh(geom.MultiLineString{
		{{0, 0}, {1, 1}},
		{},
		{{2, 2}, {3, 3}, {4, 4}},
	})
	require.NoError(t, err)
	require.Len(t, ms, 2, "empty member dropped")
	assert.Equal(t, []uint32{0, 1}, ms[0].Indices)
	assert.Equal(t, []uint32{0, 1, 1, 2}, ms[1].Indices, "each member has its own buffer")

	_, err = MultiLineStringToMesh(geom.MultiLineString{{{0, 0}, {1, 1}}, {{math.NaN(), 0}}})
	assert.ErrorIs(t, err, ErrNumericConversion)
	assert.Contains(t, err.Error(), "linestring 1")
}

func TestMultiLineStringSingleMember(t *testing.T) {
	in := geom.MultiLineString{{{0.5, 1}, {2, -3}, {4.25, 8}}}
	ms, err := MultiLineStringToMesh(in)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, [][3]float32{{0.5, 1, 0}, {2, -3, 0}, {4.25, 8, 0}}, ms[0].Positions)
	assert.Equal(t, []uint32{0, 1, 1, 2}, ms[0].Indices)

	out, err := GeometryToMesh(in)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ms[0], out[0].(*LineStringMesh).Mesh)
}

func TestGeometryToMeshMergesLineStrings(t *testing.T) {
	out, err := GeometryToMesh(geom.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	lm, ok := out[0].(*LineStringMesh)
	require.True(t, ok)
	assert.Equal(t, 4, lm.Mesh.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3}, lm.Mesh.Indices)
}

func TestRectMatchesPolygon(t *testing.T) {
	fromRect, err := RectToMesh(geom.Rect{Min: geom.Point{0, 0}, Max: geom.Point{1, 1}})
	require.NoError(t, err)
	fromPoly, err := PolygonToMesh(geom.NewPolygon(geom.LineString{{0, 0}, {0, 1}, {1, 1}, {1, 0}}))
	require.NoError(t, err)
	assert.Equal(t, fromPoly, fromRect)
	assert.Equal(t, 5, fromRect.Mesh.VertexCount())
	assert.Len(t, fromRect.Mesh.Indices, 6)
	assert.Equal(t, []uint32{0, 1, 1, 2, 2, 3, 3, 4}, fromRect.Exterior.Indices)
}

func TestTriangleToMesh(t *testing.T) {
	pm, err := TriangleToMesh(geom.Triangle{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 4, pm.Mesh.VertexCount())
	assert.Len(t, pm.Mesh.Indices, 3)
	assert.InDelta(t, 0.5, fillArea(pm.Mesh), 1e-6)
	assert.Equal(t, [3]float32{0, 0, 0}, pm.Exterior.Positions[3], "closed ring")
}

func TestMultiPolygonToMesh(t *testing.T) {
	out, err := MultiPolygonToMesh(geom.MultiPolygon{
		squareWithHole(),
		{},
		geom.NewPolygon(geom.LineString{{0, 0}, {1, 0}, {0, 1}}),
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, out[0].Interiors, 1)
	assert.Empty(t, out[1].Interiors)

	_, err = MultiPolygonToMesh(geom.MultiPolygon{
		squareWithHole(),
		{geom.LineString{{0, 0}, {1, 1}}},
	})
	assert.ErrorIs(t, err, ErrDegenerateRing)
	assert.Contains(t, err.Error(), "polygon 1")
}

func TestGeometryToMeshOrder(t *testing.T) {
	// polygon first, yet outputs come back points, lines, polygons
	out, err := GeometryToMesh(geom.Collection{
		geom.NewPolygon(geom.LineString{{0, 0}, {4, 0}, {0, 4}}),
		geom.LineString{{0, 0}, {1, 1}},
		geom.Point{1, 2},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, KindPoint, out[0].Kind())
	assert.Equal(t, KindLineString, out[1].Kind())
	assert.Equal(t, KindPolygon, out[2].Kind())
	assert.Equal(t, []geom.Point{{1, 2}}, out[0].(*PointMesh).Points)
}

func TestGeometryToMeshEmpty(t *testing.T) {
	for _, g := range []geom.Geometry{
		geom.MultiPoint{},
		geom.MultiLineString{},
		geom.MultiPolygon{},
		geom.Collection{},
		geom.Polygon{},
		geom.Collection{geom.MultiPoint{}, geom.Collection{}},
	} {
		out, err := GeometryToMesh(g)
		require.NoError(t, err, g.GeoType())
		assert.NotNil(t, out, g.GeoType())
		assert.Empty(t, out, g.GeoType())
	}
}

func TestGeometryCollectionToMesh(t *testing.T) {
	out, err := GeometryCollectionToMesh(geom.Collection{
		geom.Point{1, 1},
		geom.Collection{},
		geom.Point{2, 2},
		geom.Rect{Max: geom.Point{1, 1}},
	})
	require.NoError(t, err)
	require.Len(t, out, 3, "each member keeps its own context")
	assert.Equal(t, []geom.Point{{1, 1}}, out[0].(*PointMesh).Points)
	assert.Equal(t, []geom.Point{{2, 2}}, out[1].(*PointMesh).Points)
	assert.Equal(t, KindPolygon, out[2].Kind())

	out, err = GeometryCollectionToMesh(geom.Collection{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFailFast(t *testing.T) {
	_, err := GeometryToMesh(geom.Collection{
		geom.LineString{{0, 0}, {1, 1}},
		geom.Polygon{geom.LineString{{0, 0}, {1, 1}, {0, 0}}},
		geom.Point{math.NaN(), 0},
	})
	require.ErrorIs(t, err, ErrDegenerateRing)
	assert.Contains(t, err.Error(), "geometry 1")

	_, err = GeometryCollectionToMesh(geom.Collection{
		geom.Point{0, 0},
		geom.LineString{{0, 0}, {math.Inf(-1), 1}},
	})
	assert.ErrorIs(t, err, ErrNumericConversion)
}

func TestPopulateUnsupported(t *testing.T) {
	ctx := NewBuildContext()
	assert.ErrorIs(t, Populate(unknownGeometry{}, ctx), ErrUnsupportedGeometry)
	assert.ErrorIs(t, Populate(nil, ctx), ErrUnsupportedGeometry)
	assert.ErrorIs(t, Populate(geom.Collection{unknownGeometry{}}, ctx), ErrUnsupportedGeometry)
}

func TestPopulateRoutes(t *testing.T) {
	ctx := NewBuildContext()
	require.NoError(t, Populate(geom.Collection{
		geom.MultiPoint{{0, 0}, {1, 1}},
		geom.Line{Start: geom.Point{0, 0}, End: geom.Point{1, 0}},
		geom.Triangle{{0, 0}, {1, 0}, {0, 1}},
		geom.Rect{Max: geom.Point{2, 2}},
		geom.MultiPolygon{squareWithHole()},
	}, ctx))
	assert.Equal(t, 2, ctx.Points.Len())
	assert.Equal(t, 2, ctx.Lines.VertexCount())
	assert.Equal(t, 3, ctx.Polygons.Len())
}

func TestAllOutputsValidate(t *testing.T) {
	out, err := GeometryToMesh(geom.Collection{
		geom.MultiPoint{{0, 0}, {5, 5}},
		geom.MultiLineString{{{0, 0}, {1, 1}, {2, 0}}, {{3, 3}, {4, 4}}},
		geom.MultiPolygon{squareWithHole(), geom.NewPolygon(geom.LineString{{20, 20}, {30, 20}, {25, 30}})},
	})
	require.NoError(t, err)
	for _, o := range out {
		ms, err := Meshes(o)
		require.NoError(t, err)
		for _, m := range ms {
			assert.NoError(t, m.Validate())
		}
	}
	pm := out[2].(*PolygonMesh)
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, pm.Mesh.Topology)
	assert.Equal(t, gputypes.PrimitiveTopologyLineList, pm.Exterior.Topology)
	assert.Equal(t, 14, pm.Mesh.VertexCount())
}

func TestDescribe(t *testing.T) {
	out, err := GeometryToMesh(geom.Collection{
		geom.Point{0, 0},
		geom.LineString{{0, 0}, {1, 1}, {2, 2}},
		squareWithHole(),
	})
	require.NoError(t, err)
	stats, err := Describe(out)
	require.NoError(t, err)
	require.Len(t, stats, 5)
	assert.Equal(t, Stat{Output: 0, Kind: KindPoint, Part: "points", Topology: "points", Vertices: 1, Indices: 1, Primitives: 1, VertexBytes: 32, IndexBytes: 4}, stats[0])
	assert.Equal(t, Stat{Output: 1, Kind: KindLineString, Part: "lines", Topology: "lines", Vertices: 3, Indices: 4, Primitives: 2, VertexBytes: 96, IndexBytes: 16}, stats[1])
	assert.Equal(t, "fill", stats[2].Part)
	assert.Equal(t, 8, stats[2].Primitives)
	assert.Equal(t, "exterior", stats[3].Part)
	assert.Equal(t, "interior 0", stats[4].Part)
}

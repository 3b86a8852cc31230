package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWKT(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Geometry
	}{
		{"point", "POINT (1 2)", Point{1, 2}},
		{"point z", "point z (1 2 3)", Point{1, 2}},
		{"point empty", "POINT EMPTY", MultiPoint{}},
		{"linestring", "LINESTRING(0 0, 1 0, 1 1)", LineString{{0, 0}, {1, 0}, {1, 1}}},
		{
			"polygon with hole",
			"POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0), (0.25 0.25, 0.75 0.25, 0.75 0.75, 0.25 0.25))",
			Polygon{
				{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
				{{0.25, 0.25}, {0.75, 0.25}, {0.75, 0.75}, {0.25, 0.25}},
			},
		},
		{"triangle", "TRIANGLE ((0 0, 1 0, 0 1, 0 0))", Triangle{{0, 0}, {1, 0}, {0, 1}}},
		{"multipoint bare", "MULTIPOINT (1 2, 3 4)", MultiPoint{{1, 2}, {3, 4}}},
		{"multipoint wrapped", "MULTIPOINT ((1 2), (3 4))", MultiPoint{{1, 2}, {3, 4}}},
		{"multipoint empty", "MULTIPOINT EMPTY", MultiPoint{}},
		{"multilinestring", "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))", MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}},
		{
			"multipolygon",
			"MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))",
			MultiPolygon{
				{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
				{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}},
			},
		},
		{
			"collection",
			"GEOMETRYCOLLECTION (POINT (1 1), LINESTRING (0 0, 1e1 -2.5))",
			Collection{Point{1, 1}, LineString{{0, 0}, {10, -2.5}}},
		},
		{"collection empty", "GEOMETRYCOLLECTION EMPTY", Collection{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWKT(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWKTErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"CIRCLE (0 0)",
		"POINT (1)",
		"LINESTRING (0 0, 1 1",
		"POINT (1 2) junk",
		"TRIANGLE ((0 0, 1 1))",
		"(1 2)",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseWKT(in)
			assert.Error(t, err)
		})
	}
}

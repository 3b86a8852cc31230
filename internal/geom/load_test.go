package geom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadGeoJSONFeatureCollection(t *testing.T) {
	p := writeFile(t, "data.geojson", `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [1, 2]}},
			{"type": "Feature", "properties": {}, "geometry": null},
			{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "GeometryCollection", "geometries": [
				{"type": "MultiLineString", "coordinates": [[[0,0],[1,1]]]}
			]}}
		]
	}`)
	g, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Collection{
		Point{1, 2},
		Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
		Collection{MultiLineString{{{0, 0}, {1, 1}}}},
	}, g)
}

func TestParseGeoJSONGeometry(t *testing.T) {
	g, err := ParseGeoJSON([]byte(`{"type": "MultiPoint", "coordinates": [[1, 2, 3], [4, 5]]}`))
	require.NoError(t, err)
	assert.Equal(t, MultiPoint{{1, 2}, {4, 5}}, g)

	g, err = ParseGeoJSON([]byte(`{"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": null}`))
	require.NoError(t, err)
	assert.Equal(t, LineString{{0, 0}, {1, 1}}, g)

	_, err = ParseGeoJSON([]byte(`{"coordinates": []}`))
	assert.Error(t, err)
	_, err = ParseGeoJSON([]byte(`{"type": "Point", "coordinates": [1]}`))
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	pts, err := ReadCSV(strings.NewReader("name,Latitude,Longitude\na,10,20\nb,bad,1\nc,-1,-2\n"))
	require.NoError(t, err)
	assert.Equal(t, MultiPoint{{20, 10}, {-2, -1}}, pts)

	_, err = ReadCSV(strings.NewReader("a,b\n1,2\n"))
	assert.Error(t, err)
}

func TestLoadKML(t *testing.T) {
	p := writeFile(t, "doc.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <Placemark><Point><coordinates>1,2,0</coordinates></Point></Placemark>
  <Folder>
    <Placemark>
      <Polygon>
        <outerBoundaryIs><LinearRing><coordinates>0,0 4,0 4,4 0,4 0,0</coordinates></LinearRing></outerBoundaryIs>
        <innerBoundaryIs><LinearRing><coordinates>1,1 2,1 2,2 1,1</coordinates></LinearRing></innerBoundaryIs>
      </Polygon>
    </Placemark>
    <Placemark>
      <MultiGeometry><LineString><coordinates>0,0 1,1</coordinates></LineString></MultiGeometry>
    </Placemark>
  </Folder>
</Document>
</kml>`)
	g, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Collection{
		Point{1, 2},
		Polygon{
			{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
			{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
		},
		Collection{LineString{{0, 0}, {1, 1}}},
	}, g)
}

func TestLoadWKTAndUnsupported(t *testing.T) {
	p := writeFile(t, "shape.wkt", "LINESTRING (0 0, 1 1)\n")
	g, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, LineString{{0, 0}, {1, 1}}, g)

	assert.True(t, Supported("a/b/C.GeoJSON"))
	assert.False(t, Supported("x.shp"))
	_, err = Load(writeFile(t, "x.shp", ""))
	assert.Error(t, err)
}

package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// LoadGeoJSON reads a GeoJSON file (bare geometry, Feature or
// FeatureCollection) and returns its geometry. Features are gathered into a
// Collection in file order; features without geometry are skipped.
func LoadGeoJSON(path string) (Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON is LoadGeoJSON for in-memory data.
func ParseGeoJSON(data []byte) (Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case "":
		return nil, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		c := make(Collection, 0, len(fc.Features))
		for i, f := range fc.Features {
			if f.Geometry == nil {
				continue
			}
			g, err := fromGeoJSON(f.Geometry)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			c = append(c, g)
		}
		return c, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		if f.Geometry == nil {
			return Collection{}, nil
		}
		return fromGeoJSON(f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		return fromGeoJSON(g)
	}
}

func fromGeoJSON(g *geojson.Geometry) (Geometry, error) {
	switch g.Type {
	case geojson.GeometryPoint:
		return toPoint(g.Point)
	case geojson.GeometryMultiPoint:
		ls, err := toLineString(g.MultiPoint)
		return MultiPoint(ls), err
	case geojson.GeometryLineString:
		return toLineString(g.LineString)
	case geojson.GeometryMultiLineString:
		ml := make(MultiLineString, 0, len(g.MultiLineString))
		for _, c := range g.MultiLineString {
			ls, err := toLineString(c)
			if err != nil {
				return nil, err
			}
			ml = append(ml, ls)
		}
		return ml, nil
	case geojson.GeometryPolygon:
		return toPolygon(g.Polygon)
	case geojson.GeometryMultiPolygon:
		mp := make(MultiPolygon, 0, len(g.MultiPolygon))
		for _, c := range g.MultiPolygon {
			poly, err := toPolygon(c)
			if err != nil {
				return nil, err
			}
			mp = append(mp, poly)
		}
		return mp, nil
	case geojson.GeometryCollection:
		c := make(Collection, 0, len(g.Geometries))
		for _, m := range g.Geometries {
			sub, err := fromGeoJSON(m)
			if err != nil {
				return nil, err
			}
			c = append(c, sub)
		}
		return c, nil
	}
	return nil, errors.New("unsupported geojson type: " + string(g.Type))
}

func toPoint(c []float64) (Point, error) {
	if len(c) < 2 {
		return Point{}, fmt.Errorf("geojson: position needs 2 ordinates, got %d", len(c))
	}
	return Point{c[0], c[1]}, nil
}

func toLineString(cs [][]float64) (LineString, error) {
	ls := make(LineString, 0, len(cs))
	for _, c := range cs {
		pt, err := toPoint(c)
		if err != nil {
			return nil, err
		}
		ls = append(ls, pt)
	}
	return ls, nil
}

func toPolygon(rings [][][]float64) (Polygon, error) {
	poly := make(Polygon, 0, len(rings))
	for _, r := range rings {
		ls, err := toLineString(r)
		if err != nil {
			return nil, err
		}
		poly = append(poly, ls)
	}
	return poly, nil
}

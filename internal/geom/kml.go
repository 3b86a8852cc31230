package geom

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"
)

type kmlCoords struct {
	Coordinates string `xml:"coordinates"`
}

type kmlRing struct {
	LinearRing kmlCoords `xml:"LinearRing"`
}

type kmlPolygon struct {
	Outer kmlRing   `xml:"outerBoundaryIs"`
	Inner []kmlRing `xml:"innerBoundaryIs"`
}

// kmlMulti is a Placemark or a MultiGeometry: both hold any mix of
// geometry elements.
type kmlMulti struct {
	Points      []kmlCoords  `xml:"Point"`
	LineStrings []kmlCoords  `xml:"LineString"`
	Polygons    []kmlPolygon `xml:"Polygon"`
	Multi       []kmlMulti   `xml:"MultiGeometry"`
}

type kmlDoc struct {
	Placemarks []kmlMulti `xml:"Placemark"`
	Documents  []kmlDoc   `xml:"Document"`
	Folders    []kmlDoc   `xml:"Folder"`
}

// LoadKML reads Placemark geometries (Point, LineString, Polygon with inner
// boundaries, MultiGeometry) from a KML file, searching nested Document and
// Folder elements. KML coordinates are "lon,lat[,alt]"; altitude is dropped.
func LoadKML(path string) (Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKML(data)
}

// ParseKML is LoadKML for in-memory data.
func ParseKML(data []byte) (Collection, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var c Collection
	var walk func(d kmlDoc)
	walk = func(d kmlDoc) {
		for _, pm := range d.Placemarks {
			c = append(c, pm.geometries()...)
		}
		for _, sub := range d.Documents {
			walk(sub)
		}
		for _, sub := range d.Folders {
			walk(sub)
		}
	}
	walk(doc)
	if len(c) == 0 {
		return nil, errors.New("kml: no geometries found")
	}
	return c, nil
}

func (m kmlMulti) geometries() []Geometry {
	var out []Geometry
	for _, p := range m.Points {
		if ls := parseKMLCoords(p.Coordinates); len(ls) > 0 {
			out = append(out, ls[0])
		}
	}
	for _, l := range m.LineStrings {
		if ls := parseKMLCoords(l.Coordinates); len(ls) > 0 {
			out = append(out, ls)
		}
	}
	for _, p := range m.Polygons {
		ext := parseKMLCoords(p.Outer.LinearRing.Coordinates)
		if len(ext) == 0 {
			continue
		}
		var holes []LineString
		for _, in := range p.Inner {
			if r := parseKMLCoords(in.LinearRing.Coordinates); len(r) > 0 {
				holes = append(holes, r)
			}
		}
		out = append(out, NewPolygon(ext, holes...))
	}
	for _, sub := range m.Multi {
		out = append(out, Collection(sub.geometries()))
	}
	return out
}

// parseKMLCoords parses whitespace separated "lon,lat[,alt]" tuples.
func parseKMLCoords(s string) LineString {
	var ls LineString
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ls = append(ls, Point{lon, lat})
	}
	return ls
}

package geom

import "math"

// BBox is an axis-aligned bounding box in source coordinates.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyBBox returns a box that any Extend call will replace.
func EmptyBBox() BBox {
	return BBox{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// IsEmpty reports whether no point has been added to b.
func (b BBox) IsEmpty() bool { return b.MinX > b.MaxX || b.MinY > b.MaxY }

// Extend grows b to include p.
func (b BBox) Extend(p Point) BBox {
	if p[0] < b.MinX {
		b.MinX = p[0]
	}
	if p[1] < b.MinY {
		b.MinY = p[1]
	}
	if p[0] > b.MaxX {
		b.MaxX = p[0]
	}
	if p[1] > b.MaxY {
		b.MaxY = p[1]
	}
	return b
}

// Union grows b to include o.
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(Point{o.MinX, o.MinY}).Extend(Point{o.MaxX, o.MaxY})
}

// Geometry is one of the closed set of geometry values in this package:
// Point, Line, LineString, Polygon, MultiPoint, MultiLineString,
// MultiPolygon, Triangle, Rect and Collection.
type Geometry interface {
	GeoType() string
	Bound() BBox
}

// Point is an (x, y) coordinate.
type Point [2]float64

// Line is a single segment.
type Line struct {
	Start Point
	End   Point
}

// LineString is an ordered coordinate sequence. Rings are closed
// LineStrings (first == last).
type LineString []Point

// Polygon is a list of rings: the exterior first, holes after.
type Polygon []LineString

type MultiPoint []Point
type MultiLineString []LineString
type MultiPolygon []Polygon

// Triangle is three vertices in the order given.
type Triangle [3]Point

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Collection is a heterogeneous list of geometries.
type Collection []Geometry

func (Point) GeoType() string           { return "Point" }
func (Line) GeoType() string            { return "Line" }
func (LineString) GeoType() string      { return "LineString" }
func (Polygon) GeoType() string         { return "Polygon" }
func (MultiPoint) GeoType() string      { return "MultiPoint" }
func (MultiLineString) GeoType() string { return "MultiLineString" }
func (MultiPolygon) GeoType() string    { return "MultiPolygon" }
func (Triangle) GeoType() string        { return "Triangle" }
func (Rect) GeoType() string            { return "Rect" }
func (Collection) GeoType() string      { return "GeometryCollection" }

func (p Point) Bound() BBox { return BBox{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]} }

func (l Line) Bound() BBox { return l.ToLineString().Bound() }

func (ls LineString) Bound() BBox {
	b := EmptyBBox()
	for _, p := range ls {
		b = b.Extend(p)
	}
	return b
}

func (p Polygon) Bound() BBox {
	// holes lie inside the exterior
	return p.Exterior().Bound()
}

func (mp MultiPoint) Bound() BBox { return LineString(mp).Bound() }

func (ml MultiLineString) Bound() BBox {
	b := EmptyBBox()
	for _, ls := range ml {
		b = b.Union(ls.Bound())
	}
	return b
}

func (mp MultiPolygon) Bound() BBox {
	b := EmptyBBox()
	for _, p := range mp {
		b = b.Union(p.Bound())
	}
	return b
}

func (t Triangle) Bound() BBox { return LineString(t[:]).Bound() }

func (r Rect) Bound() BBox {
	return BBox{MinX: r.Min[0], MinY: r.Min[1], MaxX: r.Max[0], MaxY: r.Max[1]}
}

func (c Collection) Bound() BBox {
	b := EmptyBBox()
	for _, g := range c {
		if g == nil {
			continue
		}
		b = b.Union(g.Bound())
	}
	return b
}

// IsClosed reports whether ls has at least one point and ends where it starts.
func (ls LineString) IsClosed() bool {
	return len(ls) > 0 && ls[0] == ls[len(ls)-1]
}

// Close returns ls with the first point repeated at the end when needed.
// An empty LineString stays empty.
func (ls LineString) Close() LineString {
	if len(ls) == 0 || ls.IsClosed() {
		return ls
	}
	out := make(LineString, len(ls), len(ls)+1)
	copy(out, ls)
	return append(out, ls[0])
}

// NewPolygon builds a polygon from an exterior and holes, closing every ring.
func NewPolygon(exterior LineString, interiors ...LineString) Polygon {
	p := make(Polygon, 0, 1+len(interiors))
	p = append(p, exterior.Close())
	for _, r := range interiors {
		p = append(p, r.Close())
	}
	return p
}

// Exterior returns the outer ring, or nil for an empty polygon.
func (p Polygon) Exterior() LineString {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Interiors returns the hole rings.
func (p Polygon) Interiors() []LineString {
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}

// NumCoords counts the coordinates of every ring.
func (p Polygon) NumCoords() int {
	n := 0
	for _, r := range p {
		n += len(r)
	}
	return n
}

// ToLineString returns the 2-point LineString for l.
func (l Line) ToLineString() LineString {
	return LineString{l.Start, l.End}
}

// ToPolygon returns the closed polygon for t: the three vertices in order
// followed by the first one.
func (t Triangle) ToPolygon() Polygon {
	return Polygon{LineString{t[0], t[1], t[2], t[0]}}
}

// ToPolygon returns the closed polygon for r, starting at the minimum corner
// and walking up the left edge first.
func (r Rect) ToPolygon() Polygon {
	return Polygon{LineString{
		{r.Min[0], r.Min[1]},
		{r.Min[0], r.Max[1]},
		{r.Max[0], r.Max[1]},
		{r.Max[0], r.Min[1]},
		{r.Min[0], r.Min[1]},
	}}
}

// Counts tallies primitives in g after decomposing composites, the same way
// the mesh dispatcher sees them.
type Counts struct {
	Points      int
	LineStrings int
	Polygons    int
}

// Count walks g and returns its primitive counts.
func Count(g Geometry) Counts {
	var c Counts
	var walk func(g Geometry)
	walk = func(g Geometry) {
		switch g := g.(type) {
		case Point:
			c.Points++
		case MultiPoint:
			c.Points += len(g)
		case Line, LineString:
			c.LineStrings++
		case MultiLineString:
			c.LineStrings += len(g)
		case Polygon, Triangle, Rect:
			c.Polygons++
		case MultiPolygon:
			c.Polygons += len(g)
		case Collection:
			for _, m := range g {
				walk(m)
			}
		}
	}
	walk(g)
	return c
}

package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseWKT parses a WKT string into a Geometry.
// Supported: POINT, LINESTRING, POLYGON, TRIANGLE, MULTIPOINT (with or
// without parenthesised members), MULTILINESTRING, MULTIPOLYGON and
// GEOMETRYCOLLECTION, each optionally EMPTY. Z and M ordinates are read and
// dropped. POINT EMPTY parses to an empty MultiPoint.
func ParseWKT(wkt string) (Geometry, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	p := &wktParser{s: s}
	g, err := p.geometry()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.s) {
		return nil, fmt.Errorf("wkt: trailing input at offset %d", p.pos)
	}
	return g, nil
}

type wktParser struct {
	s   string
	pos int
}

func (p *wktParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *wktParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *wktParser) expect(c byte) error {
	if p.peek() != c {
		return fmt.Errorf("wkt: expected %q at offset %d", c, p.pos)
	}
	p.pos++
	return nil
}

// word reads an upper-cased keyword.
func (p *wktParser) word() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			p.pos++
			continue
		}
		break
	}
	return strings.ToUpper(p.s[start:p.pos])
}

// empty consumes an EMPTY keyword if present.
func (p *wktParser) empty() bool {
	save := p.pos
	if p.word() == "EMPTY" {
		return true
	}
	p.pos = save
	return false
}

func (p *wktParser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, fmt.Errorf("wkt: expected number at offset %d", start)
	}
	v, err := strconv.ParseFloat(p.s[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("wkt: %w", err)
	}
	return v, nil
}

// coord reads "x y" plus any extra ordinates.
func (p *wktParser) coord() (Point, error) {
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	for {
		c := p.peek()
		if c == ',' || c == ')' || c == 0 {
			break
		}
		if _, err := p.number(); err != nil {
			return Point{}, err
		}
	}
	return Point{x, y}, nil
}

// coords reads "(x y, x y, ...)".
func (p *wktParser) coords() (LineString, error) {
	if p.empty() {
		return LineString{}, nil
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	var out LineString
	for {
		pt, err := p.coord()
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	return out, p.expect(')')
}

// list reads "(item, item, ...)".
func (p *wktParser) list(item func() error) error {
	if err := p.expect('('); err != nil {
		return err
	}
	for {
		if err := item(); err != nil {
			return err
		}
		if p.peek() == ',' {
			p.pos++
			continue
		}
		break
	}
	return p.expect(')')
}

func (p *wktParser) polygon() (Polygon, error) {
	var poly Polygon
	if p.empty() {
		return poly, nil
	}
	err := p.list(func() error {
		ring, err := p.coords()
		if err != nil {
			return err
		}
		poly = append(poly, ring)
		return nil
	})
	return poly, err
}

func (p *wktParser) geometry() (Geometry, error) {
	tag := p.word()
	if tag == "" {
		return nil, fmt.Errorf("wkt: expected geometry tag at offset %d", p.pos)
	}
	// dimension markers
	save := p.pos
	switch p.word() {
	case "Z", "M", "ZM":
	default:
		p.pos = save
	}

	switch tag {
	case "POINT":
		if p.empty() {
			return MultiPoint{}, nil
		}
		if err := p.expect('('); err != nil {
			return nil, err
		}
		pt, err := p.coord()
		if err != nil {
			return nil, err
		}
		return pt, p.expect(')')
	case "LINESTRING":
		return p.coords()
	case "POLYGON":
		return p.polygon()
	case "TRIANGLE":
		poly, err := p.polygon()
		if err != nil {
			return nil, err
		}
		if len(poly) != 1 || len(poly[0]) < 3 {
			return nil, errors.New("wkt triangle: invalid")
		}
		r := poly[0]
		return Triangle{r[0], r[1], r[2]}, nil
	case "MULTIPOINT":
		mp := MultiPoint{}
		if p.empty() {
			return mp, nil
		}
		err := p.list(func() error {
			if p.peek() == '(' {
				p.pos++
				pt, err := p.coord()
				if err != nil {
					return err
				}
				mp = append(mp, pt)
				return p.expect(')')
			}
			pt, err := p.coord()
			if err != nil {
				return err
			}
			mp = append(mp, pt)
			return nil
		})
		return mp, err
	case "MULTILINESTRING":
		ml := MultiLineString{}
		if p.empty() {
			return ml, nil
		}
		err := p.list(func() error {
			ls, err := p.coords()
			if err != nil {
				return err
			}
			ml = append(ml, ls)
			return nil
		})
		return ml, err
	case "MULTIPOLYGON":
		mp := MultiPolygon{}
		if p.empty() {
			return mp, nil
		}
		err := p.list(func() error {
			poly, err := p.polygon()
			if err != nil {
				return err
			}
			mp = append(mp, poly)
			return nil
		})
		return mp, err
	case "GEOMETRYCOLLECTION":
		c := Collection{}
		if p.empty() {
			return c, nil
		}
		err := p.list(func() error {
			g, err := p.geometry()
			if err != nil {
				return err
			}
			c = append(c, g)
			return nil
		})
		return c, err
	}
	return nil, errors.New("unsupported wkt type: " + tag)
}

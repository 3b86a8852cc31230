package tui

import (
	"errors"
	"fmt"
	"path/filepath"

	"geomesh/internal/geom"
	"geomesh/internal/mesh"
)

type layerKind int

const (
	layerPoints layerKind = iota
	layerLines
	layerFills
	layerBorders
	layerCount
)

var layerNames = [layerCount]string{"points", "lines", "fills", "borders"}

func (k layerKind) String() string { return layerNames[k] }

// layer is one compiled GPU mesh tagged with the toggle that controls it.
type layer struct {
	kind layerKind
	mesh *mesh.Mesh
}

// sceneLayers flattens build outputs into drawable layers, fills before
// borders so outlines stay visible.
func sceneLayers(outputs []mesh.GeometryMesh) ([]layer, error) {
	var fills, rest []layer
	for _, o := range outputs {
		switch o := o.(type) {
		case *mesh.PointMesh:
			pm, err := o.Mesh()
			if err != nil {
				return nil, err
			}
			rest = append(rest, layer{layerPoints, pm})
		case *mesh.LineStringMesh:
			rest = append(rest, layer{layerLines, o.Mesh})
		case *mesh.PolygonMesh:
			fills = append(fills, layer{layerFills, o.Mesh})
			if o.Exterior != nil {
				rest = append(rest, layer{layerBorders, o.Exterior})
			}
			for _, h := range o.Interiors {
				rest = append(rest, layer{layerBorders, h})
			}
		}
	}
	return append(fills, rest...), nil
}

// errorLabel names the failure class of a build error for the status line.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, mesh.ErrNumericConversion):
		return "numeric conversion"
	case errors.Is(err, mesh.ErrIndexOverflow):
		return "index overflow"
	case errors.Is(err, mesh.ErrDegenerateRing):
		return "degenerate ring"
	case errors.Is(err, mesh.ErrTriangulation):
		return "triangulation"
	case errors.Is(err, mesh.ErrUnsupportedGeometry):
		return "unsupported geometry"
	}
	return "build"
}

// padBBox widens a zero-width or zero-height box so single points and
// axis-aligned lines still project.
func padBBox(b geom.BBox) geom.BBox {
	if b.IsEmpty() {
		return b
	}
	if b.MaxX == b.MinX {
		b.MinX -= 0.5
		b.MaxX += 0.5
	}
	if b.MaxY == b.MinY {
		b.MinY -= 0.5
		b.MaxY += 0.5
	}
	return b
}

// meshBBox is the xy extent of every mesh in outputs, so the view frames
// what is drawn rather than the source coordinates.
func meshBBox(outputs []mesh.GeometryMesh) (geom.BBox, error) {
	b := geom.EmptyBBox()
	for _, o := range outputs {
		meshes, err := mesh.Meshes(o)
		if err != nil {
			return b, err
		}
		for _, m := range meshes {
			lo, hi, ok := m.Bound()
			if !ok {
				continue
			}
			b = b.Extend(geom.Point{float64(lo[0]), float64(lo[1])})
			b = b.Extend(geom.Point{float64(hi[0]), float64(hi[1])})
		}
	}
	return b, nil
}

// compile builds g into the scene. On failure the previous scene is kept and
// the error is reported in the status line.
func (m *Model) compile(g geom.Geometry, source string) error {
	outputs, err := mesh.GeometryToMesh(g, m.build...)
	if err == nil {
		var layers []layer
		var stats []mesh.Stat
		var bbox geom.BBox
		if layers, err = sceneLayers(outputs); err == nil {
			if stats, err = mesh.Describe(outputs); err == nil {
				if bbox, err = meshBBox(outputs); err == nil {
					m.geometry, m.outputs, m.layers, m.stats = g, outputs, layers, stats
					m.bbox = padBBox(bbox)
				}
			}
		}
	}
	if err != nil {
		m.status = fmt.Sprintf("%s error: %v", errorLabel(err), err)
		return err
	}
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	c := geom.Count(g)
	m.status = fmt.Sprintf("compiled %s  pts=%d ls=%d poly=%d  meshes=%d",
		source, c.Points, c.LineStrings, c.Polygons, len(m.stats))
	if m.showStats {
		m.refreshStats()
	}
	return nil
}

// loadPath reads a supported file and compiles it.
func (m *Model) loadPath(p string) {
	g, err := geom.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	if m.compile(g, filepath.Base(p)) == nil {
		m.selPath = p
	}
}

// totals sums vertices and triangles over the scene.
func (m Model) totals() (vertices, triangles int) {
	for _, s := range m.stats {
		vertices += s.Vertices
		if s.Part == "fill" {
			triangles += s.Primitives
		}
	}
	return vertices, triangles
}

package tui

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"geomesh/internal/geom"
	"geomesh/internal/mesh"
)

// viewport maps mesh coordinates onto a w x h cell canvas, zoomed around the
// bbox center and panned by whole cells.
type viewport struct {
	bbox       geom.BBox
	zoom       float64
	offX, offY int
	w, h       int
}

func (m Model) viewport(w, h int) viewport {
	return viewport{bbox: m.bbox, zoom: m.zoom, offX: m.offsetX, offY: m.offsetY, w: w, h: h}
}

func (v viewport) valid() bool {
	return v.bbox.MaxX > v.bbox.MinX && v.bbox.MaxY > v.bbox.MinY && v.w > 1 && v.h > 1
}

// micro projects a mesh position into the 2x4-per-cell micro grid.
func (v viewport) micro(p [3]float32) (int, int, bool) {
	if !v.valid() {
		return 0, 0, false
	}
	nx := (p[0] - float32(v.bbox.MinX)) / float32(v.bbox.MaxX-v.bbox.MinX)
	ny := (p[1] - float32(v.bbox.MinY)) / float32(v.bbox.MaxY-v.bbox.MinY)
	z := float32(v.zoom)
	zx := 0.5 + (nx-0.5)*z
	zy := 0.5 + (ny-0.5)*z
	sx := int(math32.Floor(zx*float32(2*v.w-1))) + v.offX*2
	sy := int(math32.Floor((1-zy)*float32(4*v.h-1))) + v.offY*4
	return sx, sy, true
}

// cellToWorld converts a map cell back to source coordinates.
func (v viewport) cellToWorld(cx, cy int) (float64, float64, bool) {
	if !v.valid() {
		return 0, 0, false
	}
	zx := float64(cx-v.offX) / float64(v.w-1)
	zy := 1.0 - float64(cy-v.offY)/float64(v.h-1)
	nx := 0.5 + (zx-0.5)/v.zoom
	ny := 0.5 + (zy-0.5)/v.zoom
	x := v.bbox.MinX + nx*(v.bbox.MaxX-v.bbox.MinX)
	y := v.bbox.MinY + ny*(v.bbox.MaxY-v.bbox.MinY)
	return x, y, true
}

// drawMesh rasterizes m by topology: triangles are filled, line lists drawn
// segment by segment and point lists plotted.
func drawMesh(br *brailleBuf, v viewport, m *mesh.Mesh) {
	pts := make([][2]int, len(m.Positions))
	for i, p := range m.Positions {
		x, y, ok := v.micro(p)
		if !ok {
			return
		}
		pts[i] = [2]int{x, y}
	}
	switch m.Topology {
	case gputypes.PrimitiveTopologyTriangleList:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			br.fillTriangle(pts[m.Indices[i]], pts[m.Indices[i+1]], pts[m.Indices[i+2]])
		}
	case gputypes.PrimitiveTopologyLineList:
		for i := 0; i+1 < len(m.Indices); i += 2 {
			a, b := pts[m.Indices[i]], pts[m.Indices[i+1]]
			br.drawLineMicro(a[0], a[1], b[0], b[1])
		}
	default:
		for _, idx := range m.Indices {
			br.setPixel(pts[idx][0], pts[idx][1])
		}
	}
}

func (m Model) renderMap(w, h int) string {
	v := m.viewport(w, h)
	br := newBrailleBuf(w, h)
	for _, l := range m.layers {
		if m.show[l.kind] {
			drawMesh(br, v, l.mesh)
		}
	}
	lines := br.toLines()

	// Hover highlight: orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(lines) {
			r := []rune(lines[cy])
			if cx >= 0 && cx < len(r) {
				lines[cy] = string(r[:cx]) + hoverStyle.Render("◯") + string(r[cx+1:])
			}
		}
	}
	return strings.Join(lines, "\n")
}

// nearestVertex returns the visible vertex closest to micro point (hx, hy),
// its micro coordinates and squared distance.
func (m Model) nearestVertex(v viewport, hx, hy int) (best [3]float32, bx, by int, ok bool) {
	bestD := 1<<31 - 1
	for _, l := range m.layers {
		if !m.show[l.kind] {
			continue
		}
		for _, p := range l.mesh.Positions {
			mx, my, ok2 := v.micro(p)
			if !ok2 {
				continue
			}
			dx, dy := mx-hx, my-hy
			if d := dx*dx + dy*dy; d < bestD {
				bestD = d
				best, bx, by, ok = p, mx, my, true
			}
		}
	}
	return best, bx, by, ok
}

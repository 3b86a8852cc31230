package tui

// brailleBuf is a w x h cell canvas where every cell is a 2x4 grid of
// micro-pixels rendered as one braille glyph.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits indexed by [column][row] within a cell
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle sets every micro-pixel inside or on the edges of the triangle
// p0 p1 p2, in either winding. Degenerate triangles are drawn as lines.
func (b *brailleBuf) fillTriangle(p0, p1, p2 [2]int) {
	area := edge(p0, p1, p2)
	if area == 0 {
		b.drawLineMicro(p0[0], p0[1], p1[0], p1[1])
		b.drawLineMicro(p1[0], p1[1], p2[0], p2[1])
		return
	}
	minX := max(0, min(p0[0], p1[0], p2[0]))
	maxX := min(2*b.w-1, max(p0[0], p1[0], p2[0]))
	minY := max(0, min(p0[1], p1[1], p2[1]))
	maxY := min(4*b.h-1, max(p0[1], p1[1], p2[1]))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := [2]int{x, y}
			w0 := edge(p1, p2, p)
			w1 := edge(p2, p0, p)
			w2 := edge(p0, p1, p)
			if (area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0) ||
				(area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0) {
				b.setPixel(x, y)
			}
		}
	}
}

// edge is twice the signed area of a b p.
func edge(a, b, p [2]int) int {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"geomesh/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// mapRect returns the map canvas origin and size for the current layout.
// View and mouse handling share it.
func (m Model) mapRect() (x, y, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	return sw, headerHeight, max(10, contentWidth-sw), contentHeight
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			_, _, _, h := m.mapRect()
			m.l.SetSize(sidebarWidth-2, h-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showStats {
			switch msg.String() {
			case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateHover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		g, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		if m.compile(g, "pasted WKT") != nil {
			return m, nil
		}
		m.selPath = ""
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch k := msg.String(); k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "1", "2", "3", "4":
		kind := layerKind(k[0] - '1')
		m.show[kind] = !m.show[kind]
		m.status = fmt.Sprintf("%s: %v", kind, m.show[kind])
	case "l":
		// toggle all layers
		all := true
		for _, on := range m.show {
			all = all && on
		}
		for i := range m.show {
			m.show[i] = !all
		}
		m.status = m.layerStatus()
	case "+", "=":
		if m.zoom < 64 {
			m.zoom *= m.zoomStep
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "-", "_":
		if m.zoom > 0.05 {
			m.zoom /= m.zoomStep
			m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
		}
	case "0":
		m.zoom = 1.0
		m.offsetX, m.offsetY = 0, 0
		m.status = "view reset"
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			_, _, _, h := m.mapRect()
			m.l.SetSize(sidebarWidth-2, h-2)
		}
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		m.ta.Focus()
	case "h":
		m.helpVisible = !m.helpVisible
	case "a":
		m.showStats = !m.showStats
		if m.showStats {
			m.refreshStats()
		}
	case "i":
		m.inspect()
	case "esc":
		m.inspectPopup = ""
		m.showStats = false
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	case "up":
		m.offsetY -= 1
	case "down":
		m.offsetY += 1
	case "left":
		m.offsetX -= 2
	case "right":
		m.offsetX += 2
	}
	return m, nil
}

func (m Model) layerStatus() string {
	parts := make([]string, 0, layerCount)
	for k := layerKind(0); k < layerCount; k++ {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m.show[k]))
	}
	return "layers: " + strings.Join(parts, " ")
}

// inspect fills the popup with the build summary and the visible vertex
// nearest the viewport center.
func (m *Model) inspect() {
	if len(m.layers) == 0 {
		m.inspectPopup = "nothing compiled"
		m.status = m.inspectPopup
		return
	}
	_, _, w, h := m.mapRect()
	name := filepath.Base(m.selPath)
	if m.selPath == "" {
		name = "<pasted>"
	}
	c := geom.Count(m.geometry)
	verts, tris := m.totals()
	meta := []string{
		fmt.Sprintf("name: %s", name),
		fmt.Sprintf("type: %s", m.geometry.GeoType()),
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		fmt.Sprintf("input: pts=%d ls=%d poly=%d", c.Points, c.LineStrings, c.Polygons),
		fmt.Sprintf("outputs: %d  meshes: %d", len(m.outputs), len(m.stats)),
		fmt.Sprintf("vertices: %d  triangles: %d", verts, tris),
	}
	if p, _, _, ok := m.nearestVertex(m.viewport(w, h), w, 2*h); ok {
		meta = append(meta, fmt.Sprintf("nearest: x=%.6f y=%.6f", p[0], p[1]))
	} else {
		meta = append(meta, "nearest: none visible")
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// updateHover tracks the mouse over the map and snaps the highlight to the
// nearest visible vertex.
func (m *Model) updateHover(x, y int) {
	ox, oy, w, h := m.mapRect()
	if x < ox || x >= ox+w || y < oy || y >= oy+h {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	m.hovering = true
	m.hoverCellX = x - ox
	m.hoverCellY = y - oy
	v := m.viewport(w, h)
	m.hoverX, m.hoverY, m.hoverHasGeo = v.cellToWorld(m.hoverCellX, m.hoverCellY)
	hx, hy := m.hoverCellX*2, m.hoverCellY*4
	m.hoverMicX, m.hoverMicY = hx, hy
	if _, bx, by, ok := m.nearestVertex(v, hx, hy); ok {
		m.hoverMicX, m.hoverMicY = bx, by
	}
}

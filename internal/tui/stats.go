package tui

import (
	"strconv"

	table "github.com/charmbracelet/bubbles/table"
)

func statColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "kind", Width: 10},
		{Title: "part", Width: 11},
		{Title: "topology", Width: 9},
		{Title: "verts", Width: 8},
		{Title: "indices", Width: 8},
		{Title: "prims", Width: 8},
	}
}

// statRows renders the mesh stats as table rows.
func (m Model) statRows() []table.Row {
	rows := make([]table.Row, 0, len(m.stats))
	for _, s := range m.stats {
		rows = append(rows, table.Row{
			strconv.Itoa(s.Output),
			s.Kind.String(),
			s.Part,
			s.Topology,
			strconv.Itoa(s.Vertices),
			strconv.Itoa(s.Indices),
			strconv.Itoa(s.Primitives),
		})
	}
	return rows
}

// refreshStats reloads the table from the current scene. With nothing
// compiled the table is hidden instead.
func (m *Model) refreshStats() {
	rows := m.statRows()
	if len(rows) == 0 {
		m.showStats = false
		m.status = "no meshes compiled"
		return
	}
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}

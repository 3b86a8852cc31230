package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, mapWidth, mapHeight := m.mapRect()
	contentWidth := max(10, m.width)

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, mapHeight-2)
	}

	// Header
	header := titleStyle.Render(" geomesh ─ geometry to GPU mesh viewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showStats:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(mapWidth, max(32, colW+4))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-4, 20))
		title := titleStyle.Render(fmt.Sprintf("meshes (%d)", len(m.stats)))
		statsBox := boxStyle.Width(maxW).Render(lipgloss.JoinVertical(lipgloss.Left, title, m.tbl.View()))
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, statsBox)
	case m.pasteMode:
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 12))
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderMap(mapWidth, mapHeight))
	}

	// inspect popup box, center-left overlay
	popup := ""
	if m.inspectPopup != "" && !m.showStats {
		maxPopupW := max(20, min(48, contentWidth/2))
		box := boxStyle.MaxWidth(maxPopupW).Render(m.inspectPopup)
		popup = lipgloss.Place(contentWidth, mapHeight, lipgloss.Left, lipgloss.Center, box)
	}

	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	statusStyle := dimStyle
	if strings.Contains(m.status, "error") {
		statusStyle = errStyle
	}
	status := statusStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.5f y=%.5f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp())
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, popup, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"1-4 layers",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"a meshes",
		"i inspect",
		"h help",
		"q quit",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}

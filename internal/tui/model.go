package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geomesh/internal/geom"
	"geomesh/internal/mesh"
)

// Options configures a viewer session.
type Options struct {
	ShowPoints  bool
	ShowLines   bool
	ShowFills   bool
	ShowBorders bool
	// ZoomStep is the factor applied by one +/- key press.
	ZoomStep float64
	// Build is passed to every mesh build.
	Build []mesh.Option
}

// DefaultOptions shows every layer and zooms by 1.2.
func DefaultOptions() Options {
	return Options{
		ShowPoints:  true,
		ShowLines:   true,
		ShowFills:   true,
		ShowBorders: true,
		ZoomStep:    1.2,
	}
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom     float64
	zoomStep float64
	offsetX  int
	offsetY  int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Compiled scene
	build    []mesh.Option
	geometry geom.Geometry
	outputs  []mesh.GeometryMesh
	layers   []layer
	stats    []mesh.Stat
	bbox     geom.BBox

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// layer visibility
	show [layerCount]bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverCellX  int
	hoverCellY  int
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverX      float64
	hoverY      float64

	// mesh stats table
	showStats bool
	tbl       table.Model
}

func New(opts Options) Model {
	if opts.ZoomStep <= 1 {
		opts.ZoomStep = DefaultOptions().ZoomStep
	}
	m := Model{
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		zoomStep:    opts.ZoomStep,
		status:      "geomesh ready",
		build:       opts.Build,
		bbox:        geom.EmptyBBox(),
	}
	m.show[layerPoints] = opts.ShowPoints
	m.show[layerLines] = opts.ShowLines
	m.show[layerFills] = opts.ShowFills
	m.show[layerBorders] = opts.ShowBorders
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (any geometry type). Press Enter to compile; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// stats table, columns fixed
	m.tbl = table.New(table.WithColumns(statColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath compiles a file's geometry at launch.
func NewWithPath(opts Options, path string) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

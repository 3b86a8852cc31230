package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gogpu/gputypes"

	"geomesh/internal/geom"
	"geomesh/internal/mesh"
)

// dump compiles path and writes one table row per GPU mesh.
func dump(w io.Writer, path string, opts []mesh.Option) error {
	g, err := geom.Load(path)
	if err != nil {
		return err
	}
	outputs, err := mesh.GeometryToMesh(g, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	stats, err := mesh.Describe(outputs)
	if err != nil {
		return err
	}

	c := geom.Count(g)
	b := g.Bound()
	fmt.Fprintf(w, "%s: %s  pts=%d ls=%d poly=%d\n", filepath.Base(path), g.GeoType(), c.Points, c.LineStrings, c.Polygons)
	if !b.IsEmpty() {
		fmt.Fprintf(w, "bbox: [%g, %g, %g, %g]\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "no meshes")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "KIND", "PART", "TOPOLOGY", "VERTS", "INDICES", "PRIMS", "VB BYTES", "IB BYTES")
	for _, s := range stats {
		t.Row(
			strconv.Itoa(s.Output),
			s.Kind.String(),
			s.Part,
			s.Topology,
			strconv.Itoa(s.Vertices),
			strconv.Itoa(s.Indices),
			strconv.Itoa(s.Primitives),
			strconv.Itoa(s.VertexBytes),
			strconv.Itoa(s.IndexBytes),
		)
	}
	fmt.Fprintln(w, t.String())

	// every mesh shares one layout, so the first is representative
	meshes, err := mesh.Meshes(outputs[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, layoutLine(meshes[0]))
	return nil
}

// layoutLine describes the vertex and index buffer formats of m.
func layoutLine(m *mesh.Mesh) string {
	var b strings.Builder
	for _, l := range m.VertexBufferLayouts() {
		fmt.Fprintf(&b, "vertex stride %d bytes, attributes", l.ArrayStride)
		for _, a := range l.Attributes {
			fmt.Fprintf(&b, " @%d->%d", a.Offset, a.ShaderLocation)
		}
	}
	idx := "uint16"
	if m.IndexFormat() == gputypes.IndexFormatUint32 {
		idx = "uint32"
	}
	fmt.Fprintf(&b, ", %s indices", idx)
	return b.String()
}

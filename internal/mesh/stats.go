package mesh

import "fmt"

// Stat summarizes one GPU mesh of a build.
type Stat struct {
	Output     int // index into the outputs slice
	Kind       Kind
	Part       string // "points", "lines", "fill", "exterior" or "interior N"
	Topology   string
	Vertices   int
	Indices    int
	Primitives int

	// buffer sizes in bytes, vertices as packed by Interleaved
	VertexBytes int
	IndexBytes  int
}

// Describe returns one Stat per mesh held by outputs, in output order.
func Describe(outputs []GeometryMesh) ([]Stat, error) {
	var stats []Stat
	add := func(out int, k Kind, part string, m *Mesh) {
		stats = append(stats, Stat{
			Output:     out,
			Kind:       k,
			Part:       part,
			Topology:   TopologyName(m.Topology),
			Vertices:   m.VertexCount(),
			Indices:    len(m.Indices),
			Primitives: m.Primitives(),

			VertexBytes: 4 * len(m.Interleaved()),
			IndexBytes:  4 * len(m.Indices),
		})
	}
	for i, o := range outputs {
		switch o := o.(type) {
		case *PointMesh:
			m, err := o.Mesh()
			if err != nil {
				return nil, fmt.Errorf("output %d: %w", i, err)
			}
			add(i, KindPoint, "points", m)
		case *LineStringMesh:
			add(i, KindLineString, "lines", o.Mesh)
		case *PolygonMesh:
			add(i, KindPolygon, "fill", o.Mesh)
			if o.Exterior != nil {
				add(i, KindPolygon, "exterior", o.Exterior)
			}
			for j, h := range o.Interiors {
				add(i, KindPolygon, fmt.Sprintf("interior %d", j), h)
			}
		default:
			return nil, fmt.Errorf("output %d: %w", i, ErrUnsupportedGeometry)
		}
	}
	return stats, nil
}

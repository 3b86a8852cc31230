package mesh

import (
	"errors"

	"github.com/rclancey/earcut"
)

// Triangulator turns one polygon's flat contour input into triangles.
//
// flat holds x, y pairs for the exterior ring followed by every hole; holes
// holds the vertex offset (not the float offset) where each hole starts.
// The result is the vertex coordinates the indices refer to, again as x, y
// pairs, and a triangle-list index array.
type Triangulator func(flat []float64, holes []int) (vertices []float64, indices []int, err error)

var errNoTriangles = errors.New("earcut produced no triangles")

// Earcut is the default Triangulator. Indices refer to the input vertices,
// so flat is returned unchanged as the vertex array. A contour with no area
// is rejected.
func Earcut(flat []float64, holes []int) ([]float64, []int, error) {
	if len(holes) == 0 {
		holes = nil
	}
	indices, err := earcut.Earcut(flat, holes, 2)
	if err != nil {
		return nil, nil, err
	}
	if len(indices) == 0 {
		return nil, nil, errNoTriangles
	}
	return flat, indices, nil
}

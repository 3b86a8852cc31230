package mesh

import (
	"math"

	"geomesh/internal/geom"
)

// toFloat32 narrows v, rejecting NaN, infinities and values beyond the
// float32 range.
func toFloat32(v float64) (float32, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxFloat32 {
		return 0, &NumericConversionError{Value: v}
	}
	return float32(v), nil
}

// toVertex converts p to a 3-component position with z = 0.
func toVertex(p geom.Point) ([3]float32, error) {
	x, err := toFloat32(p[0])
	if err != nil {
		return [3]float32{}, err
	}
	y, err := toFloat32(p[1])
	if err != nil {
		return [3]float32{}, err
	}
	return [3]float32{x, y, 0}, nil
}

// toVertices converts every point of ls or none of them.
func toVertices(ls []geom.Point) ([][3]float32, error) {
	out := make([][3]float32, len(ls))
	for i, p := range ls {
		v, err := toVertex(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// checkedIndex converts a vertex index to uint32. math.MaxUint32 itself is
// valid.
func checkedIndex(i int) (uint32, error) {
	if i < 0 || uint64(i) > math.MaxUint32 {
		return 0, &IndexOverflowError{Index: i}
	}
	return uint32(i), nil
}

// segmentIndices returns the line-list index pairs for an n-vertex polyline
// whose first vertex lands at base: (base, base+1), (base+1, base+2), ...
// The highest index is checked before anything is allocated.
func segmentIndices(base, n int) ([]uint32, error) {
	if n == 0 {
		return nil, nil
	}
	if _, err := checkedIndex(base + n - 1); err != nil {
		return nil, err
	}
	if n < 2 {
		return []uint32{}, nil
	}
	out := make([]uint32, 0, 2*(n-1))
	for i := 0; i < n-1; i++ {
		out = append(out, uint32(base+i), uint32(base+i+1))
	}
	return out, nil
}

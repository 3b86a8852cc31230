package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrNumericConversion matches every *NumericConversionError.
	ErrNumericConversion = errors.New("mesh: coordinate not representable as float32")
	// ErrIndexOverflow matches every *IndexOverflowError.
	ErrIndexOverflow = errors.New("mesh: vertex index exceeds uint32 range")
	// ErrDegenerateRing matches every *DegenerateRingError.
	ErrDegenerateRing = errors.New("mesh: ring has fewer than 4 coordinates")
	// ErrTriangulation matches every *TriangulationError.
	ErrTriangulation = errors.New("mesh: triangulation failed")

	// ErrEmptyGeometry is returned by entry points that promise exactly one
	// output when the geometry produced nothing.
	ErrEmptyGeometry = errors.New("mesh: geometry produced no output")
	// ErrUnsupportedGeometry is returned for values outside the geom variant set.
	ErrUnsupportedGeometry = errors.New("mesh: unsupported geometry type")
)

// NumericConversionError reports a coordinate component that is NaN,
// infinite or outside the float32 range.
type NumericConversionError struct {
	Value float64
}

func (e *NumericConversionError) Error() string {
	return fmt.Sprintf("mesh: coordinate %v not representable as float32", e.Value)
}

func (e *NumericConversionError) Unwrap() error { return ErrNumericConversion }

// IndexOverflowError reports a vertex index beyond math.MaxUint32.
type IndexOverflowError struct {
	Index int
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("mesh: vertex index %d exceeds uint32 range", e.Index)
}

func (e *IndexOverflowError) Unwrap() error { return ErrIndexOverflow }

// DegenerateRingError reports a polygon ring too short to be closed.
// Ring 0 is the exterior; holes count from 1.
type DegenerateRingError struct {
	Ring   int
	Coords int
}

func (e *DegenerateRingError) Error() string {
	kind := "exterior ring"
	if e.Ring > 0 {
		kind = fmt.Sprintf("interior ring %d", e.Ring-1)
	}
	return fmt.Sprintf("mesh: %s has %d coordinates, need at least 4", kind, e.Coords)
}

func (e *DegenerateRingError) Unwrap() error { return ErrDegenerateRing }

// TriangulationError wraps a triangulator failure for the Polygon-th polygon
// added to an assembler.
type TriangulationError struct {
	Polygon int
	Err     error
}

func (e *TriangulationError) Error() string {
	return fmt.Sprintf("mesh: triangulating polygon %d: %v", e.Polygon, e.Err)
}

func (e *TriangulationError) Unwrap() []error { return []error{ErrTriangulation, e.Err} }

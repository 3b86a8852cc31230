package mesh

import (
	"fmt"
	"strings"
)

// OverflowPolicy decides what a polyline accumulator does when a polyline
// would need vertex indices beyond the uint32 range.
type OverflowPolicy int

const (
	// OverflowFail returns an *IndexOverflowError.
	OverflowFail OverflowPolicy = iota
	// OverflowSkip drops the polyline and logs a warning.
	OverflowSkip
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowFail:
		return "fail"
	case OverflowSkip:
		return "skip"
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// ParseOverflowPolicy parses "fail" or "skip" (case-insensitive).
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail", "":
		return OverflowFail, nil
	case "skip":
		return OverflowSkip, nil
	}
	return OverflowFail, fmt.Errorf("mesh: unknown overflow policy %q (want fail or skip)", s)
}

// Option configures a BuildContext and the entry points built on it.
//
// Example:
//
//	meshes, err := mesh.GeometryToMesh(g, mesh.WithOverflowPolicy(mesh.OverflowSkip))
type Option func(*buildOptions)

type buildOptions struct {
	overflow    OverflowPolicy
	triangulate Triangulator
}

func defaultOptions() buildOptions {
	return buildOptions{
		overflow:    OverflowFail,
		triangulate: Earcut,
	}
}

// WithOverflowPolicy sets the index overflow policy.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *buildOptions) {
		o.overflow = p
	}
}

// WithTriangulator replaces the default earcut triangulator.
// A nil triangulator keeps the default.
func WithTriangulator(t Triangulator) Option {
	return func(o *buildOptions) {
		if t != nil {
			o.triangulate = t
		}
	}
}

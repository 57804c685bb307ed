package sealsdf

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// 3D signed distance utility functions.

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

// revolution3 is the solid swept by a full turn of an SDF2 about the Z axis.
type revolution3 struct {
	sdf SDF2
	bb  r3.Box
}

// Revolve3D returns an SDF3 for the solid swept by a full turn of sdf about
// the Z axis. The X coordinate of the SDF2 is the radial distance from the
// axis and its Y coordinate maps to Z.
func Revolve3D(sdf SDF2) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	bb := sdf.Bounds()
	l := math.Max(math.Abs(bb.Min.X), math.Abs(bb.Max.X))
	return &revolution3{
		sdf: sdf,
		bb: r3.Box{
			Min: r3.Vec{X: -l, Y: -l, Z: bb.Min.Y},
			Max: r3.Vec{X: l, Y: l, Z: bb.Max.Y},
		},
	}
}

// Evaluate returns the minimum distance to a solid of revolution.
func (s *revolution3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z})
}

// Bounds returns the bounding box for a solid of revolution.
func (s *revolution3) Bounds() r3.Box {
	return s.bb
}

// empty3 is the SDF3 of nothing. Every point lies infinitely far outside.
type empty3 struct {
	center r3.Vec
}

// Empty3D returns an SDF3 that contains no points. Its bounding box
// is degenerate and located at center.
func Empty3D(center r3.Vec) SDF3 {
	return empty3{center: center}
}

// IsEmpty3D reports whether s was returned by Empty3D or by a
// constructor that had nothing to build.
func IsEmpty3D(s SDF3) bool {
	_, ok := s.(empty3)
	return ok
}

func (e empty3) Evaluate(r3.Vec) float64 {
	return math.MaxFloat64
}

func (e empty3) Bounds() r3.Box {
	return r3.Box{Min: e.center, Max: e.center}
}

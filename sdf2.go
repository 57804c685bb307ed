package sealsdf

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D signed distance function utility functions.

// SDF2 is the interface to a 2d signed distance function object.
// Seal cross-sections are SDF2s living in the (radial, axial) half-plane.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

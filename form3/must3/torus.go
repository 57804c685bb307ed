package must3

import (
	"math"

	"github.com/sealworks/sealsdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// torus is a ring torus centered at the origin with the Z axis as its axis of symmetry.
type torus struct {
	major float64 // distance from axis to cord center
	minor float64 // cord radius
	bb    r3.Box
}

// Torus returns the SDF3 of a ring torus. major is the distance from the
// Z axis to the center of the cord and minor is the cord radius.
// Torus panics unless 0 < minor <= major.
func Torus(major, minor float64) sealsdf.SDF3 {
	switch {
	case !(minor > 0) || math.IsInf(minor, 0):
		panic("torus minor radius must be positive and finite")
	case !(major >= minor) || math.IsInf(major, 0):
		panic("torus major radius must be finite and not less than minor radius")
	}
	r := major + minor
	return &torus{
		major: major,
		minor: minor,
		bb: r3.Box{
			Min: r3.Vec{X: -r, Y: -r, Z: -minor},
			Max: r3.Vec{X: r, Y: r, Z: minor},
		},
	}
}

// Evaluate returns the minimum distance to the torus.
func (t *torus) Evaluate(p r3.Vec) float64 {
	q := r2.Vec{X: math.Hypot(p.X, p.Y) - t.major, Y: p.Z}
	return r2.Norm(q) - t.minor
}

// Bounds returns the bounding box of the torus.
func (t *torus) Bounds() r3.Box {
	return t.bb
}

package seal

import (
	"errors"
	"fmt"
	"math"

	"github.com/sealworks/sealsdf"
	"github.com/sealworks/sealsdf/form2"
	"github.com/sealworks/sealsdf/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is a closed cross-section in the (radial, axial) half-plane.
// X holds the distance from the Z axis and Y the axial position. Builders
// emit an explicit closing point equal to the first.
type Profile []r2.Vec

// Closed reports whether the last point repeats the first.
func (p Profile) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// Vertices returns the distinct corners of the profile, without the
// closing point.
func (p Profile) Vertices() []r2.Vec {
	if p.Closed() {
		return append([]r2.Vec(nil), p[:len(p)-1]...)
	}
	return append([]r2.Vec(nil), p...)
}

// Bounds returns the bounding box of the profile.
func (p Profile) Bounds() r2.Box {
	if len(p) == 0 {
		return r2.Box{}
	}
	return d2.Set(p).Bounds()
}

// Area returns the unsigned area enclosed by the profile.
func (p Profile) Area() float64 {
	return math.Abs(d2.Set(p.Vertices()).SignedArea())
}

// Volume returns the volume swept by revolving the profile a full turn
// about the Z axis, following Pappus' centroid theorem.
func (p Profile) Volume() float64 {
	v := d2.Set(p.Vertices())
	if len(v) < 3 {
		return 0
	}
	a := v.SignedArea()
	if a == 0 {
		return 0
	}
	return 2 * math.Pi * math.Abs(a) * v.Centroid().X
}

var errNegativeRadius = errors.New("profile crosses the axis of revolution")

// Revolve sweeps a closed profile a full turn about the Z axis.
// The profile must be a simple polygon with at least three distinct points
// lying in the half-plane of non-negative radius.
func Revolve(p Profile) (sealsdf.SDF3, error) {
	for i, v := range p {
		if v.X < 0 {
			return nil, fmt.Errorf("%w: point %d at radius %g", errNegativeRadius, i, v.X)
		}
	}
	face, err := form2.Polygon(p)
	if err != nil {
		return nil, err
	}
	return sealsdf.Revolve3D(face), nil
}

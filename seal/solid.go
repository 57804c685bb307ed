package seal

import (
	"math"

	"github.com/sealworks/sealsdf"
	"github.com/sealworks/sealsdf/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is the body of a seal, the result of Build. A Solid is either
// empty, when the dimensions were rejected, or a solid of revolution
// about the Z axis. Solid implements sealsdf.SDF3.
type Solid struct {
	kind    Kind
	dims    Dims
	body    sealsdf.SDF3
	profile Profile
	// Torus radii, set for O-rings only.
	major, minor float64
}

var _ sealsdf.SDF3 = Solid{}

// Empty returns the empty Solid of family k. It is what Build returns
// for dimensions that fail validation.
func Empty(k Kind, d Dims) Solid {
	return Solid{kind: k, dims: d, body: sealsdf.Empty3D(r3.Vec{})}
}

func revolveTorus(k Kind, dims Dims, b TorusBuilder) (Solid, error) {
	major, minor := b.Radii()
	body, err := form3.Torus(major, minor)
	if err != nil {
		return Solid{}, &GeometryError{Kind: k, Dims: dims, Err: err}
	}
	return Solid{kind: k, dims: dims, body: body, major: major, minor: minor}, nil
}

// IsEmpty reports whether the solid contains no material. The zero Solid is empty.
func (s Solid) IsEmpty() bool {
	return s.body == nil || sealsdf.IsEmpty3D(s.body)
}

// Kind returns the family the solid was built for.
func (s Solid) Kind() Kind { return s.kind }

// Dims returns a copy of the dimensions the solid was built from.
func (s Solid) Dims() Dims { return append(Dims(nil), s.dims...) }

// Profile returns a copy of the revolved cross-section. It is nil for
// tori and empty solids.
func (s Solid) Profile() Profile { return append(Profile(nil), s.profile...) }

// Torus returns the radii of an O-ring body. ok is false for
// every other solid.
func (s Solid) Torus() (major, minor float64, ok bool) {
	if s.IsEmpty() || s.minor == 0 {
		return 0, 0, false
	}
	return s.major, s.minor, true
}

// Evaluate returns the signed distance from p to the surface of the seal.
// Empty solids are infinitely far from every point.
func (s Solid) Evaluate(p r3.Vec) float64 {
	if s.body == nil {
		return math.MaxFloat64
	}
	return s.body.Evaluate(p)
}

// Bounds returns the bounding box of the seal. Empty solids have a
// degenerate box at the origin.
func (s Solid) Bounds() r3.Box {
	if s.body == nil {
		return r3.Box{}
	}
	return s.body.Bounds()
}

// Contains reports whether p lies inside or on the surface of the seal.
func (s Solid) Contains(p r3.Vec) bool {
	return !s.IsEmpty() && s.Evaluate(p) <= 0
}

// Volume returns the exact volume of the seal body in cubic millimetres.
func (s Solid) Volume() float64 {
	switch {
	case s.IsEmpty():
		return 0
	case s.minor > 0:
		return 2 * math.Pi * math.Pi * s.major * s.minor * s.minor
	}
	return s.profile.Volume()
}

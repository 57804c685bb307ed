// Package seal builds the bodies of mechanical seals from a handful of
// dimensions. Every family is a solid of revolution about the Z axis:
// O-rings are tori, the remaining families revolve a closed cross-section
// given in the (radial, axial) half-plane.
//
// Dimensions that cannot describe a physical seal do not produce an error.
// They produce an empty Solid, see Solid.IsEmpty.
package seal

import (
	"errors"
	"fmt"
)

// Kind enumerates the seal families.
type Kind uint8

const (
	kindUndefined Kind = iota
	// KindORing is an O-ring, a torus of elastomer cord.
	KindORing
	// KindShaftSeal is a radial shaft seal with metal case and elastomer lip.
	KindShaftSeal
	// KindVRing is an all-rubber axial shaft seal.
	KindVRing
	// KindUsit is a bonded seal: a metal washer with a vulcanized rubber lip.
	KindUsit
	numKinds
)

// Kinds returns every seal family in declaration order.
func Kinds() []Kind {
	return []Kind{KindORing, KindShaftSeal, KindVRing, KindUsit}
}

func (k Kind) String() string {
	switch k {
	case KindORing:
		return "ORing"
	case KindShaftSeal:
		return "ShaftSeal"
	case KindVRing:
		return "VRing"
	case KindUsit:
		return "UsitRing"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns the number of dimensions the family takes, or 0 for
// an undefined Kind.
func (k Kind) Arity() int {
	if k == kindUndefined || k >= numKinds {
		return 0
	}
	return families[k].arity
}

// Dims is an ordered tuple of lengths in millimetres. The order is fixed
// per family and matches the fields of the family's parameter struct.
type Dims []float64

// ErrDimensionCount is returned when a dimension tuple does not have
// exactly the arity of its family.
var ErrDimensionCount = errors.New("seal: wrong number of dimensions")

// Builder is implemented by the parameter set of every seal family.
type Builder interface {
	Kind() Kind
	// Valid reports whether the dimensions describe a seal that can be built.
	Valid() bool
	// Dims returns the dimensions in family order.
	Dims() Dims
}

// ProfileBuilder is a Builder whose body is the revolution of a closed
// cross-section about the Z axis.
type ProfileBuilder interface {
	Builder
	// Profile returns the closed cross-section of the seal. The result is
	// only meaningful if Valid reports true.
	Profile() Profile
}

// TorusBuilder is a Builder whose body is a torus built directly,
// without an intermediate cross-section.
type TorusBuilder interface {
	Builder
	// Radii returns the distance from the axis to the cord center
	// and the cord radius.
	Radii() (major, minor float64)
}

var families = [numKinds]struct {
	arity    int
	fromDims func(d Dims) Builder
}{
	KindORing: {2, func(d Dims) Builder {
		return ORing{InnerDiameter: d[0], CordDiameter: d[1]}
	}},
	KindShaftSeal: {3, func(d Dims) Builder {
		return ShaftSeal{InnerDiameter: d[0], OuterDiameter: d[1], Width: d[2]}
	}},
	KindVRing: {3, func(d Dims) Builder {
		return VRing{ShaftDiameter: d[0], SectionWidth: d[1], SectionHeight: d[2]}
	}},
	KindUsit: {4, func(d Dims) Builder {
		return Usit{InnerDiameter: d[0], OuterDiameter: d[1], Thickness: d[2], LipHeight: d[3]}
	}},
}

// New returns the Builder of family k for dimension tuple d.
func New(k Kind, d Dims) (Builder, error) {
	if k == kindUndefined || k >= numKinds {
		return nil, fmt.Errorf("seal: undefined kind %v", k)
	}
	f := families[k]
	if len(d) != f.arity {
		return nil, fmt.Errorf("%w: %v takes %d, got %d", ErrDimensionCount, k, f.arity, len(d))
	}
	return f.fromDims(d), nil
}

// Build validates b and builds its body. Invalid dimensions yield an empty
// Solid and a nil error. For a non-nil b any error is a *GeometryError: the
// geometry primitive rejected dimensions that passed validation.
func Build(b Builder) (Solid, error) {
	if b == nil {
		return Solid{}, errors.New("seal: nil builder")
	}
	k := b.Kind()
	dims := b.Dims()
	if !b.Valid() {
		return Empty(k, dims), nil
	}
	switch b := b.(type) {
	case TorusBuilder:
		return revolveTorus(k, dims, b)
	case ProfileBuilder:
		p := b.Profile()
		body, err := Revolve(p)
		if err != nil {
			return Solid{}, &GeometryError{Kind: k, Dims: dims, Err: err}
		}
		return Solid{kind: k, dims: dims, body: body, profile: p}, nil
	}
	return Solid{}, fmt.Errorf("seal: %T builds neither a profile nor a torus", b)
}

// BuildDims is shorthand for New followed by Build.
func BuildDims(k Kind, d Dims) (Solid, error) {
	b, err := New(k, d)
	if err != nil {
		return Solid{}, err
	}
	return Build(b)
}

// GeometryError reports dimensions that passed validation but from which
// the geometry primitive could not construct a solid, for example because
// the cross-section intersects itself.
type GeometryError struct {
	Kind Kind
	Dims Dims
	Err  error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("seal: building %v %v: %v", e.Kind, []float64(e.Dims), e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

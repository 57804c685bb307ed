package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Set is an ordered collection of points.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the smallest box containing every point of the set.
func (a Set) Bounds() r2.Box {
	return r2.Box{Min: a.Min(), Max: a.Max()}
}

// Orient returns twice the signed area of triangle abc. It is positive
// when a, b, c turn counter-clockwise.
func Orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// SignedArea returns the shoelace area of the closed loop through the
// points of the set. Counter-clockwise loops have positive area.
func (a Set) SignedArea() float64 {
	var sum float64
	n := len(a)
	for i := range a {
		p, q := a[i], a[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Centroid returns the area centroid of the closed loop through the points
// of the set. The loop must have non-zero area.
func (a Set) Centroid() r2.Vec {
	var cx, cy, sum float64
	n := len(a)
	for i := range a {
		p, q := a[i], a[(i+1)%n]
		c := p.X*q.Y - q.X*p.Y
		sum += c
		cx += (p.X + q.X) * c
		cy += (p.Y + q.Y) * c
	}
	return r2.Vec{X: cx / (3 * sum), Y: cy / (3 * sum)}
}

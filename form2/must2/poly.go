package must2

import (
	"fmt"
	"math"

	"github.com/sealworks/sealsdf"
	"github.com/sealworks/sealsdf/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices, last repeats the first
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments.
// The loop is closed if the last vertex does not repeat the first.
// Polygon panics if the vertices do not describe a simple polygon
// with non-zero area. See CheckSimple.
func Polygon(vertex []r2.Vec) sealsdf.SDF2 {
	loop := CheckSimple(vertex)
	s := polygon{}
	s.vertex = append(loop, loop[0])

	// allocate pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)

	vmin := s.vertex[0]
	vmax := s.vertex[0]
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}
	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	// iterate over the line segments
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d // inside
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// CheckSimple panics if vertex does not describe a simple polygon: fewer than
// three distinct vertices, zero enclosed area, an edge doubling back over its
// predecessor or two edges crossing or touching. A repeated closing vertex and
// consecutive duplicates are dropped. The returned loop is open and
// shares no memory with vertex.
func CheckSimple(vertex []r2.Vec) []r2.Vec {
	loop := make([]r2.Vec, 0, len(vertex))
	for _, v := range vertex {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			panic(fmt.Sprintf("non-finite polygon vertex %v", v))
		}
		if len(loop) > 0 && d2.EqualWithin(loop[len(loop)-1], v, tolerance) {
			continue
		}
		loop = append(loop, v)
	}
	for len(loop) > 1 && d2.EqualWithin(loop[0], loop[len(loop)-1], tolerance) {
		loop = loop[:len(loop)-1]
	}
	n := len(loop)
	if n < 3 {
		panic("number of distinct vertices < 3")
	}
	set := d2.Set(loop)
	bb := set.Bounds()
	size := r2.Sub(bb.Max, bb.Min)
	scale := math.Max(size.X, size.Y)
	if math.Abs(set.SignedArea()) <= tolerance*scale*scale {
		panic("polygon has zero area")
	}
	seg := func(i int) (r2.Vec, r2.Vec) { return loop[i], loop[(i+1)%n] }
	for i := 0; i < n; i++ {
		a, b := seg(i)
		_, c := seg((i + 1) % n)
		// Adjacent edges share vertex b and may only meet there.
		if o := d2.Orient(a, b, c); math.Abs(o) <= tolerance*r2.Norm(r2.Sub(b, a))*r2.Norm(r2.Sub(c, b)) {
			if r2.Dot(r2.Sub(b, a), r2.Sub(c, b)) < 0 {
				panic(fmt.Sprintf("polygon edge %d folds back onto edge %d at %v", (i+1)%n, i, b))
			}
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			p, q := seg(j)
			if segmentsMeet(a, b, p, q) {
				panic(fmt.Sprintf("polygon is self-intersecting: edge %d %v-%v meets edge %d %v-%v", i, a, b, j, p, q))
			}
		}
	}
	return loop
}

// segmentsMeet reports whether closed segments ab and pq share a point.
func segmentsMeet(a, b, p, q r2.Vec) bool {
	tol := tolerance * r2.Norm(r2.Sub(b, a)) * r2.Norm(r2.Sub(q, p))
	o1 := d2.Orient(p, q, a)
	o2 := d2.Orient(p, q, b)
	o3 := d2.Orient(a, b, p)
	o4 := d2.Orient(a, b, q)
	if straddles(o1, o2, tol) && straddles(o3, o4, tol) {
		return true
	}
	return (math.Abs(o1) <= tol && onSegment(p, q, a)) ||
		(math.Abs(o2) <= tol && onSegment(p, q, b)) ||
		(math.Abs(o3) <= tol && onSegment(a, b, p)) ||
		(math.Abs(o4) <= tol && onSegment(a, b, q))
}

func straddles(u, v, tol float64) bool {
	return (u > tol && v < -tol) || (u < -tol && v > tol)
}

// onSegment reports whether c, known to be collinear with ab, lies within ab.
func onSegment(a, b, c r2.Vec) bool {
	return c.X >= math.Min(a.X, b.X)-tolerance && c.X <= math.Max(a.X, b.X)+tolerance &&
		c.Y >= math.Min(a.Y, b.Y)-tolerance && c.Y <= math.Max(a.Y, b.Y)+tolerance
}

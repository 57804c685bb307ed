package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSetArea(t *testing.T) {
	square := Set{{X: 1, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 2}}
	for _, test := range []struct {
		name     string
		set      Set
		area     float64
		centroid r2.Vec
	}{
		{name: "ccw", set: square, area: 4, centroid: r2.Vec{X: 2, Y: 1}},
		{name: "cw", set: Set{square[3], square[2], square[1], square[0]}, area: -4, centroid: r2.Vec{X: 2, Y: 1}},
		{name: "triangle", set: Set{{}, {X: 3}, {Y: 3}}, area: 4.5, centroid: r2.Vec{X: 1, Y: 1}},
	} {
		if got := test.set.SignedArea(); math.Abs(got-test.area) > 1e-12 {
			t.Errorf("%s: area got %g, want %g", test.name, got, test.area)
		}
		if got := test.set.Centroid(); !EqualWithin(got, test.centroid, 1e-12) {
			t.Errorf("%s: centroid got %v, want %v", test.name, got, test.centroid)
		}
	}
}

func TestOrient(t *testing.T) {
	a, b := r2.Vec{}, r2.Vec{X: 1}
	if Orient(a, b, r2.Vec{Y: 1}) <= 0 {
		t.Error("left turn should be positive")
	}
	if Orient(a, b, r2.Vec{Y: -1}) >= 0 {
		t.Error("right turn should be negative")
	}
	if Orient(a, b, r2.Vec{X: 5}) != 0 {
		t.Error("collinear points should be zero")
	}
	bb := Set{{X: 2, Y: -1}, {X: -3, Y: 4}}.Bounds()
	if bb.Min != (r2.Vec{X: -3, Y: -1}) || bb.Max != (r2.Vec{X: 2, Y: 4}) {
		t.Errorf("bad bounds %v", bb)
	}
}

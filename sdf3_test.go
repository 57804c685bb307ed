package sealsdf_test

import (
	"math"
	"testing"

	"github.com/sealworks/sealsdf"
	"github.com/sealworks/sealsdf/form2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRevolve3D(t *testing.T) {
	square, err := form2.Polygon([]r2.Vec{{X: 1, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}, {X: 1, Y: 2}})
	if err != nil {
		t.Fatal(err)
	}
	s := sealsdf.Revolve3D(square)

	bb := s.Bounds()
	wantBB := r3.Box{Min: r3.Vec{X: -3, Y: -3, Z: 0}, Max: r3.Vec{X: 3, Y: 3, Z: 2}}
	if bb != wantBB {
		t.Errorf("bounds got %v, want %v", bb, wantBB)
	}
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		{p: r3.Vec{X: 2, Z: 1}, want: -1},
		{p: r3.Vec{Y: -2, Z: 1}, want: -1},
		{p: r3.Vec{X: math.Sqrt2, Y: math.Sqrt2, Z: 1}, want: -1},
		{p: r3.Vec{Z: 1}, want: 1},
		{p: r3.Vec{X: 2, Z: 3}, want: 1},
		{p: r3.Vec{X: 3, Z: 1}, want: 0},
	} {
		got := s.Evaluate(test.p)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Evaluate(%v) got %g, want %g", test.p, got, test.want)
		}
	}
}

func TestRevolve3DAxisymmetric(t *testing.T) {
	tri, err := form2.Polygon([]r2.Vec{{X: 2, Y: -1}, {X: 5, Y: -1}, {X: 2, Y: 3}})
	if err != nil {
		t.Fatal(err)
	}
	s := sealsdf.Revolve3D(tri)
	for _, r := range []float64{0, 1, 2.5, 4, 6} {
		for _, z := range []float64{-2, 0, 1.5} {
			want := tri.Evaluate(r2.Vec{X: r, Y: z})
			for _, a := range []float64{0, 0.7, math.Pi / 2, 2, math.Pi, 4.5} {
				p := r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
				if got := s.Evaluate(p); math.Abs(got-want) > 1e-9 {
					t.Errorf("Evaluate(%v) got %g, want section distance %g", p, got, want)
				}
			}
		}
	}
	wantBB := r3.Box{Min: r3.Vec{X: -5, Y: -5, Z: -1}, Max: r3.Vec{X: 5, Y: 5, Z: 3}}
	if bb := s.Bounds(); bb != wantBB {
		t.Errorf("bounds got %v, want %v", bb, wantBB)
	}
}

func TestEmpty3D(t *testing.T) {
	c := r3.Vec{X: 1, Y: 2, Z: 3}
	s := sealsdf.Empty3D(c)
	if !sealsdf.IsEmpty3D(s) {
		t.Fatal("Empty3D result not reported as empty")
	}
	if got := s.Evaluate(c); got != math.MaxFloat64 {
		t.Errorf("empty solid contains its center: %g", got)
	}
	if bb := s.Bounds(); bb.Min != c || bb.Max != c {
		t.Errorf("bounds got %v, want degenerate box at %v", bb, c)
	}
}

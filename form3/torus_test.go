package form3_test

import (
	"math"
	"testing"

	"github.com/sealworks/sealsdf/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestTorus(t *testing.T) {
	s, err := form3.Torus(6, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p    r3.Vec
		want float64
	}{
		{p: r3.Vec{X: 6}, want: -1},
		{p: r3.Vec{Y: -6.5}, want: -0.5},
		{p: r3.Vec{X: 6, Z: 1}, want: 0},
		{p: r3.Vec{}, want: 5},
		{p: r3.Vec{X: 6, Z: 3}, want: 2},
	} {
		if got := s.Evaluate(test.p); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("Evaluate(%v) got %g, want %g", test.p, got, test.want)
		}
	}
	want := r3.Box{Min: r3.Vec{X: -7, Y: -7, Z: -1}, Max: r3.Vec{X: 7, Y: 7, Z: 1}}
	if bb := s.Bounds(); bb != want {
		t.Errorf("bounds got %v, want %v", bb, want)
	}
}

func TestTorusErrors(t *testing.T) {
	for _, test := range []struct {
		major, minor float64
	}{
		{major: 1, minor: 0},
		{major: 1, minor: -1},
		{major: 1, minor: 2},
		{major: math.Inf(1), minor: 1},
		{major: 1, minor: math.NaN()},
	} {
		if _, err := form3.Torus(test.major, test.minor); err == nil {
			t.Errorf("Torus(%g, %g): expected error", test.major, test.minor)
		}
	}
}

package form2_test

import (
	"math"
	"testing"

	"github.com/sealworks/sealsdf/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestPolygonErrors(t *testing.T) {
	for _, test := range []struct {
		name   string
		vertex []r2.Vec
	}{
		{name: "empty"},
		{name: "two points", vertex: []r2.Vec{{}, {X: 1}}},
		{name: "duplicates only", vertex: []r2.Vec{{}, {X: 1}, {X: 1}, {}}},
		{name: "collinear", vertex: []r2.Vec{{}, {X: 1}, {X: 2}}},
		{name: "bowtie", vertex: []r2.Vec{{}, {X: 1, Y: 1}, {X: 1}, {Y: 1}}},
		{name: "fold back", vertex: []r2.Vec{{}, {X: 2}, {X: 1}, {X: 1, Y: 1}}},
		{name: "touching", vertex: []r2.Vec{{}, {X: 4}, {X: 4, Y: 4}, {X: 2}, {Y: 4}}},
		{name: "nan", vertex: []r2.Vec{{}, {X: 1}, {X: math.NaN(), Y: 1}}},
	} {
		if _, err := form2.Polygon(test.vertex); err == nil {
			t.Errorf("%s: expected error", test.name)
		}
	}
}

func TestPolygonEvaluate(t *testing.T) {
	// Closing vertex repeats the first, as in a closed profile.
	s, err := form2.Polygon([]r2.Vec{{}, {X: 2}, {X: 2, Y: 2}, {Y: 2}, {}})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p    r2.Vec
		want float64
	}{
		{p: r2.Vec{X: 1, Y: 1}, want: -1},
		{p: r2.Vec{X: 0.5, Y: 1}, want: -0.5},
		{p: r2.Vec{X: 3, Y: 1}, want: 1},
		{p: r2.Vec{X: 5, Y: 6}, want: 5},
	} {
		if got := s.Evaluate(test.p); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("Evaluate(%v) got %g, want %g", test.p, got, test.want)
		}
	}
	bb := s.Bounds()
	if bb.Min != (r2.Vec{}) || bb.Max != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("bounds got %v", bb)
	}
}

func TestPolygonDuplicateVertices(t *testing.T) {
	// Repeated and closing vertices collapse onto the same triangle.
	dup, err := form2.Polygon([]r2.Vec{{}, {X: 1}, {X: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}, {}})
	if err != nil {
		t.Fatal(err)
	}
	tri, err := form2.Polygon([]r2.Vec{{}, {X: 1}, {X: 1, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []r2.Vec{{X: 0.75, Y: 0.25}, {X: 0.5, Y: 2}, {X: -1, Y: -1}, {X: 1, Y: 0.5}} {
		if got, want := dup.Evaluate(p), tri.Evaluate(p); got != want {
			t.Errorf("Evaluate(%v) got %g, want %g", p, got, want)
		}
	}
	if dup.Bounds() != tri.Bounds() {
		t.Errorf("bounds got %v, want %v", dup.Bounds(), tri.Bounds())
	}
}

// Package drawing plots the cross-section of seal bodies with gonum/plot.
package drawing

import (
	"errors"
	"image/color"
	"io"
	"math"

	"github.com/sealworks/sealsdf/seal"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmpty is returned when asked to draw an empty solid.
var ErrEmpty = errors.New("drawing: empty solid")

var (
	sectionFill = color.RGBA{R: 0x9e, G: 0xc5, B: 0xe0, A: 0xff}
	sectionLine = color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}
	axisLine    = color.RGBA{R: 0xb0, G: 0x30, B: 0x30, A: 0xff}
)

// Options controls the appearance of a section drawing.
type Options struct {
	// Title defaults to the seal family name.
	Title string
	// Mirror also draws the section on the far side of the axis,
	// giving the full cut through the seal.
	Mirror bool
	// CordSegments is the number of straight segments approximating
	// the cord of an O-ring. Defaults to 72.
	CordSegments int
}

// Section plots the meridian cross-section of s: the revolved profile,
// or the cord circle of an O-ring. The horizontal axis is the radial
// distance and the vertical axis the axial position, both to the same scale.
func Section(s seal.Solid, opt Options) (*plot.Plot, error) {
	if s.IsEmpty() {
		return nil, ErrEmpty
	}
	outline := Outline(s, opt.CordSegments)
	p := plot.New()
	p.Title.Text = opt.Title
	if p.Title.Text == "" {
		p.Title.Text = s.Kind().String()
	}
	p.X.Label.Text = "radial [mm]"
	p.Y.Label.Text = "axial [mm]"
	p.Add(plotter.NewGrid())

	sections := [][]r2.Vec{outline}
	if opt.Mirror {
		mirrored := make([]r2.Vec, len(outline))
		for i, v := range outline {
			mirrored[i] = r2.Vec{X: -v.X, Y: v.Y}
		}
		sections = append(sections, mirrored)
	}
	bb := r2.Box{Min: outline[0], Max: outline[0]}
	for _, section := range sections {
		poly, err := plotter.NewPolygon(toXYs(section))
		if err != nil {
			return nil, err
		}
		poly.Color = sectionFill
		poly.LineStyle.Color = sectionLine
		poly.LineStyle.Width = vg.Points(1)
		p.Add(poly)
		for _, v := range section {
			bb.Min = r2.Vec{X: math.Min(bb.Min.X, v.X), Y: math.Min(bb.Min.Y, v.Y)}
			bb.Max = r2.Vec{X: math.Max(bb.Max.X, v.X), Y: math.Max(bb.Max.Y, v.Y)}
		}
	}
	if opt.Mirror {
		axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: bb.Min.Y}, {X: 0, Y: bb.Max.Y}})
		if err != nil {
			return nil, err
		}
		axis.LineStyle.Color = axisLine
		axis.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		p.Add(axis)
	}
	setEqualAspect(p, bb)
	return p, nil
}

// Outline returns the closed outline drawn by Section. O-ring cords are
// approximated by the given number of straight segments.
func Outline(s seal.Solid, segments int) []r2.Vec {
	if major, minor, ok := s.Torus(); ok {
		if segments < 3 {
			segments = 72
		}
		circle := make([]r2.Vec, segments+1)
		for i := range circle {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
			circle[i] = r2.Vec{X: major + minor*cos, Y: minor * sin}
		}
		return circle
	}
	return s.Profile()
}

// setEqualAspect fits a square window around bb with a small margin.
func setEqualAspect(p *plot.Plot, bb r2.Box) {
	const margin = 1.1
	size := r2.Sub(bb.Max, bb.Min)
	half := margin * math.Max(size.X, size.Y) / 2
	c := r2.Scale(0.5, r2.Add(bb.Min, bb.Max))
	p.X.Min, p.X.Max = c.X-half, c.X+half
	p.Y.Min, p.Y.Max = c.Y-half, c.Y+half
}

func toXYs(v []r2.Vec) plotter.XYs {
	xys := make(plotter.XYs, len(v))
	for i := range v {
		xys[i].X = v[i].X
		xys[i].Y = v[i].Y
	}
	return xys
}

// Save writes p to path. The image format follows the file extension,
// for example .png or .svg.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	return p.Save(width, height, path)
}

// Encode writes p to w in the given format ("png", "svg", ...).
func Encode(w io.Writer, p *plot.Plot, format string, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

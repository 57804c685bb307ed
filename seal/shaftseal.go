package seal

import (
	"github.com/sealworks/sealsdf/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ShaftSeal is a radial shaft seal as specified by DIN 3760.
type ShaftSeal struct {
	// InnerDiameter d1 is the shaft diameter [mm].
	InnerDiameter float64
	// OuterDiameter d2 is the housing bore diameter [mm].
	OuterDiameter float64
	// Width b is the axial width of the seal [mm].
	Width float64
}

var _ ProfileBuilder = ShaftSeal{} // Compile time check of interface implementation.

func (s ShaftSeal) Kind() Kind { return KindShaftSeal }

func (s ShaftSeal) Dims() Dims { return Dims{s.InnerDiameter, s.OuterDiameter, s.Width} }

func (s ShaftSeal) Valid() bool {
	return s.InnerDiameter > 0 && s.OuterDiameter > 0 && s.Width > 0 &&
		s.OuterDiameter > s.InnerDiameter
}

// Profile maps the reference cross-section onto the seal's annulus.
// Radially the template spans from the shaft to the housing bore and
// axially from 0 to the width. Both maps are affine and independent, so the
// profile keeps the template's vertex count and connectivity.
func (s ShaftSeal) Profile() Profile {
	rShaft := s.InnerDiameter / 2
	rBore := s.OuterDiameter / 2
	xScale := (rBore - rShaft) / (templateXMax - templateXMin)
	zScale := s.Width / (templateZMax - templateZMin)
	p := make(Profile, 0, len(shaftSealTemplate)+1)
	for _, v := range shaftSealTemplate {
		p = append(p, r2.Vec{
			X: rShaft + (v.X-templateXMin)*xScale,
			Y: (v.Y - templateZMin) * zScale,
		})
	}
	return append(p, p[0])
}

// Extents of shaftSealTemplate.
const (
	templateXMin = 11.6345
	templateXMax = 184.5092
	templateZMin = 15.1176
	templateZMax = 178.0259
)

// shaftSealTemplate is the cross-section of a representative shaft seal in
// arbitrary sketch units, X radial and Y axial. Arcs of the source drawing
// are flattened to their end points. The loop is implicitly closed.
var shaftSealTemplate = [...]r2.Vec{
	{X: 11.6345, Y: 107.5580},
	{X: 11.6345, Y: 16.3045},
	{X: 134.3197, Y: 16.3045},
	{X: 142.4312, Y: 31.0065},
	{X: 156.4028, Y: 15.1176},
	{X: 166.8818, Y: 20.8126},
	{X: 140.4033, Y: 61.4243},
	{X: 184.5092, Y: 143.0454},
	{X: 163.2166, Y: 167.8866},
	{X: 117.5900, Y: 167.8866},
	{X: 117.5900, Y: 153.1847}, // arc end
	{X: 130.9333, Y: 100.9327}, // arc start
	{X: 113.9683, Y: 101.1421},
	{X: 113.9683, Y: 68.5217},
	{X: 52.6986, Y: 68.5217},
	{X: 39.5175, Y: 101.4744},
	{X: 39.5175, Y: 178.0259},
	{X: 16.7042, Y: 178.0259},
	{X: 11.6345, Y: 153.6917},
}

// ShaftSealTemplate returns a copy of the reference cross-section that
// shaft seal profiles are scaled from.
func ShaftSealTemplate() []r2.Vec {
	return append([]r2.Vec(nil), shaftSealTemplate[:]...)
}

// TemplateBounds returns the extents of a point table. It is how the
// extents of a newly captured template are obtained.
func TemplateBounds(points []r2.Vec) r2.Box {
	if len(points) == 0 {
		return r2.Box{}
	}
	return d2.Set(points).Bounds()
}

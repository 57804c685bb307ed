package seal

import "gonum.org/v1/gonum/spatial/r2"

// VRing is a type A V-ring.
type VRing struct {
	// ShaftDiameter d1 [mm].
	ShaftDiameter float64
	// SectionWidth A is the axial width of the ring body [mm].
	SectionWidth float64
	// SectionHeight C is the radial height of the ring including its lip [mm].
	SectionHeight float64
}

var _ ProfileBuilder = VRing{} // Compile time check of interface implementation.

// Shape constants of the V-ring cross-section. They are empirical and
// expressed as fractions of the section dimensions.
const (
	// Radial height of the body's back face, fraction of C.
	vringBody = 0.6
	// Radial position of the hinge between body and lip, fraction of the body height.
	vringHingeRadial = 0.8
	// Axial position of the hinge, fraction of A.
	vringHingeAxial = 0.5
	// Axial overhang of the lip tip past the body's front face, fraction of C.
	vringTipOverhang = 0.2
	// Radial position where the lip returns to the front face, fraction of the body height.
	vringReturn = 0.5
)

func (v VRing) Kind() Kind { return KindVRing }

func (v VRing) Dims() Dims { return Dims{v.ShaftDiameter, v.SectionWidth, v.SectionHeight} }

func (v VRing) Valid() bool {
	return v.ShaftDiameter > 0 && v.SectionWidth > 0 && v.SectionHeight > 0
}

// Profile returns the lip cross-section. The ring grips the shaft between
// axial 0 and A. The lip tip points outwards and overhangs the front face.
func (v VRing) Profile() Profile {
	r := v.ShaftDiameter / 2
	a, c := v.SectionWidth, v.SectionHeight
	body := c * vringBody
	start := r2.Vec{X: r, Y: 0}
	return Profile{
		start,
		{X: r, Y: a},        // shaft contact end
		{X: r + body, Y: a}, // back face
		{X: r + body*vringHingeRadial, Y: a * vringHingeAxial},
		{X: r + c, Y: -c * vringTipOverhang}, // lip tip
		{X: r + body*vringReturn, Y: 0},
		start,
	}
}

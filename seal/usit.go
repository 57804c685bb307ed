package seal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Usit is a bonded seal: a metal washer with a rubber sealing lip
// vulcanized to its bore.
type Usit struct {
	// InnerDiameter d1 is the bore of the rubber lip [mm].
	InnerDiameter float64
	// OuterDiameter d2 of the metal washer [mm].
	OuterDiameter float64
	// Thickness s of the metal washer [mm].
	Thickness float64
	// LipHeight h is the axial height of the rubber lip. Never less than Thickness [mm].
	LipHeight float64
}

var _ ProfileBuilder = Usit{} // Compile time check of interface implementation.

const (
	// usitLipWidth is the nominal radial width of the rubber bead [mm].
	// It is clamped to half the annular gap of small rings.
	usitLipWidth = 1.0
	// usitChamfer is the radial offset of the lip chamfer from the bore [mm].
	usitChamfer = 0.2
)

func (u Usit) Kind() Kind { return KindUsit }

func (u Usit) Dims() Dims {
	return Dims{u.InnerDiameter, u.OuterDiameter, u.Thickness, u.LipHeight}
}

func (u Usit) Valid() bool {
	return u.InnerDiameter > 0 && u.OuterDiameter > 0 && u.Thickness > 0 &&
		u.LipHeight >= u.Thickness && u.OuterDiameter > u.InnerDiameter
}

// Profile returns the cross-section of washer and lip, symmetric about
// axial 0. The washer faces lie at ±s/2 and the lip envelope at ±h/2.
// The lip meets the bore at a quarter of h above and below the midplane.
func (u Usit) Profile() Profile {
	rIn := u.InnerDiameter / 2
	rOut := u.OuterDiameter / 2
	lip := math.Min(usitLipWidth, (rOut-rIn)/2)
	rMetal := rIn + lip
	metalTop, metalBot := u.Thickness/2, -u.Thickness/2
	rubberTop, rubberBot := u.LipHeight/2, -u.LipHeight/2
	start := r2.Vec{X: rOut, Y: metalBot}
	return Profile{
		start,
		{X: rOut, Y: metalTop},
		{X: rMetal, Y: metalTop},
		{X: rIn + usitChamfer, Y: rubberTop},
		{X: rIn, Y: rubberTop * 0.5},
		{X: rIn, Y: rubberBot * 0.5},
		{X: rIn + usitChamfer, Y: rubberBot},
		{X: rMetal, Y: metalBot},
		start,
	}
}

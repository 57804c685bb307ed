package seal

// ORing is an O-ring as specified by DIN 3771.
type ORing struct {
	// InnerDiameter d1 is the bore diameter of the ring [mm].
	InnerDiameter float64
	// CordDiameter d2 is the thickness of the cord [mm].
	CordDiameter float64
}

var _ TorusBuilder = ORing{} // Compile time check of interface implementation.

func (o ORing) Kind() Kind { return KindORing }

func (o ORing) Dims() Dims { return Dims{o.InnerDiameter, o.CordDiameter} }

func (o ORing) Valid() bool {
	return o.InnerDiameter > 0 && o.CordDiameter > 0
}

// Radii returns the torus radii of the ring. The major radius always
// exceeds the minor radius for valid rings.
func (o ORing) Radii() (major, minor float64) {
	return o.InnerDiameter/2 + o.CordDiameter/2, o.CordDiameter / 2
}

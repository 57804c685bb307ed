package form3

import (
	"fmt"
	"runtime/debug"

	"github.com/sealworks/sealsdf"
	"github.com/sealworks/sealsdf/form3/must3"
)

// shapeErr is returned when a 3D constructor rejects its input.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// recoverShape converts a panic raised by a must3 constructor into a
// shapeErr stored in err.
func recoverShape(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Torus returns the SDF3 of a ring torus about the Z axis. major is the
// distance from the axis to the cord center and minor the cord radius.
func Torus(major, minor float64) (s sealsdf.SDF3, err error) {
	defer recoverShape(&err)
	return must3.Torus(major, minor), err
}

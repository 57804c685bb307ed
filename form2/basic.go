package form2

import (
	"fmt"
	"runtime/debug"
)

// shapeErr is returned when a 2D constructor rejects its input.
type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// recoverShape converts a panic raised by a must2 constructor into a
// shapeErr stored in err.
func recoverShape(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

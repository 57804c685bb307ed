package form2

import (
	"github.com/sealworks/sealsdf"
	"github.com/sealworks/sealsdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns an SDF2 made from a closed set of line segments.
// An error is returned for polygons that are not simple or enclose no area.
func Polygon(vertex []r2.Vec) (s sealsdf.SDF2, err error) {
	defer recoverShape(&err)
	return must2.Polygon(vertex), err
}

package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sealworks/sealsdf/seal"
)

// Selection chooses the dimensions of a seal: either a standard size by
// designation or caller supplied values.
type Selection struct {
	designation string
	dims        seal.Dims
	custom      bool
}

// Standard selects the standard size with the given designation.
func Standard(designation string) Selection {
	return Selection{designation: designation}
}

// Custom selects caller supplied dimensions in property order. Missing
// trailing values keep the type's defaults.
func Custom(dims ...float64) Selection {
	return Selection{dims: append(seal.Dims(nil), dims...), custom: true}
}

// IsCustom reports whether s holds caller supplied dimensions.
func (s Selection) IsCustom() bool { return s.custom }

// Designation returns the selected standard size, or CustomDesignation.
func (s Selection) Designation() string {
	if s.custom {
		return CustomDesignation
	}
	return s.designation
}

func (s Selection) String() string {
	if s.custom {
		return fmt.Sprintf("%s%v", CustomDesignation, []float64(s.dims))
	}
	return s.designation
}

// Dimensions merges the type's defaults with the selection, position by
// position. The result always has one value per property.
func (c *Catalog) Dimensions(idOrLabel string, sel Selection) (seal.Dims, error) {
	d, err := c.resolve(idOrLabel)
	if err != nil {
		return nil, err
	}
	dims := d.Defaults()
	if sel.custom {
		if len(sel.dims) > len(dims) {
			return nil, fmt.Errorf("%w: %s takes %d, got %d", seal.ErrDimensionCount, d.ID, len(dims), len(sel.dims))
		}
		copy(dims, sel.dims)
		return dims, nil
	}
	row, ok := d.Sizes.Row(sel.designation)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrUnknownSize, d.ID, sel.designation)
	}
	for i, cell := range row {
		if i >= len(dims) {
			break
		}
		if !cell.Numeric {
			return nil, fmt.Errorf("%w: %s %q %s is %q", ErrNonNumeric, d.ID, sel.designation, d.Properties[i].Name, cell.Raw)
		}
		dims[i] = cell.Value
	}
	return dims, nil
}

// Label returns the display name of a seal object: the type label followed
// by the designation of a standard size, or by the dimensions joined with
// "x" for custom seals, e.g. "O-Ring (DIN 3771) 10x2.5".
func (c *Catalog) Label(idOrLabel string, sel Selection, dims seal.Dims) (string, error) {
	d, err := c.resolve(idOrLabel)
	if err != nil {
		return "", err
	}
	if !sel.custom {
		return d.Label + " " + sel.designation, nil
	}
	parts := make([]string, len(dims))
	for i, v := range dims {
		parts[i] = formatDim(v)
	}
	return d.Label + " " + strings.Join(parts, "x"), nil
}

// formatDim rounds v to two decimals without trailing zeros.
func formatDim(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

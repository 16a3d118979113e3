package scaling

import (
	"fmt"

	"github.com/geodyn/geoscale/units"
)

// UnitMismatchError reports a unit-tagged input where a dimensionless
// one is required, or an input whose dimension does not match the
// parameter it was supplied for
type UnitMismatchError struct {
	Param string
	Unit  units.Unit
	Want  string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("parameter %s: unit %q does not match %s", e.Param, e.Unit, e.Want)
}

// HeterogeneousUnitsError reports a quantity slice whose elements do
// not all share the dimension of the first element
type HeterogeneousUnitsError struct {
	Index int
	First units.Unit
	Got   units.Unit
}

func (e *HeterogeneousUnitsError) Error() string {
	return fmt.Sprintf("element %d has unit %q, incompatible with first element's %q",
		e.Index, e.Got, e.First)
}

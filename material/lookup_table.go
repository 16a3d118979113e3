package material

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/geodyn/geoscale/scaling"
	"github.com/geodyn/geoscale/units"
)

// LookupTable is a tabulated (T,P) -> property function substituted for
// an algebraic law in some records. The dimensional axes and values are
// kept as loaded; under a characteristic-scale system the table is
// rebuilt from those originals rather than scaled numerically, so
// repeated rescaling never accumulates error.
type LookupTable struct {
	Label string

	// dimensional originals
	tK     []float64 // temperature axis, K, strictly increasing
	pPa    []float64 // pressure axis, Pa, strictly increasing
	values *mat.Dense // len(tK) x len(pPa), in unit
	unit   units.Unit

	// active representation served by Interpolate
	t, p           []float64
	vals           *mat.Dense
	nondimensional bool
}

// NewLookupTable builds a table from dimensional data. values is
// row-major with rows indexed by the temperature axis. Axes must be
// strictly increasing with at least two entries each.
func NewLookupTable(label string, tK, pPa, values []float64, unit units.Unit) (*LookupTable, error) {
	if len(tK) < 2 || len(pPa) < 2 {
		return nil, fmt.Errorf("lookup table %q: need at least 2 points per axis, got %dx%d",
			label, len(tK), len(pPa))
	}
	if !sort.Float64sAreSorted(tK) || !sort.Float64sAreSorted(pPa) {
		return nil, fmt.Errorf("lookup table %q: axes must be increasing", label)
	}
	if len(values) != len(tK)*len(pPa) {
		return nil, fmt.Errorf("lookup table %q: %d values for a %dx%d grid",
			label, len(values), len(tK), len(pPa))
	}

	t := &LookupTable{
		Label:  label,
		tK:     append([]float64(nil), tK...),
		pPa:    append([]float64(nil), pPa...),
		values: mat.NewDense(len(tK), len(pPa), append([]float64(nil), values...)),
		unit:   unit,
	}
	t.Restore()
	return t, nil
}

// Unit returns the property unit of the tabulated values
func (t *LookupTable) Unit() units.Unit { return t.unit }

// IsNondimensional reports whether the active representation is the
// rescaled one
func (t *LookupTable) IsNondimensional() bool { return t.nondimensional }

// Rescale rebuilds the active representation under the given scale
// system: axes and values are re-read from the dimensional originals
// and non-dimensionalized. Interpolate then works in dimensionless
// (T,P) coordinates.
func (t *LookupTable) Rescale(s *scaling.CharacteristicScales) error {
	if t.values == nil {
		return fmt.Errorf("lookup table %q: no data loaded", t.Label)
	}
	t.t = s.NondimensionalizeSlice(t.tK, units.Kelvin)
	t.p = s.NondimensionalizeSlice(t.pPa, units.Pascal)

	r, c := t.values.Dims()
	grid := mat.NewDense(r, c, nil)
	grid.Copy(t.values)
	s.NondimensionalizeSliceInPlace(grid.RawMatrix().Data, t.unit)
	t.vals = grid
	t.nondimensional = true
	return nil
}

// Restore switches the active representation back to the dimensional
// originals
func (t *LookupTable) Restore() {
	t.t = t.tK
	t.p = t.pPa
	t.vals = t.values
	t.nondimensional = false
}

// Interpolate evaluates the table bilinearly at (T, P) in the active
// representation's coordinates. Points outside the grid are clamped to
// the boundary.
func (t *LookupTable) Interpolate(T, P float64) float64 {
	i, ft := bracket(t.t, T)
	j, fp := bracket(t.p, P)

	v00 := t.vals.At(i, j)
	v10 := t.vals.At(i+1, j)
	v01 := t.vals.At(i, j+1)
	v11 := t.vals.At(i+1, j+1)
	return v00*(1-ft)*(1-fp) + v10*ft*(1-fp) + v01*(1-ft)*fp + v11*ft*fp
}

// bracket finds the interval of axis containing x and the fractional
// position within it, clamping to the grid
func bracket(axis []float64, x float64) (int, float64) {
	n := len(axis)
	if x <= axis[0] {
		return 0, 0
	}
	if x >= axis[n-1] {
		return n - 2, 1
	}
	i := sort.SearchFloat64s(axis, x) - 1
	return i, (x - axis[i]) / (axis[i+1] - axis[i])
}

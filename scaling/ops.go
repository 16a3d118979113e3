package scaling

import (
	"gonum.org/v1/gonum/floats"

	"github.com/geodyn/geoscale/units"
)

// Nondimensionalize converts a quantity to its dimensionless
// representation: the SI value divided by the characteristic factor of
// the quantity's dimension. Already-dimensionless quantities pass
// through unchanged.
func (s *CharacteristicScales) Nondimensionalize(q units.Quantity) units.Quantity {
	if q.IsDimensionless() {
		return q
	}
	return units.Scalar(q.SIValue() / s.CharacteristicFactor(q.Signature()))
}

// Dimensionalize attaches physical meaning back to a dimensionless
// value: the value is multiplied by the characteristic factor of the
// target unit's dimension and expressed in the target unit.
func (s *CharacteristicScales) Dimensionalize(v float64, target units.Unit) units.Quantity {
	vSI := v * s.FactorFor(target)
	return units.New(vSI/target.SIFactor(), target)
}

// NondimensionalizeAny applies the engine to an input of unknown shape.
// Inputs it does not know how to scale — strings, bare numbers,
// untyped slices — pass through unchanged; this is deliberate, so that
// material-parameter code mixing typed and untyped fields keeps
// working. Quantity slices are scaled with homogeneity validation.
func (s *CharacteristicScales) NondimensionalizeAny(v any) (any, error) {
	switch x := v.(type) {
	case units.Quantity:
		return s.Nondimensionalize(x), nil
	case *ScaledQuantity:
		s.NondimensionalizeInPlace(x)
		return x, nil
	case []units.Quantity:
		return s.NondimensionalizeQuantities(x)
	default:
		// strings, bare numbers, unit-less slices: nothing to scale
		return v, nil
	}
}

// NondimensionalizeSliceInPlace scales a slice of values sharing one
// unit, without allocating. For dimensionless units it is a no-op.
func (s *CharacteristicScales) NondimensionalizeSliceInPlace(values []float64, unit units.Unit) {
	if unit.IsDimensionless() {
		return
	}
	floats.Scale(unit.SIFactor()/s.FactorFor(unit), values)
}

// DimensionalizeSliceInPlace is the inverse of
// NondimensionalizeSliceInPlace: values become numeric values in unit
func (s *CharacteristicScales) DimensionalizeSliceInPlace(values []float64, unit units.Unit) {
	if unit.IsDimensionless() {
		return
	}
	floats.Scale(s.FactorFor(unit)/unit.SIFactor(), values)
}

// NondimensionalizeSlice is the allocating convenience form of
// NondimensionalizeSliceInPlace
func (s *CharacteristicScales) NondimensionalizeSlice(values []float64, unit units.Unit) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	s.NondimensionalizeSliceInPlace(out, unit)
	return out
}

// NondimensionalizeQuantities scales a slice of quantities using the
// first element's dimension signature. Every element must be
// dimensionally compatible with the first; a HeterogeneousUnitsError
// is returned otherwise rather than silently mis-scaling.
func (s *CharacteristicScales) NondimensionalizeQuantities(qs []units.Quantity) ([]float64, error) {
	if len(qs) == 0 {
		return nil, nil
	}
	first := qs[0].Unit
	factor := s.FactorFor(first)
	out := make([]float64, len(qs))
	for i, q := range qs {
		if !q.Unit.Compatible(first) {
			return nil, &HeterogeneousUnitsError{Index: i, First: first, Got: q.Unit}
		}
		if first.IsDimensionless() {
			out[i] = q.Value
		} else {
			out[i] = q.SIValue() / factor
		}
	}
	return out, nil
}

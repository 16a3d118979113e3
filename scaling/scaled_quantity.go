package scaling

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/geodyn/geoscale/units"
)

// ScaledQuantity is a mutable wrapper pairing a numeric or array value
// with its unit. After NondimensionalizeInPlace the value is a pure
// number while the unit is retained as the memory of the original
// dimension, so DimensionalizeInPlace can reverse the operation without
// the caller re-supplying the unit.
//
// A ScaledQuantity is owned by exactly one material-parameter field and
// must not be mutated from more than one goroutine at a time.
type ScaledQuantity struct {
	value          float64
	values         []float64
	unit           units.Unit
	nondimensional bool
}

// NewScaled wraps a quantity
func NewScaled(q units.Quantity) *ScaledQuantity {
	return &ScaledQuantity{value: q.Value, unit: q.Unit}
}

// NewScaledValue wraps a value with its unit
func NewScaledValue(v float64, u units.Unit) *ScaledQuantity {
	return &ScaledQuantity{value: v, unit: u}
}

// NewScaledSlice wraps an array-valued field. All elements share the
// one unit; the slice is held by reference so that in-place scaling of
// grid-sized arrays does not reallocate.
func NewScaledSlice(values []float64, u units.Unit) *ScaledQuantity {
	return &ScaledQuantity{values: values, unit: u}
}

// Value returns the scalar value (the dimensionless number once
// non-dimensionalized)
func (sq *ScaledQuantity) Value() float64 { return sq.value }

// Values returns the array value, or nil for scalar wrappers
func (sq *ScaledQuantity) Values() []float64 { return sq.values }

// Unit returns the unit the value carries at rest. It is preserved
// across non-dimensionalization.
func (sq *ScaledQuantity) Unit() units.Unit { return sq.unit }

// IsArray reports whether the wrapper holds an array value
func (sq *ScaledQuantity) IsArray() bool { return sq.values != nil }

// IsNondimensional reports whether the value is currently in
// dimensionless form
func (sq *ScaledQuantity) IsNondimensional() bool { return sq.nondimensional }

// Quantity returns the current scalar state: unit-tagged when
// dimensional, a bare number when non-dimensionalized
func (sq *ScaledQuantity) Quantity() units.Quantity {
	if sq.nondimensional {
		return units.Scalar(sq.value)
	}
	return units.New(sq.value, sq.unit)
}

func (sq *ScaledQuantity) String() string {
	if sq.IsArray() {
		if sq.nondimensional {
			return fmt.Sprintf("[%d values, nondimensional, from %s]", len(sq.values), sq.unit)
		}
		return fmt.Sprintf("[%d values] %s", len(sq.values), sq.unit)
	}
	return sq.Quantity().String()
}

// NondimensionalizeInPlace converts the wrapped value to dimensionless
// form, keeping the unit for later reversal. Re-application is a no-op:
// the wrapper tracks its own state, so double scaling cannot occur.
func (s *CharacteristicScales) NondimensionalizeInPlace(sq *ScaledQuantity) {
	if sq.nondimensional {
		return
	}
	if !sq.unit.IsDimensionless() {
		if sq.IsArray() {
			floats.Scale(sq.unit.SIFactor()/s.FactorFor(sq.unit), sq.values)
		} else {
			sq.value = sq.value * sq.unit.SIFactor() / s.FactorFor(sq.unit)
		}
	}
	sq.nondimensional = true
}

// DimensionalizeInPlace restores the wrapped value to its stored unit.
// A no-op unless the wrapper is currently non-dimensional.
func (s *CharacteristicScales) DimensionalizeInPlace(sq *ScaledQuantity) {
	if !sq.nondimensional {
		return
	}
	if !sq.unit.IsDimensionless() {
		if sq.IsArray() {
			floats.Scale(s.FactorFor(sq.unit)/sq.unit.SIFactor(), sq.values)
		} else {
			sq.value = sq.value * s.FactorFor(sq.unit) / sq.unit.SIFactor()
		}
	}
	sq.nondimensional = false
}

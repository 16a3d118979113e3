package units

import (
	"fmt"
	"math"
)

// Quantity is a numeric value tagged with its unit
type Quantity struct {
	Value float64
	Unit  Unit
}

// Scalar wraps a bare number as a dimensionless quantity
func Scalar(v float64) Quantity {
	return Quantity{Value: v, Unit: Dimensionless()}
}

// New builds a quantity from a value and a unit descriptor
func New(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// SIValue returns the value expressed in SI base units
func (q Quantity) SIValue() float64 {
	return q.Value * q.Unit.factor
}

// ToSI returns q expressed in canonical SI base units
func (q Quantity) ToSI() Quantity {
	return Quantity{Value: q.SIValue(), Unit: q.Unit.SI()}
}

// Convert expresses q in the target unit. The target must be
// dimensionally compatible.
func (q Quantity) Convert(target Unit) (Quantity, error) {
	if !q.Unit.Compatible(target) {
		return Quantity{}, fmt.Errorf("cannot convert %s to %s: incompatible dimensions", q.Unit, target)
	}
	return Quantity{Value: q.Value * q.Unit.factor / target.factor, Unit: target}, nil
}

// MustConvert is Convert for targets known to be compatible; it panics
// on dimension mismatch
func (q Quantity) MustConvert(target Unit) Quantity {
	out, err := q.Convert(target)
	if err != nil {
		panic(err)
	}
	return out
}

// Signature returns the base-dimension signature of q's unit
func (q Quantity) Signature() []DimPower {
	return q.Unit.Signature()
}

// IsDimensionless reports whether q carries no physical dimension
func (q Quantity) IsDimensionless() bool {
	return q.Unit.IsDimensionless()
}

// Mul returns the product quantity q*o
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Value: q.Value * o.Value, Unit: q.Unit.Mul(o.Unit)}
}

// Div returns the quotient quantity q/o
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{Value: q.Value / o.Value, Unit: q.Unit.Div(o.Unit)}
}

// Pow returns q raised to the power p; p may be fractional. Negative
// values with fractional powers yield NaN, as in math.Pow.
func (q Quantity) Pow(p float64) Quantity {
	return Quantity{Value: math.Pow(q.Value, p), Unit: q.Unit.Pow(p)}
}

func (q Quantity) String() string {
	if q.Unit.symbol == "" && q.Unit.exps.IsZero() {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit)
}

// Package units provides unit descriptors and unit-tagged quantities
// with base-dimension signatures, SI conversion, arithmetic including
// fractional powers, and a registry for parsing unit expressions.
package units

import "fmt"

// Dimension identifies one of the seven SI base dimensions
type Dimension int

const (
	Length Dimension = iota
	Mass
	Time
	Temperature
	Amount
	Current
	Luminosity

	// NumDimensions is the number of base dimensions
	NumDimensions
)

func (d Dimension) String() string {
	switch d {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Time:
		return "time"
	case Temperature:
		return "temperature"
	case Amount:
		return "amount"
	case Current:
		return "current"
	case Luminosity:
		return "luminosity"
	default:
		panic(fmt.Sprintf("invalid dimension %d", int(d)))
	}
}

// baseSymbol returns the SI base unit symbol for the dimension
func (d Dimension) baseSymbol() string {
	switch d {
	case Length:
		return "m"
	case Mass:
		return "kg"
	case Time:
		return "s"
	case Temperature:
		return "K"
	case Amount:
		return "mol"
	case Current:
		return "A"
	case Luminosity:
		return "cd"
	default:
		panic(fmt.Sprintf("invalid dimension %d", int(d)))
	}
}

// Exponents holds the power of each base dimension in a derived unit.
// Powers are float64 to allow fractional exponents (e.g. MPa^-3.05 in
// dislocation creep prefactors).
type Exponents [NumDimensions]float64

// DimPower is one entry of a base-dimension signature
type DimPower struct {
	Dim   Dimension
	Power float64
}

// Add returns e + o componentwise (exponents of a unit product)
func (e Exponents) Add(o Exponents) Exponents {
	for i := range e {
		e[i] += o[i]
	}
	return e
}

// Sub returns e - o componentwise (exponents of a unit quotient)
func (e Exponents) Sub(o Exponents) Exponents {
	for i := range e {
		e[i] -= o[i]
	}
	return e
}

// Scale returns e multiplied by p (exponents of a unit power)
func (e Exponents) Scale(p float64) Exponents {
	for i := range e {
		e[i] *= p
	}
	return e
}

// IsZero reports whether every power is zero, i.e. the unit is
// dimensionless
func (e Exponents) IsZero() bool {
	for _, p := range e {
		if p != 0 {
			return false
		}
	}
	return true
}

// Signature returns the ordered list of (dimension, power) pairs with
// zero powers elided. The order follows the Dimension enumeration.
func (e Exponents) Signature() []DimPower {
	sig := make([]DimPower, 0, NumDimensions)
	for i, p := range e {
		if p != 0 {
			sig = append(sig, DimPower{Dim: Dimension(i), Power: p})
		}
	}
	return sig
}

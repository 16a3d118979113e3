package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit is a unit descriptor: a symbol, a multiplicative factor into SI
// base units, and the base-dimension exponents. Units are immutable
// values; arithmetic produces new descriptors.
//
// Affine units (degrees Celsius, Fahrenheit) are not representable and
// are deliberately unsupported; temperatures are handled in kelvin.
type Unit struct {
	symbol string
	factor float64 // multiply a value in this unit by factor to get SI
	exps   Exponents
}

// NewUnit builds a unit descriptor from a symbol, SI conversion factor
// and base-dimension exponents
func NewUnit(symbol string, factor float64, exps Exponents) (Unit, error) {
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return Unit{}, fmt.Errorf("unit %q: SI factor must be positive and finite, got %g", symbol, factor)
	}
	return Unit{symbol: symbol, factor: factor, exps: exps}, nil
}

// Dimensionless returns the trivial unit (factor 1, no dimensions)
func Dimensionless() Unit {
	return Unit{symbol: "", factor: 1}
}

// Symbol returns the display symbol, e.g. "cm/yr"
func (u Unit) Symbol() string {
	return u.symbol
}

// SIFactor returns the factor converting a value in u to SI base units
func (u Unit) SIFactor() float64 {
	return u.factor
}

// Exponents returns the base-dimension exponents of u
func (u Unit) Exponents() Exponents {
	return u.exps
}

// Signature returns the base-dimension signature of u
func (u Unit) Signature() []DimPower {
	return u.exps.Signature()
}

// IsDimensionless reports whether u carries no physical dimension
func (u Unit) IsDimensionless() bool {
	return u.exps.IsZero()
}

// Compatible reports whether u and v share the same base-dimension
// exponents and are therefore interconvertible
func (u Unit) Compatible(v Unit) bool {
	return u.exps == v.exps
}

// Equal reports whether u and v are the same unit: same exponents and
// same SI factor. Symbols are display only and do not participate.
func (u Unit) Equal(v Unit) bool {
	return u.exps == v.exps && u.factor == v.factor
}

// Mul returns the product unit u*v
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		symbol: composeSymbol(u.symbol, "*", v.symbol),
		factor: u.factor * v.factor,
		exps:   u.exps.Add(v.exps),
	}
}

// Div returns the quotient unit u/v
func (u Unit) Div(v Unit) Unit {
	return Unit{
		symbol: composeSymbol(u.symbol, "/", v.symbol),
		factor: u.factor / v.factor,
		exps:   u.exps.Sub(v.exps),
	}
}

// Pow returns u raised to the power p; p may be fractional
func (u Unit) Pow(p float64) Unit {
	sym := ""
	if u.symbol != "" {
		sym = u.symbol + "^" + formatPower(p)
	}
	return Unit{
		symbol: sym,
		factor: math.Pow(u.factor, p),
		exps:   u.exps.Scale(p),
	}
}

// SI returns the canonical SI-base form of u: factor 1, symbol derived
// from the base-dimension signature (e.g. "m*s^-1")
func (u Unit) SI() Unit {
	return Unit{symbol: siSymbol(u.exps), factor: 1, exps: u.exps}
}

func (u Unit) String() string {
	if u.symbol != "" {
		return u.symbol
	}
	if u.exps.IsZero() {
		return "1"
	}
	return siSymbol(u.exps)
}

func composeSymbol(a, op, b string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		if op == "/" {
			return "1/" + b
		}
		return b
	case b == "":
		return a
	default:
		return a + op + b
	}
}

func siSymbol(e Exponents) string {
	var parts []string
	for _, dp := range e.Signature() {
		if dp.Power == 1 {
			parts = append(parts, dp.Dim.baseSymbol())
		} else {
			parts = append(parts, dp.Dim.baseSymbol()+"^"+formatPower(dp.Power))
		}
	}
	return strings.Join(parts, "*")
}

func formatPower(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}

package scaling

import (
	"math"

	"github.com/geodyn/geoscale/units"
)

// CharacteristicFactor computes the characteristic scaling factor for a
// base-dimension signature: the product over the signature of the
// characteristic SI value of each base dimension raised to its power.
// Powers may be fractional (creep-law prefactors carry exponents like
// MPa^-3.05). Dividing a canonical-SI value by the factor
// non-dimensionalizes it; multiplying re-dimensionalizes, so the two
// directions invert each other exactly.
func (s *CharacteristicScales) CharacteristicFactor(sig []units.DimPower) float64 {
	factor := 1.0
	for _, dp := range sig {
		factor *= math.Pow(s.base[dp.Dim], dp.Power)
	}
	return factor
}

// FactorFor is CharacteristicFactor for a unit descriptor
func (s *CharacteristicScales) FactorFor(u units.Unit) float64 {
	return s.CharacteristicFactor(u.Signature())
}

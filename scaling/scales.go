// Package scaling implements the non-dimensionalization engine for
// geodynamic material models: characteristic-scale systems, the
// dimensional decomposition of arbitrary quantities into base-dimension
// powers, and the application of the resulting factors to scalars,
// slices and mutable scaled fields.
package scaling

import (
	"github.com/geodyn/geoscale/units"
)

// Params holds the four user-chosen characteristic values. Each may be
// left zero (the family default applies), given as a bare dimensionless
// quantity (the family's input unit is assumed), or given fully
// unit-tagged (converted, with the dimension checked).
//
// The characteristic time is never chosen directly: it is derived as
// viscosity / stress, the Maxwell relaxation time of the chosen pair.
type Params struct {
	Length      units.Quantity
	Temperature units.Quantity
	Stress      units.Quantity
	Viscosity   units.Quantity
}

// CharacteristicScales is an immutable characteristic-scale system.
// Construct it once per simulation setup with GeoScales, SIScales or
// DimensionlessScales; it is safe to share read-only across concurrent
// scaling calls. All quantity fields are expressed in the Kind's
// display family and must not be mutated.
type CharacteristicScales struct {
	Kind Kind

	// The five user-facing scales. Time == Viscosity / Stress always.
	Length      units.Quantity
	Time        units.Quantity
	Stress      units.Quantity
	Temperature units.Quantity
	Viscosity   units.Quantity

	// SI-base primaries completing the base-dimension set used by the
	// decomposition (Length and Temperature above cover theirs)
	Mass   units.Quantity
	Second units.Quantity
	Amount units.Quantity

	// Derived compound scales, algebraic combinations of the primaries
	// whose base-dimension signatures match the named quantity exactly
	Velocity       units.Quantity
	StrainRate     units.Quantity
	Density        units.Quantity
	Acceleration   units.Quantity
	Force          units.Quantity
	Energy         units.Quantity
	Power          units.Quantity
	HeatCapacity   units.Quantity
	Conductivity   units.Quantity
	LatentHeat     units.Quantity
	HeatFlux       units.Quantity
	HeatProduction units.Quantity
	Diffusivity    units.Quantity
	Permeability   units.Quantity
	GasConstant    units.Quantity

	// Characteristic SI value per base dimension, the decomposition
	// lookup table. Unused dimensions (current, luminosity) are 1.
	base [units.NumDimensions]float64
}

// family describes one unit family: the default inputs, the units bare
// numeric inputs are assumed to carry, and the display units
type family struct {
	kind Kind

	defLength, defTemperature, defStress, defViscosity float64

	// input units assumed for bare numbers, also the display units for
	// the corresponding scale fields
	length, temperature, stress, viscosity units.Unit

	time, velocity units.Unit
}

var geoFamily = family{
	kind:           Geo,
	defLength:      1000, // km
	defTemperature: 1000, // K
	defStress:      10,   // MPa
	defViscosity:   1e20, // Pa s
	length:         units.Kilometer,
	temperature:    units.Kelvin,
	stress:         units.Megapascal,
	viscosity:      units.PascalSecond,
	time:           units.Megayear,
	velocity:       units.CentimeterPerYear,
}

var siFamily = family{
	kind:           SI,
	defLength:      1000, // m
	defTemperature: 1000, // K
	defStress:      10,   // Pa
	defViscosity:   1e20, // Pa s
	length:         units.Meter,
	temperature:    units.Kelvin,
	stress:         units.Pascal,
	viscosity:      units.PascalSecond,
	time:           units.Second,
	velocity:       units.MeterPerSecond,
}

// GeoScales builds a characteristic-scale system displayed in
// geological units (km, Myr, MPa, cm/yr). Bare numeric inputs are
// taken as km, K, MPa and Pa·s respectively.
func GeoScales(p Params) (*CharacteristicScales, error) {
	return build(geoFamily, p)
}

// SIScales builds a characteristic-scale system displayed in SI units.
// Bare numeric inputs are taken as m, K, Pa and Pa·s respectively.
func SIScales(p Params) (*CharacteristicScales, error) {
	return build(siFamily, p)
}

// DimensionlessScales builds a fully dimensionless scale system. All
// four inputs must be genuinely dimensionless; any unit-tagged input is
// rejected with a UnitMismatchError.
func DimensionlessScales(p Params) (*CharacteristicScales, error) {
	in := []struct {
		name string
		q    units.Quantity
		def  float64
	}{
		{"length", p.Length, 1},
		{"temperature", p.Temperature, 1},
		{"stress", p.Stress, 1},
		{"viscosity", p.Viscosity, 1},
	}
	vals := make([]float64, len(in))
	for i, f := range in {
		if !f.q.Unit.IsDimensionless() {
			return nil, &UnitMismatchError{Param: f.name, Unit: f.q.Unit, Want: "a dimensionless value"}
		}
		if f.q == (units.Quantity{}) {
			vals[i] = f.def
		} else {
			vals[i] = f.q.Value
		}
	}
	return fromSIBase(None, vals[0], vals[1], vals[2], vals[3], family{kind: None}), nil
}

// resolve converts one user input to its SI value: unset inputs take
// the family default, bare numbers get the family input unit attached,
// and unit-tagged inputs are dimension-checked and converted.
func resolve(name string, in units.Quantity, def float64, inputUnit units.Unit) (float64, error) {
	if in == (units.Quantity{}) {
		in = units.New(def, inputUnit)
	} else if in.Unit.IsDimensionless() {
		in = units.New(in.Value, inputUnit)
	} else if !in.Unit.Compatible(inputUnit) {
		return 0, &UnitMismatchError{Param: name, Unit: in.Unit, Want: inputUnit.String()}
	}
	return in.SIValue(), nil
}

func build(fam family, p Params) (*CharacteristicScales, error) {
	length, err := resolve("length", p.Length, fam.defLength, fam.length)
	if err != nil {
		return nil, err
	}
	temperature, err := resolve("temperature", p.Temperature, fam.defTemperature, fam.temperature)
	if err != nil {
		return nil, err
	}
	stress, err := resolve("stress", p.Stress, fam.defStress, fam.stress)
	if err != nil {
		return nil, err
	}
	viscosity, err := resolve("viscosity", p.Viscosity, fam.defViscosity, fam.viscosity)
	if err != nil {
		return nil, err
	}
	return fromSIBase(fam.kind, length, temperature, stress, viscosity, fam), nil
}

// fromSIBase derives the full scale system from the four primary SI
// values. length in m, temperature in K, stress in Pa, viscosity in
// Pa·s (or all pure numbers for kind None).
func fromSIBase(kind Kind, length, temperature, stress, viscosity float64, fam family) *CharacteristicScales {
	time := viscosity / stress            // Maxwell relaxation time
	mass := stress * length * time * time // from stress = mass/(length·time²)

	s := &CharacteristicScales{Kind: kind}
	s.base[units.Length] = length
	s.base[units.Mass] = mass
	s.base[units.Time] = time
	s.base[units.Temperature] = temperature
	s.base[units.Amount] = 1
	s.base[units.Current] = 1
	s.base[units.Luminosity] = 1

	// display converts an SI-valued scale into the family's display
	// unit; for kind None everything is a pure number
	display := func(vSI float64, si, disp units.Unit) units.Quantity {
		if kind == None {
			return units.Scalar(vSI)
		}
		return units.New(vSI, si).MustConvert(disp)
	}

	meter := units.Meter
	second := units.Second

	s.Length = display(length, meter, fam.length)
	s.Time = display(time, second, fam.time)
	s.Stress = display(stress, units.Pascal, fam.stress)
	s.Temperature = display(temperature, units.Kelvin, fam.temperature)
	s.Viscosity = display(viscosity, units.PascalSecond, fam.viscosity)

	s.Mass = display(mass, units.Kilogram, units.Kilogram)
	s.Second = display(time, second, second)
	s.Amount = display(1, units.Mole, units.Mole)

	L, t, M, T := length, time, mass, temperature
	s.Velocity = display(L/t, meter.Div(second), fam.velocity)
	s.StrainRate = display(1/t, units.Dimensionless().Div(second), units.Dimensionless().Div(second))
	s.Density = display(M/(L*L*L), units.KilogramPerCubicMeter, units.KilogramPerCubicMeter)
	s.Acceleration = display(L/(t*t), meter.Div(second.Pow(2)), meter.Div(second.Pow(2)))
	s.Force = display(M*L/(t*t), units.Newton.SI(), units.Newton)
	s.Energy = display(M*L*L/(t*t), units.Joule.SI(), units.Joule)
	s.Power = display(M*L*L/(t*t*t), units.Watt.SI(), units.Watt)
	s.HeatCapacity = display(L*L/(t*t*T), units.Joule.Div(units.Kilogram.Mul(units.Kelvin)),
		units.Joule.Div(units.Kilogram.Mul(units.Kelvin)))
	s.Conductivity = display(M*L/(t*t*t*T), units.Watt.Div(units.Meter.Mul(units.Kelvin)),
		units.Watt.Div(units.Meter.Mul(units.Kelvin)))
	s.LatentHeat = display(L*L/(t*t), units.Joule.Div(units.Kilogram), units.Joule.Div(units.Kilogram))
	s.HeatFlux = display(M/(t*t*t), units.Watt.Div(meter.Pow(2)), units.Watt.Div(meter.Pow(2)))
	s.HeatProduction = display(M/(L*t*t*t), units.Watt.Div(meter.Pow(3)), units.Watt.Div(meter.Pow(3)))
	s.Diffusivity = display(L*L/t, meter.Pow(2).Div(second), meter.Pow(2).Div(second))
	s.Permeability = display(L*L, meter.Pow(2), meter.Pow(2))
	s.GasConstant = display(M*L*L/(t*t*T), units.Joule.Div(units.Mole.Mul(units.Kelvin)),
		units.Joule.Div(units.Mole.Mul(units.Kelvin)))
	return s
}

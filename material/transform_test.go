package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodyn/geoscale/scaling"
	"github.com/geodyn/geoscale/units"
)

func testScales(t *testing.T) *scaling.CharacteristicScales {
	t.Helper()
	s, err := scaling.GeoScales(scaling.Params{
		Viscosity: units.Scalar(1e19),
		Length:    units.New(1000, units.Kilometer),
	})
	require.NoError(t, err)
	return s
}

func testPhase() *Phase {
	return &Phase{
		Label: "mantle",
		ID:    0,
		Density: &ConstantDensity{
			Rho: scaling.NewScaledValue(3300, units.KilogramPerCubicMeter),
		},
		Rheology: &DislocationCreep{
			A: scaling.NewScaledValue(1.1e-16, units.Pascal.Pow(-3.05).Div(units.Second)),
			N: 3.05,
			E: scaling.NewScaledValue(530e3, units.Joule.Div(units.Mole)),
			V: scaling.NewScaledValue(14e-6, units.Meter.Pow(3).Div(units.Mole)),
			R: scaling.NewScaledValue(8.314, units.Joule.Div(units.Mole.Mul(units.Kelvin))),
		},
		Conductivity: &ConstantConductivity{
			K: scaling.NewScaledValue(3, units.Watt.Div(units.Meter.Mul(units.Kelvin))),
		},
		HeatCapacity: &ConstantHeatCapacity{
			Cp: scaling.NewScaledValue(1050, units.Joule.Div(units.Kilogram.Mul(units.Kelvin))),
		},
	}
}

func TestNondimensionalizeRecordTogglesFlag(t *testing.T) {
	s := testScales(t)
	rec := &ConstantDensity{
		Rho: scaling.NewScaledValue(3300, units.KilogramPerCubicMeter),
	}

	require.True(t, IsDimensional(rec))
	require.NoError(t, NondimensionalizeRecord(rec, s))
	assert.True(t, rec.Nondimensional())
	assert.False(t, IsDimensional(rec))

	// characteristic density is 1e19 kg/m^3
	assert.InEpsilon(t, 3300/1e19, rec.Rho.Value(), 1e-12)

	require.NoError(t, DimensionalizeRecord(rec, s))
	assert.False(t, rec.Nondimensional())
	assert.True(t, IsDimensional(rec))
	assert.InEpsilon(t, 3300, rec.Rho.Value(), 1e-12)
}

func TestNondimensionalizeRecordIdempotent(t *testing.T) {
	s := testScales(t)
	rec := &LinearViscous{
		Eta: scaling.NewScaledValue(1e21, units.PascalSecond),
	}

	require.NoError(t, NondimensionalizeRecord(rec, s))
	once := rec.Eta.Value()

	// re-application is a guarded no-op, not a double scaling
	require.NoError(t, NondimensionalizeRecord(rec, s))
	assert.Equal(t, once, rec.Eta.Value())

	require.NoError(t, DimensionalizeRecord(rec, s))
	restored := rec.Eta.Value()
	require.NoError(t, DimensionalizeRecord(rec, s))
	assert.Equal(t, restored, rec.Eta.Value())
}

func TestNondimensionalizePhaseRecursesSubRecords(t *testing.T) {
	s := testScales(t)
	p := testPhase()

	require.NoError(t, NondimensionalizeRecord(p, s))
	assert.True(t, p.Nondimensional())

	// every sub-record was scaled and flagged
	assert.True(t, p.Density.Nondimensional())
	assert.True(t, p.Rheology.Nondimensional())
	assert.True(t, p.Conductivity.Nondimensional())
	assert.True(t, p.HeatCapacity.Nondimensional())

	rho := p.Density.(*ConstantDensity).Rho
	assert.InEpsilon(t, 3300/1e19, rho.Value(), 1e-12)

	// the creep prefactor with its fractional stress exponent scaled
	// without error and stays finite
	a := p.Rheology.(*DislocationCreep).A
	assert.True(t, a.IsNondimensional())
	assert.NotZero(t, a.Value())

	// round trip restores the original values
	require.NoError(t, DimensionalizeRecord(p, s))
	assert.InEpsilon(t, 3300, rho.Value(), 1e-12)
	assert.InEpsilon(t, 1.1e-16, a.Value(), 1e-12)
	assert.InEpsilon(t, 530e3, p.Rheology.(*DislocationCreep).E.Value(), 1e-12)
}

func TestPhaseWithAbsentRecords(t *testing.T) {
	s := testScales(t)
	p := &Phase{
		Label: "sticky air",
		ID:    9,
		Density: &ConstantDensity{
			Rho: scaling.NewScaledValue(1, units.KilogramPerCubicMeter),
		},
		// no rheology, conductivity or heat capacity
	}
	require.NoError(t, NondimensionalizeRecord(p, s))
	assert.True(t, p.Nondimensional())
}

func TestRecordAtomicityOnBadField(t *testing.T) {
	s := testScales(t)
	rho := scaling.NewScaledValue(3300, units.KilogramPerCubicMeter)
	p := &Phase{
		Label:   "broken",
		Density: &ConstantDensity{Rho: rho},
		// a table record with no data fails validation
		Conductivity: &PhaseDiagramDensity{},
	}

	err := NondimensionalizeRecord(p, s)
	require.Error(t, err)

	// validation runs before any mutation: the good field is untouched
	// and the record is still dimensional
	assert.False(t, p.Nondimensional())
	assert.False(t, rho.IsNondimensional())
	assert.Equal(t, 3300.0, rho.Value())
}

func TestNondimensionalizePhases(t *testing.T) {
	s := testScales(t)
	pm := PhaseMap{
		0: testPhase(),
		1: {
			Label: "crust",
			ID:    1,
			Density: &ConstantDensity{
				Rho: scaling.NewScaledValue(2900, units.KilogramPerCubicMeter),
			},
		},
	}

	require.NoError(t, NondimensionalizePhases(pm, s))
	for _, p := range pm {
		assert.True(t, p.Nondimensional())
		assert.False(t, IsDimensional(p))
	}

	require.NoError(t, DimensionalizePhases(pm, s))
	for _, p := range pm {
		assert.False(t, p.Nondimensional())
		assert.True(t, IsDimensional(p))
	}
}

func TestIsDimensionalIgnoresUnitlessFields(t *testing.T) {
	rec := &ConstantDensity{
		Rho: scaling.NewScaledValue(0.5, units.Dimensionless()),
	}
	// a record holding only unit-less values carries no dimension
	assert.False(t, IsDimensional(rec))
}

func TestPTDensityAllFieldsScaled(t *testing.T) {
	s := testScales(t)
	rec := &PTDensity{
		Rho0:  scaling.NewScaledValue(3300, units.KilogramPerCubicMeter),
		Alpha: scaling.NewScaledValue(3e-5, units.Dimensionless().Div(units.Kelvin)),
		Beta:  scaling.NewScaledValue(1e-11, units.Dimensionless().Div(units.Pascal)),
		T0:    scaling.NewScaledValue(293, units.Kelvin),
		P0:    scaling.NewScaledValue(1e5, units.Pascal),
	}

	require.NoError(t, NondimensionalizeRecord(rec, s))
	// alpha scales with temperature: 3e-5 K^-1 · 1e3 K
	assert.InEpsilon(t, 3e-5*1e3, rec.Alpha.Value(), 1e-12)
	// beta scales with stress: 1e-11 Pa^-1 · 1e7 Pa
	assert.InEpsilon(t, 1e-11*1e7, rec.Beta.Value(), 1e-12)
	assert.InEpsilon(t, 293.0/1e3, rec.T0.Value(), 1e-12)

	require.NoError(t, DimensionalizeRecord(rec, s))
	assert.InEpsilon(t, 3e-5, rec.Alpha.Value(), 1e-12)
	assert.InEpsilon(t, 1e5, rec.P0.Value(), 1e-12)
}

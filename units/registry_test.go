package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		symbol string
		factor float64
	}{
		{"m", 1},
		{"km", 1e3},
		{"cm", 1e-2},
		{"kg", 1},
		{"g", 1e-3},
		{"MPa", 1e6},
		{"GPa", 1e9},
		{"mW", 1e-3},
		{"yr", secondsPerYear},
		{"Myr", 1e6 * secondsPerYear},
		{"Pas", 1},
		{"min", 60},
		{"mol", 1},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, err := reg.Lookup(tt.symbol)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.factor, u.SIFactor(), 1e-15)
		})
	}

	_, err := reg.Lookup("furlong")
	assert.Error(t, err)
}

func TestRegistryParse(t *testing.T) {
	reg := NewRegistry()

	t.Run("Compound", func(t *testing.T) {
		u, err := reg.Parse("cm/yr")
		require.NoError(t, err)
		assert.True(t, u.Compatible(MeterPerSecond))
		assert.InEpsilon(t, 1e-2/secondsPerYear, u.SIFactor(), 1e-15)
		assert.Equal(t, "cm/yr", u.Symbol())
	})

	t.Run("ChainedDivision", func(t *testing.T) {
		// J/kg/K parses left to right
		u, err := reg.Parse("J/kg/K")
		require.NoError(t, err)
		want := Joule.Div(Kilogram).Div(Kelvin)
		assert.True(t, u.Compatible(want))
	})

	t.Run("FractionalExponent", func(t *testing.T) {
		u, err := reg.Parse("MPa^-3.05/s")
		require.NoError(t, err)
		want := Megapascal.Pow(-3.05).Div(Second)
		assert.Equal(t, want.Exponents(), u.Exponents())
		assert.InEpsilon(t, want.SIFactor(), u.SIFactor(), 1e-12)
	})

	t.Run("Reciprocal", func(t *testing.T) {
		u, err := reg.Parse("1/s")
		require.NoError(t, err)
		assert.True(t, u.Compatible(Dimensionless().Div(Second)))
	})

	t.Run("Empty", func(t *testing.T) {
		u, err := reg.Parse("")
		require.NoError(t, err)
		assert.True(t, u.IsDimensionless())
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, expr := range []string{"cm/", "/s", "cm//yr", "bogus", "m^x"} {
			_, err := reg.Parse(expr)
			assert.Error(t, err, "expression %q", expr)
		}
	})
}

func TestRegistryParseQuantity(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		in      string
		value   float64
		siValue float64
	}{
		{"1000 km", 1000, 1e6},
		{"8.1cm/yr", 8.1, 8.1e-2 / secondsPerYear},
		{"1e19", 1e19, 1e19},
		{"10 MPa", 10, 1e7},
		{"-5 K", -5, -5},
		{"1e21 Pas", 1e21, 1e21},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := reg.ParseQuantity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.value, q.Value)
			assert.InEpsilon(t, tt.siValue, q.SIValue(), 1e-12)
		})
	}

	for _, in := range []string{"", "km", "12 parsecs"} {
		_, err := reg.ParseQuantity(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()

	cmyr := CentimeterPerYear
	custom, err := NewUnit("cmyr", cmyr.SIFactor(), cmyr.Exponents())
	require.NoError(t, err)
	require.NoError(t, reg.Register(custom))

	u, err := reg.Lookup("cmyr")
	require.NoError(t, err)
	assert.True(t, u.Compatible(MeterPerSecond))

	// duplicate registration is rejected
	assert.Error(t, reg.Register(custom))
}

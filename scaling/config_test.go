package scaling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodyn/geoscale/units"
)

func TestLoadConfig(t *testing.T) {
	doc := `
kind: GEO
length: 1000 km
viscosity: 1e19 Pas
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "GEO", cfg.Kind)
	assert.Equal(t, "1000 km", cfg.Length)
	assert.Equal(t, "1e19 Pas", cfg.Viscosity)
	assert.Empty(t, cfg.Stress)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	doc := `
kind: GEO
lenght: 1000 km
`
	_, err := LoadConfig(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestConfigScales(t *testing.T) {
	reg := units.NewRegistry()

	t.Run("Geo", func(t *testing.T) {
		cfg := Config{Kind: "GEO", Length: "1000 km", Viscosity: "1e19 Pas"}
		s, err := cfg.Scales(reg)
		require.NoError(t, err)
		assert.Equal(t, Geo, s.Kind)
		assert.InEpsilon(t, 1e12, s.Second.SIValue(), 1e-12)
	})

	t.Run("KindDefaultsToGeo", func(t *testing.T) {
		s, err := Config{}.Scales(reg)
		require.NoError(t, err)
		assert.Equal(t, Geo, s.Kind)
	})

	t.Run("SI", func(t *testing.T) {
		s, err := Config{Kind: "si", Stress: "100 Pa"}.Scales(reg)
		require.NoError(t, err)
		assert.Equal(t, SI, s.Kind)
		assert.InEpsilon(t, 100, s.Stress.SIValue(), 1e-12)
	})

	t.Run("None", func(t *testing.T) {
		s, err := Config{Kind: "NONE", Length: "5"}.Scales(reg)
		require.NoError(t, err)
		assert.Equal(t, None, s.Kind)
		assert.Equal(t, 5.0, s.Length.Value)
	})

	t.Run("NoneRejectsUnits", func(t *testing.T) {
		_, err := Config{Kind: "NONE", Length: "5 km"}.Scales(reg)
		require.Error(t, err)
		var mismatch *UnitMismatchError
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := Config{Kind: "imperial"}.Scales(reg)
		assert.Error(t, err)
	})

	t.Run("BadQuantity", func(t *testing.T) {
		_, err := Config{Kind: "GEO", Length: "very long"}.Scales(reg)
		assert.Error(t, err)
	})
}

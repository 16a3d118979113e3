package scaling

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/geodyn/geoscale/units"
)

// Config is the YAML shape of a characteristic-scale preset, e.g.
//
//	kind: GEO
//	length: 1000 km
//	temperature: 1300 K
//	stress: 10 MPa
//	viscosity: 1e21 Pas
//
// Omitted entries fall back to the kind's defaults.
type Config struct {
	Kind        string `yaml:"kind"`
	Length      string `yaml:"length,omitempty"`
	Temperature string `yaml:"temperature,omitempty"`
	Stress      string `yaml:"stress,omitempty"`
	Viscosity   string `yaml:"viscosity,omitempty"`
}

// LoadConfig decodes a scale preset from YAML
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decoding scales config: %w", err)
	}
	return c, nil
}

// Scales builds the characteristic-scale system the config describes,
// resolving quantity strings through the given registry
func (c Config) Scales(reg *units.Registry) (*CharacteristicScales, error) {
	var p Params
	fields := []struct {
		name string
		src  string
		dst  *units.Quantity
	}{
		{"length", c.Length, &p.Length},
		{"temperature", c.Temperature, &p.Temperature},
		{"stress", c.Stress, &p.Stress},
		{"viscosity", c.Viscosity, &p.Viscosity},
	}
	for _, f := range fields {
		if f.src == "" {
			continue
		}
		q, err := reg.ParseQuantity(f.src)
		if err != nil {
			return nil, fmt.Errorf("scales config %s: %w", f.name, err)
		}
		*f.dst = q
	}

	switch c.Kind {
	case "GEO", "geo", "":
		return GeoScales(p)
	case "SI", "si":
		return SIScales(p)
	case "NONE", "none":
		return DimensionlessScales(p)
	default:
		return nil, fmt.Errorf("scales config: unknown kind %q", c.Kind)
	}
}

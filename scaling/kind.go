package scaling

import "fmt"

// Kind selects the unit family characteristic scales are displayed in.
// It does not change the scaling algorithm, only how dimensional
// results are presented.
type Kind int

const (
	// Geo displays results in geological units (km, Myr, MPa, cm/yr)
	Geo Kind = iota + 1
	// SI displays results in SI units
	SI
	// None is a fully dimensionless scale system
	None
)

func (k Kind) String() string {
	switch k {
	case Geo:
		return "GEO"
	case SI:
		return "SI"
	case None:
		return "NONE"
	default:
		panic(fmt.Sprintf("invalid scale kind %d", int(k)))
	}
}

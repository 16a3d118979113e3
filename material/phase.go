package material

import (
	"fmt"
	"sort"

	"github.com/geodyn/geoscale/scaling"
)

// Phase aggregates the material-parameter records of one material
// phase. A Phase is itself a Record, so it nests and scales like any
// other sub-record.
type Phase struct {
	State
	Label string
	ID    int

	Density      Record
	Rheology     Record
	Conductivity Record
	HeatCapacity Record
}

func (p *Phase) Name() string {
	if p.Label != "" {
		return fmt.Sprintf("phase %d (%s)", p.ID, p.Label)
	}
	return fmt.Sprintf("phase %d", p.ID)
}

func (p *Phase) Accept(v Visitor) error {
	subs := []struct {
		name string
		rec  Record
	}{
		{"density", p.Density},
		{"rheology", p.Rheology},
		{"conductivity", p.Conductivity},
		{"heat capacity", p.HeatCapacity},
	}
	for _, sub := range subs {
		if sub.rec == nil {
			// absent parameterizations are not an error
			continue
		}
		if err := v.VisitRecord(sub.name, sub.rec); err != nil {
			return err
		}
	}
	return nil
}

// PhaseMap is a collection of phases keyed by phase ID
type PhaseMap map[int]*Phase

// NondimensionalizePhases scales every phase in the map. Phases are
// processed in ID order; on error the failing phase is reported and
// phases after it are left untouched (each phase itself stays atomic).
func NondimensionalizePhases(pm PhaseMap, s *scaling.CharacteristicScales) error {
	for _, id := range sortedIDs(pm) {
		if err := NondimensionalizeRecord(pm[id], s); err != nil {
			return err
		}
	}
	return nil
}

// DimensionalizePhases restores every phase in the map
func DimensionalizePhases(pm PhaseMap, s *scaling.CharacteristicScales) error {
	for _, id := range sortedIDs(pm) {
		if err := DimensionalizeRecord(pm[id], s); err != nil {
			return err
		}
	}
	return nil
}

func sortedIDs(pm PhaseMap) []int {
	ids := make([]int, 0, len(pm))
	for id := range pm {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

package material

import (
	"fmt"

	"github.com/geodyn/geoscale/scaling"
)

// NondimensionalizeRecord converts every scaled field of the record
// (and of its nested sub-records) to dimensionless form and marks the
// record non-dimensional. A record that is already non-dimensional is
// left untouched.
//
// The transformation is atomic per record: fields are validated before
// anything mutates, so a failure never leaves the record half-scaled.
func NondimensionalizeRecord(rec Record, s *scaling.CharacteristicScales) error {
	if rec.Nondimensional() {
		return nil
	}
	if err := rec.Accept(&fieldChecker{}); err != nil {
		return fmt.Errorf("record %q: %w", rec.Name(), err)
	}
	if err := rec.Accept(&nondimensionalizer{scales: s}); err != nil {
		return fmt.Errorf("record %q: %w", rec.Name(), err)
	}
	rec.SetNondimensional(true)
	return nil
}

// DimensionalizeRecord restores every scaled field of the record to
// its stored unit and marks the record dimensional. A record that is
// already dimensional is left untouched.
func DimensionalizeRecord(rec Record, s *scaling.CharacteristicScales) error {
	if !rec.Nondimensional() {
		return nil
	}
	if err := rec.Accept(&fieldChecker{}); err != nil {
		return fmt.Errorf("record %q: %w", rec.Name(), err)
	}
	if err := rec.Accept(&dimensionalizer{scales: s}); err != nil {
		return fmt.Errorf("record %q: %w", rec.Name(), err)
	}
	rec.SetNondimensional(false)
	return nil
}

// IsDimensional reports whether any scaled field of the record
// currently carries a non-trivial unit. It is a query only; no state
// changes.
func IsDimensional(rec Record) bool {
	p := &dimensionProbe{}
	_ = rec.Accept(p)
	return p.found
}

// fieldChecker validates a record's fields without mutating anything.
// It backs the atomicity guarantee of the record-level transforms.
type fieldChecker struct{}

func (c *fieldChecker) VisitScaled(name string, sq *scaling.ScaledQuantity) error {
	if sq == nil {
		return fmt.Errorf("field %s: nil scaled quantity", name)
	}
	return nil
}

func (c *fieldChecker) VisitRecord(name string, rec Record) error {
	if rec == nil {
		return fmt.Errorf("field %s: nil sub-record", name)
	}
	if err := rec.Accept(c); err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	return nil
}

func (c *fieldChecker) VisitTable(name string, tbl *LookupTable) error {
	if tbl == nil || tbl.values == nil {
		return fmt.Errorf("field %s: lookup table has no data", name)
	}
	return nil
}

// nondimensionalizer applies forward scaling field by field
type nondimensionalizer struct {
	scales *scaling.CharacteristicScales
}

func (n *nondimensionalizer) VisitScaled(name string, sq *scaling.ScaledQuantity) error {
	n.scales.NondimensionalizeInPlace(sq)
	return nil
}

func (n *nondimensionalizer) VisitRecord(name string, rec Record) error {
	return NondimensionalizeRecord(rec, n.scales)
}

func (n *nondimensionalizer) VisitTable(name string, tbl *LookupTable) error {
	// tables are rebuilt under the new scales, not scaled numerically
	return tbl.Rescale(n.scales)
}

// dimensionalizer applies the inverse transform field by field
type dimensionalizer struct {
	scales *scaling.CharacteristicScales
}

func (d *dimensionalizer) VisitScaled(name string, sq *scaling.ScaledQuantity) error {
	d.scales.DimensionalizeInPlace(sq)
	return nil
}

func (d *dimensionalizer) VisitRecord(name string, rec Record) error {
	return DimensionalizeRecord(rec, d.scales)
}

func (d *dimensionalizer) VisitTable(name string, tbl *LookupTable) error {
	tbl.Restore()
	return nil
}

// dimensionProbe answers IsDimensional
type dimensionProbe struct {
	found bool
}

func (p *dimensionProbe) VisitScaled(name string, sq *scaling.ScaledQuantity) error {
	if sq != nil && !sq.IsNondimensional() && !sq.Unit().IsDimensionless() {
		p.found = true
	}
	return nil
}

func (p *dimensionProbe) VisitRecord(name string, rec Record) error {
	if rec != nil {
		return rec.Accept(p)
	}
	return nil
}

func (p *dimensionProbe) VisitTable(name string, tbl *LookupTable) error {
	if tbl != nil && !tbl.IsNondimensional() && !tbl.Unit().IsDimensionless() {
		p.found = true
	}
	return nil
}

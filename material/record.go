// Package material defines material-parameter records and the
// propagation layer that applies characteristic scaling recursively
// across them: scaled fields, nested sub-records and phase-diagram
// lookup tables, collected into phases keyed by ID.
package material

import (
	"github.com/geodyn/geoscale/scaling"
)

// scaled aliases the engine's mutable scaled-quantity wrapper to keep
// record definitions short
type scaled = scaling.ScaledQuantity

// Visitor walks the closed set of field kinds a record may hold. New
// record types plug into the propagation layer by implementing Accept
// against this interface; no reflection is involved.
type Visitor interface {
	// VisitScaled is called for each scaled-quantity field
	VisitScaled(name string, sq *scaling.ScaledQuantity) error
	// VisitRecord is called for each nested sub-record
	VisitRecord(name string, rec Record) error
	// VisitTable is called for each phase-diagram lookup table
	VisitTable(name string, tbl *LookupTable) error
}

// Record is a named aggregate of material parameters. Records are
// mutable and owned by one logical task during a scaling call; the
// dimensional-status flag prevents double application.
type Record interface {
	// Name identifies the record in error messages
	Name() string
	// Accept presents every field to the visitor, stopping at the
	// first error
	Accept(v Visitor) error
	// Nondimensional reports whether the record's fields are currently
	// in dimensionless form
	Nondimensional() bool
	// SetNondimensional toggles the dimensional-status flag. It is
	// called by the propagation layer; record code should not need it.
	SetNondimensional(bool)
}

// State carries the dimensional-status flag. Embed it to satisfy the
// flag half of the Record interface.
type State struct {
	nondimensional bool
}

// Nondimensional reports the current dimensional status
func (s *State) Nondimensional() bool { return s.nondimensional }

// SetNondimensional sets the dimensional status
func (s *State) SetNondimensional(b bool) { s.nondimensional = b }

package material

// Concrete material-parameter records. These carry parameters and
// scaling behavior only; evaluating the constitutive formulas they
// parameterize is the job of the consuming solver.

// ConstantDensity is a fixed density, kg/m^3
type ConstantDensity struct {
	State
	Rho *scaled
}

func (r *ConstantDensity) Name() string { return "constant density" }

func (r *ConstantDensity) Accept(v Visitor) error {
	return v.VisitScaled("rho", r.Rho)
}

// PTDensity is a first-order pressure- and temperature-dependent
// density: rho0, thermal expansivity alpha (1/K), compressibility
// beta (1/Pa), and the reference state (T0, P0)
type PTDensity struct {
	State
	Rho0  *scaled
	Alpha *scaled
	Beta  *scaled
	T0    *scaled
	P0    *scaled
}

func (r *PTDensity) Name() string { return "P-T dependent density" }

func (r *PTDensity) Accept(v Visitor) error {
	fields := []struct {
		name string
		sq   *scaled
	}{
		{"rho0", r.Rho0},
		{"alpha", r.Alpha},
		{"beta", r.Beta},
		{"T0", r.T0},
		{"P0", r.P0},
	}
	for _, f := range fields {
		if err := v.VisitScaled(f.name, f.sq); err != nil {
			return err
		}
	}
	return nil
}

// PhaseDiagramDensity reads density from a tabulated (T,P) lookup
// instead of an algebraic law
type PhaseDiagramDensity struct {
	State
	Table *LookupTable
}

func (r *PhaseDiagramDensity) Name() string { return "phase diagram density" }

func (r *PhaseDiagramDensity) Accept(v Visitor) error {
	return v.VisitTable("table", r.Table)
}

// LinearViscous is a constant-viscosity rheology, Pa·s
type LinearViscous struct {
	State
	Eta *scaled
}

func (r *LinearViscous) Name() string { return "linear viscous" }

func (r *LinearViscous) Accept(v Visitor) error {
	return v.VisitScaled("eta", r.Eta)
}

// DislocationCreep is a power-law creep rheology. The prefactor A
// carries the unit Pa^-n/s with a typically fractional stress exponent
// n, which exercises fractional powers in the scaling engine.
type DislocationCreep struct {
	State
	A *scaled // prefactor, Pa^-n s^-1
	N float64 // stress exponent, dimensionless
	E *scaled // activation energy, J/mol
	V *scaled // activation volume, m^3/mol
	R *scaled // gas constant, J/mol/K
}

func (r *DislocationCreep) Name() string { return "dislocation creep" }

func (r *DislocationCreep) Accept(v Visitor) error {
	fields := []struct {
		name string
		sq   *scaled
	}{
		{"A", r.A},
		{"E", r.E},
		{"V", r.V},
		{"R", r.R},
	}
	for _, f := range fields {
		if err := v.VisitScaled(f.name, f.sq); err != nil {
			return err
		}
	}
	return nil
}

// ConstantConductivity is a fixed thermal conductivity, W/m/K
type ConstantConductivity struct {
	State
	K *scaled
}

func (r *ConstantConductivity) Name() string { return "constant conductivity" }

func (r *ConstantConductivity) Accept(v Visitor) error {
	return v.VisitScaled("k", r.K)
}

// ConstantHeatCapacity is a fixed specific heat capacity, J/kg/K
type ConstantHeatCapacity struct {
	State
	Cp *scaled
}

func (r *ConstantHeatCapacity) Name() string { return "constant heat capacity" }

func (r *ConstantHeatCapacity) Accept(v Visitor) error {
	return v.VisitScaled("cp", r.Cp)
}

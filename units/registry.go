package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

func dims(length, mass, time, temp, amount float64) Exponents {
	var e Exponents
	e[Length] = length
	e[Mass] = mass
	e[Time] = time
	e[Temperature] = temp
	e[Amount] = amount
	return e
}

func mustUnit(symbol string, factor float64, exps Exponents) Unit {
	u, err := NewUnit(symbol, factor, exps)
	if err != nil {
		panic(err)
	}
	return u
}

// Seconds per Julian year (365.25 days), the convention used for
// geological time units
const secondsPerYear = 365.25 * 86400

// Well-known unit descriptors. These cover the units the scaling
// package needs without going through string parsing; the Registry
// carries the full parseable set.
var (
	Meter    = mustUnit("m", 1, dims(1, 0, 0, 0, 0))
	Kilogram = mustUnit("kg", 1, dims(0, 1, 0, 0, 0))
	Second   = mustUnit("s", 1, dims(0, 0, 1, 0, 0))
	Kelvin   = mustUnit("K", 1, dims(0, 0, 0, 1, 0))
	Mole     = mustUnit("mol", 1, dims(0, 0, 0, 0, 1))

	Kilometer  = mustUnit("km", 1e3, dims(1, 0, 0, 0, 0))
	Centimeter = mustUnit("cm", 1e-2, dims(1, 0, 0, 0, 0))

	Year     = mustUnit("yr", secondsPerYear, dims(0, 0, 1, 0, 0))
	Kiloyear = mustUnit("kyr", 1e3*secondsPerYear, dims(0, 0, 1, 0, 0))
	Megayear = mustUnit("Myr", 1e6*secondsPerYear, dims(0, 0, 1, 0, 0))

	Pascal       = mustUnit("Pa", 1, dims(-1, 1, -2, 0, 0))
	Megapascal   = mustUnit("MPa", 1e6, dims(-1, 1, -2, 0, 0))
	PascalSecond = mustUnit("Pas", 1, dims(-1, 1, -1, 0, 0))

	Newton = mustUnit("N", 1, dims(1, 1, -2, 0, 0))
	Joule  = mustUnit("J", 1, dims(2, 1, -2, 0, 0))
	Watt   = mustUnit("W", 1, dims(2, 1, -3, 0, 0))

	MeterPerSecond        = Meter.Div(Second)
	CentimeterPerYear     = Centimeter.Div(Year)
	KilogramPerCubicMeter = Kilogram.Div(Meter.Pow(3))
)

// siPrefixes maps metric prefixes to their multipliers, longest first
// so that lookup can try them greedily
var siPrefixes = []struct {
	prefix string
	mult   float64
}{
	{"da", 1e1},
	{"y", 1e-24}, {"z", 1e-21}, {"a", 1e-18}, {"f", 1e-15},
	{"p", 1e-12}, {"n", 1e-9}, {"u", 1e-6}, {"µ", 1e-6},
	{"m", 1e-3}, {"c", 1e-2}, {"d", 1e-1},
	{"h", 1e2}, {"k", 1e3}, {"M", 1e6}, {"G", 1e9},
	{"T", 1e12}, {"P", 1e15}, {"E", 1e18},
}

// Registry resolves unit symbols and parses compound unit expressions.
// Construct one at process start with NewRegistry and pass it to every
// parsing call site; there is no ambient global registry.
type Registry struct {
	units      map[string]Unit
	prefixable map[string]bool
}

// NewRegistry builds a registry pre-loaded with SI base and derived
// units plus the geological units (yr, kyr, Myr). SI prefixes apply to
// the prefixable subset (m, g, s, K, mol, Pa, N, J, W).
func NewRegistry() *Registry {
	r := &Registry{
		units:      make(map[string]Unit),
		prefixable: make(map[string]bool),
	}

	gram := mustUnit("g", 1e-3, dims(0, 1, 0, 0, 0))
	base := []Unit{
		Meter, gram, Second, Kelvin, Mole,
		mustUnit("A", 1, Exponents{Current: 1}),
		mustUnit("cd", 1, Exponents{Luminosity: 1}),
		Pascal, Newton, Joule, Watt,
		mustUnit("Hz", 1, dims(0, 0, -1, 0, 0)),
	}
	for _, u := range base {
		r.units[u.symbol] = u
		r.prefixable[u.symbol] = true
	}

	extra := []Unit{
		Kilogram, PascalSecond, Year, Kiloyear, Megayear,
		mustUnit("min", 60, dims(0, 0, 1, 0, 0)),
		mustUnit("hr", 3600, dims(0, 0, 1, 0, 0)),
		mustUnit("day", 86400, dims(0, 0, 1, 0, 0)),
	}
	for _, u := range extra {
		r.units[u.symbol] = u
	}
	return r
}

// Register adds a custom derived unit, e.g. a project-specific alias.
// Registering an existing symbol is an error.
func (r *Registry) Register(u Unit) error {
	if u.symbol == "" {
		return fmt.Errorf("cannot register a unit with an empty symbol")
	}
	if _, exists := r.units[u.symbol]; exists {
		return fmt.Errorf("unit %q is already registered", u.symbol)
	}
	r.units[u.symbol] = u
	return nil
}

// Lookup resolves a single unit symbol, trying an exact match first and
// then an SI prefix on a prefixable symbol ("cm", "GPa", "mW", ...)
func (r *Registry) Lookup(symbol string) (Unit, error) {
	if u, ok := r.units[symbol]; ok {
		return u, nil
	}
	for _, p := range siPrefixes {
		rest, ok := strings.CutPrefix(symbol, p.prefix)
		if !ok || rest == "" {
			continue
		}
		u, found := r.units[rest]
		if !found || !r.prefixable[rest] {
			continue
		}
		return Unit{symbol: symbol, factor: u.factor * p.mult, exps: u.exps}, nil
	}
	return Unit{}, fmt.Errorf("unknown unit %q", symbol)
}

// Parse evaluates a compound unit expression. The grammar is a flat
// chain of terms joined by '*' and '/', each term a symbol with an
// optional '^' exponent, which may be fractional: "cm/yr", "MPa^-3.05/s",
// "J/kg/K", "1/s".
func (r *Registry) Parse(expr string) (Unit, error) {
	s := strings.ReplaceAll(expr, " ", "")
	if s == "" {
		return Dimensionless(), nil
	}

	result := Dimensionless()
	op := byte('*')
	for len(s) > 0 {
		i := strings.IndexAny(s, "*/")
		var tok string
		var nextOp byte
		if i < 0 {
			tok, s = s, ""
		} else {
			tok, nextOp, s = s[:i], s[i], s[i+1:]
			if s == "" {
				return Unit{}, fmt.Errorf("unit expression %q: trailing operator", expr)
			}
		}
		if tok == "" {
			return Unit{}, fmt.Errorf("unit expression %q: empty term", expr)
		}

		term, err := r.parseTerm(tok)
		if err != nil {
			return Unit{}, fmt.Errorf("unit expression %q: %w", expr, err)
		}
		if op == '*' {
			result = result.Mul(term)
		} else {
			result = result.Div(term)
		}
		op = nextOp
	}

	// Keep the symbol as written ("cm/yr") rather than the composed form
	result.symbol = strings.ReplaceAll(expr, " ", "")
	return result, nil
}

// parseTerm handles a single "sym", "sym^exp" or "1" token
func (r *Registry) parseTerm(tok string) (Unit, error) {
	sym, expStr, hasExp := strings.Cut(tok, "^")
	var u Unit
	if sym == "1" {
		u = Dimensionless()
	} else {
		var err error
		u, err = r.Lookup(sym)
		if err != nil {
			return Unit{}, err
		}
	}
	if !hasExp {
		return u, nil
	}
	p, err := strconv.ParseFloat(expStr, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("invalid exponent %q: %w", expStr, err)
	}
	return u.Pow(p), nil
}

// ParseQuantity parses a value-with-unit string such as "1000 km",
// "8.1cm/yr" or "1e19" (dimensionless). The numeric part is mandatory,
// the unit part optional.
func (r *Registry) ParseQuantity(s string) (Quantity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Quantity{}, fmt.Errorf("empty quantity string")
	}

	split := len(trimmed)
	for i, c := range trimmed {
		if unicode.IsDigit(c) || c == '.' || c == '-' || c == '+' {
			continue
		}
		// exponent markers stay in the numeric part when followed by
		// a digit or sign ("1e19", "1E-3")
		if (c == 'e' || c == 'E') && i+1 < len(trimmed) {
			next := trimmed[i+1]
			if next >= '0' && next <= '9' || next == '-' || next == '+' {
				continue
			}
		}
		split = i
		break
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(trimmed[:split]), 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q: invalid numeric part: %w", s, err)
	}
	u, err := r.Parse(strings.TrimSpace(trimmed[split:]))
	if err != nil {
		return Quantity{}, fmt.Errorf("quantity %q: %w", s, err)
	}
	return Quantity{Value: v, Unit: u}, nil
}

// MustParse is Parse for expressions known to be valid; it panics on
// malformed input
func (r *Registry) MustParse(expr string) Unit {
	u, err := r.Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

// MustParseQuantity is ParseQuantity for strings known to be valid
func (r *Registry) MustParseQuantity(s string) Quantity {
	q, err := r.ParseQuantity(s)
	if err != nil {
		panic(err)
	}
	return q
}

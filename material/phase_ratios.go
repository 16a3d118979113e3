package material

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ShapeMismatchError reports a phase-ratio array whose shape does not
// fit the data it is meant to weight: the ratio array must carry one
// extra trailing phase axis over the data array, with matching leading
// dimensions.
type ShapeMismatchError struct {
	RatioShape []int
	DataShape  []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("phase ratio shape %v does not match data shape %v (want data shape + phase axis)",
		e.RatioShape, e.DataShape)
}

// ValidateRatioShape checks the rank rule: ratio rank == data rank + 1
// and the leading ratio dimensions equal the data dimensions
func ValidateRatioShape(ratioShape, dataShape []int) error {
	if len(ratioShape) != len(dataShape)+1 {
		return &ShapeMismatchError{RatioShape: ratioShape, DataShape: dataShape}
	}
	for i, n := range dataShape {
		if ratioShape[i] != n {
			return &ShapeMismatchError{RatioShape: ratioShape, DataShape: dataShape}
		}
	}
	return nil
}

// ratioSumTolerance bounds how far a point's phase fractions may drift
// from summing to one
const ratioSumTolerance = 1e-8

// PhaseRatios gives, per grid point, the fractional presence of each
// phase. Rows are grid points, columns phases; each row sums to one.
type PhaseRatios struct {
	ratios *mat.Dense // nPoints x nPhases
}

// NewPhaseRatios wraps a row-major (nPoints x nPhases) fraction array,
// validating the shape against the data length and the per-point sum
func NewPhaseRatios(nPoints, nPhases int, fractions []float64) (*PhaseRatios, error) {
	if nPoints <= 0 || nPhases <= 0 {
		return nil, fmt.Errorf("phase ratios: invalid shape %dx%d", nPoints, nPhases)
	}
	if err := ValidateRatioShape([]int{nPoints, nPhases}, []int{nPoints}); err != nil {
		return nil, err
	}
	if len(fractions) != nPoints*nPhases {
		return nil, fmt.Errorf("phase ratios: %d fractions for a %dx%d grid",
			len(fractions), nPoints, nPhases)
	}
	m := mat.NewDense(nPoints, nPhases, fractions)
	for i := 0; i < nPoints; i++ {
		sum := 0.0
		for j := 0; j < nPhases; j++ {
			sum += m.At(i, j)
		}
		if math.Abs(sum-1) > ratioSumTolerance {
			return nil, fmt.Errorf("phase ratios: point %d fractions sum to %g, want 1", i, sum)
		}
	}
	return &PhaseRatios{ratios: m}, nil
}

// NumPoints returns the number of grid points
func (pr *PhaseRatios) NumPoints() int {
	r, _ := pr.ratios.Dims()
	return r
}

// NumPhases returns the number of phases
func (pr *PhaseRatios) NumPhases() int {
	_, c := pr.ratios.Dims()
	return c
}

// At returns the fraction of phase j at point i
func (pr *PhaseRatios) At(i, j int) float64 {
	return pr.ratios.At(i, j)
}

// Average computes the ratio-weighted average of a per-phase property
// at every grid point, writing into dst (len NumPoints). dst may be
// reused across calls to avoid allocation on domain-sized grids.
func (pr *PhaseRatios) Average(perPhase, dst []float64) error {
	r, c := pr.ratios.Dims()
	if len(perPhase) != c {
		return fmt.Errorf("phase ratios: %d per-phase values for %d phases", len(perPhase), c)
	}
	if len(dst) != r {
		return fmt.Errorf("phase ratios: destination length %d for %d points", len(dst), r)
	}
	out := mat.NewVecDense(r, dst)
	out.MulVec(pr.ratios, mat.NewVecDense(c, perPhase))
	return nil
}

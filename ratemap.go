package coordmap

import (
	"fmt"
	"math"
)

// rateStepScale sizes the finite-difference step: cbrt of the float64
// machine epsilon, the usual optimum for a central difference.
var rateStepScale = math.Cbrt(0x1p-52)

// RateMap is a mapping that wraps another mapping and outputs the rate of
// change of one of its output coordinates with respect to one of its
// input coordinates, estimated by central finite differencing. The
// forward transform takes a full input point of the wrapped mapping and
// returns the single rate value at that point.
//
// A RateMap is never invertible: a derivative value does not identify the
// point it was taken at.
type RateMap struct {
	m   Mapping
	ax1 int // output axis being differentiated
	ax2 int // input axis varied
}

var _ Mapping = (*RateMap)(nil)

// NewRateMap builds a rate-of-change mapping around m. ax1 selects the
// output coordinate to differentiate and ax2 the input coordinate to vary;
// both are zero-based. The wrapped mapping is copied, so later use of m
// by the caller cannot affect the RateMap.
//
// RateMap has no attributes of its own; options must be empty.
func NewRateMap(m Mapping, ax1, ax2 int, options string) (*RateMap, error) {
	if ax1 < 0 || ax1 >= m.NOut() {
		return nil, fmt.Errorf("%w: output axis %d out of range [0, %d)", ErrInvalidArgument, ax1, m.NOut())
	}
	if ax2 < 0 || ax2 >= m.NIn() {
		return nil, fmt.Errorf("%w: input axis %d out of range [0, %d)", ErrInvalidArgument, ax2, m.NIn())
	}
	if err := parseOptions(options, nil); err != nil {
		return nil, err
	}
	return &RateMap{m: m.Copy(), ax1: ax1, ax2: ax2}, nil
}

// NIn returns the input arity of the wrapped mapping.
func (r *RateMap) NIn() int { return r.m.NIn() }

// NOut returns 1.
func (r *RateMap) NOut() int { return 1 }

// Invertible returns false.
func (r *RateMap) Invertible() bool { return false }

// Rate estimates d(out[ax1])/d(in[ax2]) of the wrapped mapping at the
// given point.
func (r *RateMap) Rate(at []float64) float64 {
	checkArity("forward", len(at), r.NIn())
	x := at[r.ax2]

	// Step proportional to the coordinate magnitude, then recomputed
	// from the rounded endpoints so the divisor matches the actual
	// perturbation.
	h := rateStepScale * math.Max(math.Abs(x), 1)
	lo := x - h
	hi := x + h

	p := append([]float64(nil), at...)
	p[r.ax2] = hi
	yHi := r.m.Forward(p...)[r.ax1]
	p[r.ax2] = lo
	yLo := r.m.Forward(p...)[r.ax1]

	rate := (yHi - yLo) / (hi - lo)
	Logger().Debug("rate estimated", "at", x, "step", hi-lo, "rate", rate)
	return rate
}

// Forward transforms a single point of the wrapped mapping into the rate
// value at that point.
func (r *RateMap) Forward(in ...float64) []float64 {
	checkArity("forward", len(in), r.NIn())
	return []float64{r.Rate(in)}
}

// Inverse always fails: rates carry no positional information.
func (r *RateMap) Inverse(out ...float64) ([]float64, error) {
	checkArity("inverse", len(out), 1)
	return nil, fmt.Errorf("%w: rate of change cannot be inverted", ErrNoInverse)
}

// Copy returns a deep copy of the mapping, including the wrapped mapping.
func (r *RateMap) Copy() Mapping {
	return &RateMap{m: r.m.Copy(), ax1: r.ax1, ax2: r.ax2}
}

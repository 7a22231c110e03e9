package coordmap

import (
	"fmt"
	"math"
)

// UnitNormMap is a mapping that splits an N-dimensional vector, taken
// relative to a fixed centre, into its direction and its length. The
// forward transform takes N coordinates to N+1: the first N outputs form
// a unit vector parallel to (in - centre), and the last output is the
// vector's norm. The inverse multiplies the unit vector back up by the
// norm and adds the centre.
//
// The forward transform of the centre itself has no defined direction:
// the unit-vector outputs are NaN and the norm is 0. The inverse maps any
// such point back to the centre.
type UnitNormMap struct {
	centre []float64
}

var _ Mapping = (*UnitNormMap)(nil)

// NewUnitNormMap builds a unit-norm mapping relative to centre, which
// must have at least one axis.
//
// UnitNormMap has no attributes of its own; options must be empty.
func NewUnitNormMap(centre []float64, options string) (*UnitNormMap, error) {
	if len(centre) == 0 {
		return nil, fmt.Errorf("%w: centre must have at least 1 axis", ErrInvalidArgument)
	}
	if err := parseOptions(options, nil); err != nil {
		return nil, err
	}
	return &UnitNormMap{
		centre: append([]float64(nil), centre...),
	}, nil
}

// NIn returns the number of axes of the centre.
func (m *UnitNormMap) NIn() int { return len(m.centre) }

// NOut returns NIn + 1: a unit vector plus its norm.
func (m *UnitNormMap) NOut() int { return len(m.centre) + 1 }

// Invertible returns true: scaling the unit vector by the norm recovers
// the input exactly.
func (m *UnitNormMap) Invertible() bool { return true }

// Centre returns a copy of the centre point.
func (m *UnitNormMap) Centre() []float64 {
	return append([]float64(nil), m.centre...)
}

// Forward transforms a single point into a unit vector and a norm.
func (m *UnitNormMap) Forward(in ...float64) []float64 {
	n := len(m.centre)
	checkArity("forward", len(in), n)

	out := make([]float64, n+1)
	var sum float64
	for i, x := range in {
		d := x - m.centre[i]
		out[i] = d
		sum += d * d
	}
	norm := math.Sqrt(sum)
	for i := 0; i < n; i++ {
		out[i] /= norm // 0/0 leaves NaN for the centre point
	}
	out[n] = norm
	return out
}

// Inverse transforms a unit vector and norm back to a point.
func (m *UnitNormMap) Inverse(out ...float64) ([]float64, error) {
	n := len(m.centre)
	checkArity("inverse", len(out), n+1)

	norm := out[n]
	in := make([]float64, n)
	for i := 0; i < n; i++ {
		d := out[i] * norm
		if norm == 0 {
			// The centre has no direction; NaN * 0 must still land
			// back on the centre.
			d = 0
		}
		in[i] = m.centre[i] + d
	}
	return in, nil
}

// Copy returns a deep copy of the mapping.
func (m *UnitNormMap) Copy() Mapping {
	return &UnitNormMap{centre: append([]float64(nil), m.centre...)}
}

package coordmap

import (
	"fmt"
	"math"
)

// WinMap is an N-dimensional mapping that transforms one axis-aligned
// window onto another by applying a linear scale and shift on each axis
// independently:
//
//	out[i] = scale[i]*in[i] + shift[i]
//
// The scale and shift are chosen so that the window corner (inA, inB) maps
// onto the corner (outA, outB). WinMap is the affine workhorse among the
// mapping types: unit conversion, pixel-to-world scaling and axis flips
// are all WinMaps.
//
// A WinMap is invertible unless some axis has zero scale (the output
// window is flat on that axis).
type WinMap struct {
	scale []float64
	shift []float64
	inv   bool
}

var _ Mapping = (*WinMap)(nil)

// NewWinMap builds a window mapping from two corners of the input window
// (inA, inB) and the corresponding corners of the output window
// (outA, outB). All four slices must have the same nonzero length, and no
// input axis may be degenerate (inA[i] == inB[i]).
//
// WinMap has no attributes of its own; options must be empty.
func NewWinMap(inA, inB, outA, outB []float64, options string) (*WinMap, error) {
	n := len(inA)
	if n == 0 {
		return nil, fmt.Errorf("%w: window corners must have at least 1 axis", ErrInvalidArgument)
	}
	if len(inB) != n || len(outA) != n || len(outB) != n {
		return nil, fmt.Errorf("%w: window corners disagree on axis count (%d, %d, %d, %d)",
			ErrInvalidArgument, n, len(inB), len(outA), len(outB))
	}
	if err := parseOptions(options, nil); err != nil {
		return nil, err
	}

	m := &WinMap{
		scale: make([]float64, n),
		shift: make([]float64, n),
		inv:   true,
	}
	for i := 0; i < n; i++ {
		din := inB[i] - inA[i]
		if din == 0 || math.IsNaN(din) {
			return nil, fmt.Errorf("%w: input window is degenerate on axis %d", ErrInvalidArgument, i)
		}
		m.scale[i] = (outB[i] - outA[i]) / din
		m.shift[i] = outA[i] - m.scale[i]*inA[i]
		if m.scale[i] == 0 {
			m.inv = false
		}
	}
	return m, nil
}

// NIn returns the number of axes.
func (m *WinMap) NIn() int { return len(m.scale) }

// NOut returns the number of axes.
func (m *WinMap) NOut() int { return len(m.scale) }

// Invertible reports whether every axis has nonzero scale.
func (m *WinMap) Invertible() bool { return m.inv }

// Scale returns a copy of the per-axis scale factors.
func (m *WinMap) Scale() []float64 {
	return append([]float64(nil), m.scale...)
}

// Shift returns a copy of the per-axis shifts.
func (m *WinMap) Shift() []float64 {
	return append([]float64(nil), m.shift...)
}

// Forward transforms a single point.
func (m *WinMap) Forward(in ...float64) []float64 {
	checkArity("forward", len(in), m.NIn())
	out := make([]float64, len(in))
	for i, x := range in {
		out[i] = m.scale[i]*x + m.shift[i]
	}
	return out
}

// Inverse transforms a single output point back to an input point.
func (m *WinMap) Inverse(out ...float64) ([]float64, error) {
	checkArity("inverse", len(out), m.NOut())
	if !m.inv {
		return nil, fmt.Errorf("%w: window mapping collapses an axis", ErrNoInverse)
	}
	in := make([]float64, len(out))
	for i, y := range out {
		in[i] = (y - m.shift[i]) / m.scale[i]
	}
	return in, nil
}

// Copy returns a deep copy of the mapping.
func (m *WinMap) Copy() Mapping {
	return &WinMap{
		scale: append([]float64(nil), m.scale...),
		shift: append([]float64(nil), m.shift...),
		inv:   m.inv,
	}
}

package coordmap

import "fmt"

// Mapping is a coordinate transform: it takes points in one coordinate
// system to points in another, and is optionally invertible.
//
// Implementations are immutable after construction, so a Mapping may be
// used concurrently from multiple goroutines without synchronization.
type Mapping interface {
	// NIn returns the number of input coordinates per point.
	NIn() int

	// NOut returns the number of output coordinates per point.
	NOut() int

	// Invertible reports whether the inverse transform is available.
	// The value is fixed at construction.
	Invertible() bool

	// Forward transforms a single point. It expects exactly NIn
	// coordinates and returns NOut coordinates; a wrong coordinate count
	// is a programming error and panics. Forward never fails for finite
	// input.
	Forward(in ...float64) []float64

	// Inverse transforms a single output point back to an input point.
	// It expects exactly NOut coordinates and returns NIn coordinates;
	// a wrong coordinate count panics. If Invertible reports false, the
	// returned error wraps ErrNoInverse.
	Inverse(out ...float64) ([]float64, error)

	// Copy returns a deep copy sharing no mutable state with the
	// original.
	Copy() Mapping
}

// checkArity panics when a transform receives the wrong number of
// coordinates. Arity mismatches are caller bugs, not runtime conditions.
func checkArity(op string, got, want int) {
	if got != want {
		panic(fmt.Sprintf("coordmap: %s transform expects %d coordinates, got %d", op, want, got))
	}
}

// Apply1 applies a 1-input, 1-output mapping elementwise to a sequence of
// coordinates. It panics if m is not 1-dimensional. The result is a new
// slice; xs is not modified.
func Apply1(m Mapping, xs []float64) []float64 {
	if m.NIn() != 1 || m.NOut() != 1 {
		panic(fmt.Sprintf("coordmap: Apply1 needs a 1-in 1-out mapping, got %d-in %d-out", m.NIn(), m.NOut()))
	}
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Forward(x)[0]
	}
	return out
}

// ApplyInverse1 applies the inverse of a 1-input, 1-output mapping
// elementwise to a sequence of coordinates. It panics if m is not
// 1-dimensional and returns an error wrapping ErrNoInverse if m is not
// invertible.
func ApplyInverse1(m Mapping, ys []float64) ([]float64, error) {
	if m.NIn() != 1 || m.NOut() != 1 {
		panic(fmt.Sprintf("coordmap: ApplyInverse1 needs a 1-in 1-out mapping, got %d-in %d-out", m.NIn(), m.NOut()))
	}
	out := make([]float64, len(ys))
	for i, y := range ys {
		x, err := m.Inverse(y)
		if err != nil {
			return nil, err
		}
		out[i] = x[0]
	}
	return out, nil
}
